package pairing

// sixUPlus2NAF is the non-adjacent form of 6x+2 for the BN254 seed x,
// most-significant digit last (index len-1 is the top digit). Every Miller
// loop variant in this package walks it from the top down, emitting a
// doubling step per digit below the top one and an extra addition step
// where that digit is ±1.
var sixUPlus2NAF = [65]int8{
	0, 0, 0, 1, 0, 1, 0, -1, 0, 0, 1, -1, 0, 0, 1, 0, 0, 1, 1, 0, -1, 0, 0, 1, 0, -1, 0, 0, 0, 0,
	1, 1, 1, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0, -1, 0, 0, 1, 1, 0, 0, -1, 0, 0, 0, 1, 1, 0, -1, 0,
	0, 1, 0, 1, 1,
}
