package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// bnX is the BN254 curve seed, 6x+2 of which drives the Miller loop.
const bnX uint64 = 4965661367192848881

// xiToQMinus1Over2 is ξ^((q-1)/2) ∈ Fq2, used to twist Q's y-coordinate
// when folding in the Frobenius endomorphism during G2 precomputation.
// The limbs are the exact Montgomery-form internal representation of the
// constant, taken verbatim from XI_TO_Q_MINUS_1_OVER_2 in the original
// engine so no Montgomery conversion has to be performed by hand.
var xiToQMinus1Over2 = bn254.E2{
	A0: fp.Element{0xe4bbdd0c2936b629, 0xbb30f162e133bacb, 0x31a9d1b6f9645366, 0x253570bea500f8dd},
	A1: fp.Element{0xa1d77ce45ffe77c7, 0x07affd117826d1db, 0x6d16bd27bb7edc6b, 0x2c87200285defecc},
}

// frobeniusCoeffFq6C1_1 and frobeniusCoeffFq6C1_2 are FROBENIUS_COEFF_FQ6_C1[1]
// and [2]: the Fq2 scalars used to apply the q- and q²-power Frobenius
// twist to a G2 point's x-coordinate. frobeniusCoeffFq6C1_2 is purely real
// (its A1 component is zero). Values cross-confirmed against
// frobXa0/frobXa1 and frobSqXa0 in wyf-ACCEPT-eth2030/pkg/crypto/bn254_pairing.go.
var (
	frobeniusCoeffFq6C1_1 = mustE2FromDecimal(
		"21575463638280843010398324269430826099269044274347216827212613867836435027261",
		"10307601595873709700152284273816112264069230130616436755625194854815875713954",
	)
	frobeniusCoeffFq6C1_2 = mustE2FromDecimal(
		"21888242871839275220042445260109153167277707414472061641714758635765020556616",
		"0",
	)
)

func mustE2FromDecimal(a0, a1 string) bn254.E2 {
	var e bn254.E2
	e.A0.SetString(a0)
	e.A1.SetString(a1)
	return e
}
