package pairing

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/okx/bn254pairing/internal/detrand"
)

func TestPairingBilinearInG1(t *testing.T) {
	_, _, g1Gen, g2Gen := bn254.Generators()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	parameters.Rng = rand.New(rand.NewSource(detrand.Seed("TestPairingBilinearInG1")))
	properties := gopter.NewProperties(parameters)

	properties.Property("e(a*P, Q) == e(P, Q)^a", prop.ForAll(
		func(aRaw uint64) bool {
			a := aRaw%97 + 1

			var aFr fr.Element
			aFr.SetUint64(a)
			aBig := new(big.Int)
			aFr.BigInt(aBig)

			var aP bn254.G1Affine
			aP.ScalarMultiplication(&g1Gen, aBig)

			lhs := Pair(aP, g2Gen)
			rhs := Pair(g1Gen, g2Gen)
			rhs.ScalarMul(&rhs, &aFr)

			return lhs.Equal(&rhs)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestPairingBilinearInG2(t *testing.T) {
	_, _, g1Gen, g2Gen := bn254.Generators()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	parameters.Rng = rand.New(rand.NewSource(detrand.Seed("TestPairingBilinearInG2")))
	properties := gopter.NewProperties(parameters)

	properties.Property("e(P, b*Q) == e(P, Q)^b", prop.ForAll(
		func(bRaw uint64) bool {
			b := bRaw%97 + 1

			var bFr fr.Element
			bFr.SetUint64(b)
			bBig := new(big.Int)
			bFr.BigInt(bBig)

			var bQ bn254.G2Affine
			bQ.ScalarMultiplication(&g2Gen, bBig)

			lhs := Pair(g1Gen, bQ)
			rhs := Pair(g1Gen, g2Gen)
			rhs.ScalarMul(&rhs, &bFr)

			return lhs.Equal(&rhs)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestPairingSwapSymmetry(t *testing.T) {
	_, _, g1Gen, g2Gen := bn254.Generators()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	parameters.Rng = rand.New(rand.NewSource(detrand.Seed("TestPairingSwapSymmetry")))
	properties := gopter.NewProperties(parameters)

	properties.Property("e(a*P, b*Q) == e(b*P, a*Q)", prop.ForAll(
		func(aRaw, bRaw uint64) bool {
			a, b := aRaw%97+1, bRaw%97+1

			var aFr, bFr fr.Element
			aFr.SetUint64(a)
			bFr.SetUint64(b)
			aBig, bBig := new(big.Int), new(big.Int)
			aFr.BigInt(aBig)
			bFr.BigInt(bBig)

			var aP, bP bn254.G1Affine
			aP.ScalarMultiplication(&g1Gen, aBig)
			bP.ScalarMultiplication(&g1Gen, bBig)

			var aQ, bQ bn254.G2Affine
			aQ.ScalarMultiplication(&g2Gen, aBig)
			bQ.ScalarMultiplication(&g2Gen, bBig)

			lhs := Pair(aP, bQ)
			rhs := Pair(bP, aQ)
			return lhs.Equal(&rhs)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestPairingIdentityIsAbsorbing(t *testing.T) {
	_, _, g1Gen, g2Gen := bn254.Generators()

	var g1Inf bn254.G1Affine
	g1Inf.X.SetZero()
	g1Inf.Y.SetZero()

	result := Pair(g1Inf, g2Gen)
	require.True(t, result.IsIdentity(), "pairing with the G1 identity must be the GT identity")

	var g2Inf bn254.G2Affine
	g2Inf.X.SetZero()
	g2Inf.Y.SetZero()

	result2 := Pair(g1Gen, g2Inf)
	require.True(t, result2.IsIdentity(), "pairing with the G2 identity must be the GT identity")
}

func TestPairingCheckAcceptsBalancedProduct(t *testing.T) {
	_, _, g1Gen, g2Gen := bn254.Generators()

	var negG1 bn254.G1Affine
	negG1.X.Set(&g1Gen.X)
	negG1.Y.Neg(&g1Gen.Y)

	ok, err := PairingCheck(
		[]bn254.G1Affine{g1Gen, negG1},
		[]bn254.G2Affine{g2Gen, g2Gen},
	)
	require.NoError(t, err)
	require.True(t, ok, "e(P,Q) * e(-P,Q) must be the identity")
}

func TestPairingCheckRejectsMismatchedLengths(t *testing.T) {
	_, _, g1Gen, g2Gen := bn254.Generators()
	_, err := PairingCheck([]bn254.G1Affine{g1Gen}, []bn254.G2Affine{g2Gen, g2Gen})
	require.Error(t, err)
}

func TestMultiMillerLoopAgreesWithSequentialPairing(t *testing.T) {
	_, _, g1Gen, g2Gen := bn254.Generators()

	var two fr.Element
	two.SetUint64(2)
	twoBig := new(big.Int)
	two.BigInt(twoBig)

	var p2 bn254.G1Affine
	p2.ScalarMultiplication(&g1Gen, twoBig)

	prepared := NewG2Prepared(g2Gen)
	terms := []MillerTerm{
		{P: g1Gen, Q: prepared},
		{P: p2, Q: prepared},
	}
	combined := FinalExponentiation(MultiMillerLoop(terms))

	individual := Identity()
	first := Pair(g1Gen, g2Gen)
	second := Pair(p2, g2Gen)
	individual.Add(&first, &second)

	require.True(t, combined.Equal(&individual))
}

func TestSupportsOnProvePairing(t *testing.T) {
	require.True(t, SupportsOnProvePairing())
}
