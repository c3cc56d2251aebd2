package pairing

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

// buildCrossPairingScenario constructs the "prove e(P1,Q1) = e(P2,Q2)"
// setup both scenario tests below share: P2 = 3*P1, Q1 = 3*Q2, so
// e(-P1,Q1)*e(P2,Q2) = 1.
func buildCrossPairingScenario(t *testing.T) (p1Neg, p2 bn254.G1Affine, q1, q2 bn254.G2Affine) {
	t.Helper()

	_, _, g1Gen, g2Gen := bn254.Generators()

	var s1, s2 fr.Element
	_, err := s1.SetRandom()
	require.NoError(t, err)
	_, err = s2.SetRandom()
	require.NoError(t, err)

	var s1Big, s2Big big.Int
	s1.BigInt(&s1Big)
	s2.BigInt(&s2Big)

	var p1 bn254.G1Affine
	p1.ScalarMultiplication(&g1Gen, &s1Big)

	var q2 bn254.G2Affine
	q2.ScalarMultiplication(&g2Gen, &s2Big)

	factorBig := big.NewInt(3)

	var p2Affine bn254.G1Affine
	p2Affine.ScalarMultiplication(&p1, factorBig)

	var q1Affine bn254.G2Affine
	q1Affine.ScalarMultiplication(&q2, factorBig)

	var p1Neg0 bn254.G1Affine
	p1Neg0.X.Set(&p1.X)
	p1Neg0.Y.Neg(&p1.Y)

	return p1Neg0, p2Affine, q1Affine, q2
}

func TestMultiMillerLoopCWiAccumulatesToOne(t *testing.T) {
	p1Neg, p2, q1, q2 := buildCrossPairingScenario(t)

	q1Prepared := NewG2Prepared(q1)
	q2Prepared := NewG2Prepared(q2)
	terms := []MillerTerm{
		{P: p1Neg, Q: q1Prepared},
		{P: p2, Q: q2Prepared},
	}

	f := MultiMillerLoop(terms)
	require.True(t, FinalExponentiation(f).IsIdentity(),
		"e(-P1,Q1) * e(P2,Q2) must be the identity once P2=3P1, Q1=3Q2")

	c, wi := ComputeCWi(f)

	result := MultiMillerLoopCWi(c, wi, terms)
	require.True(t, result.IsIdentity())
}

func TestMultiMillerLoopOnProvePairingAccumulatesToOne(t *testing.T) {
	p1Neg, p2, q1, q2 := buildCrossPairingScenario(t)

	q1OnProve := NewG2OnProvePrepared(q1)
	q2OnProve := NewG2OnProvePrepared(q2)
	terms := []OnProveMillerTerm{
		{P: p1Neg, Q: q1OnProve},
		{P: p2, Q: q2OnProve},
	}

	f := MultiMillerLoopOnProvePairingPrepare(terms)
	require.True(t, FinalExponentiation(f).IsIdentity())

	c, wi := ComputeCWi(f)

	result := MultiMillerLoopOnProvePairing(c, wi, terms)
	require.True(t, result.IsIdentity())
}
