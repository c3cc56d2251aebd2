package pairing

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/require"
)

func TestNewG2PreparedInfinity(t *testing.T) {
	var q bn254.G2Affine
	q.X.SetZero()
	q.Y.SetZero()

	prepared := NewG2Prepared(q)
	require.True(t, prepared.IsInfinity)
	require.Nil(t, prepared.Coeffs)
}

func TestNewG2PreparedHasExpectedCoeffCount(t *testing.T) {
	_, _, _, g2Gen := bn254.Generators()
	prepared := NewG2Prepared(g2Gen)
	require.Equal(t, expectedG2PreparedCoeffLen, len(prepared.Coeffs))
}

func TestFrobeniusTwistsAreDeterministic(t *testing.T) {
	_, _, _, g2Gen := bn254.Generators()

	q1a := frobeniusTwistQ1(&g2Gen)
	q1b := frobeniusTwistQ1(&g2Gen)
	require.True(t, q1a.X.Equal(&q1b.X))
	require.True(t, q1a.Y.Equal(&q1b.Y))

	minusQ2a := frobeniusTwistMinusQ2(&g2Gen)
	minusQ2b := frobeniusTwistMinusQ2(&g2Gen)
	require.True(t, minusQ2a.X.Equal(&minusQ2b.X))
	require.True(t, minusQ2a.Y.Equal(&minusQ2b.Y))
}
