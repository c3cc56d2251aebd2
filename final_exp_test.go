package pairing

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/require"
)

func TestFinalExponentiationOfIdentityIsIdentity(t *testing.T) {
	result := FinalExponentiation(Identity())
	require.True(t, result.IsIdentity())
}

func TestFinalExponentiationLandsInCyclotomicSubgroup(t *testing.T) {
	_, _, g1Gen, g2Gen := bn254.Generators()

	prepared := NewG2Prepared(g2Gen)
	loop := MultiMillerLoop([]MillerTerm{{P: g1Gen, Q: prepared}})
	result := FinalExponentiation(loop)

	require.False(t, result.IsIdentity(), "e(P,Q) for generators must not be the identity")

	rTh := gtExp(result.GT, bn254SubgroupOrder)
	require.True(t, rTh.IsOne(), "an element of GT's order-r subgroup raised to r must be 1")
}
