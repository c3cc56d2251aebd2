// Package pairing implements the BN254 (alt_bn128) optimal ate pairing,
// including the residue-witness ("on proving pairings", eprint 2024/640)
// variant that lets a verifier replace the final exponentiation with a
// residue witness (c, wi) folded into the Miller loop.
//
// Fq/Fr prime field arithmetic, the Fq2/Fq6/Fq12 tower, and G1/G2 point
// arithmetic are not reimplemented here: they are taken directly from
// github.com/consensys/gnark-crypto/ecc/bn254, exactly the library the
// in-circuit pairing this package's native counterpart is modeled on
// already depends on for the same purpose.
package pairing

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// GT is an element of the target group, the order-r subgroup of the
// multiplicative group of Fq12. It is the codomain of the pairing.
type GT struct {
	bn254.GT
}

// Identity returns the group identity, 1 ∈ Fq12.
func Identity() GT {
	var g GT
	g.SetOne()
	return g
}

// IsIdentity reports whether z is the group identity.
func (z *GT) IsIdentity() bool {
	return z.IsOne()
}

// Equal reports whether z and other represent the same element.
func (z *GT) Equal(other *GT) bool {
	return z.GT.Equal(&other.GT)
}

// Neg sets z to the group inverse of x. Gt is unitary (lies on the norm-1
// subgroup), so inversion is conjugation.
func (z *GT) Neg(x *GT) *GT {
	z.Conjugate(&x.GT)
	return z
}

// Add sets z to x + y, using additive notation for the group law, which
// is multiplication in the underlying Fq12.
func (z *GT) Add(x, y *GT) *GT {
	z.Mul(&x.GT, &y.GT)
	return z
}

// Sub sets z to x - y.
func (z *GT) Sub(x, y *GT) *GT {
	var yNeg GT
	yNeg.Neg(y)
	return z.Add(x, &yNeg)
}

// Double sets z to 2*x.
func (z *GT) Double(x *GT) *GT {
	z.Square(&x.GT)
	return z
}

// ScalarMul sets z to k*x via left-to-right double-and-add over k's binary
// expansion. Variable-time: Gt scalar multiplication is only ever used by
// the testable-property checks in this package, never on the hot pairing
// path, so constant-time execution is not required.
func (z *GT) ScalarMul(x *GT, k *fr.Element) *GT {
	var kBig big.Int
	k.BigInt(&kBig)

	acc := Identity()
	for i := kBig.BitLen() - 1; i >= 0; i-- {
		acc.Double(&acc)
		if kBig.Bit(i) == 1 {
			acc.Add(&acc, x)
		}
	}
	*z = acc
	return z
}

// Random sets z to a uniformly random element of Fq12 (not necessarily in
// the order-r subgroup); useful only for constructing cubic non-residue
// search candidates in the residue-witness construction, never as a
// stand-in for an actual pairing value.
func (z *GT) Random() (*GT, error) {
	if _, err := z.SetRandom(); err != nil {
		return nil, err
	}
	return z, nil
}
