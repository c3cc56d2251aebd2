package pairing

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"golang.org/x/sync/errgroup"
)

// Pair computes the single optimal ate pairing e(p, q) via the Jacobian
// line-coefficient path followed by a full final exponentiation. It is
// the convenience entry point for callers that do not need to amortize
// G2 precomputation across many pairings.
func Pair(p bn254.G1Affine, q bn254.G2Affine) GT {
	prepared := NewG2Prepared(q)
	loop := MultiMillerLoop([]MillerTerm{{P: p, Q: prepared}})
	return FinalExponentiation(loop)
}

// PairingCheck reports whether the product of e(p_i, q_i) over every
// supplied pair equals the identity in GT, which is the form almost
// every downstream consumer of a pairing actually wants: "is this
// Groth16 proof valid", not "what is e(p, q)".
//
// Each pair's G2 precomputation runs concurrently via errgroup, since
// NewG2Prepared has no shared mutable state across terms.
func PairingCheck(ps []bn254.G1Affine, qs []bn254.G2Affine) (bool, error) {
	if len(ps) != len(qs) {
		return false, fmt.Errorf("pairing: mismatched slice lengths: %d G1 points, %d G2 points", len(ps), len(qs))
	}

	prepared := make([]G2Prepared, len(qs))
	var g errgroup.Group
	for i := range qs {
		i := i
		g.Go(func() error {
			prepared[i] = NewG2Prepared(qs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	terms := make([]MillerTerm, len(ps))
	for i := range ps {
		terms[i] = MillerTerm{P: ps[i], Q: prepared[i]}
	}

	loop := MultiMillerLoop(terms)
	result := FinalExponentiation(loop)
	return result.IsIdentity(), nil
}

// SupportsOnProvePairing reports whether this package exposes the
// residue-witness ("on proving pairings") Miller loop variant alongside
// the standard one. It is always true here; the flag exists so a caller
// written against an engine abstraction spanning curves that don't have
// an on-prove-pairing variant can branch on capability instead of on
// curve identity.
func SupportsOnProvePairing() bool {
	return true
}
