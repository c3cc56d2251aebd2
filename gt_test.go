package pairing

import (
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/okx/bn254pairing/internal/detrand"
)

func genGT() gopter.Gen {
	return gen.UInt64().Map(func(_ uint64) GT {
		var g GT
		if _, err := g.Random(); err != nil {
			panic(err)
		}
		return FinalExponentiation(g)
	})
}

func TestGTIdentityIsAdditiveUnit(t *testing.T) {
	id := Identity()
	require.True(t, id.IsIdentity())

	var x GT
	if _, err := x.Random(); err != nil {
		t.Fatal(err)
	}

	var sum GT
	sum.Add(&x, &id)
	require.True(t, sum.Equal(&x))
}

func TestGTNegIsInverse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	parameters.Rng = rand.New(rand.NewSource(detrand.Seed("TestGTNegIsInverse")))
	properties := gopter.NewProperties(parameters)

	properties.Property("x + (-x) == identity", prop.ForAll(
		func(x GT) bool {
			var negX, sum GT
			negX.Neg(&x)
			sum.Add(&x, &negX)
			return sum.IsIdentity()
		},
		genGT(),
	))

	properties.TestingRun(t)
}

func TestGTDoubleMatchesAddToSelf(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	parameters.Rng = rand.New(rand.NewSource(detrand.Seed("TestGTDoubleMatchesAddToSelf")))
	properties := gopter.NewProperties(parameters)

	properties.Property("2x == x + x", prop.ForAll(
		func(x GT) bool {
			var doubled, added GT
			doubled.Double(&x)
			added.Add(&x, &x)
			return doubled.Equal(&added)
		},
		genGT(),
	))

	properties.TestingRun(t)
}

func TestGTScalarMulByOneIsIdentityMap(t *testing.T) {
	var x GT
	if _, err := x.Random(); err != nil {
		t.Fatal(err)
	}

	var one fr.Element
	one.SetOne()

	var result GT
	result.ScalarMul(&x, &one)
	require.True(t, result.Equal(&x))
}

func TestGTScalarMulByZeroIsIdentity(t *testing.T) {
	var x GT
	if _, err := x.Random(); err != nil {
		t.Fatal(err)
	}

	var zero fr.Element
	zero.SetZero()

	var result GT
	result.ScalarMul(&x, &zero)
	require.True(t, result.IsIdentity())
}
