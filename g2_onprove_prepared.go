package pairing

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/okx/bn254pairing/internal/plog"
)

// OnProveCoeff is one step's affine line data: a slope and a bias such
// that, for every point (x,y) on the line, y - alpha*x - bias = 0. It is
// the affine counterpart of lineCoeffs: a SNARK circuit replaying this
// construction checks the three identities in
// onProveDoubleVerify/onProveAdditionVerify directly against these two
// field elements per step, instead of against the six coordinates the
// Jacobian lineCoeffs carries.
type OnProveCoeff struct {
	Alpha, Bias bn254.E2
}

// G2OnProvePrepared is the affine-path precomputation of a G2 point used
// by the residue-witness ("on proving pairings") Miller loop variant.
// Unlike G2Prepared, every step here is cross-checked against an
// independently computed Jacobian doubling/addition before being
// accepted, so this path is explicitly variable-time: a verification
// failure is a fatal invariant violation, not a condition to recover from.
type G2OnProvePrepared struct {
	coeffs     []OnProveCoeff
	IsInfinity bool
	initQ      bn254.G2Affine
}

// Coeffs returns the per-step (slope, bias) sequence, exposing the same
// data the original engine's get_g2_on_prove_prepared_coeffs accessor did.
func (p *G2OnProvePrepared) Coeffs() []OnProveCoeff {
	out := make([]OnProveCoeff, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// InitQ returns the original affine point this precomputation started
// from, exposing the same data the original engine's
// get_g2_on_prove_prepared_init_q accessor did.
func (p *G2OnProvePrepared) InitQ() bn254.G2Affine {
	return p.initQ
}

// NewG2OnProvePrepared builds the affine slope/bias sequence for q,
// verifying every step against the Jacobian path it is shadowing.
func NewG2OnProvePrepared(q bn254.G2Affine) G2OnProvePrepared {
	if q.IsInfinity() {
		return G2OnProvePrepared{IsInfinity: true, initQ: q}
	}

	var r bn254.G2Jac
	r.X.Set(&q.X)
	r.Y.Set(&q.Y)
	r.Z.SetOne()

	var negQ bn254.G2Affine
	negQ.X.Set(&q.X)
	negQ.Y.Neg(&q.Y)

	coeffs := make([]OnProveCoeff, 0, len(sixUPlus2NAF)+1)
	log := plog.Logger().With().Str("component", "g2_onprove_prepared").Logger()

	for i := len(sixUPlus2NAF) - 1; i >= 1; i-- {
		log.Trace().Int("step", len(sixUPlus2NAF)-i).Msg("cross-verifying affine step against jacobian")
		alpha, bias := onProveDoublingStep(&r)
		expected := onProveDoubleVerify(&alpha, &bias, &r)
		doublingStepJac(&r)
		assertAffineEqual(&r, &expected, "on-prove doubling step diverged from Jacobian doubling")
		coeffs = append(coeffs, OnProveCoeff{Alpha: alpha, Bias: bias})

		switch sixUPlus2NAF[i-1] {
		case 1:
			alpha, bias := onProveAdditionStep(&r, &q)
			expected := onProveAdditionVerify(&alpha, &bias, &r, &q)
			additionStepJac(&r, &q)
			assertAffineEqual(&r, &expected, "on-prove addition step diverged from Jacobian addition")
			coeffs = append(coeffs, OnProveCoeff{Alpha: alpha, Bias: bias})
		case -1:
			alpha, bias := onProveAdditionStep(&r, &negQ)
			expected := onProveAdditionVerify(&alpha, &bias, &r, &negQ)
			additionStepJac(&r, &negQ)
			assertAffineEqual(&r, &expected, "on-prove addition step diverged from Jacobian addition")
			coeffs = append(coeffs, OnProveCoeff{Alpha: alpha, Bias: bias})
		}
	}

	q1 := frobeniusTwistQ1(&q)
	alpha, bias := onProveAdditionStep(&r, &q1)
	expected := onProveAdditionVerify(&alpha, &bias, &r, &q1)
	additionStepJac(&r, &q1)
	assertAffineEqual(&r, &expected, "on-prove frobenius-twist step diverged from Jacobian addition")
	coeffs = append(coeffs, OnProveCoeff{Alpha: alpha, Bias: bias})

	minusQ2 := frobeniusTwistMinusQ2(&q)
	alpha, bias = onProveAdditionStep(&r, &minusQ2)
	expected = onProveAdditionVerify(&alpha, &bias, &r, &minusQ2)
	additionStepJac(&r, &minusQ2)
	assertAffineEqual(&r, &expected, "on-prove frobenius-twist^2 step diverged from Jacobian addition")
	coeffs = append(coeffs, OnProveCoeff{Alpha: alpha, Bias: bias})

	return G2OnProvePrepared{coeffs: coeffs, initQ: q}
}

func assertAffineEqual(r *bn254.G2Jac, expected *bn254.G2Affine, msg string) {
	actual := jacToAffine(r)
	if !actual.X.Equal(&expected.X) || !actual.Y.Equal(&expected.Y) {
		panic(fmt.Sprintf("%s", msg))
	}
}

func jacToAffine(r *bn254.G2Jac) bn254.G2Affine {
	var out bn254.G2Affine
	var zInv, zInv2, zInv3 bn254.E2
	zInv.Inverse(&r.Z)
	zInv2.Square(&zInv)
	zInv3.Mul(&zInv2, &zInv)
	out.X.Mul(&r.X, &zInv2)
	out.Y.Mul(&r.Y, &zInv3)
	return out
}

func fq2Two() bn254.E2 {
	var two bn254.E2
	two.SetOne()
	two.Double(&two)
	return two
}

func fq2Three() bn254.E2 {
	var one, two, three bn254.E2
	one.SetOne()
	two = fq2Two()
	three.Add(&two, &one)
	return three
}

// onProveDoublingStep computes the tangent slope/bias at r without
// mutating r: alpha = 3x²/2y, bias = y - alpha*x.
func onProveDoublingStep(r *bn254.G2Jac) (alpha, bias bn254.E2) {
	t := jacToAffine(r)
	two, three := fq2Two(), fq2Three()

	var denom, xSq bn254.E2
	denom.Mul(&t.Y, &two)
	denom.Inverse(&denom)
	xSq.Square(&t.X)

	alpha.Mul(&xSq, &three)
	alpha.Mul(&alpha, &denom)

	bias.Mul(&alpha, &t.X)
	bias.Sub(&t.Y, &bias)
	return alpha, bias
}

// onProveDoubleVerify checks that (alpha, bias) is a valid tangent line
// at r and returns the affine point it implies 2r to be.
func onProveDoubleVerify(alpha, bias *bn254.E2, r *bn254.G2Jac) bn254.G2Affine {
	t := jacToAffine(r)
	two, three := fq2Two(), fq2Three()

	var lhs bn254.E2
	lhs.Mul(alpha, &t.X)
	lhs.Add(&lhs, bias)
	lhs.Sub(&t.Y, &lhs)
	if !lhs.IsZero() {
		panic("on-prove doubling step: point does not lie on its own tangent line")
	}

	var tangent bn254.E2
	tangent.Mul(&t.Y, &two)
	tangent.Mul(&tangent, alpha)
	var xSq3 bn254.E2
	xSq3.Square(&t.X)
	xSq3.Mul(&xSq3, &three)
	tangent.Sub(&tangent, &xSq3)
	if !tangent.IsZero() {
		panic("on-prove doubling step: slope does not satisfy 2y*alpha = 3x^2")
	}

	var out bn254.G2Affine
	var x3, y3, twoX bn254.E2
	x3.Square(alpha)
	twoX.Mul(&t.X, &two)
	x3.Sub(&x3, &twoX)

	y3.Mul(alpha, &x3)
	y3.Add(&y3, bias)
	y3.Neg(&y3)

	out.X, out.Y = x3, y3
	return out
}

// onProveAdditionStep computes the secant slope/bias through r and q.
func onProveAdditionStep(r *bn254.G2Jac, q *bn254.G2Affine) (alpha, bias bn254.E2) {
	t := jacToAffine(r)

	var denom bn254.E2
	denom.Sub(&q.X, &t.X)
	denom.Inverse(&denom)

	alpha.Sub(&q.Y, &t.Y)
	alpha.Mul(&alpha, &denom)

	bias.Mul(&alpha, &t.X)
	bias.Sub(&t.Y, &bias)
	return alpha, bias
}

// onProveAdditionVerify checks that (alpha, bias) is a valid secant line
// through r and q, and returns the affine point it implies r+q to be.
func onProveAdditionVerify(alpha, bias *bn254.E2, r *bn254.G2Jac, q *bn254.G2Affine) bn254.G2Affine {
	t := jacToAffine(r)

	checkOnLine := func(x, y *bn254.E2, what string) {
		var lhs bn254.E2
		lhs.Mul(alpha, x)
		lhs.Add(&lhs, bias)
		lhs.Sub(y, &lhs)
		if !lhs.IsZero() {
			panic("on-prove addition step: " + what + " does not lie on the claimed secant line")
		}
	}
	checkOnLine(&t.X, &t.Y, "accumulator point")
	checkOnLine(&q.X, &q.Y, "addend point")

	var out bn254.G2Affine
	var x3, y3 bn254.E2
	x3.Square(alpha)
	x3.Sub(&x3, &t.X)
	x3.Sub(&x3, &q.X)

	y3.Mul(alpha, &x3)
	y3.Add(&y3, bias)
	y3.Neg(&y3)

	out.X, out.Y = x3, y3
	return out
}
