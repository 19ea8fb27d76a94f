package blob

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		if l := c.Deriv(ts).Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 30), Pt(40, -10), Pt(50, 20)}
	a, b := c.Subdivide()
	diff(t, c.Eval(0.5), a.End())
	diff(t, a.End(), b.Start())
	for _, tt := range []float64{0, 0.3, 0.6, 1} {
		diff(t, c.Eval(tt/2), a.Eval(tt), approx)
		diff(t, c.Eval(0.5+tt/2), b.Eval(tt), approx)
	}
}

func TestCubicBezTangents(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(3, 4), Pt(6, 4)}
	d0, d1 := c.Tangents()
	// The first control point coincides with the start, so the start tangent
	// falls back to the second one.
	diff(t, Vec(3, 4), d0)
	diff(t, Vec(3, 0), d1)
}

func TestCubicBezSignedAreaLinear(t *testing.T) {
	// y = 1 - x
	c := CubicBez{
		Pt(1.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0/3.0, 2.0/3.0),
		Pt(0.0, 1.0),
	}
	const epsilon = 1e-12

	diff(t, 0.5, c.SignedArea())
	diff(t, 0.5, c.Transform(Rotate(0.5)).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.0, c.Transform(Translate(Vec(0.0, 1.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
	diff(t, 1.0, c.Transform(Translate(Vec(1.0, 0.0))).SignedArea(), cmpopts.EquateApprox(0, epsilon))
}

func TestCubicBezControlBox(t *testing.T) {
	c := CubicBez{Pt(200, 300), Pt(50, 50), Pt(350, 50), Pt(200, 300)}
	diff(t, Rect{50, 50, 350, 300}, c.ControlBox())
	if c.IsNaN() || c.IsInf() {
		t.Errorf("finite cubic reported as non-finite")
	}
	if !(CubicBez{P2: Pt(math.NaN(), 0)}).IsNaN() {
		t.Errorf("NaN cubic not reported as NaN")
	}
}
