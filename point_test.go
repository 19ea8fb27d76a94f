package blob

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
}

func TestPointDistance(t *testing.T) {
	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPolar(t *testing.T) {
	c := Pt(100, 100)
	tests := []struct {
		angle float64
		want  Point
	}{
		{0, Pt(100, 20)},
		{90, Pt(180, 100)},
		{180, Pt(100, 180)},
		{270, Pt(20, 100)},
	}
	for _, tt := range tests {
		got := Polar(c, tt.angle, 80)
		diff(t, tt.want, got, approx)
	}

	pt := Polar(c, 30, 50)
	if d := pt.Distance(c); math.Abs(d-50) > 1e-9 {
		t.Errorf("got distance %v, want 50", d)
	}
}
