package blob

import "fmt"

// catmullRomTension scales neighbour differences into control point offsets.
// A uniform Catmull-Rom spline uses a sixth of the chord p2−p0.
const catmullRomTension = 1.0 / 6.0

// CatmullRom returns the cubic Bézier equivalent of the uniform Catmull-Rom
// segment from p1 to p2, with p0 and p3 the neighbouring points.
func CatmullRom(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{
		P0: p1,
		P1: p1.Translate(p2.Sub(p0).Mul(catmullRomTension)),
		P2: p2.Translate(p3.Sub(p1).Mul(-catmullRomTension)),
		P3: p2,
	}
}

// ClosedSpline returns a closed path that passes through every point of ring.
// The path consists of a MoveTo to ring[0], one CubicTo per point ending at the
// next point (the last ending at ring[0]), and a ClosePath. Adjacent segments
// share their tangents, so the curve has no corners.
func ClosedSpline(ring Ring) (BezPath, error) {
	if len(ring) < MinComplexity {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyRing, len(ring))
	}
	path := make(BezPath, 0, len(ring)+2)
	path.MoveTo(ring[0])
	for c := range ring.Segments() {
		path.CubicTo(c.P1, c.P2, c.P3)
	}
	path.ClosePath()
	return path, nil
}
