package blob

import (
	"fmt"
	"iter"
	"math"
)

// Ring is an ordered sequence of points around a center. It is circular: the
// last point is adjacent to the first.
type Ring []Point

// Ring returns complexity points at even angular steps around the generator's
// center, starting straight up and proceeding clockwise. Each point's distance
// from the center is drawn uniformly from [r−contrast, r+contrast), r being the
// generator's base radius, with a fresh draw per point.
func (g *Generator) Ring(complexity int, contrast float64) (Ring, error) {
	if complexity < MinComplexity {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidComplexity, complexity)
	}
	if contrast < 0 || math.IsNaN(contrast) || math.IsInf(contrast, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidContrast, contrast)
	}

	step := 360 / float64(complexity)
	ring := make(Ring, complexity)
	for i := range ring {
		radius := g.radius - contrast + g.src.Float64()*contrast*2
		ring[i] = Polar(g.center, step*float64(i), radius)
	}
	return ring, nil
}

// GenerateRing is shorthand for NewGenerator(opts...).Ring(complexity, contrast).
func GenerateRing(complexity int, contrast float64, opts ...Option) (Ring, error) {
	return NewGenerator(opts...).Ring(complexity, contrast)
}

// At returns the point at index i, wrapping around in both directions.
func (r Ring) At(i int) Point {
	n := len(r)
	return r[((i%n)+n)%n]
}

// Segments returns an iterator over the closed Catmull-Rom spline through the
// ring, one cubic per pair of adjacent points, starting at r[0]. It yields
// nothing for rings with fewer than 3 points.
func (r Ring) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		if len(r) < MinComplexity {
			return
		}
		for i := range r {
			if !yield(CatmullRom(r.At(i-1), r[i], r.At(i+1), r.At(i+2))) {
				return
			}
		}
	}
}

// Centroid returns the average of the ring's points.
func (r Ring) Centroid() Point {
	var sum Vec2
	for _, pt := range r {
		sum = sum.Add(Vec2(pt))
	}
	return Point(sum.Div(float64(len(r))))
}
