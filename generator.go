package blob

import (
	"math"
	"math/rand/v2"
)

const (
	// DefaultRadius is the nominal distance of ring points from the center.
	DefaultRadius = 80
	// DefaultFrameCount is the number of frames in a morph animation.
	DefaultFrameCount = 20
	// MinComplexity is the smallest ring that yields a closed spline.
	MinComplexity = 3
)

// DefaultCenter is the center of [DrawingSpace].
var DefaultCenter = Pt(100, 100)

// Source is a source of uniformly distributed random numbers in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

type config struct {
	src    Source
	center Point
	radius float64
}

// Option configures a [Generator].
type Option func(*config)

// WithSource makes the generator draw from src. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("blob: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithSeed makes the generator draw from a PCG seeded with seed, so that the
// same seed reproduces the same shapes.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithCenter sets the point rings are generated around. Panics on non-finite
// coordinates.
func WithCenter(center Point) Option {
	if center.IsNaN() || center.IsInf() {
		panic("blob: WithCenter(non-finite point)")
	}
	return func(c *config) {
		c.center = center
	}
}

// WithRadius sets the base radius rings are perturbed around. Panics if r is
// not a positive finite number.
func WithRadius(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("blob: WithRadius(r<=0)")
	}
	return func(c *config) {
		c.radius = r
	}
}

// Generator produces blob shapes from a single random source.
//
// A Generator is not safe for concurrent use. Shapes drawn from a seeded
// generator depend on the order of calls.
type Generator struct {
	src    Source
	center Point
	radius float64
}

// NewGenerator returns a generator configured by opts. Without [WithSource] or
// [WithSeed] it draws from a randomly seeded PCG.
func NewGenerator(opts ...Option) *Generator {
	cfg := config{
		center: DefaultCenter,
		radius: DefaultRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		src:    cfg.src,
		center: cfg.center,
		radius: cfg.radius,
	}
}

// Center returns the point rings are generated around.
func (g *Generator) Center() Point { return g.center }

// Radius returns the base radius.
func (g *Generator) Radius() float64 { return g.radius }

// Blob generates a ring and returns the closed spline through it.
func (g *Generator) Blob(complexity int, contrast float64) (BezPath, error) {
	ring, err := g.Ring(complexity, contrast)
	if err != nil {
		return nil, err
	}
	return ClosedSpline(ring)
}

// GenerateBlob is shorthand for NewGenerator(opts...).Blob(complexity, contrast).
func GenerateBlob(complexity int, contrast float64, opts ...Option) (BezPath, error) {
	return NewGenerator(opts...).Blob(complexity, contrast)
}
