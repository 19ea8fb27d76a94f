package blob

import "errors"

var (
	// ErrInvalidComplexity is returned when a ring is requested with fewer
	// than three points.
	ErrInvalidComplexity = errors.New("blob: complexity must be at least 3")
	// ErrInvalidContrast is returned for negative or non-finite contrast.
	ErrInvalidContrast = errors.New("blob: contrast must be a finite, non-negative magnitude")
	// ErrEmptyRing is returned when a spline is built from fewer than three
	// points.
	ErrEmptyRing = errors.New("blob: ring must contain at least 3 points")
	// ErrInvalidFrameCount is returned when fewer than one frame is requested.
	ErrInvalidFrameCount = errors.New("blob: frame count must be at least 1")
	// ErrNoFrames is returned by the animation writers for an empty sequence.
	ErrNoFrames = errors.New("blob: no frames")
)
