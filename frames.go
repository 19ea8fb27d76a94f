package blob

import "fmt"

// Frames is a sequence of independently generated blobs, played in order to
// morph from one shape to the next.
type Frames []BezPath

// Frames generates count blobs with the same parameters, in call order.
// Frames share nothing but the generator's random source.
func (g *Generator) Frames(count, complexity int, contrast float64) (Frames, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFrameCount, count)
	}
	frames := make(Frames, count)
	for i := range frames {
		path, err := g.Blob(complexity, contrast)
		if err != nil {
			return nil, err
		}
		frames[i] = path
	}
	return frames, nil
}

// BuildFrames is shorthand for NewGenerator(opts...).Frames(count, complexity, contrast).
func BuildFrames(count, complexity int, contrast float64, opts ...Option) (Frames, error) {
	return NewGenerator(opts...).Frames(count, complexity, contrast)
}

// ControlBox returns the union of every frame's control box, a rectangle that
// encloses the whole animation.
func (fs Frames) ControlBox() Rect {
	var box Rect
	for i, f := range fs {
		if i == 0 {
			box = f.ControlBox()
		} else {
			box = box.Union(f.ControlBox())
		}
	}
	return box
}

// Transform returns new frames with aff applied to every path.
func (fs Frames) Transform(aff Affine) Frames {
	out := make(Frames, len(fs))
	for i, f := range fs {
		out[i] = f.Transform(aff)
	}
	return out
}

// PathData formats every frame as SVG path data.
func (fs Frames) PathData(opts SVGOptions) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.SVG(opts)
	}
	return out
}
