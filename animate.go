package blob

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultFill is the fill colour of rendered blobs.
	DefaultFill = "#3498db"
	// DefaultDuration is the length of one morph cycle.
	DefaultDuration = 4 * time.Second
	// DefaultKeyframesName is the name of the CSS animation.
	DefaultKeyframesName = "morph"
)

// StyleOptions control the SVG document around a path.
type StyleOptions struct {
	// ViewBox is the document's view box. The zero value means DrawingSpace.
	ViewBox Rect
	// Fill is the path's fill colour. The empty string means DefaultFill.
	Fill string
	// Path formats the path data.
	Path SVGOptions
}

// AnimationOptions control animated SVG output.
type AnimationOptions struct {
	StyleOptions
	// Duration of one full cycle through all frames. Zero means
	// DefaultDuration.
	Duration time.Duration
}

func (o StyleOptions) viewBox() Rect {
	if o.ViewBox == (Rect{}) {
		return DrawingSpace
	}
	return o.ViewBox
}

func (o StyleOptions) fill() string {
	if o.Fill == "" {
		return DefaultFill
	}
	return o.Fill
}

// KeyTimes returns the k+1 evenly spaced time fractions i/k, from 0 to 1, at
// which k frames and the loop back to the first frame are shown. It returns
// nil for k < 1.
func KeyTimes(k int) []float64 {
	if k < 1 {
		return nil
	}
	out := make([]float64, k+1)
	for i := range out {
		out[i] = float64(i) / float64(k)
	}
	return out
}

// errWriter remembers the first error of a sequence of writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteStaticSVG writes an SVG document showing a single path.
func WriteStaticSVG(w io.Writer, path BezPath, opts StyleOptions) error {
	ew := &errWriter{w: w}
	ew.printf(`<svg viewBox="%s" xmlns="http://www.w3.org/2000/svg"><path d="%s" fill="%s"></path></svg>`,
		opts.viewBox().ViewBox(), path.SVG(opts.Path), html.EscapeString(opts.fill()))
	return ew.err
}

// WriteAnimatedSVG writes a self-contained SVG document that morphs through
// frames in order and loops back to the first frame. The path's d attribute
// is animated with one value per frame plus a final copy of the first frame,
// at the times given by [KeyTimes].
func WriteAnimatedSVG(w io.Writer, frames Frames, opts AnimationOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	data := frames.PathData(opts.Path)
	values := strings.Join(append(data, data[0]), "; ")

	times := KeyTimes(len(frames))
	keyTimes := make([]string, len(times))
	for i, t := range times {
		keyTimes[i] = strconv.FormatFloat(t, 'f', 3, 64)
	}

	dur := opts.Duration
	if dur <= 0 {
		dur = DefaultDuration
	}

	ew := &errWriter{w: w}
	ew.printf("<svg viewBox=\"%s\" xmlns=\"http://www.w3.org/2000/svg\">\n", opts.viewBox().ViewBox())
	ew.printf("  <path fill=\"%s\" d=\"%s\">\n", html.EscapeString(opts.fill()), data[0])
	ew.printf("    <animate\n")
	ew.printf("      attributeName=\"d\"\n")
	ew.printf("      dur=\"%ss\"\n", strconv.FormatFloat(dur.Seconds(), 'f', -1, 64))
	ew.printf("      repeatCount=\"indefinite\"\n")
	ew.printf("      keyTimes=\"%s\"\n", strings.Join(keyTimes, "; "))
	ew.printf("      values=\"%s\">\n", values)
	ew.printf("    </animate>\n")
	ew.printf("  </path>\n")
	ew.printf("</svg>\n")
	return ew.err
}

// WriteCSSKeyframes writes a CSS @keyframes rule that animates the d property
// through frames. Frame i is placed at round(100·i/k) percent and the rule
// closes with the first frame at 100%. An empty name means
// DefaultKeyframesName.
func WriteCSSKeyframes(w io.Writer, name string, frames Frames, opts SVGOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if name == "" {
		name = DefaultKeyframesName
	}
	data := frames.PathData(opts)
	step := 100 / float64(len(frames))

	ew := &errWriter{w: w}
	ew.printf("@keyframes %s {\n", name)
	for i, d := range data {
		ew.printf("  %d%% { d: %q; }\n", int(math.Floor(step*float64(i)+0.5)), d)
	}
	ew.printf("  100%% { d: %q; }\n", data[0])
	ew.printf("}\n")
	return ew.err
}
