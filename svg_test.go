package blob

import (
	"errors"
	"slices"
	"testing"
)

const squareBlob = "M100.00,20.00 " +
	"C126.67,20.00 180.00,73.33 180.00,100.00 " +
	"C180.00,126.67 126.67,180.00 100.00,180.00 " +
	"C73.33,180.00 20.00,126.67 20.00,100.00 " +
	"C20.00,73.33 73.33,20.00 100.00,20.00 Z"

func TestSVGBlob(t *testing.T) {
	path, err := GenerateBlob(4, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, squareBlob, path.SVG(PathData))
}

func TestSVGFixedSourceIsStable(t *testing.T) {
	render := func() string {
		path, err := GenerateBlob(9, 35, WithSource(&seq{vals: []float64{0.3, 0.7, 0.05, 0.95}}))
		if err != nil {
			t.Fatal(err)
		}
		return path.SVG(PathData)
	}
	want := render()
	for range 5 {
		diff(t, want, render())
	}
}

func TestSVGPrecision(t *testing.T) {
	path := BezPath{
		MoveTo(Pt(10, 10.5)),
		LineTo(Pt(-0.001, 1.0/3)),
		CubicTo(Pt(1, 2), Pt(3, 4), Pt(5.126, 6)),
		ClosePath(),
	}
	tests := []struct {
		opts SVGOptions
		want string
	}{
		{SVGOptions{}, "M10,10.5 L-0.001,0.3333333333333333 C1,2 3,4 5.126,6 Z"},
		{SVGOptions{MaxPrecision: 2}, "M10,10.5 L0,0.33 C1,2 3,4 5.13,6 Z"},
		{SVGOptions{MaxPrecision: 2, Fixed: true}, "M10.00,10.50 L0.00,0.33 C1.00,2.00 3.00,4.00 5.13,6.00 Z"},
	}
	for _, tt := range tests {
		diff(t, tt.want, path.SVG(tt.opts))
	}
}

func TestSVGSingle(t *testing.T) {
	var path BezPath
	path.MoveTo(Pt(10, 10))
	path.CubicTo(Pt(20, 20), Pt(30, 30), Pt(40, 40))
	diff(t, "M10,10 C20,20 30,30 40,40", path.SVG(SVGOptions{}))
}

type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(b), nil
}

func TestWriteSVGError(t *testing.T) {
	path := BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 1)), ClosePath()}
	err := WriteSVG(&failingWriter{n: 1}, slices.Values(path), SVGOptions{})
	if !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}
