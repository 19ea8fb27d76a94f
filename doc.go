// Package blob generates smooth, organic blob shapes as closed Bézier paths
// and sequences of them for morphing animations.
//
// # Pipeline
//
// A blob starts as a [Ring]: complexity points at even angular steps around a
// center, each pushed in or out by a random amount of at most contrast units.
// [ClosedSpline] then threads a closed Catmull-Rom spline through the ring,
// expressed as one cubic Bézier per pair of adjacent points. The result is a
// [BezPath] of the form MoveTo, CubicTo…, ClosePath that passes exactly
// through every ring point and has continuous tangents everywhere, including
// where the loop closes.
//
// [Frames] repeats the pipeline to produce independent shapes for animation.
//
//	g := blob.NewGenerator(blob.WithSeed(42))
//	frames, err := g.Frames(blob.DefaultFrameCount, 6, 20)
//	if err != nil {
//		return err
//	}
//	return blob.WriteAnimatedSVG(os.Stdout, frames, blob.AnimationOptions{})
//
// # Drawing space
//
// Shapes live in [DrawingSpace], a 200×200 square with y pointing down. By
// default rings are centered at (100, 100) with a base radius of 80, see
// [WithCenter] and [WithRadius]. Index 0 of a ring points straight up and
// indices proceed clockwise.
//
// # Randomness
//
// All randomness comes from the [Source] a [Generator] was created with.
// [WithSeed] and [WithSource] make output reproducible; without them a
// generator seeds itself randomly. Package-level helpers such as
// [GenerateRing] create a fresh generator per call.
//
// # Output
//
// [BezPath.SVG] formats path data, [PathData] being the two-decimal format used
// for blobs. [WriteStaticSVG], [WriteAnimatedSVG] and [WriteCSSKeyframes]
// produce complete documents. The blobgen command wraps all of this.
package blob
