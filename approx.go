package zoneforge

import "math"

// DefaultArcSegments is the default angular resolution: chord segments per
// full 360° revolution when flattening arcs and circles.
const DefaultArcSegments = 64

// Approximator flattens curved primitives into polylines at a fixed angular
// resolution. It is stateless apart from its configuration and safe to reuse
// across calls.
type Approximator struct {
	// SegmentsPer360 is the number of chord segments used for a full
	// revolution. Partial arcs get a proportional share.
	SegmentsPer360 int

	// AreaEps is the collinearity tolerance for the three-point arc
	// circumcircle solve, and the zero-area tolerance applied to loop
	// polygons flattened through this approximator.
	AreaEps float64

	// SnapEps is the point-coincidence tolerance used when stitching
	// flattened primitives into one vertex ring and carried onto the
	// resulting polygons for their boundary tests.
	SnapEps float64

	// Diag receives DegenerateArc events. May be nil.
	Diag *Diagnostics
}

// NewApproximator creates an Approximator with the given resolution and
// default tolerances. Resolutions below 1 fall back to DefaultArcSegments.
func NewApproximator(segmentsPer360 int) *Approximator {
	if segmentsPer360 < 1 {
		segmentsPer360 = DefaultArcSegments
	}
	return &Approximator{
		SegmentsPer360: segmentsPer360,
		AreaEps:        AreaEps,
		SnapEps:        SnapEps,
	}
}

// Approximate flattens a primitive into an ordered polyline.
//
//   - LineSegment: the two endpoints, unchanged.
//   - Circle: SegmentsPer360 evenly spaced points; closed by implication,
//     the first point is not repeated at the end.
//   - Arc: chords along the reconstructed circumcircle; the exact input
//     start and end are always the first and last points so loop
//     connectivity with neighboring primitives is preserved.
//   - Bezier: fixed-step samples of the cubic, exact endpoints.
//
// No closing segment is ever added.
func (a *Approximator) Approximate(p Primitive) []Point {
	switch p := p.(type) {
	case LineSegment:
		return []Point{p.Start, p.End}
	case Circle:
		return a.approximateCircle(p)
	case Arc:
		return a.approximateArc(p)
	case Bezier:
		return a.approximateBezier(p)
	default:
		// Sealed interface; unreachable for well-formed input.
		start, end := p.Endpoints()
		return []Point{start, end}
	}
}

// approximateCircle emits SegmentsPer360 points counterclockwise from the
// seam at angle 0.
func (a *Approximator) approximateCircle(c Circle) []Point {
	n := a.SegmentsPer360
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Point{
			X: c.Center.X + c.Radius*math.Cos(angle),
			Y: c.Center.Y + c.Radius*math.Sin(angle),
		})
	}
	return pts
}

// circumcenter solves the two perpendicular-bisector equations for the
// circle through three points. ok is false when the points are collinear
// within areaEps (the system's determinant vanishes and the radius is
// effectively infinite).
func circumcenter(p1, p2, p3 Point, areaEps float64) (center Point, ok bool) {
	// d is twice the doubled signed area of the triangle p1 p2 p3.
	d := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(d) < areaEps {
		return Point{}, false
	}
	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y
	s3 := p3.X*p3.X + p3.Y*p3.Y
	return Point{
		X: (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / d,
		Y: (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / d,
	}, true
}

// approximateArc reconstructs the supporting circle from the three defining
// points and emits chords along the sweep that passes through Mid.
func (a *Approximator) approximateArc(arc Arc) []Point {
	center, ok := circumcenter(arc.Start, arc.Mid, arc.End, a.AreaEps)
	if !ok {
		a.Diag.record(DiagDegenerateArc,
			"collinear arc (%.6g,%.6g)-(%.6g,%.6g)-(%.6g,%.6g) approximated as segment",
			arc.Start.X, arc.Start.Y, arc.Mid.X, arc.Mid.Y, arc.End.X, arc.End.Y)
		Logger().Warn("degenerate arc approximated as straight segment",
			"start", arc.Start, "mid", arc.Mid, "end", arc.End)
		return []Point{arc.Start, arc.End}
	}

	radius := arc.Start.Distance(center)
	a0 := math.Atan2(arc.Start.Y-center.Y, arc.Start.X-center.X)
	aMid := math.Atan2(arc.Mid.Y-center.Y, arc.Mid.X-center.X)
	a1 := math.Atan2(arc.End.Y-center.Y, arc.End.X-center.X)

	// Of the two arcs between start and end, take the one that passes
	// through mid: if mid's counterclockwise offset from start exceeds
	// end's, the counterclockwise arc misses mid and the sweep is
	// clockwise (negative).
	ccwMid := normalizeAngle(aMid - a0)
	ccwEnd := normalizeAngle(a1 - a0)
	sweep := ccwEnd
	if ccwMid > ccwEnd {
		sweep = ccwEnd - 2*math.Pi
	}

	segs := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * float64(a.SegmentsPer360)))
	if segs < 1 {
		segs = 1
	}

	pts := make([]Point, 0, segs+1)
	pts = append(pts, arc.Start)
	for i := 1; i < segs; i++ {
		angle := a0 + sweep*float64(i)/float64(segs)
		pts = append(pts, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	// The exact input endpoint, never regenerated from the angle.
	pts = append(pts, arc.End)
	return pts
}

// normalizeAngle maps an angle to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// approximateBezier samples the cubic at fixed parameter steps. The step
// count scales with the angular resolution so curve fidelity follows the
// arc setting.
func (a *Approximator) approximateBezier(b Bezier) []Point {
	steps := a.SegmentsPer360 / 8
	if steps < 2 {
		steps = 2
	}
	pts := make([]Point, 0, steps+1)
	pts = append(pts, b.Start)
	for i := 1; i < steps; i++ {
		pts = append(pts, evalCubic(b, float64(i)/float64(steps)))
	}
	pts = append(pts, b.End)
	return pts
}

// evalCubic evaluates the cubic Bezier at parameter t in Bernstein form.
func evalCubic(b Bezier, t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*b.Start.X + 3*mt2*t*b.C1.X + 3*mt*t2*b.C2.X + t3*b.End.X,
		Y: mt3*b.Start.Y + 3*mt2*t*b.C1.Y + 3*mt*t2*b.C2.Y + t3*b.End.Y,
	}
}
