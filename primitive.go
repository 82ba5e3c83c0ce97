package zoneforge

// Geometric tolerances shared across the pipeline. Both can be overridden
// per call with WithSnapEpsilon / WithAreaEpsilon.
const (
	// SnapEps is the point-coincidence tolerance in millimeters: endpoints
	// closer than this are treated as the same vertex.
	SnapEps = 1e-6

	// AreaEps is the tolerance for degenerate and zero-area tests
	// (collinear arcs, zero-area loops).
	AreaEps = 1e-9
)

// Primitive is one of the four canonical graphic primitives a board
// selection reduces to: LineSegment, Arc, Circle or Bezier.
//
// Primitives are immutable values. The interface is sealed; the loop
// detector and approximator switch exhaustively over the four variants.
type Primitive interface {
	// Endpoints returns the traversal start and end of the primitive.
	// A Circle is self-closed and returns its seam point twice.
	Endpoints() (start, end Point)

	// Reversed returns a copy traversed in the opposite direction.
	Reversed() Primitive

	isPrimitive()
}

// LineSegment is a straight segment from Start to End.
type LineSegment struct {
	Start, End Point
}

func (l LineSegment) isPrimitive() {}

// Endpoints returns the segment endpoints.
func (l LineSegment) Endpoints() (Point, Point) { return l.Start, l.End }

// Reversed returns the segment with endpoints swapped.
func (l LineSegment) Reversed() Primitive { return LineSegment{Start: l.End, End: l.Start} }

// Arc is a circular arc defined by three points: it starts at Start, passes
// through Mid and ends at End. Center and radius are not stored; the
// approximator reconstructs them from the circumcircle of the three points.
type Arc struct {
	Start, Mid, End Point
}

func (a Arc) isPrimitive() {}

// Endpoints returns the arc endpoints (Mid is interior).
func (a Arc) Endpoints() (Point, Point) { return a.Start, a.End }

// Reversed returns the arc traversed end to start. The interior point is
// unchanged, so the reversed arc lies on the same circle.
func (a Arc) Reversed() Primitive { return Arc{Start: a.End, Mid: a.Mid, End: a.Start} }

// Circle is a full circle. It forms a closed loop on its own and never
// connects to other primitives.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) isPrimitive() {}

// Endpoints returns the circle's seam point (Center + Radius along +X)
// twice: a circle begins and ends at the same place.
func (c Circle) Endpoints() (Point, Point) {
	seam := Point{X: c.Center.X + c.Radius, Y: c.Center.Y}
	return seam, seam
}

// Reversed returns the circle unchanged; a full circle has no direction
// that matters for loop traversal.
func (c Circle) Reversed() Primitive { return c }

// Bezier is a cubic Bezier curve from Start to End with control points
// C1 and C2.
type Bezier struct {
	Start, C1, C2, End Point
}

func (b Bezier) isPrimitive() {}

// Endpoints returns the curve endpoints.
func (b Bezier) Endpoints() (Point, Point) { return b.Start, b.End }

// Reversed returns the curve traversed end to start (control points swap).
func (b Bezier) Reversed() Primitive {
	return Bezier{Start: b.End, C1: b.C2, C2: b.C1, End: b.Start}
}
