package zoneforge

import "math"

// -------------------------------------------------------------------
// Rect
// -------------------------------------------------------------------

// Rect is an axis-aligned bounding rectangle in board space.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// -------------------------------------------------------------------
// Polygon
// -------------------------------------------------------------------

// Polygon is the flattened approximation of a Loop: an ordered vertex ring,
// closed by implication (the last point connects back to the first). It is
// derived geometry used only for area and containment math and is never
// folded back into the Loop it came from.
type Polygon struct {
	Points []Point

	area   float64 // signed, cached at construction
	bounds Rect
	eps    float64 // boundary tolerance for ContainsPoint
}

// NewPolygon builds a Polygon from a vertex ring and caches its signed area
// and bounding box. The boundary tolerance defaults to SnapEps;
// approximateLoop overrides it with the configured epsilon.
func NewPolygon(points []Point) Polygon {
	p := Polygon{Points: points, eps: SnapEps}
	p.area = shoelace(points)
	if len(points) > 0 {
		p.bounds = NewRect(points[0], points[0])
		for _, pt := range points[1:] {
			p.bounds = p.bounds.Union(NewRect(pt, pt))
		}
	}
	return p
}

// shoelace computes the signed area of a closed vertex ring. The sign
// follows winding direction; callers that only need size take Abs.
func shoelace(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	sum := 0.0
	for i, a := range points {
		b := points[(i+1)%len(points)]
		sum += a.Cross(b)
	}
	return sum / 2
}

// SignedArea returns the shoelace area with its winding sign.
func (p Polygon) SignedArea() float64 { return p.area }

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 { return math.Abs(p.area) }

// Bounds returns the polygon's axis-aligned bounding box.
func (p Polygon) Bounds() Rect { return p.bounds }

// ContainsPoint reports whether pt lies inside the polygon, using a
// crossing-number (even-odd) test. Points on or within the polygon's snap
// tolerance of an edge count as inside, so shared boundary vertices do not
// flip the result.
func (p Polygon) ContainsPoint(pt Point) bool {
	if len(p.Points) < 3 || !p.bounds.Contains(pt) {
		return false
	}

	inside := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if distToSegment(pt, a, b) <= p.eps {
			return true
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			// X coordinate of the edge at pt's scanline.
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// distToSegment returns the distance from pt to the segment ab.
func distToSegment(pt, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return pt.Distance(a.Add(ab.Mul(t)))
}

// Contains reports whether p contains q: every vertex of q tests inside p
// and p's area is strictly larger. Vertex-only containment is an
// approximation that holds for non-self-intersecting board shapes.
func (p Polygon) Contains(q Polygon) bool {
	if p.Area() <= q.Area() {
		return false
	}
	// Quick reject: q cannot be inside p if its box sticks out.
	if !p.bounds.Contains(q.bounds.Min) || !p.bounds.Contains(q.bounds.Max) {
		return false
	}
	for _, pt := range q.Points {
		if !p.ContainsPoint(pt) {
			return false
		}
	}
	return true
}

// approximateLoop flattens every primitive of a loop in traversal order and
// concatenates the polylines into one vertex ring. Each junction point
// appears once: the first point of every polyline after the first is the
// previous polyline's last point, and a final point that closes back onto
// the ring start is dropped. Junction matching and the polygon's boundary
// tolerance both use the approximator's snap epsilon.
func approximateLoop(l Loop, approx *Approximator) Polygon {
	var points []Point
	for i, prim := range l.Primitives {
		poly := approx.Approximate(prim)
		if i > 0 && len(poly) > 0 && len(points) > 0 && poly[0].Eq(points[len(points)-1], approx.SnapEps) {
			poly = poly[1:]
		}
		points = append(points, poly...)
	}
	if len(points) > 1 && points[len(points)-1].Eq(points[0], approx.SnapEps) {
		points = points[:len(points)-1]
	}
	p := NewPolygon(points)
	p.eps = approx.SnapEps
	return p
}
