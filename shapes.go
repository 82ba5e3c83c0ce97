package zoneforge

// Helpers that reduce composite host-document shapes to the four canonical
// primitives. Extractors sit outside the core; these keep the pure-geometry
// part of that reduction next to the types it produces.

// RectangleSegments decomposes an axis-aligned rectangle, given by its
// top-left and bottom-right corners, into four connected line segments
// walked top-left → top-right → bottom-right → bottom-left.
func RectangleSegments(topLeft, bottomRight Point) []Primitive {
	topRight := Point{X: bottomRight.X, Y: topLeft.Y}
	bottomLeft := Point{X: topLeft.X, Y: bottomRight.Y}
	return []Primitive{
		LineSegment{Start: topLeft, End: topRight},
		LineSegment{Start: topRight, End: bottomRight},
		LineSegment{Start: bottomRight, End: bottomLeft},
		LineSegment{Start: bottomLeft, End: topLeft},
	}
}

// PolygonSegments decomposes a vertex ring into line segments, closing the
// ring from the last point back to the first. Zero-length edges (endpoints
// within SnapEps) are skipped so duplicated vertices from the host document
// don't produce degenerate segments. Rings with fewer than three points
// yield nothing.
func PolygonSegments(points []Point) []Primitive {
	if len(points) < 3 {
		return nil
	}
	segs := make([]Primitive, 0, len(points))
	for i, start := range points {
		end := points[(i+1)%len(points)]
		if start.Eq(end, SnapEps) {
			continue
		}
		segs = append(segs, LineSegment{Start: start, End: end})
	}
	return segs
}
