package zoneforge

import "math"

// Loop is a closed cyclic chain of primitives: each primitive's end matches
// the next primitive's start within the snap tolerance, and the last
// primitive returns to the first primitive's start. Primitives are stored
// oriented in traversal order (reversed copies where the walk went against
// the primitive's own direction).
//
// Winding direction is whatever the traversal produced; nothing downstream
// assumes an orientation.
type Loop struct {
	Primitives []Primitive
}

// Closes reports whether consecutive endpoints match and the traversal
// returns to its starting point, all within eps.
func (l Loop) Closes(eps float64) bool {
	if len(l.Primitives) == 0 {
		return false
	}
	first, _ := l.Primitives[0].Endpoints()
	prev := first
	for _, p := range l.Primitives {
		start, end := p.Endpoints()
		if !start.Eq(prev, eps) {
			return false
		}
		prev = end
	}
	return prev.Eq(first, eps)
}

// -------------------------------------------------------------------
// Vertex table
// -------------------------------------------------------------------

// vertexKey is a coordinate pair rounded to the snap grid. Endpoints whose
// coordinates agree within the snap tolerance collapse to the same key.
type vertexKey struct {
	X, Y int64
}

// vertexTable canonicalizes raw floating-point endpoints into integer
// vertex ids by snap-bucketing coordinates at eps resolution. The arena
// keeps the first point seen for each id for debugging.
type vertexTable struct {
	eps    float64
	ids    map[vertexKey]int
	points []Point
}

func newVertexTable(eps float64) *vertexTable {
	return &vertexTable{eps: eps, ids: make(map[vertexKey]int)}
}

// id returns the canonical vertex id for p, allocating one on first sight.
func (t *vertexTable) id(p Point) int {
	key := vertexKey{
		X: int64(math.Round(p.X / t.eps)),
		Y: int64(math.Round(p.Y / t.eps)),
	}
	if id, ok := t.ids[key]; ok {
		return id
	}
	id := len(t.points)
	t.ids[key] = id
	t.points = append(t.points, p)
	return id
}

// -------------------------------------------------------------------
// Loop detection
// -------------------------------------------------------------------

// graphEdge is one open primitive in the connectivity multigraph, oriented
// from its own start vertex v0 to its end vertex v1.
type graphEdge struct {
	prim    Primitive
	v0, v1  int
	visited bool
}

// DetectLoops reconstructs the closed loops formed by the primitives.
//
// Endpoints are snapped into canonical vertices, the primitives become the
// edges of an undirected multigraph, and the graph is walked: starting from
// any unvisited edge, the walk follows the unique unvisited edge out of each
// vertex until it returns to its starting vertex (one Loop) or gets stuck.
// A walk is stuck at a dead end (no unvisited edge) or at a branch vertex
// (more than one unvisited edge); every primitive visited on a stuck walk is
// discarded and counted, never retried. Branching topology is deliberately
// unsupported: discarding honestly beats guessing.
//
// Circles are closed on their own and each yields a single-primitive Loop.
//
// The returned loops are in discovery order; discarded is the number of
// primitives dropped.
func DetectLoops(primitives []Primitive, opts ...Option) (loops []Loop, discarded int) {
	cfg := applyOptions(opts)
	if len(primitives) == 0 {
		return nil, 0
	}

	verts := newVertexTable(cfg.snapEps)
	var edges []graphEdge
	adjacency := make(map[int][]int) // vertex id -> incident edge indices

	for _, p := range primitives {
		if c, ok := p.(Circle); ok {
			loops = append(loops, Loop{Primitives: []Primitive{c}})
			continue
		}
		start, end := p.Endpoints()
		e := graphEdge{prim: p, v0: verts.id(start), v1: verts.id(end)}
		idx := len(edges)
		edges = append(edges, e)
		adjacency[e.v0] = append(adjacency[e.v0], idx)
		if e.v1 != e.v0 {
			adjacency[e.v1] = append(adjacency[e.v1], idx)
		}
	}

	Logger().Debug("connectivity graph built",
		"vertices", len(verts.points), "edges", len(edges), "circles", len(loops))

	for start := range edges {
		if edges[start].visited {
			continue
		}
		loop, n := walkFrom(edges, adjacency, start)
		if n > 0 {
			discarded += n
			cfg.diag.record(DiagDiscardedPrimitive,
				"%d primitive(s) on an open or branching chain", n)
			continue
		}
		loops = append(loops, loop)
	}

	if discarded > 0 {
		Logger().Warn("primitives discarded during loop detection", "count", discarded)
	}
	Logger().Info("loop detection complete",
		"primitives", len(primitives), "loops", len(loops), "discarded", discarded)
	return loops, discarded
}

// walkFrom traverses the graph starting with edge start. On closure it
// returns the loop and zero; on a dead end or branch it returns the number
// of primitives consumed by the abortive walk (all left marked visited so
// they are never retried).
func walkFrom(edges []graphEdge, adjacency map[int][]int, start int) (Loop, int) {
	e := &edges[start]
	e.visited = true
	chain := []Primitive{e.prim}
	home := e.v0
	cur := e.v1

	for cur != home {
		var out []int
		for _, idx := range adjacency[cur] {
			if !edges[idx].visited {
				out = append(out, idx)
			}
		}
		if len(out) == 0 {
			// Dead end.
			return Loop{}, len(chain)
		}
		if len(out) > 1 {
			// Branch vertex: more than one way out. The competing edges
			// are part of the same unresolved topology; discard them too
			// so the ambiguity is never retried from another start.
			for _, idx := range out {
				edges[idx].visited = true
			}
			return Loop{}, len(chain) + len(out)
		}

		ne := &edges[out[0]]
		ne.visited = true
		if ne.v0 == cur {
			chain = append(chain, ne.prim)
			cur = ne.v1
		} else {
			chain = append(chain, ne.prim.Reversed())
			cur = ne.v0
		}
	}

	return Loop{Primitives: chain}, 0
}
