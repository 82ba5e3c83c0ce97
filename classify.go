package zoneforge

import "sort"

// ZoneKind classifies a fillable region by its hole count.
type ZoneKind int

const (
	// ZoneSimple is a plain outline with no holes.
	ZoneSimple ZoneKind = iota

	// ZoneRing is an outline with exactly one directly nested hole.
	ZoneRing

	// ZoneMultiHole is an outline with more than one directly nested hole.
	ZoneMultiHole
)

// String returns the user-facing name of the kind.
func (k ZoneKind) String() string {
	switch k {
	case ZoneSimple:
		return "simple"
	case ZoneRing:
		return "ring"
	case ZoneMultiHole:
		return "multi-hole"
	default:
		return "unknown"
	}
}

// Zone is a classified fillable region: one outline loop plus its directly
// nested hole loops. Invariant: len(Holes) == 0 iff Kind == ZoneSimple,
// len(Holes) == 1 iff Kind == ZoneRing, len(Holes) > 1 iff Kind ==
// ZoneMultiHole.
type Zone struct {
	Outline Loop
	Holes   []Loop
	Kind    ZoneKind
}

// containmentNode is one loop in the nesting forest. parent is the index of
// the tightest enclosing loop, or -1 for roots.
type containmentNode struct {
	loop     Loop
	poly     Polygon
	parent   int
	children []int
}

// Classify approximates every loop to a polygon with approx, builds the
// containment forest and classifies each root into a Zone.
//
// Containment follows the tightest-enclosing-loop rule: a loop's parent is
// the smallest-area loop that contains it, which resolves multiple
// concentric candidates. Loops with near-zero area are dropped with a
// DegenerateLoop diagnostic. Loops nested more than two levels deep (holes
// of holes) are unsupported: the deeper level is dropped with an
// UnsupportedNesting diagnostic and the root's classification is kept.
//
// Classification is deterministic: the same loop set always yields the same
// zones in the same order (roots ordered by descending outline area).
func Classify(loops []Loop, approx *Approximator, opts ...Option) []Zone {
	cfg := applyOptions(opts)
	if approx == nil {
		approx = NewApproximator(cfg.arcResolution)
		approx.AreaEps = cfg.areaEps
		approx.SnapEps = cfg.snapEps
		approx.Diag = cfg.diag
	}

	// Flatten and drop degenerates up front.
	nodes := make([]containmentNode, 0, len(loops))
	for i, l := range loops {
		poly := approximateLoop(l, approx)
		if poly.Area() < cfg.areaEps {
			cfg.diag.record(DiagDegenerateLoop,
				"loop %d has near-zero area %.3g, dropped", i, poly.Area())
			Logger().Warn("degenerate loop dropped", "loop", i, "area", poly.Area())
			continue
		}
		nodes = append(nodes, containmentNode{loop: l, poly: poly, parent: -1})
	}

	// Sort by descending area so the tightest enclosing loop of node i is
	// the highest-index j < i that contains it: a single linear scan per
	// loop, no recursion.
	sort.SliceStable(nodes, func(a, b int) bool {
		return nodes[a].poly.Area() > nodes[b].poly.Area()
	})
	for i := range nodes {
		for j := i - 1; j >= 0; j-- {
			if nodes[j].poly.Contains(nodes[i].poly) {
				nodes[i].parent = j
				nodes[j].children = append(nodes[j].children, i)
				break
			}
		}
	}

	var zones []Zone
	for _, n := range nodes {
		if n.parent != -1 {
			continue
		}
		// Output index of the zone this root becomes; earlier non-root
		// nodes make it differ from the node index.
		zoneIdx := len(zones)
		zone := Zone{Outline: n.loop}
		for _, c := range n.children {
			zone.Holes = append(zone.Holes, nodes[c].loop)
			// Anything nested inside a hole is a third level or deeper.
			pending := append([]int(nil), nodes[c].children...)
			for len(pending) > 0 {
				d := pending[len(pending)-1]
				pending = append(pending[:len(pending)-1], nodes[d].children...)
				cfg.diag.record(DiagUnsupportedNesting,
					"loop nested inside a hole of zone %d, dropped", zoneIdx)
				Logger().Warn("unsupported hole-of-hole nesting, deeper level dropped", "zone", zoneIdx)
			}
		}
		switch len(zone.Holes) {
		case 0:
			zone.Kind = ZoneSimple
		case 1:
			zone.Kind = ZoneRing
		default:
			zone.Kind = ZoneMultiHole
		}
		zones = append(zones, zone)
	}

	Logger().Info("classification complete",
		"loops", len(loops), "zones", len(zones))
	return zones
}
