package zoneforge

import (
	"strings"
	"testing"
)

func classifySegments(t *testing.T, prims []Primitive, opts ...Option) []Zone {
	t.Helper()
	loops, discarded := DetectLoops(prims, opts...)
	if discarded != 0 {
		t.Fatalf("unexpected discards: %d", discarded)
	}
	return Classify(loops, nil, opts...)
}

func TestClassify_SimpleSquare(t *testing.T) {
	zones := classifySegments(t, squareSegments(0, 0, 10))
	if len(zones) != 1 {
		t.Fatalf("zones = %d, want 1", len(zones))
	}
	z := zones[0]
	if z.Kind != ZoneSimple {
		t.Errorf("kind = %v, want simple", z.Kind)
	}
	if len(z.Holes) != 0 {
		t.Errorf("holes = %d, want 0", len(z.Holes))
	}
}

func TestClassify_Ring(t *testing.T) {
	// Outer 10×10 square with a concentric 5×5 square: one ring zone.
	prims := append(squareSegments(0, 0, 10), squareSegments(2.5, 2.5, 5)...)
	zones := classifySegments(t, prims)
	if len(zones) != 1 {
		t.Fatalf("zones = %d, want 1", len(zones))
	}
	z := zones[0]
	if z.Kind != ZoneRing {
		t.Errorf("kind = %v, want ring", z.Kind)
	}
	if len(z.Holes) != 1 {
		t.Fatalf("holes = %d, want 1", len(z.Holes))
	}
	// The outline must be the bigger loop.
	outline := approximateLoop(z.Outline, NewApproximator(64))
	hole := approximateLoop(z.Holes[0], NewApproximator(64))
	if outline.Area() <= hole.Area() {
		t.Errorf("outline area %v not larger than hole area %v", outline.Area(), hole.Area())
	}
}

func TestClassify_MultiHole(t *testing.T) {
	// Outer 10×10 square with two disjoint 2×2 squares inside.
	prims := append(squareSegments(0, 0, 10), squareSegments(1, 1, 2)...)
	prims = append(prims, squareSegments(6, 6, 2)...)
	zones := classifySegments(t, prims)
	if len(zones) != 1 {
		t.Fatalf("zones = %d, want 1", len(zones))
	}
	z := zones[0]
	if z.Kind != ZoneMultiHole {
		t.Errorf("kind = %v, want multi-hole", z.Kind)
	}
	if len(z.Holes) != 2 {
		t.Errorf("holes = %d, want 2", len(z.Holes))
	}
}

func TestClassify_TwoDisjointSimpleZones(t *testing.T) {
	prims := append(squareSegments(0, 0, 10), squareSegments(20, 0, 10)...)
	zones := classifySegments(t, prims)
	if len(zones) != 2 {
		t.Fatalf("zones = %d, want 2", len(zones))
	}
	for i, z := range zones {
		if z.Kind != ZoneSimple {
			t.Errorf("zone %d kind = %v, want simple", i, z.Kind)
		}
	}
}

func TestClassify_CircleHole(t *testing.T) {
	prims := append(squareSegments(0, 0, 10),
		Circle{Center: Pt(5, 5), Radius: 2})
	zones := classifySegments(t, prims)
	if len(zones) != 1 {
		t.Fatalf("zones = %d, want 1", len(zones))
	}
	if zones[0].Kind != ZoneRing {
		t.Errorf("kind = %v, want ring", zones[0].Kind)
	}
}

func TestClassify_TightestEnclosingParent(t *testing.T) {
	// Three concentric squares: the middle one is the innermost's parent,
	// not the outermost. The innermost is therefore a third level and is
	// dropped; the outer pair still classifies as a ring.
	prims := append(squareSegments(0, 0, 12), squareSegments(2, 2, 8)...)
	prims = append(prims, squareSegments(4, 4, 4)...)

	var diag Diagnostics
	zones := classifySegments(t, prims, WithDiagnostics(&diag))
	if len(zones) != 1 {
		t.Fatalf("zones = %d, want 1", len(zones))
	}
	z := zones[0]
	if z.Kind != ZoneRing {
		t.Errorf("kind = %v, want ring (deep nesting must not disturb the root)", z.Kind)
	}
	if len(z.Holes) != 1 {
		t.Errorf("holes = %d, want 1", len(z.Holes))
	}
	if diag.Count(DiagUnsupportedNesting) != 1 {
		t.Errorf("UnsupportedNesting count = %d, want 1", diag.Count(DiagUnsupportedNesting))
	}
}

func TestClassify_NestingDiagnosticNamesOutputZone(t *testing.T) {
	// Zone 0 is a plain ring; zone 1 carries the unsupported third level.
	// The diagnostic must name the output zone index, not the root's
	// position in the area-sorted node order (which is 2 here, after the
	// first zone's hole).
	prims := append(squareSegments(0, 0, 20), squareSegments(2, 2, 10)...)
	prims = append(prims, squareSegments(40, 0, 5)...)
	prims = append(prims, squareSegments(41, 1, 3)...)
	prims = append(prims, squareSegments(41.5, 1.5, 1)...)

	var diag Diagnostics
	zones := classifySegments(t, prims, WithDiagnostics(&diag))
	if len(zones) != 2 {
		t.Fatalf("zones = %d, want 2", len(zones))
	}
	events := diag.Events()
	if len(events) != 1 || events[0].Kind != DiagUnsupportedNesting {
		t.Fatalf("events = %v, want one UnsupportedNesting", events)
	}
	if !strings.Contains(events[0].Detail, "zone 1") {
		t.Errorf("diagnostic %q should name zone 1", events[0].Detail)
	}
}

func TestClassify_DegenerateLoopDropped(t *testing.T) {
	// A zero-length segment forms a self-loop with no area.
	prims := append(squareSegments(0, 0, 10),
		LineSegment{Start: Pt(50, 50), End: Pt(50, 50)})

	var diag Diagnostics
	loops, _ := DetectLoops(prims, WithDiagnostics(&diag))
	zones := Classify(loops, nil, WithDiagnostics(&diag))
	if len(zones) != 1 {
		t.Fatalf("zones = %d, want 1", len(zones))
	}
	if diag.Count(DiagDegenerateLoop) != 1 {
		t.Errorf("DegenerateLoop count = %d, want 1", diag.Count(DiagDegenerateLoop))
	}
}

func TestClassify_Idempotent(t *testing.T) {
	prims := append(squareSegments(0, 0, 10), squareSegments(2.5, 2.5, 5)...)
	prims = append(prims, squareSegments(20, 0, 4)...)
	loops, _ := DetectLoops(prims)

	first := Classify(loops, nil)
	second := Classify(loops, nil)
	if len(first) != len(second) {
		t.Fatalf("zone counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind {
			t.Errorf("zone %d kind differs: %v vs %v", i, first[i].Kind, second[i].Kind)
		}
		if len(first[i].Holes) != len(second[i].Holes) {
			t.Errorf("zone %d hole count differs: %d vs %d",
				i, len(first[i].Holes), len(second[i].Holes))
		}
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	if zones := Classify(nil, nil); zones != nil {
		t.Errorf("Classify(nil) = %v, want nil", zones)
	}
}

func TestZoneKind_String(t *testing.T) {
	tests := []struct {
		kind ZoneKind
		want string
	}{
		{ZoneSimple, "simple"},
		{ZoneRing, "ring"},
		{ZoneMultiHole, "multi-hole"},
		{ZoneKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ZoneKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
