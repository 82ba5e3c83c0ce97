package zoneforge

import "fmt"

// DiagKind identifies a recoverable condition reported by the pipeline.
// None of these abort a batch; they are counted and the affected geometry
// is dropped or approximated as documented per kind.
type DiagKind int

const (
	// DiagDegenerateArc reports a three-point arc whose points are
	// collinear; it was approximated as a straight segment.
	DiagDegenerateArc DiagKind = iota

	// DiagDiscardedPrimitive reports a primitive dropped by the loop
	// detector (dead end or branch vertex).
	DiagDiscardedPrimitive

	// DiagDegenerateLoop reports a closed loop whose polygon area is
	// below the area tolerance; it was dropped before classification.
	DiagDegenerateLoop

	// DiagUnsupportedNesting reports a loop nested more than two levels
	// deep (a hole of a hole); the deeper level was dropped.
	DiagUnsupportedNesting
)

// String returns a short machine-friendly name for the kind.
func (k DiagKind) String() string {
	switch k {
	case DiagDegenerateArc:
		return "degenerate-arc"
	case DiagDiscardedPrimitive:
		return "discarded-primitive"
	case DiagDegenerateLoop:
		return "degenerate-loop"
	case DiagUnsupportedNesting:
		return "unsupported-nesting"
	default:
		return fmt.Sprintf("diag(%d)", int(k))
	}
}

// Diagnostic is a single recorded event.
type Diagnostic struct {
	Kind   DiagKind
	Detail string
}

// Diagnostics collects recoverable-condition events across a pipeline run.
// The zero value is ready to use. A nil *Diagnostics is a valid recorder
// that discards everything, so callers who don't care pass nothing.
//
// Diagnostics is not safe for concurrent use; the pipeline is synchronous.
type Diagnostics struct {
	events []Diagnostic
	counts map[DiagKind]int
}

// record appends an event. Safe to call on a nil receiver.
func (d *Diagnostics) record(kind DiagKind, format string, args ...any) {
	if d == nil {
		return
	}
	if d.counts == nil {
		d.counts = make(map[DiagKind]int)
	}
	d.counts[kind]++
	d.events = append(d.events, Diagnostic{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

// Count returns how many events of the given kind were recorded.
func (d *Diagnostics) Count(kind DiagKind) int {
	if d == nil {
		return 0
	}
	return d.counts[kind]
}

// Total returns the total number of recorded events.
func (d *Diagnostics) Total() int {
	if d == nil {
		return 0
	}
	return len(d.events)
}

// Events returns the recorded events in order.
func (d *Diagnostics) Events() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.events
}
