package zoneforge

// Default zone settings, matching the tool's stock configuration.
const (
	// DefaultLayer is the copper layer new zones are created on.
	DefaultLayer = "F.Cu"

	// DefaultClearanceMM is the default zone clearance in millimeters.
	DefaultClearanceMM = 0.5

	// DefaultMinThicknessMM is the default minimum copper width in
	// millimeters.
	DefaultMinThicknessMM = 0.25
)

// Settings is the user-chosen zone configuration. The builder attaches it
// verbatim: none of these values affect the geometry at this layer, they are
// pass-through metadata for the document writer that commits the zone.
type Settings struct {
	// Layer is the target copper layer identifier, e.g. "F.Cu".
	Layer string

	// ClearanceMM is the zone clearance distance in millimeters.
	ClearanceMM float64

	// MinThicknessMM is the minimum copper thickness in millimeters.
	MinThicknessMM float64
}

// DefaultSettings returns the stock zone settings.
func DefaultSettings() Settings {
	return Settings{
		Layer:          DefaultLayer,
		ClearanceMM:    DefaultClearanceMM,
		MinThicknessMM: DefaultMinThicknessMM,
	}
}

// SkipReason explains why a single zone was not built. The batch always
// continues past a skipped zone.
type SkipReason int

const (
	// SkipNone means the zone was built successfully.
	SkipNone SkipReason = iota

	// SkipDegenerateOutline means the outline approximated to fewer than
	// three points or to zero area.
	SkipDegenerateOutline

	// SkipHoleOutsideOutline means a hole was not fully inside the outline.
	SkipHoleOutsideOutline

	// SkipOverlappingHoles means two holes of the zone overlapped.
	SkipOverlappingHoles
)

// String returns a short machine-friendly name for the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipDegenerateOutline:
		return "degenerate-outline"
	case SkipHoleOutsideOutline:
		return "hole-outside-outline"
	case SkipOverlappingHoles:
		return "overlapping-holes"
	default:
		return "unknown"
	}
}

// FinalizedZone is the outline+holes record handed to the external document
// writer: approximated point rings plus the settings bundle.
type FinalizedZone struct {
	Outline  []Point
	Holes    [][]Point
	Kind     ZoneKind
	Settings Settings
}

// Report aggregates the outcome of a batch for user-facing reporting.
type Report struct {
	Simple    int
	Ring      int
	MultiHole int
	Skipped   int

	// Skips lists the reason for every skipped zone, in batch order.
	Skips []SkipReason
}

// Total returns the number of zones successfully built.
func (r Report) Total() int { return r.Simple + r.Ring + r.MultiHole }

// Build approximates a classified zone at the builder's resolution, attaches
// the settings and runs last-chance sanity checks. On success the skip
// reason is SkipNone; otherwise the returned zone is empty and the reason
// says why it was skipped.
//
// The checks: the outline must keep at least three points and non-zero
// area, every hole must be fully inside the outline, and no two holes may
// overlap. Hole checks are vertex-based, the same approximation used for
// classification. All tolerances come from the approximator, so per-call
// epsilon options apply here exactly as in detection and classification.
func Build(zone Zone, settings Settings, approx *Approximator) (FinalizedZone, SkipReason) {
	outline := approximateLoop(zone.Outline, approx)
	if len(outline.Points) < 3 || outline.Area() < approx.AreaEps {
		Logger().Warn("zone skipped", "reason", SkipDegenerateOutline)
		return FinalizedZone{}, SkipDegenerateOutline
	}

	holes := make([]Polygon, 0, len(zone.Holes))
	for _, h := range zone.Holes {
		hp := approximateLoop(h, approx)
		if !outline.Contains(hp) {
			Logger().Warn("zone skipped", "reason", SkipHoleOutsideOutline)
			return FinalizedZone{}, SkipHoleOutsideOutline
		}
		holes = append(holes, hp)
	}
	for i := range holes {
		for j := i + 1; j < len(holes); j++ {
			if polygonsOverlap(holes[i], holes[j]) {
				Logger().Warn("zone skipped", "reason", SkipOverlappingHoles)
				return FinalizedZone{}, SkipOverlappingHoles
			}
		}
	}

	fz := FinalizedZone{
		Outline:  outline.Points,
		Kind:     zone.Kind,
		Settings: settings,
	}
	for _, h := range holes {
		fz.Holes = append(fz.Holes, h.Points)
	}
	return fz, SkipNone
}

// polygonsOverlap reports whether either polygon has a vertex inside the
// other. Vertex-based, like the containment test; sufficient for
// non-self-intersecting board shapes.
func polygonsOverlap(a, b Polygon) bool {
	for _, pt := range b.Points {
		if a.ContainsPoint(pt) {
			return true
		}
	}
	for _, pt := range a.Points {
		if b.ContainsPoint(pt) {
			return true
		}
	}
	return false
}

// BuildAll builds every zone in the batch, never aborting on a bad one, and
// aggregates the per-kind success counts and skip reasons.
func BuildAll(zones []Zone, settings Settings, approx *Approximator) ([]FinalizedZone, Report) {
	var built []FinalizedZone
	var report Report
	for _, z := range zones {
		fz, skip := Build(z, settings, approx)
		if skip != SkipNone {
			report.Skipped++
			report.Skips = append(report.Skips, skip)
			continue
		}
		switch fz.Kind {
		case ZoneSimple:
			report.Simple++
		case ZoneRing:
			report.Ring++
		case ZoneMultiHole:
			report.MultiHole++
		}
		built = append(built, fz)
	}
	Logger().Info("zone build complete",
		"built", report.Total(), "skipped", report.Skipped)
	return built, report
}
