package zoneforge

// CreateZones runs the full pipeline for one user action: detect the closed
// loops formed by the primitives, classify them into zones and build the
// finalized outline+holes records with the given settings attached.
//
// The call is synchronous, stateless and side-effect-free over its input:
// everything is recomputed from scratch, nothing is cached. An empty
// primitive set returns an empty result immediately; bad geometry inside a
// non-empty set degrades to a partial result with the drops reflected in
// the Report and in the optional Diagnostics recorder (WithDiagnostics).
func CreateZones(primitives []Primitive, settings Settings, opts ...Option) ([]FinalizedZone, Report) {
	if len(primitives) == 0 {
		return nil, Report{}
	}
	cfg := applyOptions(opts)

	approx := NewApproximator(cfg.arcResolution)
	approx.AreaEps = cfg.areaEps
	approx.SnapEps = cfg.snapEps
	approx.Diag = cfg.diag

	loops, discarded := DetectLoops(primitives, opts...)
	Logger().Info("pipeline: loops detected",
		"primitives", len(primitives), "loops", len(loops), "discarded", discarded)
	if len(loops) == 0 {
		return nil, Report{}
	}

	zones := Classify(loops, approx, opts...)
	if len(zones) == 0 {
		return nil, Report{}
	}

	return BuildAll(zones, settings, approx)
}
