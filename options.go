package zoneforge

// Option configures a pipeline call (DetectLoops, Classify, CreateZones).
//
// Example:
//
//	// Default tolerances, coarser arcs:
//	zones, report := zoneforge.CreateZones(prims, settings,
//	    zoneforge.WithArcResolution(32))
//
//	// Collect machine-readable diagnostics for the summary dialog:
//	var diag zoneforge.Diagnostics
//	zones, report := zoneforge.CreateZones(prims, settings,
//	    zoneforge.WithDiagnostics(&diag))
type Option func(*config)

// config holds the per-call pipeline configuration.
type config struct {
	arcResolution int
	snapEps       float64
	areaEps       float64
	diag          *Diagnostics
}

// defaultConfig returns the default pipeline configuration.
func defaultConfig() config {
	return config{
		arcResolution: DefaultArcSegments,
		snapEps:       SnapEps,
		areaEps:       AreaEps,
		diag:          nil, // discard diagnostics unless asked to collect
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithArcResolution sets the angular resolution, in chord segments per full
// 360° revolution, used when flattening arcs and circles. Values below 1
// are ignored.
func WithArcResolution(segmentsPer360 int) Option {
	return func(c *config) {
		if segmentsPer360 >= 1 {
			c.arcResolution = segmentsPer360
		}
	}
}

// WithSnapEpsilon sets the endpoint-coincidence tolerance in millimeters.
// Values at or below zero are ignored.
func WithSnapEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.snapEps = eps
		}
	}
}

// WithAreaEpsilon sets the degenerate/zero-area tolerance.
// Values at or below zero are ignored.
func WithAreaEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.areaEps = eps
		}
	}
}

// WithDiagnostics directs recoverable-condition events (degenerate arcs,
// discarded primitives, dropped loops, unsupported nesting) into d.
func WithDiagnostics(d *Diagnostics) Option {
	return func(c *config) {
		c.diag = d
	}
}
