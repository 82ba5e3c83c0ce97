package zoneforge

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.arcResolution != DefaultArcSegments {
		t.Errorf("arcResolution = %d, want %d", cfg.arcResolution, DefaultArcSegments)
	}
	if cfg.snapEps != SnapEps {
		t.Errorf("snapEps = %v, want %v", cfg.snapEps, SnapEps)
	}
	if cfg.areaEps != AreaEps {
		t.Errorf("areaEps = %v, want %v", cfg.areaEps, AreaEps)
	}
	if cfg.diag != nil {
		t.Error("diagnostics should be discarded by default")
	}
}

func TestOptions_Apply(t *testing.T) {
	var diag Diagnostics
	cfg := applyOptions([]Option{
		WithArcResolution(128),
		WithSnapEpsilon(1e-4),
		WithAreaEpsilon(1e-7),
		WithDiagnostics(&diag),
	})
	if cfg.arcResolution != 128 {
		t.Errorf("arcResolution = %d, want 128", cfg.arcResolution)
	}
	if cfg.snapEps != 1e-4 {
		t.Errorf("snapEps = %v, want 1e-4", cfg.snapEps)
	}
	if cfg.areaEps != 1e-7 {
		t.Errorf("areaEps = %v, want 1e-7", cfg.areaEps)
	}
	if cfg.diag != &diag {
		t.Error("diagnostics recorder not applied")
	}
}

func TestOptions_InvalidValuesIgnored(t *testing.T) {
	cfg := applyOptions([]Option{
		WithArcResolution(0),
		WithSnapEpsilon(-1),
		WithAreaEpsilon(0),
	})
	if cfg.arcResolution != DefaultArcSegments {
		t.Errorf("arcResolution = %d, want default %d", cfg.arcResolution, DefaultArcSegments)
	}
	if cfg.snapEps != SnapEps {
		t.Errorf("snapEps = %v, want default %v", cfg.snapEps, SnapEps)
	}
	if cfg.areaEps != AreaEps {
		t.Errorf("areaEps = %v, want default %v", cfg.areaEps, AreaEps)
	}
}
