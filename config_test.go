package chladni

import "testing"

func TestDefaultSimConfigMatchesOriginalPrototype(t *testing.T) {
	cfg := DefaultSimConfig()
	if cfg.GridSize != 256 {
		t.Errorf("GridSize = %d, want 256", cfg.GridSize)
	}
	if cfg.PlateSize != 0.3 {
		t.Errorf("PlateSize = %v, want 0.3", cfg.PlateSize)
	}
	if cfg.Damping != 0.002 {
		t.Errorf("Damping = %v, want 0.002", cfg.Damping)
	}
	if cfg.WaveSpeed != 100.0 {
		t.Errorf("WaveSpeed = %v, want 100.0", cfg.WaveSpeed)
	}
	if cfg.TimeScale != 1.0 {
		t.Errorf("TimeScale = %v, want 1.0", cfg.TimeScale)
	}
}

func TestDefaultSimConfigProducesValidSolver(t *testing.T) {
	cfg := DefaultSimConfig()
	s, err := New(cfg.GridSize, cfg.GridSize, cfg.WaveSpeed, cfg.Damping)
	if err != nil {
		t.Fatalf("New with default config: %v", err)
	}
	if s.Width() != cfg.GridSize || s.Height() != cfg.GridSize {
		t.Errorf("solver dims = (%d,%d), want (%d,%d)", s.Width(), s.Height(), cfg.GridSize, cfg.GridSize)
	}
}
