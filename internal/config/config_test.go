package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxItems != 18 || cfg.MinItems != 12 {
		t.Fatalf("item bounds %d/%d, want 18/12", cfg.MaxItems, cfg.MinItems)
	}
	if cfg.TargetSE != 0.20 {
		t.Fatalf("target SE %g, want 0.20", cfg.TargetSE)
	}
	grid := cfg.Grid()
	if grid.Min != -3.0 || grid.Max != 3.0 || grid.Step != 0.1 {
		t.Fatalf("grid %+v, want [-3,3] step 0.1", grid)
	}
	if len(grid.Points()) != 61 {
		t.Fatalf("grid has %d points, want 61", len(grid.Points()))
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MAX_ITEMS", "15")
	t.Setenv("TARGET_SE", "0.25")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxItems != 15 {
		t.Fatalf("max items %d, want 15", cfg.MaxItems)
	}
	rule := cfg.StopRule()
	if rule.MaxItems != 15 || rule.TargetSE != 0.25 {
		t.Fatalf("stop rule %+v", rule)
	}
}
