package scenario

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scenario != Orbit2D {
		t.Errorf("expected %s, got %s", Orbit2D, cfg.Scenario)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Init.X != 150 || cfg.Init.VY != 2.5 {
		t.Errorf("unexpected initial state: %+v", cfg.Init)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := Default()
	cfg.Scenario = Orbit3D
	cfg.Init.VZ = 15
	cfg.Threshold = Threshold3D

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Scenario != Orbit3D || loaded.Init.VZ != 15 || loaded.Threshold != Threshold3D {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConstantsThresholdDefaulting(t *testing.T) {
	cfg := Default()
	cfg.Threshold = 0
	if got := cfg.Constants().Threshold; got != Threshold2D {
		t.Errorf("expected 2-D threshold %f, got %f", Threshold2D, got)
	}

	cfg.Scenario = Orbit3D
	if got := cfg.Constants().Threshold; got != Threshold3D {
		t.Errorf("expected 3-D threshold %f, got %f", Threshold3D, got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset(Orbit2D, "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.G != 50 || cfg.CentralMass != 1000 || cfg.Init.X != 150 || cfg.Init.VY != 2.5 {
		t.Errorf("classic preset does not match the sketch constants: %+v", cfg)
	}

	if GetPreset(Orbit2D, "nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("nonexistent", "classic") != nil {
		t.Error("expected nil for unknown kind")
	}
}

func TestListPresets(t *testing.T) {
	for _, kind := range []string{Orbit2D, Orbit3D} {
		names := ListPresets(kind)
		if len(names) != 3 {
			t.Errorf("%s: expected 3 presets, got %d", kind, len(names))
		}
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for unknown kind")
	}
}

func TestBuild(t *testing.T) {
	sim2, err := Default().Build2D()
	if err != nil {
		t.Fatalf("build 2-D failed: %v", err)
	}
	if sim2.Trail().Cap() != 1000 {
		t.Errorf("expected trail capacity 1000, got %d", sim2.Trail().Cap())
	}
	if r := sim2.Radius(); r != 150 {
		t.Errorf("expected initial radius 150, got %f", r)
	}

	cfg3 := GetPreset(Orbit3D, "classic")
	sim3, err := cfg3.Build3D()
	if err != nil {
		t.Fatalf("build 3-D failed: %v", err)
	}
	if sim3.Body().Vel.Z != 15 {
		t.Errorf("expected vz 15, got %f", sim3.Body().Vel.Z)
	}

	if _, err := Default().Build3D(); err == nil {
		t.Error("expected dimension mismatch error")
	}
	if _, err := cfg3.Build2D(); err == nil {
		t.Error("expected dimension mismatch error")
	}
}
