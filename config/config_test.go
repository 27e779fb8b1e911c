package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Flock.InitialSize != 150 {
		t.Errorf("Flock.InitialSize = %d, want 150", cfg.Flock.InitialSize)
	}
	if cfg.Flock.MaxSpeed != 4 || cfg.Flock.MaxForce != 0.2 || cfg.Flock.PerceptionRadius != 50 {
		t.Errorf("unexpected flock defaults: %+v", cfg.Flock)
	}
	if cfg.Steering.FleeAmplification != 3.0 {
		t.Errorf("FleeAmplification = %v, want 3", cfg.Steering.FleeAmplification)
	}
	if cfg.Params.WaveDamping < 0 || cfg.Params.WaveDamping >= 1 {
		t.Errorf("WaveDamping = %v, want [0,1)", cfg.Params.WaveDamping)
	}
	if cfg.Predator.MaxSpeed <= cfg.Flock.MaxSpeed || cfg.Predator.MaxForce <= cfg.Flock.MaxForce {
		t.Errorf("predator should outpace boids: predator %+v flock %+v", cfg.Predator, cfg.Flock)
	}
}

func TestLoadYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("flock:\n  initial_size: 12\nparams:\n  cohesion_weight: 2.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Flock.InitialSize != 12 {
		t.Errorf("InitialSize = %d, want 12", cfg.Flock.InitialSize)
	}
	if cfg.Params.CohesionWeight != 2.5 {
		t.Errorf("CohesionWeight = %v, want 2.5", cfg.Params.CohesionWeight)
	}
	// Untouched keys keep their defaults.
	if cfg.Flock.MaxSpeed != 4 {
		t.Errorf("MaxSpeed = %v, want default 4", cfg.Flock.MaxSpeed)
	}
}

func TestLoadTOMLOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte("[params]\npredator_enabled = true\nseparation_weight = 4.0\n\n[wave]\nresolution = 20.0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Params.PredatorEnabled {
		t.Error("PredatorEnabled = false, want true")
	}
	if cfg.Params.SeparationWeight != 4 {
		t.Errorf("SeparationWeight = %v, want 4", cfg.Params.SeparationWeight)
	}
	if cfg.Wave.Resolution != 20 {
		t.Errorf("Resolution = %v, want 20", cfg.Wave.Resolution)
	}
	if cfg.Flock.InitialSize != 150 {
		t.Errorf("InitialSize = %d, want default 150", cfg.Flock.InitialSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Params.AlignmentWeight = 3.25

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Params.AlignmentWeight != 3.25 {
		t.Errorf("AlignmentWeight = %v, want 3.25", loaded.Params.AlignmentWeight)
	}
}

func TestCfgAfterInit(t *testing.T) {
	MustInit("")
	if Cfg().Screen.Width <= 0 {
		t.Errorf("Screen.Width = %d, want > 0", Cfg().Screen.Width)
	}
}
