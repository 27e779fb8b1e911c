// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen" toml:"screen"`
	Flock     FlockConfig     `yaml:"flock" toml:"flock"`
	Predator  PredatorConfig  `yaml:"predator" toml:"predator"`
	Food      FoodConfig      `yaml:"food" toml:"food"`
	Steering  SteeringConfig  `yaml:"steering" toml:"steering"`
	Wave      WaveConfig      `yaml:"wave" toml:"wave"`
	Params    Params          `yaml:"params" toml:"params"`
	Telemetry TelemetryConfig `yaml:"telemetry" toml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width" toml:"width"`
	Height    int `yaml:"height" toml:"height"`
	TargetFPS int `yaml:"target_fps" toml:"target_fps"`
}

// FlockConfig holds boid creation parameters.
type FlockConfig struct {
	InitialSize      int     `yaml:"initial_size" toml:"initial_size"`
	MaxSpeed         float64 `yaml:"max_speed" toml:"max_speed"`
	MaxForce         float64 `yaml:"max_force" toml:"max_force"`
	PerceptionRadius float64 `yaml:"perception_radius" toml:"perception_radius"`
	SpawnSpeed       float64 `yaml:"spawn_speed" toml:"spawn_speed"` // initial velocity components drawn from [-s, s]
}

// PredatorConfig holds predator creation parameters.
// MaxSpeed is the spawn value; Params.PredatorMaxSpeed overrides it live.
type PredatorConfig struct {
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
	MaxForce      float64 `yaml:"max_force" toml:"max_force"`
	CaptureRadius float64 `yaml:"capture_radius" toml:"capture_radius"`
}

// FoodConfig holds food source parameters.
type FoodConfig struct {
	Radius     float64 `yaml:"radius" toml:"radius"`         // interaction and visual radius
	Attraction float64 `yaml:"attraction" toml:"attraction"` // scale applied after the seek force clamp
	Dots       int     `yaml:"dots" toml:"dots"`             // dots drawn per food source
}

// SteeringConfig holds fixed steering constants.
type SteeringConfig struct {
	FleeAmplification float64 `yaml:"flee_amplification" toml:"flee_amplification"`
}

// WaveConfig holds wave field parameters.
type WaveConfig struct {
	Resolution     float64 `yaml:"resolution" toml:"resolution"`           // cell size in world units
	PredatorWake   float64 `yaml:"predator_wake" toml:"predator_wake"`     // pressure a moving predator leaves (0 disables)
	CaptureSplash  float64 `yaml:"capture_splash" toml:"capture_splash"`   // pressure at a capture point (0 disables)
	CursorPressure float64 `yaml:"cursor_pressure" toml:"cursor_pressure"` // pressure for pointer disturbances
}

// Params are the live, externally adjustable parameters.
// Front ends edit them between ticks; the simulation copies them at the start of each tick.
type Params struct {
	SeparationWeight float64 `yaml:"separation_weight" toml:"separation_weight"`
	AlignmentWeight  float64 `yaml:"alignment_weight" toml:"alignment_weight"`
	CohesionWeight   float64 `yaml:"cohesion_weight" toml:"cohesion_weight"`
	WaveDamping      float64 `yaml:"wave_damping" toml:"wave_damping"`   // expected in [0,1)
	FoodLifespan     float64 `yaml:"food_lifespan" toml:"food_lifespan"` // applied when food is created
	PredatorEnabled  bool    `yaml:"predator_enabled" toml:"predator_enabled"`
	PredatorMaxSpeed float64 `yaml:"predator_max_speed" toml:"predator_max_speed"`
	FluidEnabled     bool    `yaml:"fluid_enabled" toml:"fluid_enabled"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window" toml:"stats_window"` // ticks per stats window
	PerfWindow  int `yaml:"perf_window" toml:"perf_window"`   // ticks averaged by the perf collector
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		// The embedded file is part of the binary; failing to parse it is a build defect.
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML or TOML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Unmarshal into same struct - only overwrites fields present in file
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing toml config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
