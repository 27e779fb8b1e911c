// Package main provides CMA-ES optimization for flock steering parameters.
package main

import (
	"github.com/pthm-cable/flock/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Live weights (same ranges as the control panel sliders)
			{Name: "separation_weight", Path: "params.separation_weight", Min: 0, Max: 5, Default: 1.5},
			{Name: "alignment_weight", Path: "params.alignment_weight", Min: 0, Max: 5, Default: 1.0},
			{Name: "cohesion_weight", Path: "params.cohesion_weight", Min: 0, Max: 5, Default: 1.0},
			// Boid construction
			{Name: "perception_radius", Path: "flock.perception_radius", Min: 20, Max: 120, Default: 50},
			{Name: "max_force", Path: "flock.max_force", Min: 0.02, Max: 0.6, Default: 0.2},
			// Evasion
			{Name: "flee_amplification", Path: "steering.flee_amplification", Min: 1, Max: 6, Default: 3},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Params.SeparationWeight = clamped[0]
	cfg.Params.AlignmentWeight = clamped[1]
	cfg.Params.CohesionWeight = clamped[2]
	cfg.Flock.PerceptionRadius = clamped[3]
	cfg.Flock.MaxForce = clamped[4]
	cfg.Steering.FleeAmplification = clamped[5]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Params.SeparationWeight,
		cfg.Params.AlignmentWeight,
		cfg.Params.CohesionWeight,
		cfg.Flock.PerceptionRadius,
		cfg.Flock.MaxForce,
		cfg.Steering.FleeAmplification,
	}
}
