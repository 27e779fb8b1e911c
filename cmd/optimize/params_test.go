package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/telemetry"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	def := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		if math.Abs(back[i]-def[i]) > 1e-12 {
			t.Errorf("%s: %v after round trip, want %v", pv.Specs[i].Name, back[i], def[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Defaults())
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s: config default %v, ParamSpec default %v", spec.Name, got[i], spec.Default)
		}
		if spec.Default < spec.Min || spec.Default > spec.Max {
			t.Errorf("%s: default %v outside [%v, %v]", spec.Name, spec.Default, spec.Min, spec.Max)
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	values := make([]float64, pv.Dim())
	for i, spec := range pv.Specs {
		values[i] = spec.Max + 10
	}
	pv.ApplyToConfig(cfg, values)

	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if got[i] != spec.Max {
			t.Errorf("%s = %v, want clamped to %v", spec.Name, got[i], spec.Max)
		}
	}
}

func TestComputeQuality(t *testing.T) {
	fe := NewFitnessEvaluator(NewParamVector(), 0, 0, nil, config.Defaults())

	tests := []struct {
		name    string
		windows []telemetry.WindowStats
		want    float64
	}{
		{"no windows", nil, 0},
		{"warmup only", []telemetry.WindowStats{{Boids: 10, SpeedP50: 4}}, 0},
		{
			"uniform top speed",
			[]telemetry.WindowStats{
				{Boids: 10},
				{Boids: 10, SpeedP10: 4, SpeedP50: 4, SpeedP90: 4},
			},
			1,
		},
		{
			"wiped out",
			[]telemetry.WindowStats{{Boids: 10}, {Boids: 0}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fe.computeQuality(tt.windows, 4); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("quality = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateShortRun(t *testing.T) {
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 20, 1, []int64{1, 2}, config.Defaults())

	f := fe.Evaluate(pv.DefaultVector())
	if f > 0 || f < -1.2 {
		t.Errorf("fitness = %v, want within [-1.2, 0]", f)
	}
}
