package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeSpeedStats(t *testing.T) {
	// Unsorted input; the caller's slice must not be reordered.
	values := []float64{4, 0.4, 3.6, 0.8, 2, 1.2, 2.8, 1.6, 3.2, 2.4}
	mean, p10, p50, p90 := ComputeSpeedStats(values)

	if math.Abs(mean-2.2) > 1e-9 {
		t.Errorf("mean = %v, want 2.2", mean)
	}
	if math.Abs(p10-0.76) > 1e-9 {
		t.Errorf("p10 = %v, want 0.76", p10)
	}
	if math.Abs(p50-2.2) > 1e-9 {
		t.Errorf("p50 = %v, want 2.2", p50)
	}
	if math.Abs(p90-3.64) > 1e-9 {
		t.Errorf("p90 = %v, want 3.64", p90)
	}
	if values[0] != 4 {
		t.Error("input slice was modified")
	}
}

func TestComputeSpeedStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeSpeedStats(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}
