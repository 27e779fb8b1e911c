package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population counts at window end
	Boids     int `csv:"boids"`
	Predators int `csv:"predators"`
	Food      int `csv:"food"`

	// Events during window
	Captures     int     `csv:"captures"`
	BoidSpawns   int     `csv:"boid_spawns"`
	FoodSpawns   int     `csv:"food_spawns"`
	FoodExpired  int     `csv:"food_expired"`
	Depletions   int     `csv:"depletions"`
	Disturbances int     `csv:"disturbances"`
	CaptureRate  float64 `csv:"capture_rate"` // captures per 1000 boid-ticks

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	WaveEnergy float64 `csv:"wave_energy"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean and percentiles from speed values.
func ComputeSpeedStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("boids", s.Boids),
		slog.Int("predators", s.Predators),
		slog.Int("food", s.Food),
		slog.Int("captures", s.Captures),
		slog.Int("boid_spawns", s.BoidSpawns),
		slog.Int("food_spawns", s.FoodSpawns),
		slog.Int("food_expired", s.FoodExpired),
		slog.Int("depletions", s.Depletions),
		slog.Int("disturbances", s.Disturbances),
		slog.Float64("capture_rate", s.CaptureRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("wave_energy", s.WaveEnergy),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"boids", s.Boids,
		"predators", s.Predators,
		"food", s.Food,
		"captures", s.Captures,
		"boid_spawns", s.BoidSpawns,
		"food_spawns", s.FoodSpawns,
		"food_expired", s.FoodExpired,
		"depletions", s.Depletions,
		"disturbances", s.Disturbances,
		"capture_rate", s.CaptureRate,
		"speed_mean", s.SpeedMean,
		"speed_p90", s.SpeedP90,
		"wave_energy", s.WaveEnergy,
	)
}
