package game

import (
	"log/slog"

	"github.com/pthm-cable/flock/telemetry"
	"github.com/pthm-cable/flock/vecmath"
)

// flushTelemetry emits a stats window once enough ticks have passed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	pop := telemetry.Populations{
		Boids:     g.numBoids,
		Predators: g.numPredators,
		Food:      g.numFood,
	}
	stats := g.collector.Flush(g.tick, pop, g.sampleSpeeds(), g.field.Energy())

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.perfCollector == nil {
		return
	}
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleSpeeds collects the speed of every boid.
func (g *Game) sampleSpeeds() []float64 {
	speeds := make([]float64, 0, g.numBoids)
	query := g.boidFilter.Query()
	for query.Next() {
		agent, _ := query.Get()
		speeds = append(speeds, vecmath.Magnitude(agent.Velocity))
	}
	return speeds
}
