package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/game"
	"github.com/pthm-cable/flock/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	predators  int
	seeds      []int64
	baseConfig *config.Config

	// Best run tracking
	mu          sync.Mutex
	bestFitness float64
	bestStats   []telemetry.WindowStats
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator. Every run starts with the
// given number of predators hunting the default flock.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, predators int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		predators:   predators,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// BestStats returns the window stats of the best seed from the best evaluation.
func (fe *FitnessEvaluator) BestStats() []telemetry.WindowStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestStats
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the outcome of a single simulation run.
type runResult struct {
	initial     int
	survivors   int
	windowStats []telemetry.WindowStats
	err         error
}

// Evaluate runs every seed in parallel and returns the average fitness
// (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]*runResult, len(fe.seeds))

	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	bestSeedFitness := math.Inf(1)
	var bestSeedStats []telemetry.WindowStats
	for _, r := range results {
		if r.err != nil {
			// A run that could not start scores as a total loss.
			continue
		}
		f := fe.computeFitness(r)
		totalFitness += f
		totalQuality += fe.computeQuality(r.windowStats, fe.baseConfig.Flock.MaxSpeed)
		if f < bestSeedFitness {
			bestSeedFitness = f
			bestSeedStats = r.windowStats
		}
	}

	n := float64(len(fe.seeds))
	avgFitness := totalFitness / n

	fe.mu.Lock()
	if avgFitness < fe.bestFitness {
		fe.bestFitness = avgFitness
		fe.bestStats = bestSeedStats
	}
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return avgFitness
}

// runSimulation executes a single headless simulation run of maxTicks ticks,
// stopping early if the flock is wiped out.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	cfg.Params.PredatorEnabled = false

	result := &runResult{}

	g, err := game.NewGame(game.Options{
		Config: cfg,
		Seed:   seed,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	if err != nil {
		result.err = err
		return result
	}
	defer g.Unload()

	w, h := g.Size()
	for i := 0; i < fe.predators; i++ {
		// Evenly spaced along the horizontal midline.
		px := w * float64(i+1) / float64(fe.predators+1)
		g.SpawnPredatorAt(r2.Vec{X: px, Y: h / 2})
	}

	result.initial = g.NumBoids()
	for g.Tick() < fe.maxTicks && g.NumBoids() > 0 {
		g.Step()
	}
	result.survivors = g.NumBoids()
	return result
}

// copyConfig returns a copy of the base config that runs can mutate freely.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalFraction × (1.0 + 0.2 × quality))
// Survival dominates; quality adds up to 20% bonus to differentiate
// configs with similar survival.
func (fe *FitnessEvaluator) computeFitness(r *runResult) float64 {
	if r.initial == 0 {
		return 0
	}
	survival := float64(r.survivors) / float64(r.initial)
	quality := fe.computeQuality(r.windowStats, fe.baseConfig.Flock.MaxSpeed)
	return -(survival * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightPace   = 0.6
	qualityWeightSpread = 0.4

	qualityWarmupWindows = 1 // skip first N windows (flock still forming)
)

// computeQuality scores flock behaviour ∈ [0, 1] from window stats. A good
// flock cruises near top speed with a narrow speed spread.
func (fe *FitnessEvaluator) computeQuality(windows []telemetry.WindowStats, maxSpeed float64) float64 {
	if len(windows) <= qualityWarmupWindows || maxSpeed <= 0 {
		return 0
	}

	var paceSum, spreadSum float64
	var count int
	for _, w := range windows[qualityWarmupWindows:] {
		if w.Boids == 0 {
			continue
		}
		paceSum += clamp01(w.SpeedP50 / maxSpeed)
		spreadSum += math.Exp(-math.Pow((w.SpeedP90-w.SpeedP10)/maxSpeed, 2))
		count++
	}
	if count == 0 {
		return 0
	}

	quality := qualityWeightPace*paceSum/float64(count) +
		qualityWeightSpread*spreadSum/float64(count)
	return clamp01(quality)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
