package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/draw"
	"github.com/pthm-cable/flock/systems"
	"github.com/pthm-cable/flock/telemetry"
)

// Options configures a new game.
type Options struct {
	Config    *config.Config // nil = config.Cfg()
	Seed      int64
	LogStats  bool
	OutputDir string // empty = no CSV output

	// World size; zero values use the configured screen size.
	Width, Height float64

	// Optional callback invoked after each stats window flush.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete simulation state: the ECS world with boids, predators
// and food, the wave field, and the live parameters front ends edit between ticks.
type Game struct {
	cfg    *config.Config
	params config.Params
	rng    *rand.Rand

	world      *ecs.World
	boidMapper *ecs.Map2[components.Agent, components.Boid]
	predMapper *ecs.Map2[components.Agent, components.Predator]
	foodMapper *ecs.Map1[components.Food]
	boidFilter *ecs.Filter2[components.Agent, components.Boid]
	predFilter *ecs.Filter2[components.Agent, components.Predator]
	foodFilter *ecs.Filter1[components.Food]

	field  *systems.WaveField
	grid   *systems.SpatialGrid
	drawer *draw.Builder

	// Per-tick snapshots, reused across ticks
	boidSnap     []systems.Neighbor
	boidEntities []ecs.Entity
	predSnap     []r2.Vec
	foodSnap     []systems.FoodSite
	foodEntities []ecs.Entity
	neighbors    []systems.Neighbor
	depleted     []int
	captured     []int
	capturedMask []bool
	doomed       []ecs.Entity

	// State
	tick          int32
	width, height float64
	numBoids      int
	numPredators  int
	numFood       int
	predatorFlag  bool // PredatorEnabled as of the last sync

	// Scheduling
	sched     Scheduler
	handle    Handle
	scheduled bool
	running   bool

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewGame creates a game and spawns the initial flock. The returned error is
// non-nil only when the output directory cannot be prepared.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = float64(cfg.Screen.Width), float64(cfg.Screen.Height)
	}

	g := &Game{
		cfg:           cfg,
		params:        cfg.Params,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		width:         width,
		height:        height,
		field:         systems.NewWaveField(width, height, cfg.Wave.Resolution),
		grid:          systems.NewSpatialGrid(width, height, cfg.Flock.PerceptionRadius),
		drawer:        draw.NewBuilder(cfg.Food.Dots, opts.Seed),
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	if opts.LogStats || opts.OutputDir != "" {
		g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}

	g.reset()
	return g, nil
}

// newWorld replaces the ECS world and its mappers with empty ones.
func (g *Game) newWorld() {
	world := ecs.NewWorld()
	g.world = world
	g.boidMapper = ecs.NewMap2[components.Agent, components.Boid](world)
	g.predMapper = ecs.NewMap2[components.Agent, components.Predator](world)
	g.foodMapper = ecs.NewMap1[components.Food](world)
	g.boidFilter = ecs.NewFilter2[components.Agent, components.Boid](world)
	g.predFilter = ecs.NewFilter2[components.Agent, components.Predator](world)
	g.foodFilter = ecs.NewFilter1[components.Food](world)
}

// Params returns the live parameters. Front ends may modify them between ticks;
// Step reads a copy at its start.
func (g *Game) Params() *config.Params {
	return &g.params
}

// Config returns the configuration the game was created with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Tick returns the number of completed steps since the last restart.
func (g *Game) Tick() int32 {
	return g.tick
}

// Size returns the world dimensions.
func (g *Game) Size() (width, height float64) {
	return g.width, g.height
}

// NumBoids returns the current flock size.
func (g *Game) NumBoids() int {
	return g.numBoids
}

// NumPredators returns the current number of predators.
func (g *Game) NumPredators() int {
	return g.numPredators
}

// NumFood returns the current number of food sources.
func (g *Game) NumFood() int {
	return g.numFood
}

// Field returns the wave field.
func (g *Game) Field() *systems.WaveField {
	return g.field
}

// Boids returns a copy of every boid's kinematic state.
func (g *Game) Boids() []components.Agent {
	out := make([]components.Agent, 0, g.numBoids)
	query := g.boidFilter.Query()
	for query.Next() {
		agent, _ := query.Get()
		out = append(out, *agent)
	}
	return out
}

// Predators returns a copy of every predator's kinematic state.
func (g *Game) Predators() []components.Agent {
	out := make([]components.Agent, 0, g.numPredators)
	query := g.predFilter.Query()
	for query.Next() {
		agent, _ := query.Get()
		out = append(out, *agent)
	}
	return out
}

// Food returns a copy of every food source.
func (g *Game) Food() []components.Food {
	out := make([]components.Food, 0, g.numFood)
	query := g.foodFilter.Query()
	for query.Next() {
		out = append(out, *query.Get())
	}
	return out
}

// RecordFrame feeds frame timing to the perf collector.
func (g *Game) RecordFrame() {
	g.perfCollector.RecordFrame()
}

// Unload flushes and closes telemetry output.
func (g *Game) Unload() error {
	g.Cancel()
	return g.outputManager.Close()
}
