package telemetry

import "github.com/pthm-cable/flock/components"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32

	// Current window tracking
	windowStartTick int32
	boidTicks       int // sum of flock size over the window's ticks

	// Event counters for current window
	captures     int
	boidSpawns   int
	foodSpawns   int
	foodExpired  int
	depletions   int
	disturbances int
}

// NewCollector creates a new stats collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowDurationTicks: int32(windowTicks)}
}

// RecordCapture records a boid removed by a predator.
func (c *Collector) RecordCapture() {
	c.captures++
}

// RecordSpawn records an agent added by the user.
func (c *Collector) RecordSpawn(kind components.Kind) {
	if kind == components.KindBoid {
		c.boidSpawns++
	}
}

// RecordFoodSpawn records a food source placed by the user.
func (c *Collector) RecordFoodSpawn() {
	c.foodSpawns++
}

// RecordFoodExpired records a food source removed after running out.
func (c *Collector) RecordFoodExpired(n int) {
	c.foodExpired += n
}

// RecordDepletion records one boid feeding from one source for a tick.
func (c *Collector) RecordDepletion() {
	c.depletions++
}

// RecordDisturbance records an external wave field disturbance.
func (c *Collector) RecordDisturbance() {
	c.disturbances++
}

// RecordTick adds the current flock size to the window's exposure count.
func (c *Collector) RecordTick(boids int) {
	c.boidTicks += boids
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Populations holds the entity counts at window end.
type Populations struct {
	Boids     int
	Predators int
	Food      int
}

// Flush produces a WindowStats and resets counters for the next window.
// speeds are the boid speeds sampled at window end.
func (c *Collector) Flush(currentTick int32, pop Populations, speeds []float64, waveEnergy float64) WindowStats {
	var captureRate float64
	if c.boidTicks > 0 {
		captureRate = float64(c.captures) / float64(c.boidTicks) * 1000
	}

	mean, p10, p50, p90 := ComputeSpeedStats(speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Boids:     pop.Boids,
		Predators: pop.Predators,
		Food:      pop.Food,

		Captures:     c.captures,
		BoidSpawns:   c.boidSpawns,
		FoodSpawns:   c.foodSpawns,
		FoodExpired:  c.foodExpired,
		Depletions:   c.depletions,
		Disturbances: c.disturbances,
		CaptureRate:  captureRate,

		SpeedMean: mean,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,

		WaveEnergy: waveEnergy,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.resetCounters()

	return stats
}

// Reset discards the current window and starts a new one at tick 0.
func (c *Collector) Reset() {
	c.windowStartTick = 0
	c.resetCounters()
}

func (c *Collector) resetCounters() {
	c.boidTicks = 0
	c.captures = 0
	c.boidSpawns = 0
	c.foodSpawns = 0
	c.foodExpired = 0
	c.depletions = 0
	c.disturbances = 0
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
