package game

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/components"
)

// reset discards every entity and the field state and spawns the initial flock.
func (g *Game) reset() {
	g.newWorld()
	g.numBoids = 0
	g.numPredators = 0
	g.numFood = 0
	g.predatorFlag = false
	g.tick = 0

	g.field.Resize(g.width, g.height)
	g.grid.Resize(g.width, g.height)
	g.collector.Reset()

	for i := 0; i < g.cfg.Flock.InitialSize; i++ {
		g.spawnBoid(g.randomPosition())
	}
}

// Restart reinitializes all entities and the wave field. Live parameters are
// kept. If a scheduler is attached the loop runs afterwards, with exactly one
// tick scheduled.
func (g *Game) Restart() {
	g.reset()
	if g.sched != nil {
		g.running = true
		g.scheduleNext()
	}
}

// Resize changes the world dimensions and reallocates the wave field and spatial
// index. Agents outside the new bounds wrap on the next tick. Non-positive sizes
// are ignored.
func (g *Game) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.field.Resize(width, height)
	g.grid.Resize(width, height)
}

// SpawnBoidAt adds a boid at pos with a random initial velocity.
func (g *Game) SpawnBoidAt(pos r2.Vec) ecs.Entity {
	g.collector.RecordSpawn(components.KindBoid)
	return g.spawnBoid(pos)
}

func (g *Game) spawnBoid(pos r2.Vec) ecs.Entity {
	fc := g.cfg.Flock
	s := fc.SpawnSpeed
	agent := components.Agent{
		Position: pos,
		Velocity: r2.Vec{X: (g.rng.Float64()*2 - 1) * s, Y: (g.rng.Float64()*2 - 1) * s},
		MaxSpeed: fc.MaxSpeed,
		MaxForce: fc.MaxForce,
	}
	boid := components.Boid{PerceptionRadius: fc.PerceptionRadius}

	g.numBoids++
	return g.boidMapper.NewEntity(&agent, &boid)
}

// SpawnPredatorAt adds a predator at pos, at rest.
func (g *Game) SpawnPredatorAt(pos r2.Vec) ecs.Entity {
	pc := g.cfg.Predator
	maxSpeed := pc.MaxSpeed
	if g.params.PredatorMaxSpeed > 0 {
		maxSpeed = g.params.PredatorMaxSpeed
	}
	agent := components.Agent{
		Position: pos,
		MaxSpeed: maxSpeed,
		MaxForce: pc.MaxForce,
	}
	pred := components.Predator{CaptureRadius: pc.CaptureRadius}

	g.numPredators++
	g.collector.RecordSpawn(components.KindPredator)
	return g.predMapper.NewEntity(&agent, &pred)
}

// RemovePredators deletes every predator and returns how many were removed.
func (g *Game) RemovePredators() int {
	g.doomed = g.doomed[:0]
	query := g.predFilter.Query()
	for query.Next() {
		g.doomed = append(g.doomed, query.Entity())
	}
	for _, e := range g.doomed {
		g.world.RemoveEntity(e)
	}
	g.numPredators = 0
	return len(g.doomed)
}

// SpawnFoodAt places a food source at pos. Its lifespan is the live
// FoodLifespan parameter at this moment.
func (g *Game) SpawnFoodAt(pos r2.Vec) ecs.Entity {
	food := components.NewFood(pos, g.cfg.Food.Radius, g.params.FoodLifespan, g.rng.Int63())

	g.numFood++
	g.collector.RecordFoodSpawn()
	return g.foodMapper.NewEntity(&food)
}

// cullFood removes every expired food source.
func (g *Game) cullFood() {
	g.doomed = g.doomed[:0]
	query := g.foodFilter.Query()
	for query.Next() {
		if query.Get().Expired() {
			g.doomed = append(g.doomed, query.Entity())
		}
	}
	if len(g.doomed) == 0 {
		return
	}
	for _, e := range g.doomed {
		g.world.RemoveEntity(e)
	}
	g.numFood -= len(g.doomed)
	g.collector.RecordFoodExpired(len(g.doomed))
}

// DisturbAt writes pressure into the wave field at world position pos.
func (g *Game) DisturbAt(pos r2.Vec, pressure float64) {
	g.field.Disturb(pos.X, pos.Y, pressure)
	g.collector.RecordDisturbance()
}
