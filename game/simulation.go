package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/systems"
	"github.com/pthm-cable/flock/telemetry"
)

// Step advances the simulation by one tick. Every agent's forces are computed
// from the snapshot taken after edge wrapping, so the update is simultaneous.
func (g *Game) Step() {
	p := g.params

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseWave)
	g.field.Update(p.WaveDamping)

	g.perfCollector.StartPhase(telemetry.PhaseFood)
	g.cullFood()

	g.perfCollector.StartPhase(telemetry.PhasePredators)
	g.syncPredators(&p)
	g.wrapEdges()
	g.takeSnapshots()
	g.updatePredators()
	g.removeCaptured()

	g.perfCollector.StartPhase(telemetry.PhaseFlock)
	g.updateFlock(&p)
	g.cullFood()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.collector.RecordTick(g.numBoids)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// wrapEdges applies toroidal wraparound to every agent.
func (g *Game) wrapEdges() {
	boids := g.boidFilter.Query()
	for boids.Next() {
		agent, _ := boids.Get()
		agent.WrapEdges(g.width, g.height)
	}

	preds := g.predFilter.Query()
	for preds.Next() {
		agent, _ := preds.Get()
		agent.WrapEdges(g.width, g.height)
	}
}

// takeSnapshots records the read-only state the tick's forces are computed from.
func (g *Game) takeSnapshots() {
	g.boidSnap = g.boidSnap[:0]
	g.boidEntities = g.boidEntities[:0]
	boids := g.boidFilter.Query()
	for boids.Next() {
		agent, _ := boids.Get()
		g.boidSnap = append(g.boidSnap, systems.Neighbor{
			ID:       uint32(len(g.boidSnap)),
			Position: agent.Position,
			Velocity: agent.Velocity,
		})
		g.boidEntities = append(g.boidEntities, boids.Entity())
	}

	g.predSnap = g.predSnap[:0]
	preds := g.predFilter.Query()
	for preds.Next() {
		agent, _ := preds.Get()
		g.predSnap = append(g.predSnap, agent.Position)
	}

	g.foodSnap = g.foodSnap[:0]
	g.foodEntities = g.foodEntities[:0]
	food := g.foodFilter.Query()
	for food.Next() {
		f := food.Get()
		g.foodSnap = append(g.foodSnap, systems.FoodSite{Position: f.Position, Radius: f.Radius})
		g.foodEntities = append(g.foodEntities, food.Entity())
	}
}

// updatePredators lets every predator pick and chase its nearest boid. Captured
// boids are collected once each, however many predators reach them.
func (g *Game) updatePredators() {
	g.captured = g.captured[:0]
	if cap(g.capturedMask) < len(g.boidSnap) {
		g.capturedMask = make([]bool, len(g.boidSnap))
	}
	g.capturedMask = g.capturedMask[:len(g.boidSnap)]
	clear(g.capturedMask)

	wake := g.cfg.Wave.PredatorWake

	query := g.predFilter.Query()
	for query.Next() {
		agent, pred := query.Get()

		res := systems.Hunt(agent, *pred, g.boidSnap)
		if res.Captured && !g.capturedMask[res.Target] {
			g.capturedMask[res.Target] = true
			g.captured = append(g.captured, res.Target)
		}

		agent.Integrate()

		if wake != 0 {
			g.field.Disturb(agent.Position.X, agent.Position.Y, wake)
		}
	}
}

// removeCaptured deletes captured boids and compacts the boid snapshot so the
// flock only sees survivors.
func (g *Game) removeCaptured() {
	if len(g.captured) == 0 {
		return
	}

	splash := g.cfg.Wave.CaptureSplash
	for _, idx := range g.captured {
		if splash != 0 {
			pos := g.boidSnap[idx].Position
			g.field.Disturb(pos.X, pos.Y, splash)
		}
		g.world.RemoveEntity(g.boidEntities[idx])
		g.numBoids--
		g.collector.RecordCapture()
	}

	n := 0
	for i := range g.boidSnap {
		if g.capturedMask[i] {
			continue
		}
		s := g.boidSnap[i]
		s.ID = uint32(n)
		g.boidSnap[n] = s
		g.boidEntities[n] = g.boidEntities[i]
		n++
	}
	g.boidSnap = g.boidSnap[:n]
	g.boidEntities = g.boidEntities[:n]
}

// updateFlock steers and integrates every boid, then applies food depletions.
func (g *Game) updateFlock(p *config.Params) {
	g.grid.Build(g.boidSnap)

	sp := systems.SteeringParams{
		Weights: systems.Weights{
			Separation: p.SeparationWeight,
			Alignment:  p.AlignmentWeight,
			Cohesion:   p.CohesionWeight,
		},
		FleeAmplification: g.cfg.Steering.FleeAmplification,
		FoodAttraction:    g.cfg.Food.Attraction,
	}

	for i, e := range g.boidEntities {
		agent, boid := g.boidMapper.Get(e)

		g.neighbors = g.grid.QueryRadiusInto(g.neighbors[:0], agent.Position, boid.PerceptionRadius, g.boidSnap)
		g.depleted = systems.Flock(agent, uint32(i), *boid, g.neighbors, g.foodSnap, g.predSnap, sp, g.depleted[:0])

		for _, fi := range g.depleted {
			g.foodMapper.Get(g.foodEntities[fi]).Deplete()
			g.collector.RecordDepletion()
		}

		agent.Integrate()
	}
}

// syncPredators follows changes to the predator toggle: switching it on adds a
// predator when none exist, switching it off removes them all. Predator top
// speed tracks the live parameter.
func (g *Game) syncPredators(p *config.Params) {
	if p.PredatorEnabled != g.predatorFlag {
		g.predatorFlag = p.PredatorEnabled
		if p.PredatorEnabled {
			if g.numPredators == 0 {
				g.SpawnPredatorAt(g.randomPosition())
			}
		} else {
			g.RemovePredators()
		}
	}

	if p.PredatorMaxSpeed <= 0 {
		return
	}
	query := g.predFilter.Query()
	for query.Next() {
		agent, _ := query.Get()
		agent.MaxSpeed = p.PredatorMaxSpeed
	}
}

func (g *Game) randomPosition() r2.Vec {
	return r2.Vec{X: g.rng.Float64() * g.width, Y: g.rng.Float64() * g.height}
}
