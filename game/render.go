package game

import (
	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/draw"
)

// Frame builds the draw commands for the current state. The returned commands
// are reused by the next call.
func (g *Game) Frame() draw.Frame {
	return g.drawer.Build(g.Scene())
}

// Scene gathers what a frame draws.
func (g *Game) Scene() draw.Scene {
	s := draw.Scene{
		Width:  g.width,
		Height: g.height,
		Tick:   g.tick,
		Fluid:  g.params.FluidEnabled,
		Field:  g.field,
		Food:   g.Food(),
		Agents: make([]draw.AgentView, 0, g.numBoids+g.numPredators),
	}

	boids := g.boidFilter.Query()
	for boids.Next() {
		agent, _ := boids.Get()
		s.Agents = append(s.Agents, draw.AgentView{
			Position: agent.Position,
			Heading:  agent.Heading(),
			Kind:     components.KindBoid,
		})
	}

	preds := g.predFilter.Query()
	for preds.Next() {
		agent, _ := preds.Get()
		s.Agents = append(s.Agents, draw.AgentView{
			Position: agent.Position,
			Heading:  agent.Heading(),
			Kind:     components.KindPredator,
		})
	}

	return s
}
