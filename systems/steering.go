package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/vecmath"
)

// Neighbor is a read-only snapshot of an agent taken at the start of a tick.
// Steering only ever reads snapshots, so no agent sees another's updated state.
type Neighbor struct {
	ID       uint32 // index of the agent in its tick snapshot
	Position r2.Vec
	Velocity r2.Vec
}

// FoodSite is a read-only snapshot of a food source.
type FoodSite struct {
	Position r2.Vec
	Radius   float64
}

// Weights scale the three classic flocking rules.
type Weights struct {
	Separation float64
	Alignment  float64
	Cohesion   float64
}

// SteeringParams bundles everything Flock needs besides the agent and its surroundings.
type SteeringParams struct {
	Weights           Weights
	FleeAmplification float64 // extra scale on predator avoidance
	FoodAttraction    float64 // scale applied after the food seek force is clamped
}

// steer turns a desired heading into a steering force: the desired vector is set to
// the agent's max speed, the current velocity is subtracted, and the result is
// clamped to the agent's max force. A zero desired vector yields no force.
func steer(a *components.Agent, desired r2.Vec) r2.Vec {
	if vecmath.IsZero(desired) {
		return r2.Vec{}
	}
	desired = vecmath.SetMagnitude(desired, a.MaxSpeed)
	return vecmath.Limit(r2.Sub(desired, a.Velocity), a.MaxForce)
}

// Align steers toward the average velocity of neighbours within radius.
func Align(a *components.Agent, selfID uint32, radius float64, neighbors []Neighbor) r2.Vec {
	var sum r2.Vec
	total := 0
	for i := range neighbors {
		n := &neighbors[i]
		if n.ID == selfID {
			continue
		}
		if vecmath.Distance(a.Position, n.Position) < radius {
			sum = r2.Add(sum, n.Velocity)
			total++
		}
	}
	if total == 0 {
		return r2.Vec{}
	}
	return steer(a, r2.Scale(1/float64(total), sum))
}

// Cohere steers toward the average position of neighbours within radius.
func Cohere(a *components.Agent, selfID uint32, radius float64, neighbors []Neighbor) r2.Vec {
	var sum r2.Vec
	total := 0
	for i := range neighbors {
		n := &neighbors[i]
		if n.ID == selfID {
			continue
		}
		if vecmath.Distance(a.Position, n.Position) < radius {
			sum = r2.Add(sum, n.Position)
			total++
		}
	}
	if total == 0 {
		return r2.Vec{}
	}
	center := r2.Scale(1/float64(total), sum)
	return steer(a, r2.Sub(center, a.Position))
}

// Separate steers away from neighbours within radius. Each neighbour pushes along
// the direction away from it, weighted by the inverse of its distance. Coincident
// neighbours (distance 0) are skipped.
func Separate(a *components.Agent, selfID uint32, radius float64, neighbors []Neighbor) r2.Vec {
	var sum r2.Vec
	total := 0
	for i := range neighbors {
		n := &neighbors[i]
		if n.ID == selfID {
			continue
		}
		if away, ok := repulsion(a.Position, n.Position, radius); ok {
			sum = r2.Add(sum, away)
			total++
		}
	}
	if total == 0 {
		return r2.Vec{}
	}
	return steer(a, r2.Scale(1/float64(total), sum))
}

// Flee is separation driven by predators, with twice the perception radius.
func Flee(a *components.Agent, radius float64, predators []r2.Vec) r2.Vec {
	var sum r2.Vec
	total := 0
	for _, p := range predators {
		if away, ok := repulsion(a.Position, p, 2*radius); ok {
			sum = r2.Add(sum, away)
			total++
		}
	}
	if total == 0 {
		return r2.Vec{}
	}
	return steer(a, r2.Scale(1/float64(total), sum))
}

// repulsion returns (self-other)/d² when 0 < d < radius.
func repulsion(self, other r2.Vec, radius float64) (r2.Vec, bool) {
	diff := r2.Sub(self, other)
	d := vecmath.Magnitude(diff)
	if d <= vecmath.Epsilon || d >= radius {
		return r2.Vec{}, false
	}
	return r2.Scale(1/(d*d), diff), true
}

// SeekFood appends to depleted the index of every food source whose radius contains
// the agent (one depletion event each) and returns a seek force toward the nearest
// source, scaled by attraction after clamping. With no food the force is zero.
func SeekFood(a *components.Agent, food []FoodSite, attraction float64, depleted []int) (r2.Vec, []int) {
	if len(food) == 0 {
		return r2.Vec{}, depleted
	}

	nearest := -1
	nearestDist := 0.0
	for i := range food {
		d := vecmath.Distance(a.Position, food[i].Position)
		if d < food[i].Radius {
			depleted = append(depleted, i)
		}
		if nearest < 0 || d < nearestDist {
			nearest = i
			nearestDist = d
		}
	}

	force := steer(a, r2.Sub(food[nearest].Position, a.Position))
	return r2.Scale(attraction, force), depleted
}

// Flock accumulates every steering contribution into the agent's acceleration:
// weighted separation, alignment and cohesion, amplified predator flight and food
// seeking. The caller integrates once afterwards. The returned slice is depleted
// with the indices of food sources this boid consumed from.
func Flock(a *components.Agent, selfID uint32, boid components.Boid, neighbors []Neighbor, food []FoodSite, predators []r2.Vec, p SteeringParams, depleted []int) []int {
	r := boid.PerceptionRadius

	separation := Separate(a, selfID, r, neighbors)
	alignment := Align(a, selfID, r, neighbors)
	cohesion := Cohere(a, selfID, r, neighbors)
	flee := Flee(a, r, predators)

	var seek r2.Vec
	seek, depleted = SeekFood(a, food, p.FoodAttraction, depleted)

	a.ApplyForce(r2.Scale(p.Weights.Separation, separation))
	a.ApplyForce(r2.Scale(p.Weights.Alignment, alignment))
	a.ApplyForce(r2.Scale(p.Weights.Cohesion, cohesion))
	a.ApplyForce(r2.Scale(p.FleeAmplification, flee))
	a.ApplyForce(seek)

	return depleted
}
