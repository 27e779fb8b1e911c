package components

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/vecmath"
)

// Agent is the kinematic state shared by every moving entity.
// Acceleration accumulates forces between integration steps.
type Agent struct {
	Position     r2.Vec
	Velocity     r2.Vec
	Acceleration r2.Vec
	MaxSpeed     float64
	MaxForce     float64
}

// ApplyForce adds force into the acceleration accumulator.
func (a *Agent) ApplyForce(force r2.Vec) {
	a.Acceleration = r2.Add(a.Acceleration, force)
}

// Integrate advances one step of semi-implicit Euler: the position moves by the
// previous velocity, then the velocity takes the accumulated acceleration and is
// clamped to MaxSpeed. The accumulator is cleared.
func (a *Agent) Integrate() {
	a.Position = r2.Add(a.Position, a.Velocity)
	a.Velocity = vecmath.Limit(r2.Add(a.Velocity, a.Acceleration), a.MaxSpeed)
	a.Acceleration = r2.Vec{}
}

// WrapEdges applies toroidal wraparound: leaving past the upper bound resets the
// coordinate to 0, dropping below 0 resets it to the bound.
func (a *Agent) WrapEdges(width, height float64) {
	if a.Position.X > width {
		a.Position.X = 0
	} else if a.Position.X < 0 {
		a.Position.X = width
	}
	if a.Position.Y > height {
		a.Position.Y = 0
	} else if a.Position.Y < 0 {
		a.Position.Y = height
	}
}

// Heading returns the direction of travel in radians.
func (a *Agent) Heading() float64 {
	return vecmath.Heading(a.Velocity)
}
