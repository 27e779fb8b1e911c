package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/vecmath"
)

// HuntResult describes one predator's hunt for a tick.
type HuntResult struct {
	Target   int     // index into the boid snapshot, -1 when the flock is empty
	Distance float64 // distance to the target
	Captured bool    // target was inside the capture radius
}

// Hunt finds the nearest boid by linear scan, reports whether it is within the
// capture radius and applies a seek force toward its snapshot position. The seek
// happens whether or not the target is captured. An empty flock yields no force.
func Hunt(a *components.Agent, p components.Predator, boids []Neighbor) HuntResult {
	res := HuntResult{Target: -1}
	for i := range boids {
		d := vecmath.Distance(a.Position, boids[i].Position)
		if res.Target < 0 || d < res.Distance {
			res.Target = i
			res.Distance = d
		}
	}
	if res.Target < 0 {
		return res
	}

	res.Captured = res.Distance < p.CaptureRadius
	a.ApplyForce(steer(a, r2.Sub(boids[res.Target].Position, a.Position)))
	return res
}
