package components

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/vecmath"
)

func TestIntegrateOrder(t *testing.T) {
	a := Agent{
		Position: r2.Vec{X: 10, Y: 10},
		Velocity: r2.Vec{X: 1, Y: 0},
		MaxSpeed: 4,
		MaxForce: 0.2,
	}
	a.ApplyForce(r2.Vec{X: 0, Y: 0.5})
	a.ApplyForce(r2.Vec{X: 0, Y: 0.5})
	a.Integrate()

	// Position moves by the velocity from before the forces were applied.
	if a.Position != (r2.Vec{X: 11, Y: 10}) {
		t.Errorf("Position = %v, want {11 10}", a.Position)
	}
	if a.Velocity != (r2.Vec{X: 1, Y: 1}) {
		t.Errorf("Velocity = %v, want {1 1}", a.Velocity)
	}
	if a.Acceleration != (r2.Vec{}) {
		t.Errorf("Acceleration = %v, want zero", a.Acceleration)
	}
}

func TestIntegrateClampsSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := Agent{
			Velocity: r2.Vec{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10},
			MaxSpeed: 0.5 + rng.Float64()*5,
		}
		n := rng.Intn(6)
		for j := 0; j < n; j++ {
			a.ApplyForce(r2.Vec{X: rng.NormFloat64() * 50, Y: rng.NormFloat64() * 50})
		}
		a.Integrate()
		if got := vecmath.Magnitude(a.Velocity); got > a.MaxSpeed+1e-9 {
			t.Fatalf("case %d: speed %v exceeds max %v", i, got, a.MaxSpeed)
		}
	}
}

func TestWrapEdges(t *testing.T) {
	tests := []struct {
		name string
		pos  r2.Vec
		want r2.Vec
	}{
		{"inside", r2.Vec{X: 50, Y: 50}, r2.Vec{X: 50, Y: 50}},
		{"past right", r2.Vec{X: 101, Y: 50}, r2.Vec{X: 0, Y: 50}},
		{"past left", r2.Vec{X: -1, Y: 50}, r2.Vec{X: 100, Y: 50}},
		{"past bottom", r2.Vec{X: 50, Y: 81}, r2.Vec{X: 50, Y: 0}},
		{"past top", r2.Vec{X: 50, Y: -0.5}, r2.Vec{X: 50, Y: 80}},
		{"corner", r2.Vec{X: 120, Y: -3}, r2.Vec{X: 0, Y: 80}},
		{"on bound", r2.Vec{X: 100, Y: 80}, r2.Vec{X: 100, Y: 80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Agent{Position: tt.pos}
			a.WrapEdges(100, 80)
			if a.Position != tt.want {
				t.Errorf("WrapEdges(%v) = %v, want %v", tt.pos, a.Position, tt.want)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	a := Agent{Velocity: r2.Vec{X: 0, Y: 1}}
	if math.Abs(a.Heading()-math.Pi/2) > 1e-12 {
		t.Errorf("Heading = %v, want pi/2", a.Heading())
	}
}
