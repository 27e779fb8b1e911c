package systems

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/components"
)

func testPredator(x, y float64) components.Agent {
	return components.Agent{
		Position: r2.Vec{X: x, Y: y},
		MaxSpeed: 5,
		MaxForce: 0.5,
	}
}

func TestHuntNearest(t *testing.T) {
	tests := []struct {
		name         string
		boids        []components.Agent
		wantTarget   int
		wantCaptured bool
	}{
		{
			name:       "empty flock",
			boids:      nil,
			wantTarget: -1,
		},
		{
			name:       "out of reach",
			boids:      []components.Agent{testBoid(200, 100, 0, 0), testBoid(150, 100, 0, 0)},
			wantTarget: 1,
		},
		{
			name:         "inside capture radius",
			boids:        []components.Agent{testBoid(300, 300, 0, 0), testBoid(105, 100, 0, 0)},
			wantTarget:   1,
			wantCaptured: true,
		},
		{
			name:         "coincident",
			boids:        []components.Agent{testBoid(100, 100, 0, 0)},
			wantTarget:   0,
			wantCaptured: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := testPredator(100, 100)
			res := Hunt(&pred, components.Predator{CaptureRadius: 10}, snapshotOf(tt.boids...))
			if res.Target != tt.wantTarget {
				t.Errorf("Target = %d, want %d", res.Target, tt.wantTarget)
			}
			if res.Captured != tt.wantCaptured {
				t.Errorf("Captured = %v, want %v", res.Captured, tt.wantCaptured)
			}
		})
	}
}

func TestHuntSeeksTarget(t *testing.T) {
	pred := testPredator(100, 100)
	Hunt(&pred, components.Predator{CaptureRadius: 10}, snapshotOf(testBoid(100, 200, 0, 0)))
	if pred.Acceleration.Y <= 0 {
		t.Errorf("Acceleration = %v, want toward target (+y)", pred.Acceleration)
	}

	// Seek force still applies on capture.
	pred = testPredator(100, 100)
	res := Hunt(&pred, components.Predator{CaptureRadius: 10}, snapshotOf(testBoid(104, 100, 0, 0)))
	if !res.Captured || pred.Acceleration.X <= 0 {
		t.Errorf("captured=%v acceleration=%v, want capture and +x seek", res.Captured, pred.Acceleration)
	}
}

func TestHuntEmptyNoForce(t *testing.T) {
	pred := testPredator(100, 100)
	pred.Velocity = r2.Vec{X: 1, Y: 1}
	Hunt(&pred, components.Predator{CaptureRadius: 10}, nil)
	if pred.Acceleration != (r2.Vec{}) {
		t.Errorf("Acceleration = %v, want zero", pred.Acceleration)
	}
}
