package components

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestFoodDeplete(t *testing.T) {
	f := NewFood(r2.Vec{X: 5, Y: 5}, 40, 3, 1)
	if f.InitialLifespan != 3 || f.Lifespan != 3 {
		t.Fatalf("unexpected lifespan %v/%v", f.Lifespan, f.InitialLifespan)
	}

	f.Deplete()
	if f.Lifespan != 2 {
		t.Errorf("Lifespan = %v, want 2", f.Lifespan)
	}
	if f.Expired() {
		t.Error("food expired too early")
	}

	f.Deplete()
	f.Deplete()
	if !f.Expired() {
		t.Error("food with lifespan 0 should be expired")
	}

	// Depletion never drives the lifespan negative.
	f.Deplete()
	if f.Lifespan != 0 {
		t.Errorf("Lifespan = %v, want 0", f.Lifespan)
	}
}

func TestFoodFreshness(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		depletes int
		want     float64
	}{
		{"fresh", 10, 0, 1},
		{"half", 10, 5, 0.5},
		{"gone", 10, 12, 0},
		{"zero lifespan", 0, 0, 0},
		{"negative lifespan", -4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFood(r2.Vec{}, 10, tt.initial, 0)
			for i := 0; i < tt.depletes; i++ {
				f.Deplete()
			}
			if got := f.Freshness(); got != tt.want {
				t.Errorf("Freshness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFoodLifespanOne(t *testing.T) {
	f := NewFood(r2.Vec{}, 10, 1, 0)
	if f.Expired() {
		t.Fatal("lifespan 1 food should be present before depletion")
	}
	f.Deplete()
	if !f.Expired() {
		t.Error("lifespan 1 food should expire after one depletion")
	}
}
