package vecmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name string
		v    r2.Vec
		want float64
	}{
		{"zero", r2.Vec{}, 0},
		{"3-4-5", r2.Vec{X: 3, Y: 4}, 5},
		{"negative", r2.Vec{X: -6, Y: -8}, 10},
		{"axis", r2.Vec{X: 0, Y: 2.5}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Magnitude(tt.v); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Magnitude(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestSetMagnitudeZeroVector(t *testing.T) {
	for _, l := range []float64{0, 1, 4, 1e9, -3} {
		got := SetMagnitude(r2.Vec{}, l)
		if got != (r2.Vec{}) {
			t.Errorf("SetMagnitude(zero, %v) = %v, want zero", l, got)
		}
		if !Finite(got) {
			t.Errorf("SetMagnitude(zero, %v) produced non-finite %v", l, got)
		}
	}
}

func TestSetMagnitude(t *testing.T) {
	tests := []struct {
		name   string
		v      r2.Vec
		length float64
	}{
		{"shrink", r2.Vec{X: 30, Y: 40}, 4},
		{"grow", r2.Vec{X: 0.1, Y: -0.2}, 4},
		{"unit", r2.Vec{X: -2, Y: 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetMagnitude(tt.v, tt.length)
			if math.Abs(Magnitude(got)-tt.length) > 1e-9 {
				t.Errorf("magnitude = %v, want %v", Magnitude(got), tt.length)
			}
			// Direction is preserved.
			if math.Abs(Heading(got)-Heading(tt.v)) > 1e-9 {
				t.Errorf("heading = %v, want %v", Heading(got), Heading(tt.v))
			}
		})
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name   string
		v      r2.Vec
		maxLen float64
		want   float64
	}{
		{"within bound", r2.Vec{X: 0.1, Y: 0.1}, 0.2, math.Hypot(0.1, 0.1)},
		{"exactly at bound", r2.Vec{X: 3, Y: 4}, 5, 5},
		{"over bound", r2.Vec{X: 30, Y: 40}, 5, 5},
		{"zero", r2.Vec{}, 5, 0},
		{"zero bound", r2.Vec{X: 1, Y: 1}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Limit(tt.v, tt.maxLen)
			if math.Abs(Magnitude(got)-tt.want) > 1e-9 {
				t.Errorf("Limit(%v, %v) magnitude = %v, want %v", tt.v, tt.maxLen, Magnitude(got), tt.want)
			}
		})
	}
}

func TestLimitIdempotent(t *testing.T) {
	vs := []r2.Vec{{X: 1, Y: 2}, {X: -100, Y: 3}, {X: 0.01, Y: 0}, {}}
	for _, v := range vs {
		once := Limit(v, 0.5)
		twice := Limit(once, 0.5)
		if math.Abs(once.X-twice.X) > 1e-12 || math.Abs(once.Y-twice.Y) > 1e-12 {
			t.Errorf("Limit not idempotent for %v: %v then %v", v, once, twice)
		}
	}

	compliant := r2.Vec{X: 0.1, Y: -0.2}
	if got := Limit(compliant, 1); got != compliant {
		t.Errorf("compliant vector changed: %v -> %v", compliant, got)
	}
}

func TestDistance(t *testing.T) {
	a := r2.Vec{X: 1, Y: 1}
	b := r2.Vec{X: 4, Y: 5}
	if got := Distance(a, b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Distance(a, a); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}
