package components

import "gonum.org/v1/gonum/spatial/r2"

// Food is a stationary source that boids deplete by proximity.
// Lifespan counts down from InitialLifespan; the source is gone at zero.
type Food struct {
	Position        r2.Vec
	Radius          float64
	InitialLifespan float64
	Lifespan        float64
	Seed            int64 // per-source seed for drawing jitter
}

// NewFood creates a food source. lifespan is captured as the initial lifespan for
// the life of the instance.
func NewFood(pos r2.Vec, radius, lifespan float64, seed int64) Food {
	if lifespan < 0 {
		lifespan = 0
	}
	return Food{
		Position:        pos,
		Radius:          radius,
		InitialLifespan: lifespan,
		Lifespan:        lifespan,
		Seed:            seed,
	}
}

// Deplete decrements the lifespan by one, stopping at zero.
func (f *Food) Deplete() {
	f.Lifespan--
	if f.Lifespan < 0 {
		f.Lifespan = 0
	}
}

// Expired reports whether the source should be removed.
func (f *Food) Expired() bool {
	return f.Lifespan <= 0
}

// Freshness returns Lifespan/InitialLifespan in [0,1].
func (f *Food) Freshness() float64 {
	if f.InitialLifespan <= 0 {
		return 0
	}
	r := f.Lifespan / f.InitialLifespan
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
