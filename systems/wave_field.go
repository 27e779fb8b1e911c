package systems

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// WaveField is a double-buffered ripple automaton over a grid of scalar pressure.
// Each step a cell becomes the mean of its four neighbours in the previous buffer
// minus its own value in the current buffer, scaled by damping, and the buffers
// swap. The outer ring of cells is never written and stays at zero.
type WaveField struct {
	Resolution float64 // cell size in world units
	Cols, Rows int

	bufs [2][]float64
	cur  int // index of the current buffer; the previous buffer is 1-cur
}

// NewWaveField allocates a field covering width x height world units.
func NewWaveField(width, height, resolution float64) *WaveField {
	f := &WaveField{Resolution: resolution}
	f.Resize(width, height)
	return f
}

// Resize recomputes the grid dimensions and reallocates both buffers at zero.
// Existing disturbances are discarded.
func (f *WaveField) Resize(width, height float64) {
	res := f.Resolution
	if res <= 0 {
		res = 1
		f.Resolution = res
	}
	f.Cols = int(math.Max(width, 0)/res) + 1
	f.Rows = int(math.Max(height, 0)/res) + 1
	n := f.Cols * f.Rows
	f.bufs[0] = make([]float64, n)
	f.bufs[1] = make([]float64, n)
	f.cur = 0
}

// hasInterior reports whether any cell lies off the border.
func (f *WaveField) hasInterior() bool {
	return f.Cols >= 3 && f.Rows >= 3
}

// Disturb writes pressure into the previous buffer at the interior cell nearest to
// world coordinates (x, y). It overwrites rather than accumulates.
func (f *WaveField) Disturb(x, y, pressure float64) {
	if !f.hasInterior() {
		return
	}
	col := clampInt(int(math.Round(x/f.Resolution)), 1, f.Cols-2)
	row := clampInt(int(math.Round(y/f.Resolution)), 1, f.Rows-2)
	f.bufs[1-f.cur][row*f.Cols+col] = pressure
}

// Update advances the field one step with the given damping factor and swaps buffers.
func (f *WaveField) Update(damping float64) {
	if !f.hasInterior() {
		return
	}
	cur := f.bufs[f.cur]
	prev := f.bufs[1-f.cur]
	cols := f.Cols

	for row := 1; row < f.Rows-1; row++ {
		base := row * cols
		for col := 1; col < cols-1; col++ {
			i := base + col
			avg := (prev[i-1] + prev[i+1] + prev[i-cols] + prev[i+cols]) / 4
			cur[i] = (avg - cur[i]) * damping
		}
	}

	f.cur = 1 - f.cur
}

// Current returns the current buffer (the older of the two after a step).
func (f *WaveField) Current() []float64 { return f.bufs[f.cur] }

// Previous returns the previous buffer, which holds the most recently computed
// values and any disturbances written since the last step.
func (f *WaveField) Previous() []float64 { return f.bufs[1-f.cur] }

// Value returns the latest value at a cell, or 0 outside the grid.
func (f *WaveField) Value(col, row int) float64 {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return 0
	}
	return f.Previous()[row*f.Cols+col]
}

// Each calls fn for every interior cell with its latest value.
func (f *WaveField) Each(fn func(col, row int, v float64)) {
	if !f.hasInterior() {
		return
	}
	latest := f.Previous()
	for row := 1; row < f.Rows-1; row++ {
		for col := 1; col < f.Cols-1; col++ {
			fn(col, row, latest[row*f.Cols+col])
		}
	}
}

// Energy returns the larger absolute sum of the two buffers. A step can never
// produce more than damping times the sum of both, so for damping <= 0.5 this
// value never increases. Above that a spreading ripple can briefly raise it
// from one step to the next, though it still decays over time.
func (f *WaveField) Energy() float64 {
	if len(f.bufs[0]) == 0 {
		return 0
	}
	return math.Max(floats.Norm(f.bufs[0], 1), floats.Norm(f.bufs[1], 1))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
