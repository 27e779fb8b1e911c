// Package systems provides the steering, hunting, neighbour lookup and wave field
// computations for the simulation.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/vecmath"
)

// SpatialGrid buckets snapshot indices by cell so neighbour queries only visit
// nearby cells. Distances are plain Euclidean; queries do not wrap across edges.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int // flat grid of snapshot indices
}

// NewSpatialGrid creates a spatial grid covering the given world size.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	g := &SpatialGrid{cellSize: cellSize}
	g.Resize(width, height)
	return g
}

// Resize reallocates the grid for a new world size. The grid is left empty.
func (g *SpatialGrid) Resize(width, height float64) {
	if g.cellSize <= 0 {
		g.cellSize = 1
	}
	g.cols = int(max(width, 0)/g.cellSize) + 1
	g.rows = int(max(height, 0)/g.cellSize) + 1

	g.cells = make([][]int, g.cols*g.rows)
	for i := range g.cells {
		g.cells[i] = make([]int, 0, 8) // pre-allocate small capacity
	}
}

// Clear removes all entries from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds snapshot index idx at the given position.
func (g *SpatialGrid) Insert(idx int, pos r2.Vec) {
	col, row := g.cell(pos)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], idx)
}

// Build clears the grid and inserts every snapshot entry.
func (g *SpatialGrid) Build(snapshot []Neighbor) {
	g.Clear()
	for i := range snapshot {
		g.Insert(i, snapshot[i].Position)
	}
}

// QueryRadiusInto appends to dst every snapshot entry within radius of pos and
// returns the updated slice. Reuse dst across calls to avoid allocations.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, pos r2.Vec, radius float64, snapshot []Neighbor) []Neighbor {
	cellRadius := int(radius/g.cellSize) + 1
	centerCol, centerRow := g.cell(pos)

	minCol := clampInt(centerCol-cellRadius, 0, g.cols-1)
	maxCol := clampInt(centerCol+cellRadius, 0, g.cols-1)
	minRow := clampInt(centerRow-cellRadius, 0, g.rows-1)
	maxRow := clampInt(centerRow+cellRadius, 0, g.rows-1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, idx := range g.cells[row*g.cols+col] {
				if vecmath.Distance(pos, snapshot[idx].Position) <= radius {
					dst = append(dst, snapshot[idx])
				}
			}
		}
	}

	return dst
}

// cell returns the clamped cell coordinates for a world position.
func (g *SpatialGrid) cell(pos r2.Vec) (col, row int) {
	col = clampInt(int(pos.X/g.cellSize), 0, g.cols-1)
	row = clampInt(int(pos.Y/g.cellSize), 0, g.rows-1)
	return col, row
}
