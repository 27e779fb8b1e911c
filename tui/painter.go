// Package tui renders the simulation into a terminal with tcell.
package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/flock/draw"
)

// World units covered by one terminal cell. Cells are roughly twice as tall as
// they are wide.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Arrows by heading octant, starting east and turning clockwise (screen y grows down).
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

const foodRune = '·'

// WorldSize returns the world dimensions shown by a terminal of cols x rows.
func WorldSize(cols, rows int) (width, height float64) {
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

// CellAt maps a terminal cell to the world position at its centre.
func CellAt(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// Painter replays draw commands onto a tcell screen.
type Painter struct {
	screen tcell.Screen
}

// NewPainter creates a painter for screen.
func NewPainter(screen tcell.Screen) *Painter {
	return &Painter{screen: screen}
}

// Paint draws the frame and shows it. Translucent overlays have no terminal
// equivalent; they clear the screen instead.
func (p *Painter) Paint(f draw.Frame) {
	for i := range f.Commands {
		p.paint(&f.Commands[i])
	}
	p.screen.Show()
}

func (p *Painter) paint(cmd *draw.Command) {
	switch cmd.Op {
	case draw.OpClear:
		p.fill(tcell.StyleDefault.Background(color(cmd.Color)))
	case draw.OpOverlay:
		p.fill(tcell.StyleDefault.Background(tcell.ColorBlack))
	case draw.OpCell:
		col, row := cellOf(cmd.X+cmd.W/2, cmd.Y+cmd.H/2)
		p.setBackground(col, row, color(cmd.Color))
	case draw.OpDot:
		col, row := cellOf(cmd.X, cmd.Y)
		c := cmd.Color
		// Terminals have no alpha; fade by darkening instead.
		c.R, c.G, c.B = scale8(c.R, c.A), scale8(c.G, c.A), scale8(c.B, c.A)
		p.setRune(col, row, foodRune, color(c), false)
	case draw.OpTriangle:
		col, row := cellOf(cmd.X, cmd.Y)
		heading := math.Atan2(cmd.P1.Y-cmd.Y, cmd.P1.X-cmd.X)
		bold := cmd.Color == draw.PredatorColor
		p.setRune(col, row, Arrow(heading), color(cmd.Color), bold)
	}
}

// fill sets every cell to a blank with style.
func (p *Painter) fill(style tcell.Style) {
	p.screen.SetStyle(style)
	p.screen.Clear()
}

func (p *Painter) setBackground(col, row int, bg tcell.Color) {
	if !p.inBounds(col, row) {
		return
	}
	mainc, combc, style, _ := p.screen.GetContent(col, row)
	p.screen.SetContent(col, row, mainc, combc, style.Background(bg))
}

func (p *Painter) setRune(col, row int, r rune, fg tcell.Color, bold bool) {
	if !p.inBounds(col, row) {
		return
	}
	_, _, style, _ := p.screen.GetContent(col, row)
	p.screen.SetContent(col, row, r, nil, style.Foreground(fg).Bold(bold))
}

func (p *Painter) inBounds(col, row int) bool {
	w, h := p.screen.Size()
	return col >= 0 && row >= 0 && col < w && row < h
}

// Arrow returns the arrow rune closest to heading (radians).
func Arrow(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

func cellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func color(c draw.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func scale8(v, alpha uint8) uint8 {
	return uint8(uint16(v) * uint16(alpha) / 255)
}
