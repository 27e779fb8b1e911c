// Package draw turns simulation state into an ordered list of renderer-agnostic
// draw commands. Backends replay the commands in order.
package draw

import (
	"math"

	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/components"
	"github.com/pthm-cable/flock/systems"
)

// Op identifies a draw primitive.
type Op uint8

const (
	OpClear    Op = iota // fill the whole surface with Color
	OpOverlay            // translucent rectangle over the whole surface (fade trails)
	OpCell               // filled wave field cell at (X, Y) sized W x H
	OpDot                // filled circle at (X, Y) with radius Size
	OpTriangle           // filled triangle P1 (tip), P2, P3
)

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Palette.
var (
	Background    = Color{R: 8, G: 12, B: 24, A: 255}
	TrailFade     = Color{R: 8, G: 12, B: 24, A: 64}
	BoidColor     = Color{R: 240, G: 240, B: 240, A: 255}
	PredatorColor = Color{R: 230, G: 60, B: 60, A: 255}
	FoodColor     = Color{R: 110, G: 220, B: 120, A: 255}
	WaveCrest     = Color{R: 70, G: 140, B: 230, A: 255}
	WaveTrough    = Color{R: 4, G: 6, B: 14, A: 255}
)

// Command is a single draw primitive. Only the fields its Op uses are set.
type Command struct {
	Op         Op
	X, Y       float64
	W, H       float64
	Size       float64
	P1, P2, P3 r2.Vec
	Color      Color
}

// Frame is the ordered command list for one tick.
type Frame struct {
	Width, Height float64
	Commands      []Command
}

// AgentView is what the drawing pass needs from an agent.
type AgentView struct {
	Position r2.Vec
	Heading  float64
	Kind     components.Kind
}

// Scene gathers the state drawn for one frame.
type Scene struct {
	Width, Height float64
	Tick          int32
	Fluid         bool // cell grid pass instead of fade overlay
	Field         *systems.WaveField
	Food          []components.Food
	Agents        []AgentView
}

// Triangle sizes in world units; the tip sits at +Length along the heading.
const (
	boidLength     = 10.0
	boidHalfWidth  = 5.0
	predatorScale  = 1.8
	dotRadius      = 1.6
	cellThreshold  = 0.5  // cells quieter than this are not drawn
	waveFullScale  = 40.0 // |value| at which a cell reaches full colour
	dotJitterSpeed = 0.03
)

// Builder assembles frames. It owns the noise source used for food jitter.
type Builder struct {
	noise       *perlin.Perlin
	dotsPerFood int
	buf         []Command
}

// NewBuilder creates a builder drawing dotsPerFood dots per food source.
func NewBuilder(dotsPerFood int, seed int64) *Builder {
	if dotsPerFood < 1 {
		dotsPerFood = 1
	}
	return &Builder{
		noise:       perlin.NewPerlin(2, 2, 3, seed),
		dotsPerFood: dotsPerFood,
	}
}

// Build produces the frame for scene: the background pass first, then food, then agents.
// The returned command slice is reused by the next Build call.
func (b *Builder) Build(s Scene) Frame {
	cmds := b.buf[:0]

	if s.Fluid {
		cmds = append(cmds, Command{Op: OpClear, Color: Background})
		cmds = appendField(cmds, s.Field)
	} else {
		cmds = append(cmds, Command{Op: OpOverlay, W: s.Width, H: s.Height, Color: TrailFade})
	}

	for i := range s.Food {
		cmds = b.appendFood(cmds, &s.Food[i], s.Tick)
	}

	for _, a := range s.Agents {
		cmds = append(cmds, triangle(a))
	}

	b.buf = cmds
	return Frame{Width: s.Width, Height: s.Height, Commands: cmds}
}

func appendField(cmds []Command, f *systems.WaveField) []Command {
	if f == nil {
		return cmds
	}
	res := f.Resolution
	f.Each(func(col, row int, v float64) {
		if math.Abs(v) < cellThreshold {
			return
		}
		cmds = append(cmds, Command{
			Op:    OpCell,
			X:     (float64(col) - 0.5) * res,
			Y:     (float64(row) - 0.5) * res,
			W:     res,
			H:     res,
			Color: WaveColor(v),
		})
	})
	return cmds
}

// WaveColor maps a field value to a cell colour: crests blend toward WaveCrest,
// troughs toward WaveTrough, both opaque over the background.
func WaveColor(v float64) Color {
	t := math.Min(math.Abs(v)/waveFullScale, 1)
	target := WaveCrest
	if v < 0 {
		target = WaveTrough
	}
	return Color{
		R: lerp8(Background.R, target.R, t),
		G: lerp8(Background.G, target.G, t),
		B: lerp8(Background.B, target.B, t),
		A: 255,
	}
}

// appendFood emits the dot cloud for one source. Spread and opacity scale with
// freshness; each dot drifts along a noise path keyed by the source seed.
func (b *Builder) appendFood(cmds []Command, f *components.Food, tick int32) []Command {
	fresh := f.Freshness()
	if fresh <= 0 {
		return cmds
	}
	spread := f.Radius * fresh
	alpha := uint8(math.Round(255 * fresh))
	t := float64(tick) * dotJitterSpeed
	base := float64(f.Seed%10007) * 1.7

	for k := 0; k < b.dotsPerFood; k++ {
		kk := float64(k)
		angle := 2*math.Pi*kk/float64(b.dotsPerFood) + b.noise.Noise2D(base+kk*0.61, t)*math.Pi
		dist := spread * (0.25 + 0.75*math.Abs(b.noise.Noise2D(base-kk*0.37, t+11.3)))
		if dist > spread {
			dist = spread
		}
		c := FoodColor
		c.A = alpha
		cmds = append(cmds, Command{
			Op:    OpDot,
			X:     f.Position.X + math.Cos(angle)*dist,
			Y:     f.Position.Y + math.Sin(angle)*dist,
			Size:  dotRadius,
			Color: c,
		})
	}
	return cmds
}

// triangle returns the heading-oriented triangle for an agent.
func triangle(a AgentView) Command {
	length, half := boidLength, boidHalfWidth
	color := BoidColor
	if a.Kind == components.KindPredator {
		length *= predatorScale
		half *= predatorScale
		color = PredatorColor
	}

	cos, sin := math.Cos(a.Heading), math.Sin(a.Heading)
	rot := func(x, y float64) r2.Vec {
		return r2.Vec{
			X: a.Position.X + x*cos - y*sin,
			Y: a.Position.Y + x*sin + y*cos,
		}
	}

	return Command{
		Op:    OpTriangle,
		X:     a.Position.X,
		Y:     a.Position.Y,
		Size:  length,
		P1:    rot(length, 0),
		P2:    rot(-half, half),
		P3:    rot(-half, -half),
		Color: color,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
