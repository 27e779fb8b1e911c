// Package renderer replays draw commands with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/draw"
)

// Canvas is a persistent render target the simulation draws into. It is kept
// between frames so the translucent fade overlay leaves trails.
type Canvas struct {
	target      rl.RenderTexture2D
	width       int32
	height      int32
	initialized bool
}

// NewCanvas creates a canvas of the given size.
func NewCanvas(width, height int32) *Canvas {
	return &Canvas{width: width, height: height}
}

// Init allocates the render texture (must be called after the raylib window is created).
func (c *Canvas) Init() {
	if c.initialized {
		return
	}

	c.target = rl.LoadRenderTexture(c.width, c.height)

	rl.BeginTextureMode(c.target)
	rl.ClearBackground(Color(draw.Background))
	rl.EndTextureMode()

	c.initialized = true
}

// Resize reallocates the texture for a new size. Existing trails are lost.
func (c *Canvas) Resize(width, height int32) {
	if width == c.width && height == c.height {
		return
	}
	c.Unload()
	c.width, c.height = width, height
}

// Replay draws the frame's commands, in order, into the canvas.
func (c *Canvas) Replay(f draw.Frame) {
	if !c.initialized {
		c.Init()
	}

	rl.BeginTextureMode(c.target)
	for i := range f.Commands {
		drawCommand(&f.Commands[i])
	}
	rl.EndTextureMode()
}

// Draw blits the canvas to the screen at the origin.
func (c *Canvas) Draw() {
	if !c.initialized {
		return
	}
	// Render textures are stored bottom-up.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(c.width), Height: -float32(c.height)}
	rl.DrawTextureRec(c.target.Texture, src, rl.Vector2{}, rl.White)
}

// Unload frees resources.
func (c *Canvas) Unload() {
	if c.initialized {
		rl.UnloadRenderTexture(c.target)
		c.initialized = false
	}
}

func drawCommand(cmd *draw.Command) {
	col := Color(cmd.Color)

	switch cmd.Op {
	case draw.OpClear:
		rl.ClearBackground(col)
	case draw.OpOverlay:
		rl.DrawRectangle(0, 0, int32(cmd.W), int32(cmd.H), col)
	case draw.OpCell:
		rl.DrawRectangleV(
			rl.Vector2{X: float32(cmd.X), Y: float32(cmd.Y)},
			rl.Vector2{X: float32(cmd.W), Y: float32(cmd.H)},
			col,
		)
	case draw.OpDot:
		rl.DrawCircleV(rl.Vector2{X: float32(cmd.X), Y: float32(cmd.Y)}, float32(cmd.Size), col)
	case draw.OpTriangle:
		// Raylib wants counter-clockwise winding.
		rl.DrawTriangle(
			rl.Vector2{X: float32(cmd.P1.X), Y: float32(cmd.P1.Y)},
			rl.Vector2{X: float32(cmd.P3.X), Y: float32(cmd.P3.Y)},
			rl.Vector2{X: float32(cmd.P2.X), Y: float32(cmd.P2.Y)},
			col,
		)
	}
}

// Color converts a draw colour to raylib's.
func Color(c draw.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Export writes the canvas contents to an image file. The format follows the
// file extension.
func (c *Canvas) Export(path string) bool {
	if !c.initialized {
		return false
	}
	img := rl.LoadImageFromTexture(c.target.Texture)
	// Render textures are stored bottom-up.
	rl.ImageFlipVertical(img)
	ok := rl.ExportImage(*img, path)
	rl.UnloadImage(img)
	return ok
}
