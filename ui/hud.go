package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Boids     int
	Predators int
	Food      int
	Tick      int32
	FPS       int32
	Paused    bool
}

// HUD renders the population readout and the control legend.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD in the top-right corner.
func (h *HUD) Draw(data HUDData, screenWidth int32) {
	const width = 170
	r := h.renderer
	x := screenWidth - width - 10
	y := int32(10)

	r.DrawPanel(x, y, width, 5*r.Theme.LineHeight+r.Theme.Padding*2)
	x += r.Theme.Padding
	y += r.Theme.Padding

	y = r.DrawLabelValue(x, y, "Boids", fmt.Sprintf("%d", data.Boids))
	y = r.DrawLabelValue(x, y, "Predators", fmt.Sprintf("%d", data.Predators))
	y = r.DrawLabelValue(x, y, "Food", fmt.Sprintf("%d", data.Food))
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d", data.Tick))

	status := fmt.Sprintf("FPS %d", data.FPS)
	color := r.Theme.ValueColor
	if data.Paused {
		status = "PAUSED"
		color = rl.Yellow
	}
	rl.DrawText(status, x, y, r.Theme.FontSize, color)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
