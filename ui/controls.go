package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/config"
)

// ParamsPanel renders the live parameter sliders, toggles and the restart button.
type ParamsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	height   int32 // height of the last drawn panel
	visible  bool
}

// NewParamsPanel creates a visible parameter panel.
func NewParamsPanel(x, y, width int32) *ParamsPanel {
	return &ParamsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (c *ParamsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a screen point falls on the visible panel.
func (c *ParamsPanel) Contains(p rl.Vector2) bool {
	if !c.visible {
		return false
	}
	rect := rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: float32(c.width), Height: float32(c.height)}
	return rl.CheckCollisionPointRec(p, rect)
}

// Draw renders the panel and writes slider and checkbox changes into params.
// It reports whether the restart button was pressed.
func (c *ParamsPanel) Draw(params *config.Params) (restart bool) {
	if !c.visible {
		return false
	}

	r := c.renderer
	th := r.Theme
	inner := c.width - th.Padding*2

	c.height = th.Padding*2 + th.LineHeight + 4 +
		int32(len(ParamSliders))*(th.LineHeight+th.SliderHeight+4) +
		int32(len(ParamToggles))*(th.LineHeight+4) + 28
	r.DrawPanel(c.x, c.y, c.width, c.height)

	x := c.x + th.Padding
	y := c.y + th.Padding

	rl.DrawText("Parameters", x, y, 16, rl.White)
	y += th.LineHeight + 4

	for _, sd := range ParamSliders {
		v := sd.Value(params)
		rl.DrawText(sd.Label, x, y, th.FontSize, th.LabelColor)
		readout := fmt.Sprintf(sd.Format, *v)
		rl.DrawText(readout, x+inner-rl.MeasureText(readout, th.FontSize), y, th.FontSize, th.ValueColor)
		y += th.LineHeight

		bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(inner), Height: float32(th.SliderHeight)}
		if nv := gui.SliderBar(bounds, "", "", float32(*v), sd.Min, sd.Max); nv != float32(*v) {
			*v = float64(nv)
		}
		y += th.SliderHeight + 4
	}

	for _, td := range ParamToggles {
		v := td.Value(params)
		label := fmt.Sprintf("%s [%s]", td.Label, td.KeyLabel)
		*v = gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y), Width: 12, Height: 12}, label, *v)
		y += th.LineHeight + 4
	}

	return gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(inner), Height: 22}, "Restart [R]")
}
