// Wave field preview tool - interactive ripple tuning with sliders.
//
// Usage: go run ./cmd/wavepreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/draw"
	"github.com/pthm-cable/flock/renderer"
	"github.com/pthm-cable/flock/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// WaveParams holds the tunable wave settings.
type WaveParams struct {
	Damping    float32
	Resolution float32
	Pressure   float32
	RainChance float32 // probability of a random drop per frame
}

func defaultParams(cfg *config.Config) WaveParams {
	return WaveParams{
		Damping:    float32(cfg.Params.WaveDamping),
		Resolution: float32(cfg.Wave.Resolution),
		Pressure:   float32(cfg.Wave.CursorPressure),
		RainChance: 0.05,
	}
}

func main() {
	configPath := flag.String("config", "", "Config file to start from (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rl.InitWindow(windowWidth, windowHeight, "Wave Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultParams(config.Cfg())
	field := systems.NewWaveField(previewSize, previewSize, float64(params.Resolution))

	preview := rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize}
	raining := false
	paused := false

	for !rl.WindowShouldClose() {
		// Disturb under the cursor while the left button is held
		mouse := rl.GetMousePosition()
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(mouse, preview) {
			field.Disturb(float64(mouse.X-preview.X), float64(mouse.Y-preview.Y), float64(params.Pressure))
		}

		if raining && float32(rl.GetRandomValue(0, 999))/1000 < params.RainChance {
			x := float64(rl.GetRandomValue(0, previewSize))
			y := float64(rl.GetRandomValue(0, previewSize))
			field.Disturb(x, y, float64(params.Pressure))
		}

		if !paused {
			field.Update(float64(params.Damping))
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw field
		rl.DrawRectangleRec(preview, renderer.Color(draw.Background))
		res := float32(field.Resolution)
		field.Each(func(col, row int, v float64) {
			if v == 0 {
				return
			}
			rl.DrawRectangleV(
				rl.Vector2{X: preview.X + float32(col)*res - res/2, Y: preview.Y + float32(row)*res - res/2},
				rl.Vector2{X: res, Y: res},
				renderer.Color(draw.WaveColor(v)),
			)
		})
		rl.DrawRectangleLinesEx(preview, 1, rl.DarkGray)

		// Draw stats
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Grid: %dx%d  Energy: %.1f", field.Cols, field.Rows, field.Energy()), 15, statsY, 16, rl.DarkGray)
		rl.DrawText("Hold left mouse to disturb", 15, statsY+20, 16, rl.Gray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Wave Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		params.Damping = slider(panelX, &panelY, "Damping (per-step decay)", "0.80", "0.999", params.Damping, 0.8, 0.999, "%.3f")

		newRes := slider(panelX, &panelY, "Resolution (cell size)", "4", "32", params.Resolution, 4, 32, "%.0f")
		if int(newRes) != int(params.Resolution) {
			// Resizing the grid discards the current ripples
			params.Resolution = float32(int(newRes))
			field = systems.NewWaveField(previewSize, previewSize, float64(params.Resolution))
		}

		params.Pressure = slider(panelX, &panelY, "Pressure (per disturbance)", "10", "1000", params.Pressure, 10, 1000, "%.0f")
		params.RainChance = slider(panelX, &panelY, "Rain (drops per frame)", "0", "1", params.RainChance, 0, 1, "%.2f")

		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(raining, "Stop Rain", "Rain")) {
			raining = !raining
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Clear") {
			field.Resize(previewSize, previewSize)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(config.Cfg())
			field = systems.NewWaveField(previewSize, previewSize, float64(params.Resolution))
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yaml := yamlSnippet(params)
		rl.DrawText(yaml, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider with its current value and advances y.
func slider(x float32, y *float32, label, minText, maxText string, value, lo, hi float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		minText, maxText,
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}

// yamlSnippet renders the settings as config keys.
func yamlSnippet(p WaveParams) string {
	return fmt.Sprintf(`wave:
  resolution: %.0f
  cursor_pressure: %.0f
params:
  wave_damping: %.3f`, p.Resolution, p.Pressure, p.Damping)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
