package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/game"
	"github.com/pthm-cable/flock/renderer"
)

const controlsLegend = "LMB: boid | RMB: food | drag: ripple | P: predator | F: fluid | R: restart | Space: pause | Tab: panel"

// App is the raylib window front end.
type App struct {
	game   *game.Game
	sched  *game.FrameScheduler
	canvas *renderer.Canvas
	panel  *ParamsPanel
	hud    *HUD
}

// NewApp creates the front end for g. The window is opened by Run.
func NewApp(g *game.Game) *App {
	w, h := g.Size()
	return &App{
		game:   g,
		sched:  game.NewFrameScheduler(),
		canvas: renderer.NewCanvas(int32(w), int32(h)),
		panel:  NewParamsPanel(10, 10, 220),
		hud:    NewHUD(),
	}
}

// Run opens the window and drives the simulation from the render loop until the
// window is closed or maxTicks (if positive) is reached.
func (a *App) Run(targetFPS int32, maxTicks int) {
	w, h := a.game.Size()
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w), int32(h), "flock")
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	a.canvas.Init()
	defer a.canvas.Unload()

	a.game.Start(a.sched)

	for !rl.WindowShouldClose() {
		a.handleResize()
		a.handleInput()

		if a.sched.RunFrame() > 0 {
			a.canvas.Replay(a.game.Frame())
		}
		a.game.RecordFrame()

		restart := a.draw()
		if restart {
			a.game.Restart()
		}

		if maxTicks > 0 && int(a.game.Tick()) >= maxTicks {
			break
		}
	}

	a.game.Cancel()
}

// draw composes the canvas and the UI for one display frame.
func (a *App) draw() (restart bool) {
	g := a.game
	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.canvas.Draw()
	restart = a.panel.Draw(g.Params())
	a.hud.Draw(HUDData{
		Boids:     g.NumBoids(),
		Predators: g.NumPredators(),
		Food:      g.NumFood(),
		Tick:      g.Tick(),
		FPS:       rl.GetFPS(),
		Paused:    !g.Running(),
	}, screenW)
	a.hud.DrawControls(screenH, controlsLegend)

	rl.EndDrawing()
	return restart
}
