package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

// handleInput applies keyboard and mouse input to the game.
func (a *App) handleInput() {
	g := a.game
	p := g.Params()

	if rl.IsKeyPressed(rl.KeySpace) {
		if g.Running() {
			g.Cancel()
		} else {
			g.Start(a.sched)
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		p.PredatorEnabled = !p.PredatorEnabled
	}
	if rl.IsKeyPressed(rl.KeyF) {
		p.FluidEnabled = !p.FluidEnabled
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Restart()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.panel.Toggle()
	}

	mouse := rl.GetMousePosition()
	if a.panel.Contains(mouse) {
		return
	}
	pos := r2.Vec{X: float64(mouse.X), Y: float64(mouse.Y)}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.SpawnBoidAt(pos)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.SpawnFoodAt(pos)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			g.DisturbAt(pos, g.Config().Wave.CursorPressure)
		}
	}
}

// handleResize follows window size changes.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	a.game.Resize(float64(w), float64(h))
	a.canvas.Resize(int32(w), int32(h))
}
