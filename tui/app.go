package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/game"
)

// App is the terminal front end.
type App struct {
	game    *game.Game
	screen  tcell.Screen
	sched   *game.FrameScheduler
	painter *Painter
	buttons tcell.ButtonMask // buttons held at the last mouse event
}

// NewApp creates a terminal front end drawing g on an initialized screen.
// The world is resized to the terminal.
func NewApp(g *game.Game, screen tcell.Screen) *App {
	a := &App{
		game:    g,
		screen:  screen,
		sched:   game.NewFrameScheduler(),
		painter: NewPainter(screen),
	}
	a.resize()
	return a
}

// Run drives the simulation at fps frames per second until the user quits or
// maxTicks (if positive) is reached.
func (a *App) Run(fps int, maxTicks int) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.game.Start(a.sched)
	defer a.game.Cancel()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			if a.Frame() && maxTicks > 0 && int(a.game.Tick()) >= maxTicks {
				return
			}
		}
	}
}

// Frame runs the scheduled tick, if any, and repaints. It reports whether a
// tick ran.
func (a *App) Frame() bool {
	if a.sched.RunFrame() == 0 {
		return false
	}
	a.game.RecordFrame()
	a.painter.Paint(a.game.Frame())
	return true
}

// HandleEvent applies one terminal event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	g := a.game
	p := g.Params()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				if g.Running() {
					g.Cancel()
				} else {
					g.Start(a.sched)
				}
			case 'p':
				p.PredatorEnabled = !p.PredatorEnabled
			case 'f':
				p.FluidEnabled = !p.FluidEnabled
			case 'r':
				g.Restart()
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := CellAt(col, row)
		pos := r2.Vec{X: x, Y: y}
		buttons := ev.Buttons()
		pressed := buttons &^ a.buttons
		a.buttons = buttons

		switch {
		case pressed&tcell.Button1 != 0:
			g.SpawnBoidAt(pos)
		case pressed&tcell.Button2 != 0:
			g.SpawnFoodAt(pos)
		case buttons&(tcell.Button1|tcell.Button3) != 0:
			// Held and moving: drag ripples the field.
			g.DisturbAt(pos, g.Config().Wave.CursorPressure)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	a.game.Resize(WorldSize(cols, rows))
}
