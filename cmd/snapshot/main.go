// Snapshot tool - runs the simulation offscreen and saves the final frame as a PNG.
//
// Usage: go run ./cmd/snapshot -ticks 600 -out flock.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/game"
	"github.com/pthm-cable/flock/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to a .yaml or .toml config (empty = use defaults)")
	outPath := flag.String("out", "flock.png", "Output PNG path")
	ticks := flag.Int("ticks", 600, "Ticks to simulate before capturing")
	seed := flag.Int64("seed", 1, "RNG seed")
	predators := flag.Int("predators", 0, "Predators placed at the start")
	food := flag.Int("food", 0, "Food sources placed at the start")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	g, err := game.NewGame(game.Options{Config: cfg, Seed: *seed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	defer g.Unload()

	w, h := g.Size()
	for i := 0; i < *predators; i++ {
		g.SpawnPredatorAt(r2.Vec{X: w * float64(i+1) / float64(*predators+1), Y: h / 2})
	}
	for i := 0; i < *food; i++ {
		g.SpawnFoodAt(r2.Vec{X: w * float64(i+1) / float64(*food+1), Y: h / 3})
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(w), int32(h), "Flock Snapshot")
	defer rl.CloseWindow()

	canvas := renderer.NewCanvas(int32(w), int32(h))
	canvas.Init()
	defer canvas.Unload()

	// Every tick is replayed so trails build up as they would on screen.
	for i := 0; i < *ticks; i++ {
		g.Step()
		canvas.Replay(g.Frame())
	}

	if canvas.Export(*outPath) {
		fmt.Printf("Tick %d rendered to: %s (%dx%d, %d boids)\n", g.Tick(), *outPath, int(w), int(h), g.NumBoids())
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
