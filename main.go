package main

import (
	"flag"
	"log"
	"os"

	"github.com/veresna/gridsnake/boardimg"
	"github.com/veresna/gridsnake/config"
	"github.com/veresna/gridsnake/game"
	"github.com/veresna/gridsnake/options"
	"github.com/veresna/gridsnake/tui"
)

func main() {
	configPath := flag.String("config", "./config.json", "path to the config file")
	minimal := flag.Bool("minimal", false, "skip the menus and boot straight into a game")
	seed := flag.Int64("seed", 0, "RNG seed, overrides the config value (0 seeds from the clock)")
	export := flag.Bool("export", false, "save a PNG of every frame to the export dir")
	flag.Parse()

	// Initialize the configuration
	cfg := config.LoadConfig(*configPath)
	// Hot-reload edited settings for the next game
	go config.Watch(*configPath)

	if *export {
		EnsureFolderExists(cfg.ExportDir)
	}

	grid, err := game.NewGrid(cfg.GridWidth, cfg.GridHeight)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	opts := options.New()
	if !opts.SetDifficulty(cfg.Difficulty) {
		log.Printf("config: unknown difficulty %q, keeping %s", cfg.Difficulty, opts.Difficulty())
	}
	if !opts.SetSnakeColor(cfg.SnakeColor) {
		log.Printf("config: unknown snake color %q, keeping default", cfg.SnakeColor)
	}
	if !opts.SetFoodColor(cfg.FoodColor) {
		log.Printf("config: unknown food color %q, keeping default", cfg.FoodColor)
	}

	gameSeed := cfg.Seed
	if *seed != 0 {
		gameSeed = *seed
	}
	sess := game.NewSession(grid, gameSeed)

	var onTick func(*game.Session)
	if *export {
		onTick = frameExporter(opts)
	}

	if *minimal {
		ui := &tui.Minimal{Session: sess, Opts: opts, OnTick: onTick}
		if err := ui.Run(); err != nil {
			log.Fatalf("ui: %v", err)
		}
		return
	}

	app := tui.NewApp(sess, opts)
	app.OnTick = onTick
	if err := app.Run(); err != nil {
		log.Fatalf("ui: %v", err)
	}
}

// frameExporter saves one PNG per tick, rereading the config each call
// so a hot-reloaded export dir or block size takes effect immediately.
func frameExporter(opts *options.Options) func(*game.Session) {
	var tick uint64
	return func(s *game.Session) {
		cfg := config.Get()
		r := boardimg.NewRenderer(cfg.BlockSize)
		v := boardimg.View{Grid: s.Grid(), Body: s.Body(), Food: s.FoodAt(), Score: s.Score()}
		st := boardimg.StyleFrom(opts)

		img := r.Frame(v, st)
		if s.Terminated() {
			img = r.GameOverFrame(v, st, s.Won())
		}
		if _, err := boardimg.SaveFrame(img, cfg.ExportDir, tick); err != nil {
			log.Printf("export: %v", err)
		}
		tick++
	}
}

// EnsureFolderExists checks for the export folder and creates it when
// missing.
func EnsureFolderExists(folder string) {
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		if err := os.MkdirAll(folder, 0755); err != nil {
			log.Fatalf("Failed to create %s directory: %s", folder, err)
		}
		log.Printf("Created %s directory", folder)
	}
}
