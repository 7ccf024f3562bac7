package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/caldera/config"
	"github.com/pthm-cable/caldera/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Log a field summary each stats window")
	perfLog := flag.Bool("perf-log", false, "Log per-stage timing breakdowns")
	outputDir := flag.String("output-dir", "", "Output directory for CSV telemetry and config snapshot")
	loadSave := flag.String("load", "", "Save name to restore at startup")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (headless only)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
		OutputDir:      *outputDir,
		LogStats:       *logStats,
		PerfLog:        *perfLog,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g, err := game.NewGame(opts)
		if err != nil {
			slog.Error("failed to create game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		if *loadSave != "" {
			if err := g.Load(*loadSave); err != nil {
				slog.Error("failed to load save", "name", *loadSave, "error", err)
				os.Exit(1)
			}
		}

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"grid_w", cfg.Derived.GridW,
			"grid_h", cfg.Derived.GridH,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	} else {
		// Graphical mode
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Caldera")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g, err := game.NewGame(opts)
		if err != nil {
			slog.Error("failed to create game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		if *loadSave != "" {
			if err := g.Load(*loadSave); err != nil {
				slog.Error("failed to load save", "name", *loadSave, "error", err)
				os.Exit(1)
			}
		}

		for !rl.WindowShouldClose() {
			g.Update()
			g.Draw()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				break
			}
		}
	}
}
