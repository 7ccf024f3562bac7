// Package game wires the thermal field, brush input, creature layer,
// rendering, and persistence into the interactive simulation loop.
package game

import (
	"time"

	"github.com/pthm-cable/caldera/camera"
	"github.com/pthm-cable/caldera/config"
	"github.com/pthm-cable/caldera/creatures"
	"github.com/pthm-cable/caldera/save"
	"github.com/pthm-cable/caldera/telemetry"
	"github.com/pthm-cable/caldera/thermal"
	"github.com/pthm-cable/caldera/ui"
)

// QuicksaveName is the slot used by the F5/F9 bindings.
const QuicksaveName = "quicksave"

// Options configures a new game.
type Options struct {
	Seed           int64
	Headless       bool
	StepsPerUpdate int
	OutputDir      string
	LogStats       bool
	PerfLog        bool
}

// Game holds the complete game state.
type Game struct {
	thermal   *thermal.Manager
	creatures *creatures.World
	saves     *save.Manager

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *PerfStats

	cam   *camera.Camera
	hud   *ui.HUD
	panel *ui.ControlPanel

	opts Options

	// Grid geometry
	gridW, gridH int
	cellSize     float32

	// Interaction state
	brushRadius    int
	paused         bool
	overlayVisible bool

	// Simulation time
	tick      int64
	simTime   float64
	tickSec   float64
	logStats  bool
	perfEvery int64
	screenW   float32
	screenH   float32
}

// NewGame creates a game from the global config and the given options.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	if opts.StepsPerUpdate <= 0 {
		opts.StepsPerUpdate = 1
	}

	interval := time.Duration(cfg.Thermal.UpdateIntervalMs) * time.Millisecond
	tm := thermal.NewManager(interval)
	if err := tm.Init(cfg.Derived.GridW, cfg.Derived.GridH, cfg.Thermal.AmbientTemp); err != nil {
		return nil, err
	}

	cw := creatures.NewWorld(cfg.Creatures, cfg.Derived.WorldW, cfg.Derived.WorldH, cfg.Derived.CellSize, opts.Seed)
	cw.SpawnInitial()

	saves, err := save.NewManager(cfg.Saves.Dir)
	if err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g := &Game{
		thermal:   tm,
		creatures: cw,
		saves:     saves,
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		output:    output,
		perf:      NewPerfStats(),
		opts:      opts,

		gridW:    cfg.Derived.GridW,
		gridH:    cfg.Derived.GridH,
		cellSize: cfg.Derived.CellSize,

		brushRadius:    cfg.Brush.Radius,
		overlayVisible: cfg.Thermal.OverlayVisible,

		tickSec:   float64(cfg.Thermal.UpdateIntervalMs) / 1000.0,
		logStats:  opts.LogStats,
		perfEvery: 600,
		screenW:   float32(cfg.Screen.Width),
		screenH:   float32(cfg.Screen.Height),
	}

	if !opts.Headless {
		g.cam = camera.New(g.screenW, g.screenH, cfg.Derived.WorldW, cfg.Derived.WorldH)
		g.hud = ui.NewHUD()
		g.panel = ui.NewControlPanel(g.screenW-190, 60, 170)
	}

	return g, nil
}

// Tick returns the number of completed diffusion ticks.
func (g *Game) Tick() int64 { return g.tick }

// Update runs one frame of the interactive loop: input, then at most one
// interval-gated simulation tick unless paused.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	start := time.Now()
	ticked := g.thermal.Update()
	g.perf.Record("thermal", time.Since(start))

	if ticked {
		g.afterTick()
	}
}

// UpdateHeadless advances the simulation without the wall-clock gate,
// StepsPerUpdate ticks per call.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.opts.StepsPerUpdate; i++ {
		start := time.Now()
		g.thermal.StepNow()
		g.perf.Record("thermal", time.Since(start))

		g.afterTick()
	}
}

// afterTick runs the per-tick bookkeeping shared by both loop modes.
func (g *Game) afterTick() {
	g.tick++
	g.simTime += g.tickSec
	g.collector.RecordTick()

	start := time.Now()
	g.creatures.Step(float32(g.tickSec), g.thermal)
	g.perf.Record("creatures", time.Since(start))

	start = time.Now()
	g.flushTelemetry()
	g.perf.Record("telemetry", time.Since(start))

	if g.opts.PerfLog && g.tick%g.perfEvery == 0 {
		g.logPerfStats()
	}
}

// flushTelemetry emits a stats row when the collector closes a window.
func (g *Game) flushTelemetry() {
	ticks, paints, closed := g.collector.WindowClosed(g.simTime)
	if !closed {
		return
	}

	fs := telemetry.ComputeFieldStats(g.thermal.Cells())
	stats := telemetry.WindowStats{
		WindowEndTick: g.tick,
		SimTimeSec:    g.simTime,
		MeanTemp:      fs.Mean,
		TempVariance:  fs.Variance,
		MinTemp:       fs.Min,
		MaxTemp:       fs.Max,
		Ticks:         ticks,
		PaintEvents:   paints,
		CreatureCount: g.creatures.Count(),
		MeanEnergy:    g.creatures.MeanEnergy(),
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		Logf("telemetry write failed: %v", err)
	}
	if g.logStats {
		g.logFieldState(stats)
	}
}

// Save writes the full simulation state to the named slot.
func (g *Game) Save(name string) error {
	snap, ok := g.thermal.Snapshot()
	if !ok {
		return thermal.ErrMalformedSnapshot
	}

	gs := save.GameSave{
		SimTimeSec:  g.simTime,
		Temperature: snap,
		Creatures:   g.creatures.Snapshot(),
	}
	return g.saves.Save(name, gs)
}

// Load restores the named slot, re-initializing the grid at the saved
// dimensions when they differ.
func (g *Game) Load(name string) error {
	gs, err := g.saves.Load(name)
	if err != nil {
		return err
	}

	if err := g.thermal.Restore(gs.Temperature); err != nil {
		return err
	}

	g.gridW = gs.Temperature.Width
	g.gridH = gs.Temperature.Height
	g.simTime = gs.SimTimeSec

	worldW := float32(g.gridW) * g.cellSize
	worldH := float32(g.gridH) * g.cellSize

	cfg := config.Cfg()
	g.creatures = creatures.NewWorld(cfg.Creatures, worldW, worldH, g.cellSize, g.opts.Seed)
	g.creatures.Restore(gs.Creatures)

	if g.cam != nil {
		g.cam = camera.New(g.screenW, g.screenH, worldW, worldH)
	}
	return nil
}

// Reset reseeds the field and respawns the creature population.
func (g *Game) Reset() error {
	cfg := config.Cfg()
	if err := g.thermal.Init(g.gridW, g.gridH, cfg.Thermal.AmbientTemp); err != nil {
		return err
	}
	g.creatures = creatures.NewWorld(cfg.Creatures,
		float32(g.gridW)*g.cellSize, float32(g.gridH)*g.cellSize, g.cellSize, g.opts.Seed)
	g.creatures.SpawnInitial()
	g.tick = 0
	g.simTime = 0
	return nil
}

// Unload releases owned resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		Logf("closing telemetry output: %v", err)
	}
}
