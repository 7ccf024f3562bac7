// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Thermal   ThermalConfig   `yaml:"thermal"`
	Brush     BrushConfig     `yaml:"brush"`
	Creatures CreaturesConfig `yaml:"creatures"`
	Saves     SavesConfig     `yaml:"saves"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds simulation grid dimensions.
type GridConfig struct {
	Width    int     `yaml:"width"`     // Cells per row (0 = derive from screen)
	Height   int     `yaml:"height"`    // Cells per column (0 = derive from screen)
	CellSize float64 `yaml:"cell_size"` // Pixels per cell edge
}

// ThermalConfig holds temperature field parameters.
type ThermalConfig struct {
	AmbientTemp      float64 `yaml:"ambient_temp"`       // Temperature of the surrounding plane
	UpdateIntervalMs int     `yaml:"update_interval_ms"` // Wall-clock spacing between diffusion ticks
	OverlayVisible   bool    `yaml:"overlay_visible"`    // Heat overlay shown at startup
}

// BrushConfig holds paint brush parameters.
type BrushConfig struct {
	Radius    int `yaml:"radius"`     // Starting brush radius in cells
	MinRadius int `yaml:"min_radius"` // Smallest selectable radius
	MaxRadius int `yaml:"max_radius"` // Largest selectable radius
}

// CreaturesConfig holds the wandering-creature layer parameters.
type CreaturesConfig struct {
	Initial         int     `yaml:"initial"`          // Creatures spawned on new game
	Max             int     `yaml:"max"`              // Hard population cap
	InitialEnergy   float64 `yaml:"initial_energy"`   // Energy at spawn
	ComfortTemp     float64 `yaml:"comfort_temp"`     // Temperature with zero discomfort drain
	BaseDrain       float64 `yaml:"base_drain"`       // Energy drain per second for existing
	DiscomfortDrain float64 `yaml:"discomfort_drain"` // Extra drain per second per degree off comfort
	MaxSpeed        float64 `yaml:"max_speed"`        // World units per second
	WanderJitter    float64 `yaml:"wander_jitter"`    // Heading change magnitude per second
}

// SavesConfig holds save-file settings.
type SavesConfig struct {
	Dir string `yaml:"dir"` // Save directory (empty = "saves")
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds between stats rows
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GridW    int     // Effective grid width in cells
	GridH    int     // Effective grid height in cells
	CellSize float32 // Grid.CellSize as float32
	WorldW   float32 // Grid width in world units
	WorldH   float32 // Grid height in world units
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Grid.CellSize <= 0 {
		c.Grid.CellSize = 10
	}

	// Grid dimensions default to filling the screen
	gridW := c.Grid.Width
	if gridW == 0 {
		gridW = int(float64(c.Screen.Width) / c.Grid.CellSize)
	}
	gridH := c.Grid.Height
	if gridH == 0 {
		gridH = int(float64(c.Screen.Height) / c.Grid.CellSize)
	}

	c.Derived.GridW = gridW
	c.Derived.GridH = gridH
	c.Derived.CellSize = float32(c.Grid.CellSize)
	c.Derived.WorldW = float32(float64(gridW) * c.Grid.CellSize)
	c.Derived.WorldH = float32(float64(gridH) * c.Grid.CellSize)

	if c.Brush.MaxRadius < c.Brush.MinRadius {
		c.Brush.MaxRadius = c.Brush.MinRadius
	}
	if c.Saves.Dir == "" {
		c.Saves.Dir = "saves"
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
