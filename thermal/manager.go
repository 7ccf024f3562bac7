package thermal

import (
	"errors"
	"time"
)

// DefaultUpdateInterval is the wall-clock spacing between diffusion ticks.
// The host may call Update every frame; the field only advances at this
// cadence.
const DefaultUpdateInterval = 100 * time.Millisecond

// PaintStep is the temperature delta applied by one paint event.
const PaintStep = 10.0

// ErrMalformedSnapshot is returned when a snapshot is missing cells or has
// dimensions that don't match its cell count. The current field state is
// left untouched.
var ErrMalformedSnapshot = errors.New("thermal: malformed snapshot")

// Snapshot is the serializable form of a field: dimensions, ambient
// temperature, and row-major cell values.
type Snapshot struct {
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Ambient float64   `json:"ambient"`
	Cells   []float64 `json:"cells"`
}

// Surface is the drawing contract the manager renders onto. Implementations
// fill axis-aligned rectangles in screen units; the manager never touches a
// concrete graphics API.
type Surface interface {
	// SetAlpha sets the global opacity for subsequent fills.
	SetAlpha(alpha float32)
	// FillRect fills a rectangle at (x, y) with the given size and color.
	FillRect(x, y, w, h float32, c Color)
}

// OverlayAlpha is the opacity the heat overlay is drawn at, so grid lines
// underneath stay visible.
const OverlayAlpha = 0.7

// Manager owns a Field and exposes the query/paint/render API the host
// loop, brush, and save system consume. Before Init is called every query
// degrades to ambient defaults instead of failing, which keeps the render
// path total during startup.
type Manager struct {
	field    *Field
	interval time.Duration
	last     time.Time
	now      func() time.Time
	bands    []Band
}

// NewManager creates a manager with no field. interval <= 0 selects
// DefaultUpdateInterval.
func NewManager(interval time.Duration) *Manager {
	if interval <= 0 {
		interval = DefaultUpdateInterval
	}
	return &Manager{
		interval: interval,
		now:      time.Now,
		bands:    defaultBands,
	}
}

// SetClock replaces the wall-clock source. Used by tests to drive the tick
// gate deterministically.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// Init replaces the owned field with a freshly seeded one and resets the
// tick gate. The previous field is kept intact if the dimensions are
// invalid.
func (m *Manager) Init(width, height int, ambient float64) error {
	f, err := NewField(width, height, ambient)
	if err != nil {
		return err
	}
	m.field = f
	m.last = m.now()
	return nil
}

// Ready reports whether the manager owns a field.
func (m *Manager) Ready() bool { return m.field != nil }

// Width returns the field width, or 0 before Init.
func (m *Manager) Width() int {
	if m.field == nil {
		return 0
	}
	return m.field.Width()
}

// Height returns the field height, or 0 before Init.
func (m *Manager) Height() int {
	if m.field == nil {
		return 0
	}
	return m.field.Height()
}

// Update advances the simulation by one tick if the update interval has
// elapsed since the last tick. Returns true when a tick occurred. Calling
// it more often than the interval is a correct no-op.
func (m *Manager) Update() bool {
	if m.field == nil {
		return false
	}
	now := m.now()
	if now.Sub(m.last) < m.interval {
		return false
	}
	m.field.Step()
	m.last = now
	return true
}

// StepNow advances one diffusion tick immediately, bypassing the wall-clock
// gate. Used by headless fast-forward.
func (m *Manager) StepNow() {
	if m.field == nil {
		return
	}
	m.field.Step()
	m.last = m.now()
}

// Temperature returns the temperature at (x, y). Out-of-grid coordinates
// return the ambient temperature; a manager without a field returns
// DefaultAmbient.
func (m *Manager) Temperature(x, y int) float64 {
	if m.field == nil {
		return DefaultAmbient
	}
	return m.field.Temperature(x, y)
}

// SetTemperature overwrites the cell at (x, y), clamped to the color band
// domain. No-op out of grid or before Init.
func (m *Manager) SetTemperature(x, y int, temp float64) {
	if m.field == nil {
		return
	}
	m.field.SetTemperature(x, y, clampTemperature(temp))
}

// Adjust applies one paint event at (x, y): a PaintStep increase, or a
// decrease when decrease is true. The result stays within
// [MinTemperature, MaxTemperature].
func (m *Manager) Adjust(x, y int, decrease bool) {
	step := PaintStep
	if decrease {
		step = -PaintStep
	}
	m.SetTemperature(x, y, m.Temperature(x, y)+step)
}

// Color maps a temperature to its band color, interpolated toward the next
// band.
func (m *Manager) Color(temp float64) Color {
	return colorFor(m.bands, temp)
}

// Render fills one cellSize x cellSize rectangle per cell onto s at
// OverlayAlpha, then restores full opacity. No-op when the overlay is
// hidden or no field is owned.
func (m *Manager) Render(s Surface, cellSize float32, visible bool) {
	if !visible || m.field == nil {
		return
	}

	s.SetAlpha(OverlayAlpha)
	for y := 0; y < m.field.Height(); y++ {
		for x := 0; x < m.field.Width(); x++ {
			c := m.Color(m.field.cur[y*m.field.width+x])
			s.FillRect(float32(x)*cellSize, float32(y)*cellSize, cellSize, cellSize, c)
		}
	}
	s.SetAlpha(1.0)
}

// Snapshot captures the owned field. The second return is false before
// Init.
func (m *Manager) Snapshot() (Snapshot, bool) {
	if m.field == nil {
		return Snapshot{}, false
	}
	return m.field.Snapshot(), true
}

// Restore replaces the field state from a snapshot, re-initializing at the
// saved dimensions when they differ from the current field. A malformed
// snapshot leaves the current state untouched.
func (m *Manager) Restore(snap Snapshot) error {
	if snap.Width <= 0 || snap.Height <= 0 {
		return ErrMalformedSnapshot
	}
	if len(snap.Cells) != snap.Width*snap.Height {
		return ErrMalformedSnapshot
	}

	f, err := NewField(snap.Width, snap.Height, snap.Ambient)
	if err != nil {
		return err
	}
	copy(f.cur, snap.Cells)
	copy(f.next, snap.Cells)

	m.field = f
	m.last = m.now()
	return nil
}

// Cells exposes the live cell values for read-only consumers (statistics,
// rendering diagnostics). Callers must not retain the slice across ticks.
func (m *Manager) Cells() []float64 {
	if m.field == nil {
		return nil
	}
	return m.field.cur
}

func clampTemperature(t float64) float64 {
	if t < MinTemperature {
		return MinTemperature
	}
	if t > MaxTemperature {
		return MaxTemperature
	}
	return t
}
