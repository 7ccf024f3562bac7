package telemetry

// Collector accumulates per-window event counts and closes windows at a
// fixed sim-time spacing.
type Collector struct {
	windowSec float64

	windowStart float64
	ticks       int
	paintEvents int
}

// NewCollector creates a collector that closes a window every windowSec
// seconds of simulation time. windowSec <= 0 selects 5 seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5.0
	}
	return &Collector{windowSec: windowSec}
}

// RecordTick counts one diffusion tick in the current window.
func (c *Collector) RecordTick() { c.ticks++ }

// RecordPaint counts painted cells in the current window.
func (c *Collector) RecordPaint(cells int) { c.paintEvents += cells }

// WindowClosed reports whether the window ending check at simTime closes
// the current window, and resets the accumulation when it does. The caller
// assembles the WindowStats row from the returned counts.
func (c *Collector) WindowClosed(simTime float64) (ticks, paintEvents int, closed bool) {
	if simTime-c.windowStart < c.windowSec {
		return 0, 0, false
	}
	ticks, paintEvents = c.ticks, c.paintEvents
	c.ticks = 0
	c.paintEvents = 0
	c.windowStart = simTime
	return ticks, paintEvents, true
}
