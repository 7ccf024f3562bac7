// Package thermal implements the temperature simulation: a double-buffered
// scalar field advanced by a local diffusion rule, plus the manager that
// gates updates to a fixed tick cadence and maps temperatures to colors.
package thermal

import (
	"errors"
	"math"
)

// DiffusionRate is the fraction of the neighbor-average delta applied per
// tick. It is fused with the manager's update interval: diffusion speed is
// tied to tick count, not wall-clock time.
const DiffusionRate = 0.1

// Physical floor and display cap for cell temperatures. Painted values are
// clamped to this range so every temperature stays inside the color bands.
const (
	MinTemperature = -273.15
	MaxTemperature = 1000.0
)

// DefaultAmbient is the ambient temperature used when none is configured.
const DefaultAmbient = 20.0

// ErrInvalidDimension is returned when a field is created with a
// non-positive width or height.
var ErrInvalidDimension = errors.New("thermal: width and height must be positive")

// Field is a finite grid of temperatures embedded in an infinite plane at
// the ambient temperature. Reads outside the grid return the ambient value;
// writes outside are ignored. Cells are stored row-major.
type Field struct {
	width   int
	height  int
	ambient float64

	// cur holds the visible temperatures. next is only written during a
	// diffusion step and committed wholesale afterwards, so callers never
	// observe a partially-applied step.
	cur  []float64
	next []float64
}

// NewField creates a field seeded with a radial gradient: ambient at the
// center falling off linearly to half ambient at the corners. The seed is a
// visual starting condition, not a physical one.
func NewField(width, height int, ambient float64) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	f := &Field{
		width:   width,
		height:  height,
		ambient: ambient,
		cur:     make([]float64, width*height),
		next:    make([]float64, width*height),
	}

	cx := float64(width) / 2.0
	cy := float64(height) / 2.0
	maxDist := math.Sqrt(cx*cx + cy*cy)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Sqrt(dx*dx+dy*dy) / maxDist

			t := ambient * (1.0 - d*0.5)
			i := y*width + x
			f.cur[i] = t
			f.next[i] = t
		}
	}

	return f, nil
}

// Width returns the grid width in cells.
func (f *Field) Width() int { return f.width }

// Height returns the grid height in cells.
func (f *Field) Height() int { return f.height }

// Ambient returns the temperature of the plane surrounding the grid.
func (f *Field) Ambient() float64 { return f.ambient }

// Step advances the field by one diffusion tick. Each cell moves toward the
// average of its in-grid von Neumann neighbors by DiffusionRate. The step
// runs in two passes so a cell always diffuses against its neighbors'
// pre-tick values; no update order bias can leak in.
func (f *Field) Step() {
	dirs := [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			var sum float64
			count := 0

			for _, d := range dirs {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 || nx >= f.width || ny >= f.height {
					continue
				}
				sum += f.cur[ny*f.width+nx]
				count++
			}

			i := y*f.width + x
			if count > 0 {
				avg := sum / float64(count)
				f.next[i] = f.cur[i] + (avg-f.cur[i])*DiffusionRate
			} else {
				// Only reachable on a 1x1 field.
				f.next[i] = f.cur[i]
			}
		}
	}

	copy(f.cur, f.next)
}

// Temperature returns the temperature at (x, y), or the ambient temperature
// for any coordinate outside the grid.
func (f *Field) Temperature(x, y int) float64 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return f.ambient
	}
	return f.cur[y*f.width+x]
}

// SetTemperature overwrites the cell at (x, y). Both buffers are written so
// a following diffusion step treats the value as settled rather than as a
// pending delta. Out-of-grid writes are ignored.
func (f *Field) SetTemperature(x, y int, temp float64) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	i := y*f.width + x
	f.cur[i] = temp
	f.next[i] = temp
}

// Snapshot captures the full field state. Cells are row-major, losslessly
// copied float64 values suitable for save files.
func (f *Field) Snapshot() Snapshot {
	cells := make([]float64, len(f.cur))
	copy(cells, f.cur)
	return Snapshot{
		Width:   f.width,
		Height:  f.height,
		Ambient: f.ambient,
		Cells:   cells,
	}
}
