package thermal

import (
	"math"
	"testing"
)

func TestNewFieldRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewField(tt.w, tt.h, 20); err != ErrInvalidDimension {
				t.Errorf("NewField(%d, %d) error = %v, want ErrInvalidDimension", tt.w, tt.h, err)
			}
		})
	}
}

func TestNewFieldRadialSeed(t *testing.T) {
	const w, h, ambient = 10, 10, 20.0

	f, err := NewField(w, h, ambient)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	cx, cy := float64(w)/2.0, float64(h)/2.0
	maxDist := math.Sqrt(cx*cx + cy*cy)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Sqrt(dx*dx+dy*dy) / maxDist
			want := ambient * (1.0 - d*0.5)

			if got := f.Temperature(x, y); got != want {
				t.Fatalf("Temperature(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	// Corner (0,0) sits at full center distance: exactly half ambient up to
	// the discretization of the center point.
	corner := f.Temperature(0, 0)
	if corner >= ambient || corner < ambient*0.5 {
		t.Errorf("corner temperature %v outside (%v, %v]", corner, ambient*0.5, ambient)
	}
}

func TestTemperatureOutOfBoundsReturnsAmbient(t *testing.T) {
	const ambient = 17.5

	f, err := NewField(8, 6, ambient)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	coords := [][2]int{
		{-1, 0}, {0, -1}, {8, 0}, {0, 6}, {-100, -100}, {1000, 3}, {3, 1000},
	}
	for _, c := range coords {
		if got := f.Temperature(c[0], c[1]); got != ambient {
			t.Errorf("Temperature(%d, %d) = %v, want ambient %v", c[0], c[1], got, ambient)
		}
	}
}

func TestSetTemperatureWritesBothBuffers(t *testing.T) {
	f, err := NewField(5, 5, 20)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	f.SetTemperature(2, 2, 500)

	// A painted value is settled: after one step the cell must have moved
	// toward its neighbors from 500, not from a stale pre-paint value.
	before := f.Temperature(2, 2)
	if before != 500 {
		t.Fatalf("Temperature(2,2) = %v, want 500", before)
	}

	var sum float64
	for _, d := range [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		sum += f.Temperature(2+d[0], 2+d[1])
	}
	want := 500 + (sum/4-500)*DiffusionRate

	f.Step()
	if got := f.Temperature(2, 2); math.Abs(got-want) > 1e-12 {
		t.Errorf("after Step, Temperature(2,2) = %v, want %v", got, want)
	}
}

func TestSetTemperatureOutOfBoundsIgnored(t *testing.T) {
	f, err := NewField(4, 4, 20)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	snap := f.Snapshot()
	f.SetTemperature(-1, 2, 999)
	f.SetTemperature(2, -1, 999)
	f.SetTemperature(4, 2, 999)
	f.SetTemperature(2, 4, 999)

	for i, v := range f.Snapshot().Cells {
		if v != snap.Cells[i] {
			t.Fatalf("cell %d changed by out-of-bounds write: %v != %v", i, v, snap.Cells[i])
		}
	}
}

func TestStepUsesPreTickNeighborValues(t *testing.T) {
	// 3x1 row with a single hot cell on the left. If updated values leaked
	// into neighbor computations within one tick, the rightmost cell would
	// see the middle cell's new value instead of its pre-tick value.
	f, err := NewField(3, 1, 0)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	f.SetTemperature(0, 0, 100)
	f.SetTemperature(1, 0, 0)
	f.SetTemperature(2, 0, 0)

	f.Step()

	// left: neighbors {0} -> 100 + (0-100)*0.1 = 90
	// middle: neighbors {100, 0} -> 0 + (50-0)*0.1 = 5
	// right: neighbors {0} -> 0 (pre-tick middle value, not 5)
	cases := []struct {
		x    int
		want float64
	}{
		{0, 90},
		{1, 5},
		{2, 0},
	}
	for _, c := range cases {
		if got := f.Temperature(c.x, 0); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Temperature(%d, 0) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestStepSingleCellFieldIsStable(t *testing.T) {
	f, err := NewField(1, 1, 42)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	before := f.Temperature(0, 0)

	for i := 0; i < 10; i++ {
		f.Step()
	}

	if got := f.Temperature(0, 0); got != before {
		t.Errorf("1x1 field changed under Step: %v != %v", got, before)
	}
}

func TestDiffusionConvergesTowardUniformity(t *testing.T) {
	const w, h = 16, 16

	f, err := NewField(w, h, 20)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	prevVar := fieldVariance(f)
	initialMean := fieldMean(f)

	// Variance must fall window over window until the field is flat.
	for i := 0; i < 20; i++ {
		for j := 0; j < 50; j++ {
			f.Step()
		}
		v := fieldVariance(f)
		if v >= prevVar && prevVar > 1e-9 {
			t.Fatalf("variance did not decrease over window %d: %v -> %v", i, prevVar, v)
		}
		prevVar = v
	}

	if prevVar > 1e-6 {
		t.Errorf("variance after 1000 steps = %v, want near 0", prevVar)
	}

	// Edge cells lose a neighbor, so exact conservation only holds for the
	// interior: the flat limit must still sit near the initial mean.
	finalMean := fieldMean(f)
	if math.Abs(finalMean-initialMean) > 1.0 {
		t.Errorf("mean drifted from %v to %v", initialMean, finalMean)
	}
}

func TestStepConservesInteriorDisturbance(t *testing.T) {
	// On a uniform background a disturbance whose neighborhood is interior
	// diffuses mass-conservatively: the hot cell sheds exactly what its four
	// neighbors gain.
	f, err := NewField(10, 10, 20)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			f.SetTemperature(x, y, 20)
		}
	}
	f.SetTemperature(5, 5, 120)

	before := fieldMean(f) * 100
	f.Step()
	after := fieldMean(f) * 100

	if math.Abs(after-before) > 1e-9 {
		t.Errorf("total temperature changed: %v -> %v", before, after)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	f, err := NewField(4, 3, 20)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	snap := f.Snapshot()
	if snap.Width != 4 || snap.Height != 3 || snap.Ambient != 20 {
		t.Fatalf("snapshot header = %dx%d ambient %v", snap.Width, snap.Height, snap.Ambient)
	}
	if len(snap.Cells) != 12 {
		t.Fatalf("len(Cells) = %d, want 12", len(snap.Cells))
	}

	orig := f.Temperature(1, 1)
	snap.Cells[1*4+1] = -999
	if f.Temperature(1, 1) != orig {
		t.Error("mutating snapshot cells changed the live field")
	}
}

func fieldMean(f *Field) float64 {
	var sum float64
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			sum += f.Temperature(x, y)
		}
	}
	return sum / float64(f.Width()*f.Height())
}

func fieldVariance(f *Field) float64 {
	mean := fieldMean(f)
	var sum float64
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			d := f.Temperature(x, y) - mean
			sum += d * d
		}
	}
	return sum / float64(f.Width()*f.Height())
}
