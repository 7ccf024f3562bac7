package telemetry

import (
	"math"
	"testing"
)

func TestComputeFieldStats(t *testing.T) {
	cells := []float64{10, 20, 30, 40}
	s := ComputeFieldStats(cells)

	if math.Abs(s.Mean-25) > 1e-12 {
		t.Errorf("mean = %v, want 25", s.Mean)
	}
	// Population variance of {10,20,30,40} is 125
	if math.Abs(s.Variance-125) > 1e-12 {
		t.Errorf("variance = %v, want 125", s.Variance)
	}
	if s.Min != 10 || s.Max != 40 {
		t.Errorf("min/max = %v/%v, want 10/40", s.Min, s.Max)
	}
}

func TestComputeFieldStatsEmpty(t *testing.T) {
	s := ComputeFieldStats(nil)
	if s.Mean != 0 || s.Variance != 0 || s.Min != 0 || s.Max != 0 {
		t.Errorf("empty stats = %+v, want zeros", s)
	}
}

func TestComputeFieldStatsUniform(t *testing.T) {
	cells := []float64{20, 20, 20, 20, 20}
	s := ComputeFieldStats(cells)
	if s.Variance != 0 {
		t.Errorf("uniform variance = %v, want 0", s.Variance)
	}
	if s.Mean != 20 {
		t.Errorf("uniform mean = %v, want 20", s.Mean)
	}
}
