// Package telemetry aggregates simulation statistics over time windows and
// writes them to CSV for offline analysis.
package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one time window.
type WindowStats struct {
	WindowEndTick int64   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Field shape at window end
	MeanTemp     float64 `csv:"mean_temp"`
	TempVariance float64 `csv:"temp_variance"`
	MinTemp      float64 `csv:"min_temp"`
	MaxTemp      float64 `csv:"max_temp"`

	// Events during the window
	Ticks       int `csv:"ticks"`
	PaintEvents int `csv:"paint_events"`

	// Creature layer at window end
	CreatureCount int     `csv:"creatures"`
	MeanEnergy    float64 `csv:"mean_energy"`
}

// FieldStats summarizes the temperature distribution of a cell array.
type FieldStats struct {
	Mean     float64
	Variance float64
	Min      float64
	Max      float64
}

// ComputeFieldStats reduces a row-major cell array to its distribution
// summary. Returns zeros for an empty array.
func ComputeFieldStats(cells []float64) FieldStats {
	if len(cells) == 0 {
		return FieldStats{}
	}
	return FieldStats{
		Mean:     stat.Mean(cells, nil),
		Variance: stat.PopVariance(cells, nil),
		Min:      floats.Min(cells),
		Max:      floats.Max(cells),
	}
}
