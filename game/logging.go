package game

import (
	"fmt"
	"io"
	"time"

	"github.com/pthm-cable/caldera/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats logs per-stage timing breakdowns.
func (g *Game) logPerfStats() {
	total := g.perf.Total()
	Logf("=== Perf @ Tick %d ===", g.tick)
	Logf("Total step time: %s", total.Round(time.Microsecond))

	for _, name := range g.perf.SortedNames() {
		avg := g.perf.Avg(name)
		pct := float64(0)
		if total > 0 {
			pct = float64(avg) / float64(total) * 100
		}
		Logf("  %-12s %10s  %5.1f%%", name, avg.Round(time.Microsecond), pct)
	}
	Logf("")
}

// logFieldState logs a one-window summary of the field and population.
func (g *Game) logFieldState(stats telemetry.WindowStats) {
	Logf("=== Tick %d (t=%.1fs) ===", g.tick, g.simTime)
	Logf("Field: mean=%.2f°C var=%.3f range=[%.1f, %.1f]",
		stats.MeanTemp, stats.TempVariance, stats.MinTemp, stats.MaxTemp)
	Logf("Window: ticks=%d, paint events=%d", stats.Ticks, stats.PaintEvents)
	Logf("Creatures: %d alive, mean energy %.1f", stats.CreatureCount, stats.MeanEnergy)
	Logf("")
}
