package thermal

// Color is an opaque RGB triple. The rendering layer decides how to apply
// opacity; the manager only picks channel values.
type Color struct {
	R, G, B uint8
}

// Band maps a half-open temperature interval [Min, Max) to a color. The
// final band is open-ended in effect: temperatures at or beyond its Max
// clamp to its color.
type Band struct {
	Min   float64
	Max   float64
	Color Color
}

// defaultBands spans [-273.15, 1000], sorted and contiguous: each band's
// Max is the next band's Min.
var defaultBands = []Band{
	{Min: MinTemperature, Max: -30, Color: Color{R: 0, G: 0, B: 139}}, // dark blue
	{Min: -30, Max: -10, Color: Color{R: 0, G: 0, B: 255}},            // blue
	{Min: -10, Max: 0, Color: Color{R: 173, G: 216, B: 230}},          // light blue
	{Min: 0, Max: 10, Color: Color{R: 0, G: 128, B: 0}},               // green
	{Min: 10, Max: 20, Color: Color{R: 144, G: 238, B: 144}},          // light green
	{Min: 20, Max: 30, Color: Color{R: 255, G: 255, B: 0}},            // yellow
	{Min: 30, Max: 50, Color: Color{R: 255, G: 165, B: 0}},            // orange
	{Min: 50, Max: 100, Color: Color{R: 255, G: 0, B: 0}},             // red
	{Min: 100, Max: MaxTemperature, Color: Color{R: 139, G: 0, B: 0}}, // dark red
}

// colorFor locates the band containing temp and interpolates toward the
// next band's color.
//
// The interpolation factor divides by (next.Max - band.Min), spanning from
// the current band's Min to the NEXT band's Max. That denominator matches
// neither band's own width, but mid-band colors depend on it, so it is kept
// as-is. Changing it would recolor every non-boundary temperature.
func colorFor(bands []Band, temp float64) Color {
	if len(bands) == 0 {
		return Color{}
	}

	last := bands[len(bands)-1]
	if temp >= last.Max {
		return last.Color
	}
	if temp < bands[0].Min {
		return bands[0].Color
	}

	for i, b := range bands {
		if temp < b.Min || temp >= b.Max {
			continue
		}
		if i == len(bands)-1 {
			return b.Color
		}

		next := bands[i+1]
		factor := (temp - b.Min) / (next.Max - b.Min)
		return Color{
			R: lerpChannel(b.Color.R, next.Color.R, factor),
			G: lerpChannel(b.Color.G, next.Color.G, factor),
			B: lerpChannel(b.Color.B, next.Color.B, factor),
		}
	}

	return last.Color
}

func lerpChannel(a, b uint8, factor float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*factor)
}
