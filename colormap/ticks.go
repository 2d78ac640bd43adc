package colormap

import (
	"math"

	"gonum.org/v1/plot"
)

// Ticks returns the major tick values inside [n.Min, n.Max]. Linear norms
// use gonum's default ticker; log norms get one tick per decade. A range
// with no major tick inside it is marked at both ends.
func Ticks(n Norm) []float64 {
	if n.Max < n.Min || math.IsNaN(n.Min) || math.IsNaN(n.Max) ||
		math.IsInf(n.Min, 0) || math.IsInf(n.Max, 0) {
		return nil
	}
	if n.Max == n.Min {
		return []float64{n.Min}
	}

	var ticker plot.Ticker = plot.DefaultTicks{}
	if n.Scale == Log {
		if n.Min <= 0 {
			return nil
		}
		ticker = plot.LogTicks{Prec: -1}
	}

	// Allow for rounding in the ticker's own arithmetic at the ends.
	eps := (n.Max - n.Min) * 1e-9
	var ticks []float64
	for _, t := range ticker.Ticks(n.Min, n.Max) {
		if t.IsMinor() || t.Value < n.Min-eps || t.Value > n.Max+eps {
			continue
		}
		if len(ticks) > 0 && t.Value == ticks[len(ticks)-1] {
			continue
		}
		v := t.Value
		// -0 prints as "-0" on a colorbar.
		if v == 0 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	if len(ticks) == 0 {
		return []float64{n.Min, n.Max}
	}
	return ticks
}
