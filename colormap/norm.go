package colormap

import (
	"fmt"
	"math"
)

// Scale selects how a Norm spaces values.
type Scale uint8

const (
	// Linear maps Min..Max linearly onto [0, 1].
	Linear Scale = iota
	// Log maps log10(Min)..log10(Max) linearly onto [0, 1].
	// Min must be positive.
	Log
)

// String returns the scale name.
func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return fmt.Sprintf("Scale(%d)", s)
	}
}

// Norm maps data values to colormap positions.
type Norm struct {
	Min, Max float64
	Scale    Scale
}

// Normalize returns the colormap position of v. Values outside Min..Max
// fall outside [0, 1] and are clamped by Colormap.At. A degenerate range
// maps everything to 0.5.
func (n Norm) Normalize(v float64) float64 {
	lo, hi := n.Min, n.Max
	if n.Scale == Log {
		if v <= 0 {
			return math.NaN()
		}
		lo, hi, v = math.Log10(lo), math.Log10(hi), math.Log10(v)
	}
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// Range returns the smallest and largest finite values in vs.
// ok is false when vs holds no finite value.
func Range(vs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
