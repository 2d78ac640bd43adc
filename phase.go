package polviz

import "math"

// Element addresses one entry of a matrix field.
type Element struct {
	Row, Col int
}

// PhaseOffsets is an additive correction applied to the displayed phase of
// individual matrix elements. Elements absent from the table get no offset.
// Offsets change what is drawn, never the field data.
type PhaseOffsets map[Element]float64

// DefaultPhaseOffsets shifts the p-polarization term at (1, 1) by π so that
// its ±π sign ambiguity displays as a continuous map around 0.
func DefaultPhaseOffsets() PhaseOffsets {
	return PhaseOffsets{{Row: 1, Col: 1}: math.Pi}
}

// NoPhaseOffsets disables all corrections.
func NoPhaseOffsets() PhaseOffsets {
	return PhaseOffsets{}
}

// Offset returns the offset for (row, col); 0 when none is configured.
// A nil table has no offsets.
func (t PhaseOffsets) Offset(row, col int) float64 {
	return t[Element{Row: row, Col: col}]
}

// Apply returns the displayed phase of a sample whose raw argument is
// phase, wrapped into (-π, π].
func (t PhaseOffsets) Apply(row, col int, phase float64) float64 {
	return WrapPhase(phase + t.Offset(row, col))
}

// WrapPhase maps a into (-π, π].
func WrapPhase(a float64) float64 {
	w := math.Remainder(a, 2*math.Pi)
	if w <= -math.Pi {
		w += 2 * math.Pi
	}
	return w
}
