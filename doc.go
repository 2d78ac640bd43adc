// Package polviz renders diagnostic figures of polarization ray-trace
// results.
//
// # Overview
//
// A traced [raybundle.Bundle] carries, for every surface of an optical
// system, the ray footprint, direction cosines, angle of incidence and the
// per-ray Jones and polarization ray-trace (PRT) matrices. polviz turns
// these into figures drawn with gg: scalar fields as a single coloured
// scatter, matrix fields as a grid of panels with one panel per matrix
// element.
//
// # Quick Start
//
//	p, err := polviz.New(polviz.WithDisplay(&polviz.PNGDisplay{Dir: "out"}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	// Angle of incidence on the last surface, in degrees
//	err = p.AOI(bundle, raybundle.Last(), polviz.Degrees)
//
//	// Amplitude and phase of the system Jones matrix
//	err = p.JonesPupil(bundle, polviz.Limits{}, polviz.Range(-math.Pi, math.Pi))
//
// # Matrix Grids
//
// Panel (row, col) of a grid always shows matrix element (row, col) and is
// titled with those indices, e.g. "J12". Complex fields are split into an
// amplitude figure and a phase figure; Mueller and PSM fields are drawn as
// real values, the PSM on a log scale. Colour limits are per panel unless
// [Limits] are given, in which case every panel of the group shares them.
//
// # Phase Offsets
//
// Jones plots add a per-element offset from a [PhaseOffsets] table to the
// displayed phase and wrap the result into (-π, π]. The default table adds π
// at (1, 1); [WithPhaseOffsets] replaces it.
//
// # Errors
//
// Mismatched lengths, wrong matrix shapes and missing bundle fields are
// reported as *[PreconditionError] before any figure is built. A zero or
// negative value on a log scale is a *[PanelError] naming the element,
// unless a floor is set with [WithLogFloor].
//
// # Displays
//
// Figures go to a [Display]: a [Recorder] (the default), a [PNGDisplay], or
// the window viewer in the viewer sub-package.
package polviz
