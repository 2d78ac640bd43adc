package polviz

import (
	"fmt"
	"math"

	"github.com/gogpu/polviz/colormap"
)

// Mode selects how each matrix element is drawn.
type Mode uint8

const (
	// Scatter colours one marker per ray at its pupil coordinates.
	Scatter Mode = iota
	// Image paints a pre-gridded map.
	Image
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Scatter:
		return "scatter"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Decomposition selects which real quantities are drawn from a complex
// element.
type Decomposition uint8

const (
	// AmplitudePhase draws |v| in one figure and arg(v) in another.
	AmplitudePhase Decomposition = iota
	// Magnitude draws real(v) in a single figure, linearly or on a log
	// scale (Mueller and PSM fields).
	Magnitude
)

// String returns the decomposition name.
func (d Decomposition) String() string {
	switch d {
	case AmplitudePhase:
		return "amplitude-phase"
	case Magnitude:
		return "magnitude"
	default:
		return fmt.Sprintf("Decomposition(%d)", d)
	}
}

// Limits fixes one or both ends of a colour range. The zero value leaves
// both ends to each panel's data.
type Limits struct {
	Min, Max       float64
	HasMin, HasMax bool
}

// Range fixes both ends.
func Range(lo, hi float64) Limits {
	return Limits{Min: lo, Max: hi, HasMin: true, HasMax: true}
}

// AtLeast fixes only the lower end.
func AtLeast(lo float64) Limits { return Limits{Min: lo, HasMin: true} }

// AtMost fixes only the upper end.
func AtMost(hi float64) Limits { return Limits{Max: hi, HasMax: true} }

// IsSet reports whether either end is fixed.
func (l Limits) IsSet() bool { return l.HasMin || l.HasMax }

func (l Limits) validate() error {
	if l.HasMin && math.IsNaN(l.Min) || l.HasMax && math.IsNaN(l.Max) {
		return fmt.Errorf("%w: NaN limit", ErrInvalidLimits)
	}
	if l.HasMin && l.HasMax && l.Min >= l.Max {
		return fmt.Errorf("%w: min %v >= max %v", ErrInvalidLimits, l.Min, l.Max)
	}
	return nil
}

// resolve fills unset ends from values.
func (l Limits) resolve(values []float64, scale colormap.Scale) colormap.Norm {
	lo, hi, ok := colormap.Range(values)
	if !ok {
		lo, hi = 0, 1
	}
	if l.HasMin {
		lo = l.Min
	}
	if l.HasMax {
		hi = l.Max
	}
	return colormap.Norm{Min: lo, Max: hi, Scale: scale}
}

// norm resolves l against values and rejects a range whose fixed end
// lies beyond the data's other end.
func (l Limits) norm(values []float64, scale colormap.Scale) (colormap.Norm, error) {
	n := l.resolve(values, scale)
	if n.Min > n.Max {
		return n, fmt.Errorf("%w: resolved range [%v, %v] is inverted", ErrInvalidLimits, n.Min, n.Max)
	}
	return n, nil
}

// RenderConfig describes one matrix-grid rendering.
type RenderConfig struct {
	// Title captions the amplitude (or only) figure; PhaseTitle the phase
	// figure.
	Title      string
	PhaseTitle string

	// Prefix starts every panel title, followed by the row and column
	// digits: "J", "P" or "M".
	Prefix string

	Mode          Mode
	Decomposition Decomposition
	Scale         colormap.Scale

	// AmpLimits applies to every amplitude (or magnitude) panel and
	// PhaseLimits to every phase panel.
	AmpLimits   Limits
	PhaseLimits Limits

	// Offsets corrects displayed phases; nil means none.
	Offsets PhaseOffsets

	// HideAxes suppresses tick labels; the pupil extent is implied.
	HideAxes bool

	// SideBySide draws the amplitude and phase grids in one figure,
	// amplitude on the left.
	SideBySide bool

	// LogFloor, when positive, replaces zero and negative values under a
	// log scale. When zero such values are an error.
	LogFloor float64

	// FigureSize overrides the style's figure size in inches.
	FigureSize [2]float64
}

func (c RenderConfig) validate(op string) error {
	if c.Mode != Scatter && c.Mode != Image {
		return precondition(op, ErrInvalidConfig, "mode %v", c.Mode)
	}
	if c.Decomposition != AmplitudePhase && c.Decomposition != Magnitude {
		return precondition(op, ErrInvalidConfig, "decomposition %v", c.Decomposition)
	}
	if c.Scale != colormap.Linear && c.Scale != colormap.Log {
		return precondition(op, ErrInvalidConfig, "scale %v", c.Scale)
	}
	if c.Scale == colormap.Log && c.Decomposition == AmplitudePhase {
		return precondition(op, ErrInvalidConfig, "log scale needs the magnitude decomposition")
	}
	if err := c.AmpLimits.validate(); err != nil {
		return &PreconditionError{Op: op, Detail: "amplitude", Err: err}
	}
	if err := c.PhaseLimits.validate(); err != nil {
		return &PreconditionError{Op: op, Detail: "phase", Err: err}
	}
	if c.Scale == colormap.Log {
		if c.AmpLimits.HasMin && c.AmpLimits.Min <= 0 {
			return precondition(op, ErrInvalidLimits, "log scale min %v", c.AmpLimits.Min)
		}
		if c.AmpLimits.HasMax && c.AmpLimits.Max <= 0 {
			return precondition(op, ErrInvalidLimits, "log scale max %v", c.AmpLimits.Max)
		}
		if math.IsNaN(c.LogFloor) || c.LogFloor < 0 {
			return precondition(op, ErrInvalidConfig, "log floor %v", c.LogFloor)
		}
	}
	return nil
}
