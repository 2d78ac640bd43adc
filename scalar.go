package polviz

import (
	"math"

	"github.com/gogpu/polviz/colormap"
)

// Units names the display unit of an angular scalar field. Field data is
// always radians.
type Units string

// Recognised units.
const (
	Degrees Units = "degrees"
	Radians Units = "radians"
)

// factor returns the multiplier from radians to u. Unknown units display
// the data unchanged.
func (u Units) factor() float64 {
	switch u {
	case Degrees:
		return 180 / math.Pi
	case Radians:
		return 1
	}
	Logger().Warn("polviz: unknown units, showing raw values", "units", string(u))
	return 1
}

// ScalarFigure builds a single-panel figure: values coloured over (x, y),
// axes labelled in meters, with a colorbar. values is converted from
// radians when units is Degrees; the caller's slice is not modified.
func (p *Plotter) ScalarFigure(x, y, values []float64, title string, units Units) (*Figure, error) {
	const op = "polviz.ScalarFigure"
	if len(x) != len(y) {
		return nil, precondition(op, ErrLengthMismatch, "%d x coordinates, %d y coordinates", len(x), len(y))
	}
	if len(values) != len(x) {
		return nil, precondition(op, ErrLengthMismatch, "%d values, %d coordinates", len(values), len(x))
	}
	if len(x) == 0 {
		return nil, precondition(op, ErrEmptyField, "no samples")
	}

	k := units.factor()
	shown := make([]float64, len(values))
	for i, v := range values {
		shown[i] = v * k
	}

	fig := newFigure("", p.style.FigureSize, 1, 1)
	fig.add(&Panel{
		Title:    title,
		Kind:     PanelScatter,
		X:        x,
		Y:        y,
		Values:   shown,
		Norm:     Limits{}.resolve(shown, colormap.Linear),
		Colorbar: true,
		XLabel:   "[m]",
		YLabel:   "[m]",
	})
	return fig, nil
}
