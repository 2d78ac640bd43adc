package polviz

import (
	"errors"
	"fmt"

	"github.com/gogpu/polviz/colormap"
	"github.com/gogpu/polviz/raybundle"
)

// AOI plots the angle of incidence on surf over the surface's ray
// footprint. The zero Surface selects the final surface.
func (p *Plotter) AOI(b raybundle.Bundle, surf raybundle.Surface, units Units) error {
	const op = "polviz.AOI"
	if surf.IsTotal() {
		return precondition(op, ErrNoSystemTotal, "angle of incidence is per surface")
	}
	s, err := surf.Resolve(b.SurfaceCount())
	if err != nil {
		return &PreconditionError{Op: op, Err: err}
	}
	if err := raybundle.Check(b, s, raybundle.FieldPositions, raybundle.FieldAOI); err != nil {
		return bundleErr(op, err)
	}
	x, y, err := b.Positions(s)
	if err != nil {
		return &PreconditionError{Op: op, Err: err}
	}
	aoi, err := b.AOI(s)
	if err != nil {
		return &PreconditionError{Op: op, Err: err}
	}
	fig, err := p.ScalarFigure(x, y, aoi, fmt.Sprintf("AOI [%s] on surface %d", units, s), units)
	if err != nil {
		return err
	}
	return p.show(fig)
}

// PRT plots amplitude and phase of the polarization ray-trace matrix.
// Total() plots the system matrix over the entrance pupil coordinates;
// At(n) plots surface n over its own footprint. Phases are shown raw.
func (p *Plotter) PRT(b raybundle.Bundle, surf raybundle.Surface) error {
	const op = "polviz.PRT"
	field, label, err := selectMatrix(b, surf, raybundle.FieldPRT, b.PRTTotal, b.PRT)
	if err != nil {
		return bundleErr(op, err)
	}
	figs, err := p.MatrixFigures(field, RenderConfig{
		Title:      "|PRT Matrix| for " + label,
		PhaseTitle: "Arg[PRT Matrix] for " + label,
		Prefix:     "P",
		Mode:       Scatter,
		HideAxes:   true,
	})
	if err != nil {
		return err
	}
	return p.show(figs...)
}

// JonesPupil plots the system Jones matrix over the entrance pupil. amp and
// phase fix the colour range shared by every amplitude and every phase
// panel; pass the zero Limits to scale each panel to its own data.
func (p *Plotter) JonesPupil(b raybundle.Bundle, amp, phase Limits) error {
	const op = "polviz.JonesPupil"
	field, label, err := selectMatrix(b, raybundle.Total(), raybundle.FieldJones, b.JonesTotal, b.Jones)
	if err != nil {
		return bundleErr(op, err)
	}
	figs, err := p.MatrixFigures(field, RenderConfig{
		Title:       "|Jones Matrix| for " + label,
		PhaseTitle:  "Arg{Jones Matrix} for " + label,
		Prefix:      "J",
		Mode:        Scatter,
		AmpLimits:   amp,
		PhaseLimits: phase,
		Offsets:     p.offsets,
		HideAxes:    true,
	})
	if err != nil {
		return err
	}
	return p.show(figs...)
}

// Jones plots the Jones matrix of one surface over its footprint. The zero
// Surface selects the final surface; Total() behaves like JonesPupil
// without shared limits.
func (p *Plotter) Jones(b raybundle.Bundle, surf raybundle.Surface) error {
	const op = "polviz.Jones"
	field, label, err := selectMatrix(b, surf, raybundle.FieldJones, b.JonesTotal, b.Jones)
	if err != nil {
		return bundleErr(op, err)
	}
	figs, err := p.MatrixFigures(field, RenderConfig{
		Title:      "|Jones Matrix| for " + label,
		PhaseTitle: "Arg{Jones Matrix} for " + label,
		Prefix:     "J",
		Mode:       Scatter,
		Offsets:    p.offsets,
		HideAxes:   true,
	})
	if err != nil {
		return err
	}
	return p.show(figs...)
}

// MuellerPupil plots a gridded 4×4 Mueller pupil on a linear scale.
func (p *Plotter) MuellerPupil(m [][]Grid) error {
	figs, err := p.MatrixFigures(GriddedField(m), RenderConfig{
		Title:         "Mueller Pupil",
		Prefix:        "M",
		Mode:          Image,
		Decomposition: Magnitude,
		Scale:         colormap.Linear,
		HideAxes:      true,
	})
	if err != nil {
		return err
	}
	return p.show(figs...)
}

// PSM plots a gridded 4×4 power system matrix on a log scale. Zero or
// negative entries are an error unless the Plotter has a log floor.
func (p *Plotter) PSM(m [][]Grid) error {
	figs, err := p.MatrixFigures(GriddedField(m), RenderConfig{
		Title:         "Mueller PSM",
		Prefix:        "M",
		Mode:          Image,
		Decomposition: Magnitude,
		Scale:         colormap.Log,
		HideAxes:      true,
	})
	if err != nil {
		return err
	}
	return p.show(figs...)
}

// JonesArray plots four independently supplied maps as the entries of a
// 2×2 Jones matrix: amplitudes on the left, phases on the right.
func (p *Plotter) JonesArray(j11, j12, j21, j22 Grid) error {
	figs, err := p.MatrixFigures(GriddedField([][]Grid{{j11, j12}, {j21, j22}}), RenderConfig{
		Prefix:     "J",
		Mode:       Image,
		SideBySide: true,
	})
	if err != nil {
		return err
	}
	return p.show(figs...)
}

// Rays plots the ray positions, direction cosines and surface-normal
// direction cosines of surf side by side. Like the other per-surface plots
// the zero Surface selects the final surface; pass At(0) for the entrance
// pupil.
func (p *Plotter) Rays(b raybundle.Bundle, surf raybundle.Surface) error {
	const op = "polviz.Rays"
	if surf.IsTotal() {
		return precondition(op, ErrNoSystemTotal, "ray geometry is per surface")
	}
	s, err := surf.Resolve(b.SurfaceCount())
	if err != nil {
		return &PreconditionError{Op: op, Err: err}
	}
	if err := raybundle.Check(b, s, raybundle.FieldPositions, raybundle.FieldDirectionCosines,
		raybundle.FieldNormalCosines); err != nil {
		return bundleErr(op, err)
	}
	sources := []struct {
		title string
		get   func(int) ([]float64, []float64, error)
	}{
		{"Position", b.Positions},
		{"Direction Cosine", b.DirectionCosines},
		{"Surface Normal Direction Cosine", b.SurfaceNormalCosines},
	}
	fig := newFigure("", [2]float64{12, 4}, 1, len(sources))
	for i, src := range sources {
		x, y, err := src.get(s)
		if err != nil {
			return &PreconditionError{Op: op, Err: err}
		}
		fig.add(&Panel{
			Title:       src.title,
			Col:         i,
			Kind:        PanelScatter,
			X:           x,
			Y:           y,
			MarkerColor: scatterBlue,
		})
	}
	return p.show(fig)
}

// selectMatrix resolves surf to a scatter field. The system total is drawn
// over the entrance pupil (surface 0).
func selectMatrix(b raybundle.Bundle, surf raybundle.Surface, field raybundle.Field,
	total func() (raybundle.Matrix, error),
	perSurface func(int) (raybundle.Matrix, error)) (MatrixField, string, error) {
	var (
		m     raybundle.Matrix
		coord int
		label string
		err   error
	)
	if surf.IsTotal() {
		if err := raybundle.Check(b, raybundle.SystemTotal, field); err != nil {
			return MatrixField{}, "", err
		}
		if err := raybundle.Check(b, 0, raybundle.FieldPositions); err != nil {
			return MatrixField{}, "", err
		}
		m, err = total()
		label = "System"
	} else {
		coord, err = surf.Resolve(b.SurfaceCount())
		if err != nil {
			return MatrixField{}, "", err
		}
		if err := raybundle.Check(b, coord, raybundle.FieldPositions, field); err != nil {
			return MatrixField{}, "", err
		}
		m, err = perSurface(coord)
		label = fmt.Sprintf("Surface %d", coord)
	}
	if err != nil {
		return MatrixField{}, "", err
	}
	x, y, err := b.Positions(coord)
	if err != nil {
		return MatrixField{}, "", err
	}
	return SampledField(x, y, m), label, nil
}

// bundleErr reports a bundle contract violation as a precondition failure.
// Misaligned sequences also match ErrLengthMismatch and malformed matrices
// ErrDimension.
func bundleErr(op string, err error) error {
	switch {
	case errors.Is(err, raybundle.ErrMisaligned):
		err = fmt.Errorf("%w: %w", ErrLengthMismatch, err)
	case errors.Is(err, raybundle.ErrNotMatrix):
		err = fmt.Errorf("%w: %w", ErrDimension, err)
	}
	return &PreconditionError{Op: op, Err: err}
}
