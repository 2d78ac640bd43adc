package polviz

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/gogpu/polviz/colormap"
)

// panelInches is the edge length of one matrix panel in a grid figure.
const panelInches = 3

// MatrixFigures lays out a Dim×Dim matrix field as grids of panels, one per
// element. AmplitudePhase yields an amplitude figure and a phase figure (or
// one figure holding both with SideBySide); Magnitude yields one figure.
//
// The panel for element (row, col) sits at layout position (row, col) and
// is titled Prefix+row+col. Everything is validated before the first
// figure is built; on error no figure is returned.
func (p *Plotter) MatrixFigures(field MatrixField, cfg RenderConfig) ([]*Figure, error) {
	const op = "polviz.MatrixFigures"
	if err := cfg.validate(op); err != nil {
		return nil, err
	}
	if err := field.validate(op, cfg.Mode); err != nil {
		return nil, err
	}
	if cfg.Decomposition == Magnitude {
		return p.magnitudeFigures(field, cfg)
	}
	return p.amplitudePhaseFigures(field, cfg)
}

// elementTitle returns the panel title of (row, col).
func elementTitle(prefix string, row, col int) string {
	return fmt.Sprintf("%s%d%d", prefix, row, col)
}

func panelErr(cfg RenderConfig, row, col int, err error) error {
	return &PanelError{Title: elementTitle(cfg.Prefix, row, col), Row: row, Col: col, Err: err}
}

func (p *Plotter) gridSize(cfg RenderConfig, n, cols int) [2]float64 {
	if cfg.FigureSize[0] > 0 && cfg.FigureSize[1] > 0 {
		return cfg.FigureSize
	}
	if cols > n {
		// Two grids side by side read better a little wider than tall.
		return [2]float64{float64(cols) * panelInches * 1.25, float64(n) * panelInches * 1.1667}
	}
	return [2]float64{float64(n) * panelInches, float64(n) * panelInches}
}

func (p *Plotter) amplitudePhaseFigures(field MatrixField, cfg RenderConfig) ([]*Figure, error) {
	n := field.Dim
	cols := n
	if cfg.SideBySide {
		cols = 2 * n
	}
	amp := newFigure(cfg.Title, p.gridSize(cfg, n, cols), n, cols)
	phs := amp
	if !cfg.SideBySide {
		phs = newFigure(cfg.PhaseTitle, p.gridSize(cfg, n, cols), n, cols)
	}
	phaseCol := 0
	if cfg.SideBySide {
		phaseCol = n
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			vs := field.element(cfg.Mode, row, col)
			a := make([]float64, len(vs))
			ph := make([]float64, len(vs))
			for i, v := range vs {
				a[i] = cmplx.Abs(v)
				ph[i] = cfg.Offsets.Apply(row, col, cmplx.Phase(v))
			}
			an, err := cfg.AmpLimits.norm(a, colormap.Linear)
			if err != nil {
				return nil, panelErr(cfg, row, col, err)
			}
			pn, err := cfg.PhaseLimits.norm(ph, colormap.Linear)
			if err != nil {
				return nil, panelErr(cfg, row, col, err)
			}
			amp.add(p.elementPanel(field, cfg, row, col, col, a, an))
			phs.add(p.elementPanel(field, cfg, row, col, phaseCol+col, ph, pn))
		}
	}
	Logger().Debug("polviz: matrix figures", "title", cfg.Title, "dim", n, "mode", cfg.Mode.String(),
		"sideBySide", cfg.SideBySide)
	if cfg.SideBySide {
		return []*Figure{amp}, nil
	}
	return []*Figure{amp, phs}, nil
}

func (p *Plotter) magnitudeFigures(field MatrixField, cfg RenderConfig) ([]*Figure, error) {
	n := field.Dim
	floor := cfg.LogFloor
	if floor == 0 {
		floor = p.logFloor
	}

	values := make([][][]float64, n)
	for row := 0; row < n; row++ {
		values[row] = make([][]float64, n)
		for col := 0; col < n; col++ {
			vs := field.element(cfg.Mode, row, col)
			re := make([]float64, len(vs))
			clamped, missing := 0, 0
			for i, v := range vs {
				re[i] = real(v)
				if cfg.Scale != colormap.Log || re[i] > 0 {
					continue
				}
				if math.IsNaN(re[i]) {
					missing++
					continue
				}
				if floor <= 0 {
					return nil, panelErr(cfg, row, col, ErrNonPositiveLog)
				}
				re[i] = floor
				clamped++
			}
			if clamped > 0 {
				Logger().Warn("polviz: clamped non-positive values under log scale",
					"panel", elementTitle(cfg.Prefix, row, col), "count", clamped, "floor", floor)
			}
			if missing > 0 {
				Logger().Warn("polviz: NaN values under log scale drawn blank",
					"panel", elementTitle(cfg.Prefix, row, col), "count", missing)
			}
			values[row][col] = re
		}
	}

	fig := newFigure(cfg.Title, p.gridSize(cfg, n, n), n, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			vs := values[row][col]
			norm, err := cfg.AmpLimits.norm(vs, cfg.Scale)
			if err != nil {
				return nil, panelErr(cfg, row, col, err)
			}
			fig.add(p.elementPanel(field, cfg, row, col, col, vs, norm))
		}
	}
	Logger().Debug("polviz: matrix figures", "title", cfg.Title, "dim", n, "mode", cfg.Mode.String(),
		"scale", cfg.Scale.String())
	return []*Figure{fig}, nil
}

func (p *Plotter) elementPanel(field MatrixField, cfg RenderConfig, row, col, layoutCol int,
	values []float64, norm colormap.Norm) *Panel {
	panel := &Panel{
		Title:    elementTitle(cfg.Prefix, row, col),
		Row:      row,
		Col:      layoutCol,
		Element:  Element{Row: row, Col: col},
		Values:   values,
		Norm:     norm,
		Colorbar: true,
		HideAxes: cfg.HideAxes,
	}
	switch cfg.Mode {
	case Scatter:
		panel.Kind = PanelScatter
		panel.X, panel.Y = field.X, field.Y
	case Image:
		g := field.Grids[row][col]
		panel.Kind = PanelImage
		panel.Rows, panel.Cols = g.Rows, g.Cols
	}
	return panel
}
