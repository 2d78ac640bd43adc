package polviz

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/polviz/colormap"
)

// PanelKind selects how a panel draws its data.
type PanelKind uint8

const (
	// PanelScatter draws one marker per sample at (X[i], Y[i]).
	PanelScatter PanelKind = iota
	// PanelImage paints a Rows×Cols grid of cells.
	PanelImage
)

// Panel is one set of axes in a figure. Values holds the numbers handed to
// the colormap, after any unit conversion, decomposition or phase offset.
type Panel struct {
	Title string

	// Row and Col place the panel in the figure's layout grid.
	Row, Col int

	// Element is the matrix entry the panel shows; zero for scalar plots.
	Element Element

	Kind PanelKind

	// Scatter data.
	X, Y []float64

	// Image shape; Values is row-major.
	Rows, Cols int

	// Values colours the markers or cells. A nil Values draws every marker
	// in MarkerColor.
	Values      []float64
	MarkerColor gg.RGBA

	Norm     colormap.Norm
	Colorbar bool
	HideAxes bool

	XLabel, YLabel string
}

// Figure is a titled grid of panels. Width and Height are in inches.
type Figure struct {
	Title         string
	Width, Height float64
	Rows, Cols    int
	Panels        []*Panel
}

// newFigure creates a figure with a rows×cols layout.
func newFigure(title string, size [2]float64, rows, cols int) *Figure {
	return &Figure{
		Title:  title,
		Width:  size[0],
		Height: size[1],
		Rows:   rows,
		Cols:   cols,
		Panels: make([]*Panel, 0, rows*cols),
	}
}

func (f *Figure) add(p *Panel) {
	f.Panels = append(f.Panels, p)
}

// Panel returns the panel at layout position (row, col), or nil.
func (f *Figure) Panel(row, col int) *Panel {
	for _, p := range f.Panels {
		if p.Row == row && p.Col == col {
			return p
		}
	}
	return nil
}

// PanelByTitle returns the first panel titled title, or nil.
func (f *Figure) PanelByTitle(title string) *Panel {
	for _, p := range f.Panels {
		if p.Title == title {
			return p
		}
	}
	return nil
}

// Pixels returns the raster size of f at dpi.
func (f *Figure) Pixels(dpi float64) (w, h int) {
	return int(f.Width*dpi + 0.5), int(f.Height*dpi + 0.5)
}

func (f *Figure) String() string {
	return fmt.Sprintf("Figure(%q, %dx%d panels)", f.Title, f.Rows, f.Cols)
}
