package polviz

import (
	"fmt"

	"github.com/gogpu/polviz/colormap"
	"golang.org/x/image/font/gofont/goregular"
)

// Origin selects where row 0 of an image panel is drawn.
type Origin uint8

const (
	// OriginLower draws row 0 at the bottom of the panel.
	OriginLower Origin = iota
	// OriginUpper draws row 0 at the top of the panel.
	OriginUpper
)

// Interpolation selects how image panels are resampled to panel size.
type Interpolation uint8

const (
	// InterpNearest paints each grid cell as a flat block.
	InterpNearest Interpolation = iota
	// InterpBilinear blends neighbouring cells.
	InterpBilinear
)

// Style holds the rendering defaults shared by every figure a Plotter
// produces. A Style is treated as read-only once passed to New.
type Style struct {
	Origin        Origin
	Interpolation Interpolation
	Colormap      colormap.Colormap

	// Font sizes in points.
	LabelSize float64
	TitleSize float64
	FontSize  float64
	TickSize  float64

	// FigureSize is the default figure width and height in inches; entry
	// points that lay out grids override it.
	FigureSize [2]float64
	DPI        float64

	// FontFamily names the requested family; Font holds the TrueType data
	// actually used for it.
	FontFamily string
	Font       []byte
}

// DefaultStyle returns the defaults applied to every figure unless
// overridden with WithStyle.
func DefaultStyle() Style {
	return Style{
		Origin:        OriginLower,
		Interpolation: InterpNearest,
		Colormap:      colormap.Viridis,
		LabelSize:     20,
		TitleSize:     24,
		FontSize:      20,
		TickSize:      14,
		FigureSize:    [2]float64{3.39, 2.10},
		DPI:           100,
		FontFamily:    "serif",
		Font:          goregular.TTF,
	}
}

// Validate reports sizes that cannot produce a figure.
func (s Style) Validate() error {
	switch {
	case s.DPI <= 0:
		return fmt.Errorf("%w: DPI %v", ErrInvalidStyle, s.DPI)
	case s.FigureSize[0] <= 0 || s.FigureSize[1] <= 0:
		return fmt.Errorf("%w: figure size %v", ErrInvalidStyle, s.FigureSize)
	case s.LabelSize <= 0 || s.TitleSize <= 0 || s.FontSize <= 0 || s.TickSize <= 0:
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidStyle)
	case len(s.Colormap.Stops) == 0:
		return fmt.Errorf("%w: colormap %q has no stops", ErrInvalidStyle, s.Colormap.Name)
	case len(s.Font) == 0:
		return fmt.Errorf("%w: no font data", ErrInvalidStyle)
	}
	return nil
}

// px converts a length in points to pixels at the style's DPI.
func (s Style) px(points float64) float64 {
	return points * s.DPI / 72
}
