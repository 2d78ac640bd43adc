package polviz

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/polviz/colormap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Layout proportions, relative to a panel cell or to font sizes.
const (
	cellPad        = 0.04 // fraction of the cell on every side
	titleLeading   = 1.4  // title band height per title pixel size
	colorbarWidth  = 0.05 // fraction of the cell width
	colorbarSteps  = 128
	markerPoints   = 3 // scatter marker radius
	tickLength     = 4 // pixels
	frameLineWidth = 1
)

var scatterBlue = gg.Hex("#1f77b4")

type rect struct {
	x, y, w, h float64
}

func (r rect) right() float64  { return r.x + r.w }
func (r rect) bottom() float64 { return r.y + r.h }

// rasterizer draws one figure onto a gg context.
type rasterizer struct {
	dc      *gg.Context
	style   Style
	fonts   *text.FontSource
	faces   map[float64]text.Face
	printer *message.Printer
}

// rasterize draws f at the style's DPI on a white background.
func (f *Figure) rasterize(style Style, fonts *text.FontSource) (*gg.Context, error) {
	w, h := f.Pixels(style.DPI)
	if w <= 0 || h <= 0 || f.Rows <= 0 || f.Cols <= 0 {
		return nil, fmt.Errorf("%w: figure %q is %dx%d px with %dx%d panels",
			ErrInvalidStyle, f.Title, w, h, f.Rows, f.Cols)
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(gg.White)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	r := &rasterizer{
		dc:      dc,
		style:   style,
		fonts:   fonts,
		faces:   make(map[float64]text.Face),
		printer: newPrinter(),
	}

	top := 0.0
	if f.Title != "" {
		size := r.fit(f.Title, style.px(style.TitleSize), float64(w)*0.95)
		r.label(f.Title, size, float64(w)/2, size*0.7, 0.5, 0.5)
		top = size * titleLeading
	}
	cellW := float64(w) / float64(f.Cols)
	cellH := (float64(h) - top) / float64(f.Rows)
	for _, p := range f.Panels {
		cell := rect{x: float64(p.Col) * cellW, y: top + float64(p.Row)*cellH, w: cellW, h: cellH}
		if err := r.panel(p, cell); err != nil {
			return nil, fmt.Errorf("polviz: draw panel %s: %w", p.Title, err)
		}
	}
	return dc, nil
}

// newPrinter returns the printer used for tick labels.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func (r *rasterizer) face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := r.fonts.Face(size)
	r.faces[size] = f
	return f
}

func (r *rasterizer) measure(s string, size float64) (w, h float64) {
	r.dc.SetFont(r.face(size))
	return r.dc.MeasureString(s)
}

// fit shrinks size until s is at most maxW wide.
func (r *rasterizer) fit(s string, size, maxW float64) float64 {
	w, _ := r.measure(s, size)
	if w <= maxW || w == 0 {
		return size
	}
	return math.Max(size*maxW/w, 6)
}

func (r *rasterizer) label(s string, size, x, y, ax, ay float64) {
	r.dc.SetFont(r.face(size))
	r.dc.SetColor(gg.Black)
	r.dc.DrawStringAnchored(s, x, y, ax, ay)
}

func (r *rasterizer) panel(p *Panel, cell rect) error {
	pad := cell.w * cellPad
	area := rect{x: cell.x + pad, y: cell.y + pad, w: cell.w - 2*pad, h: cell.h - 2*pad}

	if p.Title != "" {
		size := r.fit(p.Title, r.style.px(r.style.TitleSize), area.w)
		r.label(p.Title, size, area.x+area.w/2, area.y+size*0.5, 0.5, 0.5)
		area.y += size * titleLeading
		area.h -= size * titleLeading
	}

	tickSize := r.style.px(r.style.TickSize)
	var barTicks []float64
	if p.Colorbar {
		barTicks = colormap.Ticks(p.Norm)
		labelW := 0.0
		for _, v := range barTicks {
			w, _ := r.measure(r.tickLabel(v, barTicks, p.Norm.Scale), tickSize)
			labelW = math.Max(labelW, w)
		}
		area.w -= cell.w*colorbarWidth + 2*tickLength + labelW + pad
	}

	var xr, yr colormap.Norm
	var xt, yt []float64
	if p.Kind == PanelScatter {
		xr, yr = extent(p.X), extent(p.Y)
		xt, yt = colormap.Ticks(xr), colormap.Ticks(yr)
	}
	if !p.HideAxes && p.Kind == PanelScatter {
		labelSize := r.style.px(r.style.LabelSize)
		yLabelW := 0.0
		for _, v := range yt {
			w, _ := r.measure(r.tickLabel(v, yt, colormap.Linear), tickSize)
			yLabelW = math.Max(yLabelW, w)
		}
		if p.YLabel != "" {
			w, _ := r.measure(p.YLabel, labelSize)
			yLabelW += w + tickLength
		}
		left := yLabelW + 2*tickLength
		bottom := tickSize*titleLeading + tickLength
		if p.XLabel != "" {
			bottom += labelSize * titleLeading
		}
		area.x += left
		area.w -= left
		area.h -= bottom
	}
	if area.w <= 1 || area.h <= 1 {
		return fmt.Errorf("%w: no room for axes in a %.0fx%.0f px cell", ErrInvalidStyle, cell.w, cell.h)
	}

	var frame rect
	var err error
	switch p.Kind {
	case PanelScatter:
		frame = area
		err = r.scatter(p, frame, xr, yr)
	case PanelImage:
		frame, err = r.image(p, area)
	}
	if err != nil {
		return err
	}
	if err := r.frame(frame); err != nil {
		return err
	}
	if !p.HideAxes && p.Kind == PanelScatter {
		if err := r.axes(p, frame, xr, yr, xt, yt); err != nil {
			return err
		}
	}
	if p.Colorbar {
		bar := rect{x: frame.right() + tickLength*2, y: frame.y, w: cell.w * colorbarWidth, h: frame.h}
		return r.colorbar(p.Norm, bar, barTicks)
	}
	return nil
}

// extent returns a padded linear range covering vs.
func extent(vs []float64) colormap.Norm {
	lo, hi, ok := colormap.Range(vs)
	if !ok {
		return colormap.Norm{Min: 0, Max: 1}
	}
	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(lo), 1)
	}
	return colormap.Norm{Min: lo - span*0.05, Max: hi + span*0.05}
}

func (r *rasterizer) scatter(p *Panel, ax rect, xr, yr colormap.Norm) error {
	radius := r.style.px(markerPoints)
	for i := range p.X {
		c := p.MarkerColor
		if p.Values != nil {
			t := p.Norm.Normalize(p.Values[i])
			if math.IsNaN(t) {
				continue
			}
			c = r.style.Colormap.At(t)
		}
		x := ax.x + xr.Normalize(p.X[i])*ax.w
		y := ax.bottom() - yr.Normalize(p.Y[i])*ax.h
		r.dc.SetColor(c)
		r.dc.DrawCircle(x, y, radius)
		if err := r.dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// image paints the grid with square cells centred in ax and returns the
// painted rectangle.
func (r *rasterizer) image(p *Panel, ax rect) (rect, error) {
	src := image.NewRGBA(image.Rect(0, 0, p.Cols, p.Rows))
	for row := 0; row < p.Rows; row++ {
		dst := row
		if r.style.Origin == OriginLower {
			dst = p.Rows - 1 - row
		}
		for col := 0; col < p.Cols; col++ {
			t := p.Norm.Normalize(p.Values[row*p.Cols+col])
			if math.IsNaN(t) {
				continue // transparent
			}
			src.Set(col, dst, r.style.Colormap.At(t).Color())
		}
	}

	cell := math.Min(ax.w/float64(p.Cols), ax.h/float64(p.Rows))
	w, h := math.Floor(cell*float64(p.Cols)), math.Floor(cell*float64(p.Rows))
	if w < 1 || h < 1 {
		return rect{}, fmt.Errorf("%w: %dx%d image does not fit", ErrInvalidStyle, p.Rows, p.Cols)
	}
	x := math.Round(ax.x + (ax.w-w)/2)
	y := math.Round(ax.y + (ax.h-h)/2)

	scaled := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	var scaler xdraw.Scaler = xdraw.NearestNeighbor
	if r.style.Interpolation == InterpBilinear {
		scaler = xdraw.BiLinear
	}
	scaler.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	r.dc.DrawImage(gg.ImageBufFromImage(scaled), x, y)
	return rect{x: x, y: y, w: w, h: h}, nil
}

func (r *rasterizer) frame(b rect) error {
	r.dc.SetColor(gg.Black)
	r.dc.SetLineWidth(frameLineWidth)
	r.dc.DrawRectangle(b.x, b.y, b.w, b.h)
	return r.dc.Stroke()
}

func (r *rasterizer) axes(p *Panel, ax rect, xr, yr colormap.Norm, xt, yt []float64) error {
	tickSize := r.style.px(r.style.TickSize)
	r.dc.SetColor(gg.Black)
	for _, v := range xt {
		x := ax.x + xr.Normalize(v)*ax.w
		r.dc.DrawLine(x, ax.bottom(), x, ax.bottom()+tickLength)
		r.label(r.tickLabel(v, xt, colormap.Linear), tickSize, x, ax.bottom()+tickLength+tickSize*0.6, 0.5, 0.5)
	}
	for _, v := range yt {
		y := ax.bottom() - yr.Normalize(v)*ax.h
		r.dc.DrawLine(ax.x-tickLength, y, ax.x, y)
		r.label(r.tickLabel(v, yt, colormap.Linear), tickSize, ax.x-2*tickLength, y, 1, 0.5)
	}
	r.dc.SetColor(gg.Black)
	if err := r.dc.Stroke(); err != nil {
		return err
	}

	labelSize := r.style.px(r.style.LabelSize)
	if p.XLabel != "" {
		y := ax.bottom() + tickLength + tickSize*titleLeading + labelSize*0.6
		r.label(p.XLabel, labelSize, ax.x+ax.w/2, y, 0.5, 0.5)
	}
	if p.YLabel != "" {
		w := 0.0
		for _, v := range yt {
			lw, _ := r.measure(r.tickLabel(v, yt, colormap.Linear), tickSize)
			w = math.Max(w, lw)
		}
		r.label(p.YLabel, labelSize, ax.x-3*tickLength-w, ax.y+ax.h/2, 1, 0.5)
	}
	return nil
}

func (r *rasterizer) colorbar(n colormap.Norm, bar rect, ticks []float64) error {
	step := bar.h / colorbarSteps
	for i := 0; i < colorbarSteps; i++ {
		t := (float64(i) + 0.5) / colorbarSteps
		r.dc.SetColor(r.style.Colormap.At(t))
		r.dc.DrawRectangle(bar.x, bar.bottom()-float64(i+1)*step, bar.w, step+0.5)
		if err := r.dc.Fill(); err != nil {
			return err
		}
	}
	if err := r.frame(bar); err != nil {
		return err
	}

	tickSize := r.style.px(r.style.TickSize)
	for _, v := range ticks {
		t := n.Normalize(v)
		if math.IsNaN(t) || t < -1e-9 || t > 1+1e-9 {
			continue
		}
		y := bar.bottom() - t*bar.h
		r.dc.SetColor(gg.Black)
		r.dc.DrawLine(bar.right(), y, bar.right()+tickLength, y)
		if err := r.dc.Stroke(); err != nil {
			return err
		}
		r.label(r.tickLabel(v, ticks, n.Scale), tickSize, bar.right()+tickLength*2, y, 0, 0.5)
	}
	return nil
}

// tickLabel formats v with as many fraction digits as the tick spacing
// needs; log ticks keep their natural digits.
func (r *rasterizer) tickLabel(v float64, ticks []float64, scale colormap.Scale) string {
	if scale == colormap.Log {
		return r.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(12)))
	}
	digits := 0
	if len(ticks) > 1 {
		step := math.Abs(ticks[1] - ticks[0])
		digits = max(0, int(-math.Floor(math.Log10(step)+1e-9)))
	} else if v != 0 {
		digits = max(0, 3-int(math.Floor(math.Log10(math.Abs(v))+1)))
	}
	return r.printer.Sprint(number.Decimal(v, number.Scale(digits)))
}
