package polviz

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Plotter renders polarization ray-trace fields into figures and hands
// them to a Display. A Plotter is not safe for concurrent use; create one
// per goroutine.
type Plotter struct {
	style    Style
	display  Display
	offsets  PhaseOffsets
	logFloor float64
	fonts    *text.FontSource
}

// New creates a Plotter. The style is validated and its font parsed once.
func New(opts ...Option) (*Plotter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.style.Validate(); err != nil {
		return nil, err
	}
	fonts, err := text.NewFontSource(o.style.Font)
	if err != nil {
		return nil, fmt.Errorf("polviz: load %s font: %w", o.style.FontFamily, err)
	}
	if o.display == nil {
		o.display = &Recorder{}
	}
	return &Plotter{
		style:    o.style,
		display:  o.display,
		offsets:  o.offsets,
		logFloor: o.logFloor,
		fonts:    fonts,
	}, nil
}

// Style returns the plotter's style.
func (p *Plotter) Style() Style { return p.style }

// Display returns where the plotter sends figures.
func (p *Plotter) Display() Display { return p.display }

// PhaseOffsets returns the table applied by the Jones entry points.
func (p *Plotter) PhaseOffsets() PhaseOffsets { return p.offsets }

// Close releases the parsed font.
func (p *Plotter) Close() error {
	return p.fonts.Close()
}

// show rasterises figs and passes them to the display in order.
// All figures are rasterised before the first one is shown.
func (p *Plotter) show(figs ...*Figure) error {
	type page struct {
		fig *Figure
		dc  *gg.Context
	}
	pages := make([]page, 0, len(figs))
	for _, f := range figs {
		dc, err := f.rasterize(p.style, p.fonts)
		if err != nil {
			return err
		}
		pages = append(pages, page{fig: f, dc: dc})
	}
	for _, r := range pages {
		Logger().Debug("polviz: show figure", "title", r.fig.Title, "panels", len(r.fig.Panels))
		if err := p.display.Show(r.fig, r.dc); err != nil {
			return fmt.Errorf("polviz: show %q: %w", r.fig.Title, err)
		}
	}
	return nil
}
