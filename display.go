package polviz

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"
)

// Display receives finished figures. Show may block, for example until a
// viewer window is closed. dc holds the rasterised figure and is owned by
// the display once passed in.
type Display interface {
	Show(fig *Figure, dc *gg.Context) error
}

// Shown is one figure captured by a Recorder.
type Shown struct {
	Figure *Figure
	Image  image.Image
}

// Recorder keeps every figure it is shown, in order.
type Recorder struct {
	mu    sync.Mutex
	shown []Shown
}

// Show records fig and its raster.
func (r *Recorder) Show(fig *Figure, dc *gg.Context) error {
	if err := dc.FlushGPU(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, Shown{Figure: fig, Image: dc.Image()})
	return nil
}

// Figures returns the recorded figures in display order.
func (r *Recorder) Figures() []*Figure {
	r.mu.Lock()
	defer r.mu.Unlock()
	figs := make([]*Figure, len(r.shown))
	for i, s := range r.shown {
		figs[i] = s.Figure
	}
	return figs
}

// Shown returns everything recorded so far.
func (r *Recorder) Shown() []Shown {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Shown(nil), r.shown...)
}

// Reset forgets recorded figures.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = nil
}

// PNGDisplay writes each figure to Dir as Prefix-NNN.png, numbering from 1
// in display order.
type PNGDisplay struct {
	Dir    string
	Prefix string

	mu    sync.Mutex
	count int
	paths []string
}

// Show encodes fig as the next numbered PNG file.
func (d *PNGDisplay) Show(fig *Figure, dc *gg.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	prefix := d.Prefix
	if prefix == "" {
		prefix = "figure"
	}
	if d.Dir != "" {
		if err := os.MkdirAll(d.Dir, 0o755); err != nil {
			return fmt.Errorf("polviz: create %s: %w", d.Dir, err)
		}
	}
	d.count++
	path := filepath.Join(d.Dir, fmt.Sprintf("%s-%03d.png", prefix, d.count))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("polviz: write %s: %w", path, err)
	}
	d.paths = append(d.paths, path)
	Logger().Info("polviz: wrote figure", "path", path, "title", fig.Title)
	return nil
}

// Paths returns the files written so far.
func (d *PNGDisplay) Paths() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.paths...)
}
