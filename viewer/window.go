// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewer

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/polviz"
)

// ErrEmptyFigure is returned when a figure has no raster to show.
var ErrEmptyFigure = errors.New("viewer: figure has no pixels")

// Window is a polviz.Display that shows each figure in its own window.
type Window struct {
	// Title is used when a figure has none. Defaults to "polviz".
	Title string

	// MaxWidth and MaxHeight cap the initial window size; larger figures
	// are scaled down to fit. Zero means 1600×1000.
	MaxWidth, MaxHeight int

	// Background fills the letterbox around a figure that does not match
	// the window's aspect ratio. The zero value is transparent black, so
	// set it explicitly; Show uses white when it is zero.
	Background gg.RGBA
}

// Verify at compile time that *Window satisfies polviz.Display.
var _ polviz.Display = (*Window)(nil)

// Show opens a window for fig and blocks until it is closed.
func (w *Window) Show(fig *polviz.Figure, dc *gg.Context) error {
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("viewer: flush figure: %w", err)
	}
	img := dc.Image()
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ErrEmptyFigure
	}
	title := fig.Title
	if title == "" {
		title = w.title()
	}
	width, height := w.initialSize(b.Dx(), b.Dy())
	log := polviz.Logger().With("title", title)
	log.Info("viewer: opening window", "width", width, "height", height)

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height).
		WithContinuousRender(false))

	src := gg.ImageBufFromImage(img)
	bg := w.background()
	var (
		canvas  *ggcanvas.Canvas
		drawErr error
	)
	app.OnDraw(func(gc *gogpu.Context) {
		cw, ch := gc.Width(), gc.Height()
		if cw <= 0 || ch <= 0 {
			return
		}
		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			c, err := ggcanvas.New(provider, cw, ch)
			if err != nil {
				drawErr = fmt.Errorf("viewer: create canvas: %w", err)
				log.Error("viewer: create canvas", "err", err)
				return
			}
			canvas = c
		}
		if w, h := canvas.Size(); w != cw || h != ch {
			if err := canvas.Resize(cw, ch); err != nil {
				log.Warn("viewer: resize canvas", "err", err)
			}
		}
		if err := canvas.Draw(func(cc *gg.Context) {
			if err := drawFitted(cc, src, bg); err != nil {
				log.Warn("viewer: draw figure", "err", err)
			}
		}); err != nil {
			log.Warn("viewer: draw canvas", "err", err)
		}
		if err := canvas.RenderTo(gc.AsTextureDrawer()); err != nil {
			log.Warn("viewer: render canvas", "err", err)
		}
	})
	app.OnClose(func() {
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("viewer: run window %q: %w", title, err)
	}
	log.Debug("viewer: window closed")
	return drawErr
}

func (w *Window) title() string {
	if w.Title != "" {
		return w.Title
	}
	return "polviz"
}

func (w *Window) background() gg.RGBA {
	if w.Background == (gg.RGBA{}) {
		return gg.White
	}
	return w.Background
}

// initialSize returns the window size for an imgW×imgH figure, scaled
// down uniformly to fit within the configured maximum.
func (w *Window) initialSize(imgW, imgH int) (int, int) {
	maxW, maxH := w.MaxWidth, w.MaxHeight
	if maxW <= 0 {
		maxW = 1600
	}
	if maxH <= 0 {
		maxH = 1000
	}
	s := math.Min(1, math.Min(float64(maxW)/float64(imgW), float64(maxH)/float64(imgH)))
	return max(1, int(float64(imgW)*s)), max(1, int(float64(imgH)*s))
}

// fit returns the largest rectangle with src's aspect ratio that fits in a
// w×h area, centred.
func fit(src image.Rectangle, w, h int) (x, y, dw, dh float64) {
	s := math.Min(float64(w)/float64(src.Dx()), float64(h)/float64(src.Dy()))
	dw, dh = float64(src.Dx())*s, float64(src.Dy())*s
	return (float64(w) - dw) / 2, (float64(h) - dh) / 2, dw, dh
}

// drawFitted clears cc to bg and draws src scaled to fit, preserving its
// aspect ratio.
func drawFitted(cc *gg.Context, src *gg.ImageBuf, bg gg.RGBA) error {
	cc.SetColor(bg)
	cc.DrawRectangle(0, 0, float64(cc.Width()), float64(cc.Height()))
	if err := cc.Fill(); err != nil {
		return err
	}
	x, y, dw, dh := fit(image.Rect(0, 0, src.Width(), src.Height()), cc.Width(), cc.Height())
	cc.DrawImageEx(src, gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      dw,
		DstHeight:     dh,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
	})
	return nil
}
