// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewer shows polviz figures in a gogpu window.
//
// Window implements polviz.Display. Each Show opens a window sized to the
// figure, draws the rasterised figure into it through a ggcanvas.Canvas and
// blocks until the user closes the window:
//
//	p, err := polviz.New(polviz.WithDisplay(&viewer.Window{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//	err = p.JonesPupil(bundle, polviz.Limits{}, polviz.Limits{})
//
// The data flow is:
//
//	polviz.Figure -> gg.Context (CPU raster) -> ggcanvas.Canvas -> gogpu window
//
// gogpu drives the window from the main OS thread, so Show must be called
// from the program's main goroutine.
//
// When the GPU accelerator is registered (import _ "github.com/gogpu/gg/gpu"),
// the canvas composites on the GPU; otherwise gg's software renderer fills
// the canvas and only the upload uses the GPU.
package viewer
