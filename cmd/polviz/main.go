// Command polviz renders diagnostic plots of a polarization ray trace.
//
// It reads a ray bundle saved as JSON, runs one plot and writes the
// figures as PNG files, or shows them in a window with -window:
//
//	polviz -bundle trace.json -plot jones -surf last -out figures
//	polviz -bundle trace.json -plot aoi -surf 2 -units degrees -window
//
// Build with -tags gpu to register gg's GPU accelerator.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/polviz"
	"github.com/gogpu/polviz/raybundle"
	"github.com/gogpu/polviz/viewer"
)

func main() {
	var (
		bundle   = flag.String("bundle", "", "ray bundle JSON file (required)")
		plot     = flag.String("plot", "jones", "plot to draw: aoi, prt, jones, jones-pupil, rays")
		surf     = flag.String("surf", "last", "surface: index, last or total")
		units    = flag.String("units", "degrees", "angle units for aoi: degrees or radians")
		out      = flag.String("out", ".", "output directory for PNG files")
		prefix   = flag.String("prefix", "", "PNG file name prefix (default: the plot name)")
		window   = flag.Bool("window", false, "show figures in a window instead of writing PNGs")
		rawPhase = flag.Bool("raw-phase", false, "disable the (1,1) phase correction on Jones plots")
		dpi      = flag.Float64("dpi", 100, "raster resolution")
		verbose  = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	polviz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *bundle == "" {
		flag.Usage()
		os.Exit(2)
	}
	s, err := raybundle.ParseSurface(*surf)
	if err != nil {
		log.Fatal(err)
	}
	b, err := loadBundle(*bundle)
	if err != nil {
		log.Fatal(err)
	}

	var display polviz.Display
	if *window {
		display = &viewer.Window{}
	} else {
		name := *prefix
		if name == "" {
			name = *plot
		}
		display = &polviz.PNGDisplay{Dir: *out, Prefix: name}
	}

	style := polviz.DefaultStyle()
	style.DPI = *dpi
	opts := []polviz.Option{polviz.WithStyle(style), polviz.WithDisplay(display)}
	if *rawPhase {
		opts = append(opts, polviz.WithPhaseOffsets(polviz.NoPhaseOffsets()))
	}
	p, err := polviz.New(opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	if err := run(p, b, *plot, s, polviz.Units(*units)); err != nil {
		log.Fatalf("%s: %v", *plot, err)
	}
	if d, ok := display.(*polviz.PNGDisplay); ok {
		log.Printf("Wrote %d figure(s) to %s", len(d.Paths()), *out)
	}
}

func loadBundle(path string) (*raybundle.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return raybundle.Load(f)
}

func run(p *polviz.Plotter, b raybundle.Bundle, plot string, s raybundle.Surface, units polviz.Units) error {
	switch plot {
	case "aoi":
		return p.AOI(b, s, units)
	case "prt":
		return p.PRT(b, s)
	case "jones":
		return p.Jones(b, s)
	case "jones-pupil":
		return p.JonesPupil(b, polviz.Limits{}, polviz.Limits{})
	case "rays":
		return p.Rays(b, s)
	default:
		return fmt.Errorf("unknown plot %q", plot)
	}
}
