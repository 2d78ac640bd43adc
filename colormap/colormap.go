package colormap

import (
	"math"

	"github.com/gogpu/gg"
)

// Colormap is a sequence of evenly spaced colour stops. Positions between
// stops are linearly interpolated.
type Colormap struct {
	Name  string
	Stops []gg.RGBA
}

// At returns the colour at position t. t is clamped to [0, 1]; NaN maps to
// the first stop.
func (m Colormap) At(t float64) gg.RGBA {
	n := len(m.Stops)
	switch {
	case n == 0:
		return gg.Black
	case n == 1 || math.IsNaN(t) || t <= 0:
		return m.Stops[0]
	case t >= 1:
		return m.Stops[n-1]
	}
	pos := t * float64(n-1)
	i := int(pos)
	return m.Stops[i].Lerp(m.Stops[i+1], pos-float64(i))
}

// Viridis is the perceptually uniform default colormap, sampled at nine
// evenly spaced stops of the reference 256-entry table.
var Viridis = Colormap{
	Name: "viridis",
	Stops: []gg.RGBA{
		gg.RGB(0.267004, 0.004874, 0.329415),
		gg.RGB(0.282623, 0.140926, 0.457517),
		gg.RGB(0.229739, 0.322361, 0.545706),
		gg.RGB(0.172719, 0.448791, 0.557885),
		gg.RGB(0.127568, 0.566949, 0.550556),
		gg.RGB(0.134692, 0.658636, 0.517649),
		gg.RGB(0.266941, 0.748751, 0.440573),
		gg.RGB(0.626579, 0.854645, 0.223353),
		gg.RGB(0.993248, 0.906157, 0.143936),
	},
}

// Gray runs from black to white.
var Gray = Colormap{
	Name:  "gray",
	Stops: []gg.RGBA{gg.Black, gg.White},
}

// ByName looks up one of the built-in colormaps.
func ByName(name string) (Colormap, bool) {
	switch name {
	case Viridis.Name:
		return Viridis, true
	case Gray.Name:
		return Gray, true
	}
	return Colormap{}, false
}
