// Package colormap maps scalar field values to colours.
//
// A [Norm] turns a data value into a position in [0, 1], linearly or on a
// base-10 logarithmic scale, and a [Colormap] turns that position into a
// gg colour. Ticks places colorbar and axis ticks for a Norm with gonum's
// plot tickers.
//
//	n := colormap.Norm{Min: 0, Max: math.Pi, Scale: colormap.Linear}
//	c := colormap.Viridis.At(n.Normalize(v))
package colormap
