package polviz

import (
	"testing"

	"github.com/gogpu/polviz/raybundle"
)

// pupilBundle returns a bundle of n×n rays on a square pupil grid over
// surfaces surfaces, with identity Jones and PRT matrices everywhere.
func pupilBundle(n, surfaces int) *raybundle.Memory {
	rays := n * n
	b := raybundle.NewMemory(rays, surfaces)
	for s := range b.Surfaces {
		sd := &b.Surfaces[s]
		for i := 0; i < rays; i++ {
			x := float64(i%n)/float64(n-1)*0.02 - 0.01
			y := float64(i/n)/float64(n-1)*0.02 - 0.01
			sd.Position.X[i], sd.Position.Y[i] = x, y
			sd.DirectionCosine.X[i], sd.DirectionCosine.Y[i] = x*5, y*5
			sd.SurfaceNormalCosine.X[i], sd.SurfaceNormalCosine.Y[i] = -x, -y
		}
		for d := 0; d < raybundle.Dim; d++ {
			sd.JonesMatrix.Fill(d, d, 1)
			sd.PRTMatrix.Fill(d, d, 1)
		}
	}
	for d := 0; d < raybundle.Dim; d++ {
		b.JonesMatrixTotal.Fill(d, d, 1)
		b.PRTMatrixTotal.Fill(d, d, 1)
	}
	return b
}

// newTestPlotter returns a Plotter recording into a fresh Recorder.
func newTestPlotter(t *testing.T, opts ...Option) (*Plotter, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	p, err := New(append([]Option{WithDisplay(rec)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p, rec
}

// constGrid returns a rows×cols grid holding v everywhere.
func constGrid(rows, cols int, v float64) Grid {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}
	return RealGrid(rows, cols, data)
}

// muellerGrids returns a 4×4 set of rows×cols grids where element (r, c)
// holds 1 + 4r + c.
func muellerGrids(rows, cols int) [][]Grid {
	m := make([][]Grid, 4)
	for r := range m {
		m[r] = make([]Grid, 4)
		for c := range m[r] {
			m[r][c] = constGrid(rows, cols, float64(1+4*r+c))
		}
	}
	return m
}
