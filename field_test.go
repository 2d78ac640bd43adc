package polviz

import (
	"errors"
	"testing"
)

func TestGridFromRows(t *testing.T) {
	g, err := GridFromRows([][]complex128{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows != 2 || g.Cols != 3 {
		t.Fatalf("shape %dx%d, want 2x3", g.Rows, g.Cols)
	}
	if g.At(1, 0) != 4 || g.At(0, 2) != 3 {
		t.Errorf("At(1, 0) = %v, At(0, 2) = %v", g.At(1, 0), g.At(0, 2))
	}

	if _, err := GridFromRows([][]complex128{{1, 2}, {3}}); !errors.Is(err, ErrGridShape) {
		t.Errorf("ragged: err = %v, want ErrGridShape", err)
	}
	if _, err := GridFromRows(nil); !errors.Is(err, ErrEmptyField) {
		t.Errorf("empty: err = %v, want ErrEmptyField", err)
	}
}

func TestRealGrid(t *testing.T) {
	g := RealGrid(1, 2, []float64{-1, 3})
	if g.At(0, 0) != -1 || g.At(0, 1) != 3 {
		t.Errorf("data = %v", g.Data)
	}
	if err := g.validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
	if err := (Grid{Rows: 0, Cols: 2}).validate(); !errors.Is(err, ErrGridShape) {
		t.Errorf("empty grid: err = %v, want ErrGridShape", err)
	}
}

func TestFieldConstructors(t *testing.T) {
	x := []float64{0, 1}
	f := SampledField(x, x, indexedSamples(4, 2))
	if f.Dim != 4 {
		t.Errorf("SampledField dim = %d, want 4", f.Dim)
	}
	if err := f.validate("test", Scatter); err != nil {
		t.Errorf("validate: %v", err)
	}
	if got := f.element(Scatter, 3, 2)[1]; got != f.Samples[3][2][1] {
		t.Errorf("element = %v", got)
	}

	g := GriddedField(muellerGrids(2, 2))
	if g.Dim != 4 {
		t.Errorf("GriddedField dim = %d, want 4", g.Dim)
	}
	if got := g.element(Image, 1, 3)[0]; got != 8 {
		t.Errorf("element (1, 3) = %v, want 8", got)
	}
}
