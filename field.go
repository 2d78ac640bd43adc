package polviz

import "fmt"

// Grid is a pre-gridded complex map stored row-major. Real fields use a
// zero imaginary part.
type Grid struct {
	Rows, Cols int
	Data       []complex128
}

// NewGrid wraps data as a rows×cols grid.
func NewGrid(rows, cols int, data []complex128) Grid {
	return Grid{Rows: rows, Cols: cols, Data: data}
}

// RealGrid builds a grid from real data.
func RealGrid(rows, cols int, data []float64) Grid {
	c := make([]complex128, len(data))
	for i, v := range data {
		c[i] = complex(v, 0)
	}
	return Grid{Rows: rows, Cols: cols, Data: c}
}

// GridFromRows builds a grid from a slice of equal-length rows.
func GridFromRows(rows [][]complex128) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, ErrEmptyField
	}
	cols := len(rows[0])
	data := make([]complex128, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrGridShape, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return Grid{Rows: len(rows), Cols: cols, Data: data}, nil
}

// At returns the value at (r, c).
func (g Grid) At(r, c int) complex128 {
	return g.Data[r*g.Cols+c]
}

func (g Grid) validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrGridShape, g.Rows, g.Cols)
	}
	if len(g.Data) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %dx%d grid holds %d values", ErrGridShape, g.Rows, g.Cols, len(g.Data))
	}
	return nil
}

// MatrixField is a square matrix of per-element data prepared for one
// rendering call. Scatter rendering reads Samples against X and Y; image
// rendering reads Grids. Element (row, col) always refers to the physical
// matrix entry (row, col).
type MatrixField struct {
	Dim int

	// Scatter mode: Samples[row][col][ray], aligned with X and Y.
	X, Y    []float64
	Samples [][][]complex128

	// Image mode: Grids[row][col].
	Grids [][]Grid
}

// SampledField builds a scatter-mode field.
func SampledField(x, y []float64, samples [][][]complex128) MatrixField {
	return MatrixField{Dim: len(samples), X: x, Y: y, Samples: samples}
}

// GriddedField builds an image-mode field.
func GriddedField(grids [][]Grid) MatrixField {
	return MatrixField{Dim: len(grids), Grids: grids}
}

// supportedDim reports whether n is a grid size the renderer lays out.
func supportedDim(n int) bool {
	return n >= 2 && n <= 4
}

// validate checks shape and alignment for the given mode before anything
// is drawn.
func (f MatrixField) validate(op string, mode Mode) error {
	if !supportedDim(f.Dim) {
		return precondition(op, ErrDimension, "dimension %d, want 2, 3 or 4", f.Dim)
	}
	switch mode {
	case Scatter:
		if len(f.X) != len(f.Y) {
			return precondition(op, ErrLengthMismatch, "%d x coordinates, %d y coordinates", len(f.X), len(f.Y))
		}
		if len(f.X) == 0 {
			return precondition(op, ErrEmptyField, "no coordinates")
		}
		if len(f.Samples) != f.Dim {
			return precondition(op, ErrDimension, "%d rows, want %d", len(f.Samples), f.Dim)
		}
		for r, row := range f.Samples {
			if len(row) != f.Dim {
				return precondition(op, ErrDimension, "row %d has %d columns, want %d", r, len(row), f.Dim)
			}
			for c, elem := range row {
				if len(elem) != len(f.X) {
					return precondition(op, ErrLengthMismatch,
						"element (%d, %d) has %d samples, %d coordinates", r, c, len(elem), len(f.X))
				}
			}
		}
	case Image:
		if len(f.Grids) != f.Dim {
			return precondition(op, ErrDimension, "%d rows, want %d", len(f.Grids), f.Dim)
		}
		for r, row := range f.Grids {
			if len(row) != f.Dim {
				return precondition(op, ErrDimension, "row %d has %d columns, want %d", r, len(row), f.Dim)
			}
			for c, g := range row {
				if err := g.validate(); err != nil {
					return &PreconditionError{Op: op, Detail: fmt.Sprintf("element (%d, %d)", r, c), Err: err}
				}
				if first := f.Grids[0][0]; g.Rows != first.Rows || g.Cols != first.Cols {
					return precondition(op, ErrGridShape, "element (%d, %d) is %dx%d, element (0, 0) is %dx%d",
						r, c, g.Rows, g.Cols, first.Rows, first.Cols)
				}
			}
		}
	default:
		return precondition(op, ErrInvalidConfig, "unknown mode %v", mode)
	}
	return nil
}

// element returns the complex values of (row, col) in mode.
func (f MatrixField) element(mode Mode, row, col int) []complex128 {
	if mode == Scatter {
		return f.Samples[row][col]
	}
	return f.Grids[row][col].Data
}
