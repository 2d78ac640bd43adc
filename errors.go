package polviz

import (
	"errors"
	"fmt"
)

// Sentinel errors for polviz.
var (
	// ErrLengthMismatch is returned when coordinate and value sequences
	// that must be index-aligned have different lengths.
	ErrLengthMismatch = errors.New("polviz: sequence length mismatch")

	// ErrDimension is returned when a matrix field is not Dim×Dim or Dim
	// is not one of the supported sizes.
	ErrDimension = errors.New("polviz: unsupported matrix dimension")

	// ErrEmptyField is returned when a field carries no samples at all.
	ErrEmptyField = errors.New("polviz: empty field")

	// ErrGridShape is returned when an image-mode grid does not have
	// Rows*Cols values or grids in one field differ in shape.
	ErrGridShape = errors.New("polviz: inconsistent grid shape")

	// ErrNonPositiveLog is returned when a log-scaled panel contains a
	// zero or negative value and no floor is configured.
	ErrNonPositiveLog = errors.New("polviz: non-positive value under log scale")

	// ErrInvalidLimits is returned when a shared colour range has Min >= Max,
	// when a log range has a non-positive end, or when a one-sided limit
	// resolves to an inverted range against a panel's data.
	ErrInvalidLimits = errors.New("polviz: invalid colour limits")

	// ErrInvalidConfig is returned for a RenderConfig with an unknown mode
	// or decomposition.
	ErrInvalidConfig = errors.New("polviz: invalid render configuration")

	// ErrInvalidStyle is returned by Style.Validate.
	ErrInvalidStyle = errors.New("polviz: invalid style")

	// ErrNoSystemTotal is returned when an entry point that only has
	// per-surface data is asked for the system total.
	ErrNoSystemTotal = errors.New("polviz: field has no system total")
)

// PreconditionError reports a caller error detected before any figure was
// created.
type PreconditionError struct {
	Op     string // renderer or entry point name
	Detail string
	Err    error
}

func (e *PreconditionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// PanelError names the matrix element whose data could not be rendered.
type PanelError struct {
	Title    string
	Row, Col int
	Err      error
}

func (e *PanelError) Error() string {
	return fmt.Sprintf("polviz: panel %s (row %d, col %d): %v", e.Title, e.Row, e.Col, e.Err)
}

func (e *PanelError) Unwrap() error { return e.Err }

func precondition(op string, err error, format string, args ...any) error {
	return &PreconditionError{Op: op, Detail: fmt.Sprintf(format, args...), Err: err}
}
