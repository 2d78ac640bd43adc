package raybundle

import (
	"errors"
	"fmt"
)

// Sentinel errors for raybundle.
var (
	// ErrNoSurface is returned when a surface index is out of range.
	ErrNoSurface = errors.New("raybundle: no such surface")

	// ErrMissingField is returned when a field was never populated.
	ErrMissingField = errors.New("raybundle: field not populated")

	// ErrMisaligned is returned when a per-ray sequence does not have
	// RayCount entries.
	ErrMisaligned = errors.New("raybundle: sequence not aligned with ray count")

	// ErrNotMatrix is returned when a matrix field is not 3×3.
	ErrNotMatrix = errors.New("raybundle: matrix field is not 3x3")

	// ErrNoRays is returned for a bundle with a non-positive ray count.
	ErrNoRays = errors.New("raybundle: ray count must be positive")
)

// FieldError names the field and surface a contract violation was found in.
// Surface is -1 for system-total fields.
type FieldError struct {
	Field   string
	Surface int
	Err     error
}

func (e *FieldError) Error() string {
	if e.Surface < 0 {
		return fmt.Sprintf("%v: %s (system total)", e.Err, e.Field)
	}
	return fmt.Sprintf("%v: %s on surface %d", e.Err, e.Field, e.Surface)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, surf int, err error) error {
	return &FieldError{Field: field, Surface: surf, Err: err}
}
