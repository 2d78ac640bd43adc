package raybundle

import (
	"fmt"
	"strconv"
)

type surfaceKind uint8

const (
	kindLast surfaceKind = iota
	kindIndex
	kindTotal
)

// Surface selects which surface of a bundle a plot draws from.
// The zero value selects the final surface.
type Surface struct {
	kind  surfaceKind
	index int
}

// At selects surface n, counted from 0 along the optical path.
func At(n int) Surface { return Surface{kind: kindIndex, index: n} }

// Last selects the final (image) surface.
func Last() Surface { return Surface{kind: kindLast} }

// Total selects the system-accumulated fields.
func Total() Surface { return Surface{kind: kindTotal} }

// IsTotal reports whether s selects the system total.
func (s Surface) IsTotal() bool { return s.kind == kindTotal }

// Resolve returns the concrete surface index for a bundle with count
// surfaces. It fails for Total, which has no index, and for indices
// outside [0, count).
func (s Surface) Resolve(count int) (int, error) {
	switch s.kind {
	case kindTotal:
		return 0, fmt.Errorf("%w: system total has no surface index", ErrNoSurface)
	case kindLast:
		if count <= 0 {
			return 0, fmt.Errorf("%w: bundle has no surfaces", ErrNoSurface)
		}
		return count - 1, nil
	}
	if s.index < 0 || s.index >= count {
		return 0, fmt.Errorf("%w: index %d, bundle has %d", ErrNoSurface, s.index, count)
	}
	return s.index, nil
}

// String returns the label used in plot titles.
func (s Surface) String() string {
	switch s.kind {
	case kindTotal:
		return "System"
	case kindLast:
		return "last"
	}
	return strconv.Itoa(s.index)
}

// ParseSurface parses the CLI spelling of a selector: "last", "total" or a
// non-negative integer.
func ParseSurface(v string) (Surface, error) {
	switch v {
	case "", "last":
		return Last(), nil
	case "total", "system":
		return Total(), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return Surface{}, fmt.Errorf("raybundle: invalid surface %q", v)
	}
	return At(n), nil
}
