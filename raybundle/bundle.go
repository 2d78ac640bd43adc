package raybundle

// Matrix holds per-ray samples of a 3×3 complex matrix, indexed
// [row][col][ray].
type Matrix [][][]complex128

// Dim is the matrix size of Jones and PRT fields.
const Dim = 3

// Bundle is the capability set a renderer needs from a traced ray bundle.
// Surface arguments are concrete indices; use Surface.Resolve to obtain one.
// Implementations must not hand out sequences whose length differs from
// RayCount; Check verifies this at the boundary.
type Bundle interface {
	RayCount() int
	SurfaceCount() int

	Positions(surf int) (x, y []float64, err error)
	DirectionCosines(surf int) (l, m []float64, err error)
	SurfaceNormalCosines(surf int) (l, m []float64, err error)
	AOI(surf int) ([]float64, error)

	Jones(surf int) (Matrix, error)
	PRT(surf int) (Matrix, error)
	JonesTotal() (Matrix, error)
	PRTTotal() (Matrix, error)
}

// Pair is an (x, y) pair of aligned per-ray sequences.
type Pair struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// SurfaceData holds every per-ray field for one surface.
type SurfaceData struct {
	Position            Pair      `json:"position"`
	DirectionCosine     Pair      `json:"directionCosine"`
	SurfaceNormalCosine Pair      `json:"surfaceNormalCosine"`
	AngleOfIncidence    []float64 `json:"aoi"`
	JonesMatrix         Matrix    `json:"jones"`
	PRTMatrix           Matrix    `json:"prt"`
}

// Memory is an in-memory Bundle. The tracing engine fills it once; polviz
// only reads it.
type Memory struct {
	Rays             int           `json:"rays"`
	Surfaces         []SurfaceData `json:"surfaces"`
	JonesMatrixTotal Matrix        `json:"jonesTotal"`
	PRTMatrixTotal   Matrix        `json:"prtTotal"`
}

// Verify at compile time that *Memory satisfies Bundle.
var _ Bundle = (*Memory)(nil)

// RayCount returns the number of rays in the bundle.
func (b *Memory) RayCount() int { return b.Rays }

// SurfaceCount returns the number of traced surfaces.
func (b *Memory) SurfaceCount() int { return len(b.Surfaces) }

func (b *Memory) surface(surf int) (*SurfaceData, error) {
	if surf < 0 || surf >= len(b.Surfaces) {
		return nil, fieldErr("surface", surf, ErrNoSurface)
	}
	return &b.Surfaces[surf], nil
}

// Positions returns the ray footprint coordinates on surf, in meters.
func (b *Memory) Positions(surf int) (x, y []float64, err error) {
	return b.pair("position", surf, func(s *SurfaceData) Pair { return s.Position })
}

// DirectionCosines returns the x and y direction cosines on surf.
func (b *Memory) DirectionCosines(surf int) (l, m []float64, err error) {
	return b.pair("directionCosine", surf, func(s *SurfaceData) Pair { return s.DirectionCosine })
}

// SurfaceNormalCosines returns the x and y surface-normal direction cosines on surf.
func (b *Memory) SurfaceNormalCosines(surf int) (l, m []float64, err error) {
	return b.pair("surfaceNormalCosine", surf, func(s *SurfaceData) Pair { return s.SurfaceNormalCosine })
}

func (b *Memory) pair(field string, surf int, get func(*SurfaceData) Pair) (x, y []float64, err error) {
	s, err := b.surface(surf)
	if err != nil {
		return nil, nil, err
	}
	p := get(s)
	if err := b.aligned(field, surf, p.X); err != nil {
		return nil, nil, err
	}
	if err := b.aligned(field, surf, p.Y); err != nil {
		return nil, nil, err
	}
	return p.X, p.Y, nil
}

// AOI returns the angle of incidence on surf, in radians.
func (b *Memory) AOI(surf int) ([]float64, error) {
	s, err := b.surface(surf)
	if err != nil {
		return nil, err
	}
	if err := b.aligned("aoi", surf, s.AngleOfIncidence); err != nil {
		return nil, err
	}
	return s.AngleOfIncidence, nil
}

// Jones returns the per-ray Jones matrix of surf.
func (b *Memory) Jones(surf int) (Matrix, error) {
	s, err := b.surface(surf)
	if err != nil {
		return nil, err
	}
	return s.JonesMatrix, b.checkMatrix("jones", surf, s.JonesMatrix)
}

// PRT returns the per-ray polarization ray-trace matrix of surf.
func (b *Memory) PRT(surf int) (Matrix, error) {
	s, err := b.surface(surf)
	if err != nil {
		return nil, err
	}
	return s.PRTMatrix, b.checkMatrix("prt", surf, s.PRTMatrix)
}

// JonesTotal returns the system-accumulated Jones matrix.
func (b *Memory) JonesTotal() (Matrix, error) {
	return b.JonesMatrixTotal, b.checkMatrix("jonesTotal", -1, b.JonesMatrixTotal)
}

// PRTTotal returns the system-accumulated PRT matrix.
func (b *Memory) PRTTotal() (Matrix, error) {
	return b.PRTMatrixTotal, b.checkMatrix("prtTotal", -1, b.PRTMatrixTotal)
}

func (b *Memory) aligned(field string, surf int, v []float64) error {
	return checkSeq(v, b.Rays, field, surf)
}

func (b *Memory) checkMatrix(field string, surf int, m Matrix) error {
	return CheckMatrix(m, b.Rays, field, surf)
}

// CheckMatrix verifies m is 3×3 with rays samples per element. field and
// surf only label the returned *FieldError.
func CheckMatrix(m Matrix, rays int, field string, surf int) error {
	if m == nil {
		return fieldErr(field, surf, ErrMissingField)
	}
	if len(m) != Dim {
		return fieldErr(field, surf, ErrNotMatrix)
	}
	for _, row := range m {
		if len(row) != Dim {
			return fieldErr(field, surf, ErrNotMatrix)
		}
		for _, elem := range row {
			if len(elem) != rays {
				return fieldErr(field, surf, ErrMisaligned)
			}
		}
	}
	return nil
}

// Validate checks that every populated field is aligned with Rays and every
// populated matrix is 3×3. Fields left nil are reported only when read.
func (b *Memory) Validate() error {
	if b.Rays <= 0 {
		return ErrNoRays
	}
	for i := range b.Surfaces {
		s := &b.Surfaces[i]
		seqs := []struct {
			field string
			v     []float64
		}{
			{"position.x", s.Position.X},
			{"position.y", s.Position.Y},
			{"directionCosine.l", s.DirectionCosine.X},
			{"directionCosine.m", s.DirectionCosine.Y},
			{"surfaceNormalCosine.l", s.SurfaceNormalCosine.X},
			{"surfaceNormalCosine.m", s.SurfaceNormalCosine.Y},
			{"aoi", s.AngleOfIncidence},
		}
		for _, q := range seqs {
			if q.v != nil && len(q.v) != b.Rays {
				return fieldErr(q.field, i, ErrMisaligned)
			}
		}
		if s.JonesMatrix != nil {
			if err := b.checkMatrix("jones", i, s.JonesMatrix); err != nil {
				return err
			}
		}
		if s.PRTMatrix != nil {
			if err := b.checkMatrix("prt", i, s.PRTMatrix); err != nil {
				return err
			}
		}
	}
	if b.JonesMatrixTotal != nil {
		if err := b.checkMatrix("jonesTotal", -1, b.JonesMatrixTotal); err != nil {
			return err
		}
	}
	if b.PRTMatrixTotal != nil {
		if err := b.checkMatrix("prtTotal", -1, b.PRTMatrixTotal); err != nil {
			return err
		}
	}
	return nil
}
