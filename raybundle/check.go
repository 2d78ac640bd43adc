package raybundle

// Field selects which per-ray fields Check reads.
type Field uint8

const (
	FieldPositions Field = 1 << iota
	FieldDirectionCosines
	FieldNormalCosines
	FieldAOI
	FieldJones
	FieldPRT

	// AllFields selects every field.
	AllFields = FieldPositions | FieldDirectionCosines | FieldNormalCosines |
		FieldAOI | FieldJones | FieldPRT
)

// SystemTotal is the surf argument Check takes for the system-accumulated
// matrices. Only FieldJones and FieldPRT apply to it.
const SystemTotal = -1

// Check reads the selected fields of surf from b and verifies that every
// sequence has RayCount entries and every matrix is 3×3. With no fields
// given it checks all of them. Any Bundle implementation can be checked;
// renderers call it before indexing into the data.
func Check(b Bundle, surf int, fields ...Field) error {
	want := AllFields
	if len(fields) > 0 {
		want = 0
		for _, f := range fields {
			want |= f
		}
	}
	rays := b.RayCount()
	if rays <= 0 {
		return ErrNoRays
	}

	if surf == SystemTotal {
		if want&FieldJones != 0 {
			if err := checkTotal(b.JonesTotal, rays, "jonesTotal"); err != nil {
				return err
			}
		}
		if want&FieldPRT != 0 {
			if err := checkTotal(b.PRTTotal, rays, "prtTotal"); err != nil {
				return err
			}
		}
		if want&^(FieldJones|FieldPRT) != 0 {
			return fieldErr("geometry", surf, ErrNoSurface)
		}
		return nil
	}
	if surf < 0 || surf >= b.SurfaceCount() {
		return fieldErr("surface", surf, ErrNoSurface)
	}

	pairs := []struct {
		flag  Field
		field string
		get   func(int) ([]float64, []float64, error)
	}{
		{FieldPositions, "position", b.Positions},
		{FieldDirectionCosines, "directionCosine", b.DirectionCosines},
		{FieldNormalCosines, "surfaceNormalCosine", b.SurfaceNormalCosines},
	}
	for _, p := range pairs {
		if want&p.flag == 0 {
			continue
		}
		x, y, err := p.get(surf)
		if err != nil {
			return err
		}
		if err := checkSeq(x, rays, p.field+".x", surf); err != nil {
			return err
		}
		if err := checkSeq(y, rays, p.field+".y", surf); err != nil {
			return err
		}
	}
	if want&FieldAOI != 0 {
		aoi, err := b.AOI(surf)
		if err != nil {
			return err
		}
		if err := checkSeq(aoi, rays, "aoi", surf); err != nil {
			return err
		}
	}
	matrices := []struct {
		flag  Field
		field string
		get   func(int) (Matrix, error)
	}{
		{FieldJones, "jones", b.Jones},
		{FieldPRT, "prt", b.PRT},
	}
	for _, m := range matrices {
		if want&m.flag == 0 {
			continue
		}
		v, err := m.get(surf)
		if err != nil {
			return err
		}
		if err := CheckMatrix(v, rays, m.field, surf); err != nil {
			return err
		}
	}
	return nil
}

func checkTotal(get func() (Matrix, error), rays int, field string) error {
	m, err := get()
	if err != nil {
		return err
	}
	return CheckMatrix(m, rays, field, SystemTotal)
}

func checkSeq(v []float64, rays int, field string, surf int) error {
	if v == nil {
		return fieldErr(field, surf, ErrMissingField)
	}
	if len(v) != rays {
		return fieldErr(field, surf, ErrMisaligned)
	}
	return nil
}
