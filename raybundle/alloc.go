package raybundle

// NewMemory allocates a bundle of rays rays over surfaces surfaces with
// every field present and zeroed, ready for an engine to fill in.
func NewMemory(rays, surfaces int) *Memory {
	b := &Memory{
		Rays:             rays,
		Surfaces:         make([]SurfaceData, surfaces),
		JonesMatrixTotal: NewMatrix(rays),
		PRTMatrixTotal:   NewMatrix(rays),
	}
	for i := range b.Surfaces {
		b.Surfaces[i] = SurfaceData{
			Position:            Pair{X: make([]float64, rays), Y: make([]float64, rays)},
			DirectionCosine:     Pair{X: make([]float64, rays), Y: make([]float64, rays)},
			SurfaceNormalCosine: Pair{X: make([]float64, rays), Y: make([]float64, rays)},
			AngleOfIncidence:    make([]float64, rays),
			JonesMatrix:         NewMatrix(rays),
			PRTMatrix:           NewMatrix(rays),
		}
	}
	return b
}

// NewMatrix allocates a zeroed 3×3 matrix with rays samples per element.
func NewMatrix(rays int) Matrix {
	m := make(Matrix, Dim)
	for r := range m {
		m[r] = make([][]complex128, Dim)
		for c := range m[r] {
			m[r][c] = make([]complex128, rays)
		}
	}
	return m
}

// Fill sets element (row, col) of m to v for every ray.
func (m Matrix) Fill(row, col int, v complex128) {
	for i := range m[row][col] {
		m[row][col][i] = v
	}
}
