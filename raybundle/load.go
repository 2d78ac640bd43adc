package raybundle

import (
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON encodes each complex sample as a [re, im] pair.
func (m Matrix) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	wire := make([][][][2]float64, len(m))
	for r, row := range m {
		wire[r] = make([][][2]float64, len(row))
		for c, elem := range row {
			wire[r][c] = make([][2]float64, len(elem))
			for i, v := range elem {
				wire[r][c][i] = [2]float64{real(v), imag(v)}
			}
		}
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the [re, im] pair form written by MarshalJSON.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var wire [][][][2]float64
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("raybundle: decode matrix: %w", err)
	}
	if wire == nil {
		*m = nil
		return nil
	}
	out := make(Matrix, len(wire))
	for r, row := range wire {
		out[r] = make([][]complex128, len(row))
		for c, elem := range row {
			out[r][c] = make([]complex128, len(elem))
			for i, v := range elem {
				out[r][c][i] = complex(v[0], v[1])
			}
		}
	}
	*m = out
	return nil
}

// Load decodes a JSON bundle and validates it.
func Load(r io.Reader) (*Memory, error) {
	var b Memory
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("raybundle: decode bundle: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Save encodes b as JSON in the form Load reads.
func Save(w io.Writer, b *Memory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}
