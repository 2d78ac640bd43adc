package polviz

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/gogpu/polviz/raybundle"
)

// A field whose (1, 1) element is -1 everywhere displays as phase 0 under
// the default offsets and as π without them, through both Jones entry
// points.
func TestJonesPhaseOffsetEndToEnd(t *testing.T) {
	b := pupilBundle(3, 2)
	b.JonesMatrixTotal.Fill(1, 1, -1)
	b.Surfaces[1].JonesMatrix.Fill(1, 1, -1)

	plots := []struct {
		name string
		run  func(p *Plotter) error
	}{
		{"JonesPupil", func(p *Plotter) error { return p.JonesPupil(b, Limits{}, Limits{}) }},
		{"Jones/last", func(p *Plotter) error { return p.Jones(b, raybundle.Last()) }},
		{"Jones/total", func(p *Plotter) error { return p.Jones(b, raybundle.Total()) }},
	}
	tables := []struct {
		name string
		opts []Option
		want float64
	}{
		{"default offsets", nil, 0},
		{"no offsets", []Option{WithPhaseOffsets(NoPhaseOffsets())}, math.Pi},
	}
	for _, tab := range tables {
		for _, pl := range plots {
			t.Run(tab.name+"/"+pl.name, func(t *testing.T) {
				p, rec := newTestPlotter(t, tab.opts...)
				if err := pl.run(p); err != nil {
					t.Fatal(err)
				}
				figs := rec.Figures()
				if len(figs) != 2 {
					t.Fatalf("recorded %d figures, want 2", len(figs))
				}
				j11 := figs[1].PanelByTitle("J11")
				for i, v := range j11.Values {
					if math.Abs(v-tab.want) > 1e-12 {
						t.Fatalf("J11 phase[%d] = %v, want %v", i, v, tab.want)
					}
				}
				// The offset touches only (1, 1); the data is unchanged.
				if v := figs[1].PanelByTitle("J00").Values[0]; v != 0 {
					t.Errorf("J00 phase = %v, want 0", v)
				}
				if v := figs[0].PanelByTitle("J11").Values[0]; v != 1 {
					t.Errorf("J11 amplitude = %v, want 1", v)
				}
			})
		}
	}
	if b.JonesMatrixTotal[1][1][0] != -1 {
		t.Error("bundle data modified")
	}
}

func TestJonesPupil_Titles(t *testing.T) {
	p, rec := newTestPlotter(t)
	if err := p.JonesPupil(pupilBundle(3, 1), Range(0, 1), Range(-math.Pi, math.Pi)); err != nil {
		t.Fatal(err)
	}
	figs := rec.Figures()
	if figs[0].Title != "|Jones Matrix| for System" || figs[1].Title != "Arg{Jones Matrix} for System" {
		t.Errorf("titles %q, %q", figs[0].Title, figs[1].Title)
	}
	for _, panel := range figs[1].Panels {
		if panel.Norm.Min != -math.Pi || panel.Norm.Max != math.Pi {
			t.Errorf("%s norm = %+v, want [-π, π]", panel.Title, panel.Norm)
		}
	}
	if len(rec.Shown()) != 2 || rec.Shown()[0].Image == nil {
		t.Error("figures were not rasterised")
	}
}

func TestPRT(t *testing.T) {
	b := pupilBundle(3, 3)
	b.Surfaces[1].PRTMatrix.Fill(1, 1, -1)

	tests := []struct {
		surf      raybundle.Surface
		amp, phs  string
		wantPhase float64
	}{
		{raybundle.Total(), "|PRT Matrix| for System", "Arg[PRT Matrix] for System", 0},
		{raybundle.At(1), "|PRT Matrix| for Surface 1", "Arg[PRT Matrix] for Surface 1", math.Pi},
		{raybundle.Last(), "|PRT Matrix| for Surface 2", "Arg[PRT Matrix] for Surface 2", 0},
	}
	for _, tt := range tests {
		t.Run(tt.surf.String(), func(t *testing.T) {
			p, rec := newTestPlotter(t)
			if err := p.PRT(b, tt.surf); err != nil {
				t.Fatal(err)
			}
			figs := rec.Figures()
			if len(figs) != 2 {
				t.Fatalf("recorded %d figures, want 2", len(figs))
			}
			if figs[0].Title != tt.amp || figs[1].Title != tt.phs {
				t.Errorf("titles %q, %q; want %q, %q", figs[0].Title, figs[1].Title, tt.amp, tt.phs)
			}
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					if want := fmt.Sprintf("P%d%d", r, c); figs[0].Panel(r, c).Title != want {
						t.Errorf("panel (%d, %d) = %q, want %q", r, c, figs[0].Panel(r, c).Title, want)
					}
				}
			}
			// PRT phases are shown raw.
			if v := figs[1].PanelByTitle("P11").Values[0]; v != tt.wantPhase {
				t.Errorf("P11 phase = %v, want %v", v, tt.wantPhase)
			}
			if !figs[0].Panels[0].HideAxes {
				t.Error("PRT panels show axes")
			}
		})
	}
}

func TestPRT_Errors(t *testing.T) {
	p, rec := newTestPlotter(t)
	b := pupilBundle(3, 2)

	if err := p.PRT(b, raybundle.At(2)); !errors.Is(err, raybundle.ErrNoSurface) {
		t.Errorf("At(2): err = %v, want ErrNoSurface", err)
	}

	b.PRTMatrixTotal = nil
	err := p.PRT(b, raybundle.Total())
	if !errors.Is(err, raybundle.ErrMissingField) {
		t.Errorf("missing total: err = %v, want ErrMissingField", err)
	}
	var pe *PreconditionError
	if !errors.As(err, &pe) || pe.Op != "polviz.PRT" {
		t.Errorf("err = %v, want a polviz.PRT PreconditionError", err)
	}
	if n := len(rec.Figures()); n != 0 {
		t.Errorf("recorded %d figures after errors", n)
	}
}

func TestMuellerPupilAndPSM(t *testing.T) {
	p, rec := newTestPlotter(t)
	if err := p.MuellerPupil(muellerGrids(4, 4)); err != nil {
		t.Fatal(err)
	}
	if err := p.PSM(muellerGrids(4, 4)); err != nil {
		t.Fatal(err)
	}
	figs := rec.Figures()
	if len(figs) != 2 {
		t.Fatalf("recorded %d figures, want 2", len(figs))
	}
	if figs[0].Title != "Mueller Pupil" || figs[1].Title != "Mueller PSM" {
		t.Errorf("titles %q, %q", figs[0].Title, figs[1].Title)
	}
	for _, fig := range figs {
		if len(fig.Panels) != 16 {
			t.Fatalf("%s: %d panels, want 16", fig.Title, len(fig.Panels))
		}
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				panel := fig.Panel(r, c)
				if want := fmt.Sprintf("M%d%d", r, c); panel.Title != want {
					t.Errorf("%s (%d, %d) = %q, want %q", fig.Title, r, c, panel.Title, want)
				}
				if panel.Kind != PanelImage || panel.Rows != 4 || panel.Cols != 4 {
					t.Errorf("%s %s: kind %v, %dx%d", fig.Title, panel.Title, panel.Kind, panel.Rows, panel.Cols)
				}
			}
		}
	}
	if s := figs[1].Panel(0, 0).Norm.Scale.String(); s != "log" {
		t.Errorf("PSM scale = %s, want log", s)
	}
	if s := figs[0].Panel(0, 0).Norm.Scale.String(); s != "linear" {
		t.Errorf("Mueller pupil scale = %s, want linear", s)
	}
}

func TestPSM_NonPositive(t *testing.T) {
	m := muellerGrids(3, 3)
	m[1][2].Data[4] = -0.5

	p, rec := newTestPlotter(t)
	err := p.PSM(m)
	var pe *PanelError
	if !errors.As(err, &pe) || pe.Title != "M12" {
		t.Fatalf("err = %v, want PanelError for M12", err)
	}
	if n := len(rec.Figures()); n != 0 {
		t.Errorf("recorded %d figures after error", n)
	}

	p, rec = newTestPlotter(t, WithLogFloor(1e-4))
	if err := p.PSM(m); err != nil {
		t.Fatalf("with floor: %v", err)
	}
	if v := rec.Figures()[0].PanelByTitle("M12").Values[4]; v != 1e-4 {
		t.Errorf("clamped value = %v, want 1e-4", v)
	}
}

func TestMuellerPupil_WrongDimension(t *testing.T) {
	p, _ := newTestPlotter(t)
	m := muellerGrids(2, 2)[:3]
	for i := range m {
		m[i] = m[i][:3]
	}
	// A 3×3 field is a valid matrix grid, so MuellerPupil draws it.
	if err := p.MuellerPupil(m); err != nil {
		t.Fatal(err)
	}
	if err := p.MuellerPupil(muellerGrids(2, 2)[:1]); !errors.Is(err, ErrDimension) {
		t.Errorf("err = %v, want ErrDimension", err)
	}
}

func TestJonesArray(t *testing.T) {
	p, rec := newTestPlotter(t)
	j := func(v complex128) Grid {
		return NewGrid(2, 2, []complex128{v, v, v, v})
	}
	if err := p.JonesArray(j(1), j(1i), j(-1i), j(-1)); err != nil {
		t.Fatal(err)
	}
	figs := rec.Figures()
	if len(figs) != 1 {
		t.Fatalf("recorded %d figures, want 1", len(figs))
	}
	fig := figs[0]
	if fig.Rows != 2 || fig.Cols != 4 {
		t.Fatalf("layout %dx%d, want 2x4", fig.Rows, fig.Cols)
	}
	wantPhase := map[string]float64{"J00": 0, "J01": math.Pi / 2, "J10": -math.Pi / 2, "J11": math.Pi}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			title := fmt.Sprintf("J%d%d", r, c)
			amp, phs := fig.Panel(r, c), fig.Panel(r, c+2)
			if amp.Title != title || phs.Title != title {
				t.Errorf("row %d: %q / %q, want %q", r, amp.Title, phs.Title, title)
				continue
			}
			if amp.Values[0] != 1 {
				t.Errorf("%s amplitude = %v, want 1", title, amp.Values[0])
			}
			// No phase correction for independently supplied maps.
			if got := phs.Values[0]; math.Abs(got-wantPhase[title]) > 1e-12 {
				t.Errorf("%s phase = %v, want %v", title, got, wantPhase[title])
			}
		}
	}
}

func TestJonesArray_ShapeMismatch(t *testing.T) {
	p, _ := newTestPlotter(t)
	g := constGrid(2, 2, 1)
	bad := Grid{Rows: 2, Cols: 2, Data: g.Data[:3]}
	if err := p.JonesArray(g, g, bad, g); !errors.Is(err, ErrGridShape) {
		t.Errorf("err = %v, want ErrGridShape", err)
	}
}

func TestRays(t *testing.T) {
	p, rec := newTestPlotter(t)
	b := pupilBundle(3, 2)
	if err := p.Rays(b, raybundle.At(0)); err != nil {
		t.Fatal(err)
	}
	fig := rec.Figures()[0]
	want := []string{"Position", "Direction Cosine", "Surface Normal Direction Cosine"}
	if len(fig.Panels) != len(want) || fig.Rows != 1 || fig.Cols != 3 {
		t.Fatalf("got %v", fig)
	}
	for i, title := range want {
		panel := fig.Panel(0, i)
		if panel.Title != title {
			t.Errorf("panel %d = %q, want %q", i, panel.Title, title)
		}
		if panel.Values != nil || panel.Colorbar {
			t.Errorf("%s: geometry panels are uncoloured", title)
		}
	}
	dx, _, _ := b.DirectionCosines(0)
	if fig.Panel(0, 1).X[0] != dx[0] {
		t.Error("direction cosine panel does not show direction cosines")
	}
}

func TestPerSurfaceEntryPointsRejectTotal(t *testing.T) {
	p, rec := newTestPlotter(t)
	b := pupilBundle(3, 2)
	for name, err := range map[string]error{
		"AOI":  p.AOI(b, raybundle.Total(), Degrees),
		"Rays": p.Rays(b, raybundle.Total()),
	} {
		if !errors.Is(err, ErrNoSystemTotal) {
			t.Errorf("%s: err = %v, want ErrNoSystemTotal", name, err)
		}
	}
	if n := len(rec.Figures()); n != 0 {
		t.Errorf("recorded %d figures after errors", n)
	}
}

// trimmedBundle wraps a Memory and drops the last entry of one of the
// sequences it hands out.
type trimmedBundle struct {
	*raybundle.Memory
	trim string
}

func (b trimmedBundle) DirectionCosines(surf int) (l, m []float64, err error) {
	l, m, err = b.Memory.DirectionCosines(surf)
	if b.trim == "directionCosine" && err == nil {
		m = m[:len(m)-1]
	}
	return l, m, err
}

func (b trimmedBundle) Positions(surf int) (x, y []float64, err error) {
	x, y, err = b.Memory.Positions(surf)
	if b.trim == "position" && err == nil {
		x = x[:len(x)-1]
	}
	return x, y, err
}

func (b trimmedBundle) AOI(surf int) ([]float64, error) {
	aoi, err := b.Memory.AOI(surf)
	if b.trim == "aoi" && err == nil {
		aoi = aoi[:len(aoi)-1]
	}
	return aoi, err
}

func (b trimmedBundle) Jones(surf int) (raybundle.Matrix, error) {
	m, err := b.Memory.Jones(surf)
	if b.trim == "jones" && err == nil {
		m = raybundle.Matrix{m[0], m[1]}
	}
	return m, err
}

func TestEntryPointsCheckBundleAlignment(t *testing.T) {
	tests := []struct {
		trim string
		run  func(p *Plotter, b raybundle.Bundle) error
		want error
	}{
		{"directionCosine", func(p *Plotter, b raybundle.Bundle) error { return p.Rays(b, raybundle.Last()) }, ErrLengthMismatch},
		{"position", func(p *Plotter, b raybundle.Bundle) error { return p.Rays(b, raybundle.At(0)) }, ErrLengthMismatch},
		{"aoi", func(p *Plotter, b raybundle.Bundle) error { return p.AOI(b, raybundle.Last(), Degrees) }, ErrLengthMismatch},
		{"position", func(p *Plotter, b raybundle.Bundle) error { return p.Jones(b, raybundle.Last()) }, ErrLengthMismatch},
		{"position", func(p *Plotter, b raybundle.Bundle) error { return p.PRT(b, raybundle.Total()) }, ErrLengthMismatch},
		{"jones", func(p *Plotter, b raybundle.Bundle) error { return p.Jones(b, raybundle.At(1)) }, ErrDimension},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d/%s", i, tt.trim), func(t *testing.T) {
			p, rec := newTestPlotter(t)
			b := trimmedBundle{Memory: pupilBundle(3, 2), trim: tt.trim}
			err := tt.run(p, b)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var pe *PreconditionError
			if !errors.As(err, &pe) {
				t.Errorf("err %T is not a *PreconditionError", err)
			}
			var fe *raybundle.FieldError
			if !errors.As(err, &fe) {
				t.Errorf("err %v does not name the bundle field", err)
			}
			if n := len(rec.Figures()); n != 0 {
				t.Errorf("recorded %d figures after error", n)
			}
		})
	}
}

// The zero Surface selects the final surface for Rays as for every other
// per-surface plot.
func TestRays_ZeroSurfaceIsLast(t *testing.T) {
	p, rec := newTestPlotter(t)
	b := pupilBundle(3, 3)
	b.Surfaces[2].Position.X[0] = 42
	if err := p.Rays(b, raybundle.Surface{}); err != nil {
		t.Fatal(err)
	}
	if got := rec.Figures()[0].Panel(0, 0).X[0]; got != 42 {
		t.Errorf("position x[0] = %v, want 42 from the last surface", got)
	}
}
