package polviz

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/polviz/colormap"
)

func TestLimitsResolve(t *testing.T) {
	values := []float64{2, 8, math.NaN(), 5}
	tests := []struct {
		name   string
		limits Limits
		lo, hi float64
	}{
		{"unset", Limits{}, 2, 8},
		{"range", Range(0, 10), 0, 10},
		{"at least", AtLeast(1), 1, 8},
		{"at most", AtMost(6), 2, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.limits.resolve(values, colormap.Linear)
			if n.Min != tt.lo || n.Max != tt.hi {
				t.Errorf("resolve = [%v, %v], want [%v, %v]", n.Min, n.Max, tt.lo, tt.hi)
			}
		})
	}

	if n := (Limits{}).resolve([]float64{math.NaN()}, colormap.Log); n.Min != 0 || n.Max != 1 || n.Scale != colormap.Log {
		t.Errorf("no finite values: %+v", n)
	}
}

func TestLimitsValidate(t *testing.T) {
	tests := []struct {
		limits Limits
		ok     bool
	}{
		{Limits{}, true},
		{Range(-1, 1), true},
		{AtLeast(5), true},
		{Range(1, 1), false},
		{Range(3, 1), false},
		{AtMost(math.NaN()), false},
	}
	for _, tt := range tests {
		err := tt.limits.validate()
		if tt.ok && err != nil {
			t.Errorf("%+v: unexpected error %v", tt.limits, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidLimits) {
			t.Errorf("%+v: err = %v, want ErrInvalidLimits", tt.limits, err)
		}
	}
	if (Limits{}).IsSet() || !AtMost(1).IsSet() {
		t.Error("IsSet wrong")
	}
}

func TestRenderConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  RenderConfig
		want error
	}{
		{"zero value", RenderConfig{}, nil},
		{"log magnitude", RenderConfig{Decomposition: Magnitude, Scale: colormap.Log}, nil},
		{"log amplitude-phase", RenderConfig{Scale: colormap.Log}, ErrInvalidConfig},
		{"unknown decomposition", RenderConfig{Decomposition: Decomposition(9)}, ErrInvalidConfig},
		{"unknown scale", RenderConfig{Scale: colormap.Scale(4)}, ErrInvalidConfig},
		{"log min zero", RenderConfig{Decomposition: Magnitude, Scale: colormap.Log, AmpLimits: AtLeast(0)}, ErrInvalidLimits},
		{"log max negative", RenderConfig{Decomposition: Magnitude, Scale: colormap.Log, AmpLimits: AtMost(-1)}, ErrInvalidLimits},
		{"log max zero", RenderConfig{Decomposition: Magnitude, Scale: colormap.Log, AmpLimits: AtMost(0)}, ErrInvalidLimits},
		{"negative floor", RenderConfig{Decomposition: Magnitude, Scale: colormap.Log, LogFloor: -1}, ErrInvalidConfig},
		{"bad phase limits", RenderConfig{PhaseLimits: Range(1, 0)}, ErrInvalidLimits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate("test")
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestModeStrings(t *testing.T) {
	if Scatter.String() != "scatter" || Image.String() != "image" || Mode(3).String() != "Mode(3)" {
		t.Error("Mode.String")
	}
	if AmplitudePhase.String() != "amplitude-phase" || Magnitude.String() != "magnitude" {
		t.Error("Decomposition.String")
	}
}
