package polviz

// Option configures a Plotter during creation.
//
// Example:
//
//	// PNG files in ./figures with the default style
//	p, err := polviz.New(polviz.WithDisplay(&polviz.PNGDisplay{Dir: "figures"}))
//
//	// Disable the (1,1) phase correction on Jones plots
//	p, err := polviz.New(polviz.WithPhaseOffsets(polviz.NoPhaseOffsets()))
type Option func(*options)

// options holds optional configuration for Plotter creation.
type options struct {
	style    Style
	display  Display
	offsets  PhaseOffsets
	logFloor float64
}

func defaultOptions() options {
	return options{
		style:   DefaultStyle(),
		display: nil, // Will be set to a Recorder if nil
		offsets: DefaultPhaseOffsets(),
	}
}

// WithStyle replaces the default rendering style.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithDisplay sets where finished figures go. Without it figures are kept
// in a Recorder reachable through Plotter.Display.
func WithDisplay(d Display) Option {
	return func(o *options) {
		o.display = d
	}
}

// WithPhaseOffsets sets the phase correction table used by the Jones entry
// points. Pass NoPhaseOffsets() to display raw phases.
func WithPhaseOffsets(t PhaseOffsets) Option {
	return func(o *options) {
		o.offsets = t
	}
}

// WithLogFloor makes log-scaled plots clamp zero and negative values to
// floor instead of failing. floor must be positive to take effect.
func WithLogFloor(floor float64) Option {
	return func(o *options) {
		o.logFloor = floor
	}
}
