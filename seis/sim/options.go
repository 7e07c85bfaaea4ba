package sim

import (
	"github.com/cwbudde/algo-seis/seis/paz"
	"github.com/cwbudde/algo-seis/seis/resp"
)

// Config defines the correction pipeline configuration.
type Config struct {
	// RemovePAZ is the response of the recording instrument to deconvolve,
	// nil for no inverse filtering.
	RemovePAZ *paz.PAZ

	// SimulatePAZ is the response of the target instrument to convolve in,
	// nil for no simulation.
	SimulatePAZ *paz.PAZ

	// RESP selects an external RESP-file evaluation as the removal response
	// instead of RemovePAZ. RespEval performs the evaluation.
	RESP     *resp.Descriptor
	RespEval resp.EvalFunc

	// RemoveSensitivity divides the corrected trace by the removal
	// instrument's overall sensitivity; SimulateSensitivity multiplies by the
	// target instrument's.
	RemoveSensitivity   bool
	SimulateSensitivity bool

	// WaterLevel is the regularization level in dB below the spectral
	// maximum of the removal response.
	WaterLevel float64

	// ZeroMean subtracts the trace mean before tapering.
	ZeroMean bool

	// Taper applies a cosine taper of TaperFraction to the trace before the
	// forward transform.
	Taper         bool
	TaperFraction float64

	// PreFilter holds the four corner frequencies f1 <= f2 <= f3 <= f4 of a
	// trapezoidal band-pass taper applied to the data spectrum before
	// deconvolution, nil for none.
	PreFilter *[4]float64

	// PowerOfTwoFFT pads the transform to the next power of two above twice
	// the trace length. Off by default: an external RESP evaluation scales
	// with the transform length, which usually costs more than a
	// non-power-of-two FFT.
	PowerOfTwoFFT bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the engine defaults: sensitivities corrected, a 600 dB
// water level, mean removal and a 5% cosine taper on, no pre-filter.
func DefaultConfig() Config {
	return Config{
		RemoveSensitivity:   true,
		SimulateSensitivity: true,
		WaterLevel:          600,
		ZeroMean:            true,
		Taper:               true,
		TaperFraction:       0.05,
	}
}

// WithRemove sets the recording instrument response to deconvolve.
func WithRemove(p paz.PAZ) Option {
	return func(cfg *Config) {
		cfg.RemovePAZ = &p
	}
}

// WithSimulate sets the target instrument response to convolve in.
func WithSimulate(p paz.PAZ) Option {
	return func(cfg *Config) {
		cfg.SimulatePAZ = &p
	}
}

// WithRESP sets a RESP-file descriptor and evaluator as the removal response.
// Takes precedence over WithRemove when both are given.
func WithRESP(d resp.Descriptor, eval resp.EvalFunc) Option {
	return func(cfg *Config) {
		cfg.RESP = &d
		cfg.RespEval = eval
	}
}

// WithRemoveSensitivity toggles division by the removal instrument's
// sensitivity.
func WithRemoveSensitivity(on bool) Option {
	return func(cfg *Config) {
		cfg.RemoveSensitivity = on
	}
}

// WithSimulateSensitivity toggles multiplication by the target instrument's
// sensitivity.
func WithSimulateSensitivity(on bool) Option {
	return func(cfg *Config) {
		cfg.SimulateSensitivity = on
	}
}

// WithWaterLevel sets the deconvolution water level in dB.
func WithWaterLevel(db float64) Option {
	return func(cfg *Config) {
		cfg.WaterLevel = db
	}
}

// WithZeroMean toggles mean removal before tapering.
func WithZeroMean(on bool) Option {
	return func(cfg *Config) {
		cfg.ZeroMean = on
	}
}

// WithTaper toggles the cosine taper before the forward transform.
func WithTaper(on bool) Option {
	return func(cfg *Config) {
		cfg.Taper = on
	}
}

// WithTaperFraction sets the tapered fraction of the trace. Values outside
// [0,1] are rejected by Simulate.
func WithTaperFraction(fraction float64) Option {
	return func(cfg *Config) {
		cfg.TaperFraction = fraction
	}
}

// WithPreFilter restricts the spectrum to the band defined by the four corner
// frequencies before deconvolution.
func WithPreFilter(f1, f2, f3, f4 float64) Option {
	return func(cfg *Config) {
		cfg.PreFilter = &[4]float64{f1, f2, f3, f4}
	}
}

// WithPowerOfTwoFFT pads the transform length to the next power of two.
func WithPowerOfTwoFFT() Option {
	return func(cfg *Config) {
		cfg.PowerOfTwoFFT = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
