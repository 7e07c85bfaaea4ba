package sim

import (
	"errors"
	"fmt"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seis/internal/rfft"
	"github.com/cwbudde/algo-seis/seis/detrend"
	"github.com/cwbudde/algo-seis/seis/paz"
	"github.com/cwbudde/algo-seis/seis/resp"
	"github.com/cwbudde/algo-seis/seis/spectrum"
	"github.com/cwbudde/algo-seis/seis/taper"
)

// Configuration errors reported before any numeric work.
var (
	ErrNoResponse           = errors.New("sim: neither inverse nor forward instrument simulation specified")
	ErrEmptyData            = errors.New("sim: data must not be empty")
	ErrInvalidSampleRate    = errors.New("sim: sample rate must be positive")
	ErrInvalidPreFilter     = errors.New("sim: pre-filter corners must satisfy 0 <= f1 <= f2 <= f3 <= f4")
	ErrInvalidTaperFraction = errors.New("sim: taper fraction must be in [0,1]")
)

// Simulate corrects a seismometer recording in the frequency domain and
// returns a new trace of the same length; data is never modified.
//
// The pipeline demeans and tapers a copy of the trace, transforms it with
// twice the trace length of headroom against circular-convolution wraparound,
// optionally band-limits the spectrum, divides out the removal response under
// water-level regularization, multiplies in the target response, transforms
// back, removes the residual linear trend, and applies sensitivity scaling.
//
// At least one of WithRemove, WithSimulate, or WithRESP must be supplied.
func Simulate(data []float64, sampleRate float64, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)

	if err := validate(data, sampleRate, cfg); err != nil {
		return nil, err
	}

	ndat := len(data)
	delta := 1 / sampleRate

	tr := make([]float64, ndat)
	copy(tr, data)

	if cfg.ZeroMean {
		detrend.Demean(tr)
	}

	if cfg.Taper {
		if err := taper.Apply(tr, cfg.TaperFraction); err != nil {
			return nil, err
		}
	}

	nfft := transformLength(ndat, cfg.PowerOfTwoFFT)

	spec, err := rfft.Forward(tr, nfft)
	if err != nil {
		return nil, err
	}

	removal, freqs, err := removalResponse(cfg, delta, nfft)
	if err != nil {
		return nil, err
	}

	if removal != nil {
		if cfg.PreFilter != nil {
			win := taper.BandCosine(freqs, cfg.PreFilter[0], cfg.PreFilter[1], cfg.PreFilter[2], cfg.PreFilter[3])
			for i := range spec {
				spec[i] *= complex(win[i], 0)
			}
		}

		// The removal buffer is engine-owned, so the in-place inversion
		// never reaches caller state.
		spectrum.InvertWaterLevel(removal, cfg.WaterLevel)

		for i := range spec {
			spec[i] *= cmplx.Conj(removal[i])
		}
	}

	if cfg.SimulatePAZ != nil {
		target, _, err := paz.FreqResponse(*cfg.SimulatePAZ, delta, nfft)
		if err != nil {
			return nil, err
		}

		for i := range spec {
			spec[i] *= cmplx.Conj(target[i])
		}
	}

	out, err := rfft.Inverse(spec, nfft, ndat)
	if err != nil {
		return nil, err
	}

	detrend.Simple(out)

	if cfg.RESP == nil && cfg.RemovePAZ != nil && cfg.RemoveSensitivity {
		vecmath.ScaleBlock(out, out, 1/cfg.RemovePAZ.Sensitivity)
	}

	if cfg.SimulatePAZ != nil && cfg.SimulateSensitivity {
		vecmath.ScaleBlock(out, out, cfg.SimulatePAZ.Sensitivity)
	}

	return out, nil
}

func validate(data []float64, sampleRate float64, cfg Config) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if cfg.RemovePAZ == nil && cfg.SimulatePAZ == nil && cfg.RESP == nil {
		return ErrNoResponse
	}

	if cfg.RemovePAZ != nil {
		if err := validatePAZ(*cfg.RemovePAZ, cfg.RESP == nil && cfg.RemoveSensitivity); err != nil {
			return fmt.Errorf("sim: remove response: %w", err)
		}
	}

	if cfg.SimulatePAZ != nil {
		if err := validatePAZ(*cfg.SimulatePAZ, cfg.SimulateSensitivity); err != nil {
			return fmt.Errorf("sim: simulate response: %w", err)
		}
	}

	if cfg.RESP != nil {
		if err := cfg.RESP.Validate(); err != nil {
			return err
		}

		if cfg.RespEval == nil {
			return resp.ErrNoEvaluator
		}
	}

	if cfg.Taper && (cfg.TaperFraction < 0 || cfg.TaperFraction > 1) {
		return ErrInvalidTaperFraction
	}

	if cfg.PreFilter != nil {
		f := cfg.PreFilter
		if f[0] < 0 || f[0] > f[1] || f[1] > f[2] || f[2] > f[3] {
			return ErrInvalidPreFilter
		}
	}

	return nil
}

func validatePAZ(p paz.PAZ, needSensitivity bool) error {
	if needSensitivity {
		return p.ValidateSensitivity()
	}

	return p.Validate()
}

// transformLength picks the FFT size: at least twice the trace length keeps
// the response convolution from wrapping around (Numerical Recipes p. 429).
func transformLength(ndat int, powerOfTwo bool) int {
	if powerOfTwo {
		return rfft.NextPow2(2 * ndat)
	}

	if ndat&1 == 1 {
		return 2 * (ndat + 1)
	}

	return 2 * ndat
}

// removalResponse returns the engine-owned removal response and its frequency
// grid, or nil when no inverse filtering was requested. A RESP descriptor
// takes precedence over a removal PAZ.
func removalResponse(cfg Config, delta float64, nfft int) ([]complex128, []float64, error) {
	switch {
	case cfg.RESP != nil:
		return resp.Evaluate(delta, nfft, *cfg.RESP, cfg.RespEval)
	case cfg.RemovePAZ != nil:
		return paz.FreqResponse(*cfg.RemovePAZ, delta, nfft)
	default:
		return nil, nil, nil
	}
}
