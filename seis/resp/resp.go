package resp

import (
	"errors"
	"fmt"
	"math/cmplx"
	"time"
)

// Errors returned at the evaluator boundary.
var (
	ErrNoSource               = errors.New("resp: descriptor carries neither filename nor content")
	ErrNoEvaluator            = errors.New("resp: no evaluator function supplied")
	ErrInvalidSampleInterval  = errors.New("resp: sample interval must be positive")
	ErrInvalidTransformLength = errors.New("resp: transform length must be even and >= 2")
)

// Units selects the physical quantity the evaluated response refers to.
type Units string

const (
	Displacement Units = "DIS"
	Velocity     Units = "VEL"
	Acceleration Units = "ACC"
)

// Descriptor identifies a calibration epoch within a RESP file. Either
// Filename or Content must be set; empty identifier fields default to the
// wildcard "*". Date is resolved at year and day-of-year granularity.
type Descriptor struct {
	Filename string
	Content  []byte
	Date     time.Time
	Station  string
	Channel  string
	Network  string
	LocID    string
	Units    Units
}

// Validate checks that the descriptor names a source.
func (d Descriptor) Validate() error {
	if d.Filename == "" && len(d.Content) == 0 {
		return ErrNoSource
	}
	return nil
}

// Normalized returns a copy with wildcard defaults filled in.
func (d Descriptor) Normalized() Descriptor {
	if d.Station == "" {
		d.Station = "*"
	}

	if d.Channel == "" {
		d.Channel = "*"
	}

	if d.Network == "" {
		d.Network = "*"
	}

	if d.LocID == "" {
		d.LocID = "*"
	}

	if d.Units == "" {
		d.Units = Velocity
	}

	return d
}

// DateString formats the descriptor date the way evalresp expects it,
// "YYYY,DDD" with the day of year zero-padded to three digits.
func (d Descriptor) DateString() string {
	return fmt.Sprintf("%d,%03d", d.Date.Year(), d.Date.YearDay())
}

// EvalFunc is the opaque external evaluator: it resolves the calibration
// epoch named by the descriptor and returns the complex instrument response
// sampled on freqs, in the same order. Any failure to locate an epoch or to
// parse the file must surface as an error, never as a partial result.
type EvalFunc func(d Descriptor, freqs []float64) ([]complex128, error)

// FrequencyGrid returns the nfft/2+1 frequencies from DC to the Nyquist
// frequency 1/(2*tSamp), linearly spaced.
func FrequencyGrid(tSamp float64, nfft int) []float64 {
	n := nfft / 2
	fNyq := 1 / (2 * tSamp)

	freqs := make([]float64, n+1)
	for i := range freqs {
		freqs[i] = fNyq * float64(i) / float64(n)
	}

	return freqs
}

// Evaluate invokes eval on the DC..Nyquist grid for the given transform
// length and post-processes the result into the engine's conventions: the
// response is complex-conjugated and the Nyquist bin is forced purely real
// (its imaginary part carries no information and would leave the phase there
// ambiguous). Returns the response and the grid it was sampled on.
func Evaluate(tSamp float64, nfft int, d Descriptor, eval EvalFunc) ([]complex128, []float64, error) {
	if tSamp <= 0 {
		return nil, nil, ErrInvalidSampleInterval
	}

	if nfft < 2 || nfft&1 == 1 {
		return nil, nil, ErrInvalidTransformLength
	}

	if eval == nil {
		return nil, nil, ErrNoEvaluator
	}

	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	freqs := FrequencyGrid(tSamp, nfft)

	h, err := eval(d.Normalized(), freqs)
	if err != nil {
		return nil, nil, fmt.Errorf("resp: evaluator failed: %w", err)
	}

	if len(h) != len(freqs) {
		return nil, nil, fmt.Errorf("resp: evaluator returned %d values for %d frequencies", len(h), len(freqs))
	}

	for i := range h {
		h[i] = cmplx.Conj(h[i])
	}

	last := len(h) - 1
	h[last] = complex(real(h[last]), 0)

	return h, freqs, nil
}
