// Package paz models analog instrument transfer functions as poles, zeros,
// and gain in the Laplace domain, following the SEED convention that
// correction yields velocity in m/s.
package paz

import (
	"errors"
	"math"
	"math/cmplx"
)

// Errors returned by PAZ validation and response evaluation.
var (
	ErrNonPositiveGain        = errors.New("paz: gain must be positive")
	ErrNegativeSensitivity    = errors.New("paz: sensitivity must not be negative")
	ErrMissingSensitivity     = errors.New("paz: sensitivity required but not set")
	ErrInvalidSampleInterval  = errors.New("paz: sample interval must be positive")
	ErrInvalidTransformLength = errors.New("paz: transform length must be even and >= 2")
)

// DefaultDamping is the damping ratio used when none is given.
const DefaultDamping = 0.707

// PAZ describes an analog transfer function by its poles, zeros, and gain
// (the A0 normalization factor). Sensitivity is the overall scalar converting
// physical units to counts; it is only consulted when sensitivity correction
// is requested. Empty pole or zero lists are valid, the empty product is 1.
type PAZ struct {
	Poles       []complex128
	Zeros       []complex128
	Gain        float64
	Sensitivity float64
}

// Validate checks the structural invariants of the description.
func (p PAZ) Validate() error {
	if p.Gain <= 0 {
		return ErrNonPositiveGain
	}

	if p.Sensitivity < 0 {
		return ErrNegativeSensitivity
	}

	return nil
}

// ValidateSensitivity checks that the description carries a usable
// sensitivity for count scaling.
func (p PAZ) ValidateSensitivity() error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.Sensitivity == 0 {
		return ErrMissingSensitivity
	}

	return nil
}

// AmplitudeAt evaluates |gain * prod(jw - zero) / prod(jw - pole)| at the
// given frequency in Hz, with w = 2*pi*freq.
func (p PAZ) AmplitudeAt(freq float64) float64 {
	jw := complex(0, 2*math.Pi*freq)
	fac := complex(1, 0)

	for _, zero := range p.Zeros {
		fac *= jw - zero
	}

	for _, pole := range p.Poles {
		fac /= jw - pole
	}

	return cmplx.Abs(fac) * p.Gain
}

// FromCornerFreq builds a damped-oscillator description from a corner
// frequency: two zeros at the origin and the complex-conjugate pole pair
// -(damping +- j*sqrt(1-damping^2)) * 2*pi*fc, gain and sensitivity 1.
// A non-positive damping falls back to DefaultDamping.
func FromCornerFreq(fc, damping float64) PAZ {
	if damping <= 0 {
		damping = DefaultDamping
	}

	wc := 2 * math.Pi * fc
	im := math.Sqrt(1 - damping*damping)

	return PAZ{
		Poles: []complex128{
			complex(-damping*wc, -im*wc),
			complex(-damping*wc, im*wc),
		},
		Zeros:       []complex128{0, 0},
		Gain:        1,
		Sensitivity: 1,
	}
}
