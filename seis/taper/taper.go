// Package taper provides cosine tapers for seismic traces and the
// trapezoidal frequency-domain windows used to band-limit instrument
// correction.
package taper

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Cosine returns a cosine taper of n samples in [0,1]. fraction is the total
// tapered portion of the window, split evenly between both ends; 0 yields all
// ones, 1 a full cosine bell. The taper length at each end is
// floor(n*fraction/2), incremented by one unless fraction is exactly 0 or 1,
// so that odd totals stay symmetric.
func Cosine(n int, fraction float64) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	if err := validateFraction(fraction); err != nil {
		return nil, err
	}

	frac := int(float64(n) * fraction / 2.0)
	if fraction != 0.0 && fraction != 1.0 {
		frac++
	}

	if 2*frac > n {
		frac = n / 2
	}

	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	// Raised-cosine ramps with inclusive endpoints: the rising edge sweeps
	// the phase from pi to 2*pi, the falling edge from 0 to pi.
	step := 0.0
	if frac > 1 {
		step = math.Pi / float64(frac-1)
	}

	for i := range frac {
		w[i] = 0.5 * (1 + math.Cos(math.Pi+float64(i)*step))
		w[n-frac+i] = 0.5 * (1 + math.Cos(float64(i)*step))
	}

	return w, nil
}

// Apply multiplies data in place by the cosine taper of matching length.
func Apply(data []float64, fraction float64) error {
	if len(data) == 0 {
		return errEmptyData
	}

	w, err := Cosine(len(data), fraction)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(data, w)
	return nil
}

// BandCosine samples the trapezoidal band-pass taper defined by the corner
// frequencies f1 <= f2 <= f3 <= f4 on the given frequency grid: zero outside
// [f1,f4], cosine ramps on [f1,f2) and (f3,f4], flat one on [f2,f3].
// Zero-width ramps degrade to hard edges.
func BandCosine(freqs []float64, f1, f2, f3, f4 float64) []float64 {
	w := make([]float64, len(freqs))

	for i, f := range freqs {
		switch {
		case f >= f2 && f <= f3:
			w[i] = 1
		case f >= f1 && f < f2:
			w[i] = 0.5 * (1 - math.Cos(math.Pi*(f1-f)/(f2-f1)))
		case f > f3 && f <= f4:
			w[i] = 0.5 * (1 + math.Cos(math.Pi*(f3-f)/(f4-f3)))
		}
	}

	return w
}
