package spectrum

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// WaterLevel returns the absolute spectral amplitude sitting levelDB decibels
// below the maximum amplitude of spec.
func WaterLevel(spec []complex128, levelDB float64) float64 {
	if len(spec) == 0 {
		return 0
	}

	mags := magnitudes(spec)

	maxAmp := mags[0]
	for _, m := range mags[1:] {
		if m > maxAmp {
			maxAmp = m
		}
	}

	return maxAmp * math.Pow(10, -levelDB/20)
}

// InvertWaterLevel inverts spec in place with water-level regularization:
// every bin whose magnitude lies strictly between zero and the water level is
// scaled up to the level with its phase preserved, then every bin with
// nonzero magnitude is replaced by its complex reciprocal. Bins of exactly
// zero magnitude become 0+0i and are never inverted. It returns the number of
// clamped bins.
func InvertWaterLevel(spec []complex128, levelDB float64) int {
	if len(spec) == 0 {
		return 0
	}

	swamp := WaterLevel(spec, levelDB)

	found := 0
	for i, m := range magnitudes(spec) {
		if m > 0 && m < swamp {
			spec[i] *= complex(swamp/m, 0)
			found++
		}
	}

	for i, m := range magnitudes(spec) {
		if m > 0 {
			spec[i] = 1 / spec[i]
		} else {
			spec[i] = 0
		}
	}

	return found
}

func magnitudes(spec []complex128) []float64 {
	n := len(spec)
	buf := make([]float64, 3*n)
	out, re, im := buf[:n], buf[n:2*n], buf[2*n:]

	for i, c := range spec {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	return out
}
