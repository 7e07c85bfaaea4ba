// Package rfft provides real-signal forward and inverse FFTs on the even
// transform lengths the correction engine works with.
//
// Power-of-two lengths run on algo-fft complex plans; other even lengths run
// on gonum's FFTPACK-style real transform, which handles arbitrary sizes and
// keeps external response evaluation from paying for power-of-two padding.
package rfft

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

var errTooShort = errors.New("rfft: transform length must be even and >= 2")

func validateLength(nfft int) error {
	if nfft < 2 || nfft&1 == 1 {
		return errTooShort
	}
	return nil
}

// Forward computes the real-to-complex FFT of data zero-padded to nfft
// samples, returning the nfft/2+1 non-redundant bins.
func Forward(data []float64, nfft int) ([]complex128, error) {
	if err := validateLength(nfft); err != nil {
		return nil, err
	}

	if len(data) > nfft {
		data = data[:nfft]
	}

	if IsPow2(nfft) {
		return forwardPow2(data, nfft)
	}

	seq := make([]float64, nfft)
	copy(seq, data)

	fft := fourier.NewFFT(nfft)
	return fft.Coefficients(make([]complex128, nfft/2+1), seq), nil
}

// Inverse computes the complex-to-real inverse FFT of the nfft/2+1 spectrum
// bins, normalized by 1/nfft and truncated to n samples.
func Inverse(spec []complex128, nfft, n int) ([]float64, error) {
	if err := validateLength(nfft); err != nil {
		return nil, err
	}

	if len(spec) != nfft/2+1 {
		return nil, fmt.Errorf("rfft: spectrum has %d bins, want %d", len(spec), nfft/2+1)
	}

	if n < 0 || n > nfft {
		return nil, fmt.Errorf("rfft: output length %d out of range [0,%d]", n, nfft)
	}

	if IsPow2(nfft) {
		return inversePow2(spec, nfft, n)
	}

	fft := fourier.NewFFT(nfft)
	seq := fft.Sequence(make([]float64, nfft), spec)

	// gonum's inverse is unnormalized.
	scale := 1 / float64(nfft)
	out := make([]float64, n)
	for i := range out {
		out[i] = seq[i] * scale
	}

	return out, nil
}

func forwardPow2(data []float64, nfft int) ([]complex128, error) {
	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("rfft: failed to create FFT plan: %w", err)
	}

	src := make([]complex128, nfft)
	for i, v := range data {
		src[i] = complex(v, 0)
	}

	dst := make([]complex128, nfft)
	if err := plan.Forward(dst, src); err != nil {
		return nil, err
	}

	return dst[:nfft/2+1], nil
}

func inversePow2(spec []complex128, nfft, n int) ([]float64, error) {
	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("rfft: failed to create FFT plan: %w", err)
	}

	// Rebuild the redundant half by Hermitian symmetry.
	full := make([]complex128, nfft)
	copy(full, spec)

	for k := 1; k < nfft/2; k++ {
		full[nfft-k] = cmplx.Conj(spec[k])
	}

	dst := make([]complex128, nfft)
	if err := plan.Inverse(dst, full); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(dst[i])
	}

	return out, nil
}

// IsPow2 reports whether n is a power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
