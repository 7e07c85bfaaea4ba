package paz

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-seis/internal/poly"
)

// FreqResponse evaluates the analog frequency response of the description on
// a grid of nfft/2+1 frequencies linearly spaced from DC to Nyquist
// (1/(2*tSamp)). It expands the zero-pole-gain form into transfer-function
// coefficients and evaluates H(jw) by polynomial division.
//
// The returned response is the complex conjugate of the raw evaluation. The
// convention stems from the opposite phase sign of the analytic-signal
// definition versus the forward FFT; deconvolution downstream conjugates once
// more, so both sides must keep it.
func FreqResponse(p PAZ, tSamp float64, nfft int) ([]complex128, []float64, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	if tSamp <= 0 {
		return nil, nil, ErrInvalidSampleInterval
	}

	if nfft < 2 || nfft&1 == 1 {
		return nil, nil, ErrInvalidTransformLength
	}

	num := poly.FromRoots(p.Zeros)
	for i := range num {
		num[i] *= complex(p.Gain, 0)
	}

	den := poly.FromRoots(p.Poles)

	n := nfft / 2
	fNyq := 1 / (2 * tSamp)

	freqs := make([]float64, n+1)
	h := make([]complex128, n+1)

	for i := range freqs {
		f := fNyq * float64(i) / float64(n)
		freqs[i] = f

		jw := complex(0, 2*math.Pi*f)
		h[i] = cmplx.Conj(poly.Eval(num, jw) / poly.Eval(den, jw))
	}

	return h, freqs, nil
}
