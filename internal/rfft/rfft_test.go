package rfft

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 250: 256, 256: 256, 1000: 1024}
	for in, want := range cases {
		if got := NextPow2(in); got != want {
			t.Errorf("NextPow2(%d)=%d, want %d", in, got, want)
		}
	}
}

func TestForwardBinCount(t *testing.T) {
	for _, nfft := range []int{8, 10, 64, 100} {
		spec, err := Forward(make([]float64, nfft/2), nfft)
		if err != nil {
			t.Fatalf("nfft=%d: %v", nfft, err)
		}

		if len(spec) != nfft/2+1 {
			t.Fatalf("nfft=%d: %d bins, want %d", nfft, len(spec), nfft/2+1)
		}
	}
}

func TestForwardDCBin(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	for _, nfft := range []int{8, 12} {
		spec, err := Forward(data, nfft)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(real(spec[0])-10) > 1e-12 || math.Abs(imag(spec[0])) > 1e-12 {
			t.Errorf("nfft=%d: DC bin %v, want (10+0i)", nfft, spec[0])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, nfft := range []int{16, 20, 128, 200} {
		n := nfft / 2
		data := make([]float64, n)

		for i := range data {
			data[i] = math.Sin(2*math.Pi*float64(i)/7.3) + 0.1*float64(i)
		}

		spec, err := Forward(data, nfft)
		if err != nil {
			t.Fatal(err)
		}

		out, err := Inverse(spec, nfft, n)
		if err != nil {
			t.Fatal(err)
		}

		for i := range data {
			if math.Abs(out[i]-data[i]) > 1e-9 {
				t.Fatalf("nfft=%d: sample %d round-trip %g, want %g", nfft, i, out[i], data[i])
			}
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	// The general-length backend is exercised in TestRoundTrip; pin the
	// power-of-two backend against a directly evaluated DFT so both produce
	// the same spectral convention.
	const nfft = 32

	data := make([]float64, nfft)
	for i := range data {
		data[i] = math.Cos(2 * math.Pi * 3 * float64(i) / nfft)
	}

	spec, err := Forward(data, nfft)
	if err != nil {
		t.Fatal(err)
	}

	for k := range nfft/2 + 1 {
		var want complex128
		for i, v := range data {
			phase := -2 * math.Pi * float64(k) * float64(i) / nfft
			want += complex(v, 0) * cmplx.Exp(complex(0, phase))
		}

		if cmplx.Abs(spec[k]-want) > 1e-9 {
			t.Fatalf("bin %d: %v, want %v", k, spec[k], want)
		}
	}
}

func TestOddLengthRejected(t *testing.T) {
	if _, err := Forward([]float64{1, 2, 3}, 9); err == nil {
		t.Fatal("expected error for odd transform length")
	}

	if _, err := Inverse(make([]complex128, 5), 9, 4); err == nil {
		t.Fatal("expected error for odd transform length")
	}
}
