package resp

import (
	"errors"
	"math"
	"math/cmplx"
	"os"
	"testing"
	"time"
)

func TestFrequencyGrid(t *testing.T) {
	freqs := FrequencyGrid(0.005, 100)

	if len(freqs) != 51 {
		t.Fatalf("len=%d, want 51", len(freqs))
	}

	if freqs[0] != 0 {
		t.Errorf("start %g, want 0", freqs[0])
	}

	if math.Abs(freqs[50]-100) > 1e-12 {
		t.Errorf("end %g, want Nyquist 100", freqs[50])
	}

	step := freqs[1] - freqs[0]
	for i := 1; i < len(freqs); i++ {
		if math.Abs(freqs[i]-freqs[i-1]-step) > 1e-9 {
			t.Fatalf("grid not uniform at %d", i)
		}
	}
}

func TestEvaluateConventions(t *testing.T) {
	d := Descriptor{Filename: "dummy.resp", Date: time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)}

	eval := func(_ Descriptor, freqs []float64) ([]complex128, error) {
		h := make([]complex128, len(freqs))
		for i := range h {
			h[i] = complex(1, 1)
		}
		return h, nil
	}

	h, freqs, err := Evaluate(0.01, 16, d, eval)
	if err != nil {
		t.Fatal(err)
	}

	if len(h) != 9 || len(freqs) != 9 {
		t.Fatalf("lengths %d/%d, want 9", len(h), len(freqs))
	}

	// Conjugated...
	if cmplx.Abs(h[0]-complex(1, -1)) > 1e-12 {
		t.Errorf("bin 0 = %v, want (1-1i)", h[0])
	}

	// ...and the Nyquist bin forced real.
	if imag(h[8]) != 0 {
		t.Errorf("Nyquist bin %v has nonzero imaginary part", h[8])
	}
}

func TestEvaluatePassesNormalizedDescriptor(t *testing.T) {
	var seen Descriptor

	eval := func(d Descriptor, freqs []float64) ([]complex128, error) {
		seen = d
		return make([]complex128, len(freqs)), nil
	}

	d := Descriptor{Filename: "x", Station: "RJOB"}
	if _, _, err := Evaluate(0.01, 8, d, eval); err != nil {
		t.Fatal(err)
	}

	if seen.Station != "RJOB" || seen.Channel != "*" || seen.Network != "*" || seen.LocID != "*" {
		t.Fatalf("identifiers not normalized: %+v", seen)
	}

	if seen.Units != Velocity {
		t.Fatalf("units %q, want default VEL", seen.Units)
	}
}

func TestEvaluateErrors(t *testing.T) {
	d := Descriptor{Filename: "x"}
	ok := func(_ Descriptor, freqs []float64) ([]complex128, error) {
		return make([]complex128, len(freqs)), nil
	}

	if _, _, err := Evaluate(0, 8, d, ok); !errors.Is(err, ErrInvalidSampleInterval) {
		t.Errorf("zero sample interval: %v", err)
	}

	if _, _, err := Evaluate(0.01, 7, d, ok); !errors.Is(err, ErrInvalidTransformLength) {
		t.Errorf("odd nfft: %v", err)
	}

	if _, _, err := Evaluate(0.01, 8, d, nil); !errors.Is(err, ErrNoEvaluator) {
		t.Errorf("nil evaluator: %v", err)
	}

	if _, _, err := Evaluate(0.01, 8, Descriptor{}, ok); !errors.Is(err, ErrNoSource) {
		t.Errorf("empty descriptor: %v", err)
	}

	boom := errors.New("no matching epoch")
	bad := func(_ Descriptor, _ []float64) ([]complex128, error) { return nil, boom }

	if _, _, err := Evaluate(0.01, 8, d, bad); !errors.Is(err, boom) {
		t.Errorf("evaluator failure not propagated: %v", err)
	}

	short := func(_ Descriptor, _ []float64) ([]complex128, error) {
		return make([]complex128, 2), nil
	}

	if _, _, err := Evaluate(0.01, 8, d, short); err == nil {
		t.Error("length mismatch accepted")
	}
}

func TestDateString(t *testing.T) {
	d := Descriptor{Date: time.Date(2009, 2, 1, 0, 0, 0, 0, time.UTC)}
	if got := d.DateString(); got != "2009,032" {
		t.Fatalf("DateString=%q, want \"2009,032\"", got)
	}
}

func TestMaterializeFileFromContent(t *testing.T) {
	d := Descriptor{Content: []byte("B050F03  Station:  RJOB\r\nB050F16  Network:  BW\n")}

	path, cleanup, err := MaterializeFile(d)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "B050F03  Station:  RJOB" + lineSeparator + "B050F16  Network:  BW" + lineSeparator
	if string(data) != want {
		t.Fatalf("materialized %q, want %q", data, want)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("temp file survived cleanup: %v", err)
	}
}

func TestMaterializeFilePassthrough(t *testing.T) {
	d := Descriptor{Filename: "/some/where/RESP.BW.RJOB..EHZ"}

	path, cleanup, err := MaterializeFile(d)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	if path != d.Filename {
		t.Fatalf("path %q, want %q", path, d.Filename)
	}
}
