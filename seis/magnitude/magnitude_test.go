package magnitude

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-seis/seis/paz"
)

var testPAZ = paz.PAZ{
	Poles:       []complex128{-4.444 + 4.444i, -4.444 - 4.444i, -1.083},
	Zeros:       []complex128{0, 0, 0},
	Gain:        1.0,
	Sensitivity: 671140000.0,
}

func TestEstimateSingleReading(t *testing.T) {
	got, err := Estimate(testPAZ, 3.34e6, 0.065, 0.255)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-2.165345) > 5e-7 {
		t.Fatalf("Ml=%.6f, want 2.165345", got)
	}
}

func TestEstimateTwoComponents(t *testing.T) {
	got, err := EstimateMulti(
		[]paz.PAZ{testPAZ, testPAZ},
		[]float64{3.34e6, 5e6},
		[]float64{0.065, 0.1},
		0.255,
	)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-2.386788) > 5e-7 {
		t.Fatalf("Ml=%.6f, want 2.386788", got)
	}
}

func TestEstimateMultiMatchesSingleMean(t *testing.T) {
	a1, err := WoodAndersonAmplitude(testPAZ, 3.34e6, 0.065)
	if err != nil {
		t.Fatal(err)
	}

	a2, err := WoodAndersonAmplitude(testPAZ, 5e6, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	const dist = 10.0

	want := math.Log10((a1+a2)/2) + math.Log10(dist/100) + 0.00301*(dist-100) + 3.0

	got, err := EstimateMulti([]paz.PAZ{testPAZ, testPAZ},
		[]float64{3.34e6, 5e6}, []float64{0.065, 0.1}, dist)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Ml=%g, want %g", got, want)
	}
}

func TestEstimateMultiValidation(t *testing.T) {
	if _, err := EstimateMulti(nil, nil, nil, 10); !errors.Is(err, ErrNoReadings) {
		t.Errorf("empty readings: %v", err)
	}

	_, err := EstimateMulti([]paz.PAZ{testPAZ, testPAZ}, []float64{1}, []float64{0.1, 0.2}, 10)
	if !errors.Is(err, ErrMismatchedInputs) {
		t.Errorf("mismatched lengths: %v", err)
	}
}

func TestWoodAndersonAmplitudeValidation(t *testing.T) {
	if _, err := WoodAndersonAmplitude(testPAZ, 1e6, 0); !errors.Is(err, ErrInvalidTimespan) {
		t.Errorf("zero timespan: %v", err)
	}

	noSens := testPAZ
	noSens.Sensitivity = 0

	if _, err := WoodAndersonAmplitude(noSens, 1e6, 0.1); !errors.Is(err, paz.ErrMissingSensitivity) {
		t.Errorf("missing sensitivity: %v", err)
	}
}
