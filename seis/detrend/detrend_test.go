package detrend

import (
	"math"
	"testing"
)

func TestDemean(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	Demean(data)

	var sum float64
	for _, v := range data {
		sum += v
	}

	if math.Abs(sum) > 1e-12 {
		t.Fatalf("mean not removed, residual sum %g", sum)
	}
}

func TestSimpleRemovesLine(t *testing.T) {
	data := make([]float64, 50)
	for i := range data {
		data[i] = 3.5 + 0.25*float64(i)
	}

	Simple(data)

	for i, v := range data {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("sample %d: residual %g", i, v)
		}
	}
}

func TestSimplePinsEndpoints(t *testing.T) {
	data := []float64{2, -1, 7, 4, 9}
	Simple(data)

	if data[0] != 0 || data[len(data)-1] != 0 {
		t.Fatalf("endpoints %g, %g, want 0, 0", data[0], data[len(data)-1])
	}
}

func TestShortInputs(t *testing.T) {
	Simple(nil)
	Demean(nil)

	one := []float64{5}
	Simple(one)

	if one[0] != 0 {
		t.Fatalf("single sample %g, want 0", one[0])
	}
}
