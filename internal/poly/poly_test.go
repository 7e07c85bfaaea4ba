package poly

import (
	"math/cmplx"
	"testing"
)

func TestFromRootsEmpty(t *testing.T) {
	c := FromRoots(nil)
	if len(c) != 1 || c[0] != 1 {
		t.Fatalf("empty root list: got %v, want [1]", c)
	}
}

func TestFromRootsConjugatePair(t *testing.T) {
	// (x - (a+bi))(x - (a-bi)) = x^2 - 2a*x + (a^2+b^2)
	c := FromRoots([]complex128{2 + 3i, 2 - 3i})
	want := []complex128{1, -4, 13}

	if len(c) != len(want) {
		t.Fatalf("len=%d, want %d", len(c), len(want))
	}

	for i := range want {
		if cmplx.Abs(c[i]-want[i]) > 1e-12 {
			t.Errorf("coeff[%d]=%v, want %v", i, c[i], want[i])
		}
	}
}

func TestEvalMatchesProductForm(t *testing.T) {
	roots := []complex128{-4.21 + 4.66i, -4.21 - 4.66i, -2.105}
	coeffs := FromRoots(roots)

	for _, x := range []complex128{0, 1i, 2 + 1i, -0.5i, 100i} {
		prod := complex128(1)
		for _, r := range roots {
			prod *= x - r
		}

		got := Eval(coeffs, x)
		if cmplx.Abs(got-prod) > 1e-9*(1+cmplx.Abs(prod)) {
			t.Errorf("Eval(%v)=%v, product form %v", x, got, prod)
		}
	}
}
