// Package poly provides the small complex-polynomial helpers shared by the
// transfer-function evaluation code.
package poly

// FromRoots expands a monic polynomial from its roots. Coefficients are
// returned in descending power order; an empty root list yields the constant
// polynomial 1.
func FromRoots(roots []complex128) []complex128 {
	coeffs := []complex128{1}

	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)

		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}

		coeffs = next
	}

	return coeffs
}

// Eval evaluates a polynomial with descending-order coefficients at x using
// Horner's scheme.
func Eval(coeffs []complex128, x complex128) complex128 {
	var acc complex128

	for _, c := range coeffs {
		acc = acc*x + c
	}

	return acc
}
