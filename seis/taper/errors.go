package taper

import (
	"errors"
	"fmt"
)

var errEmptyData = errors.New("taper: data must not be empty")

func validateLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("taper: length must be > 0: %d", n)
	}
	return nil
}

func validateFraction(fraction float64) error {
	if fraction < 0 || fraction > 1 {
		return fmt.Errorf("taper: fraction must be in [0,1]: %f", fraction)
	}
	return nil
}
