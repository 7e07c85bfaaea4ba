// Package detrend removes constant and linear trends from trace buffers.
package detrend

import "gonum.org/v1/gonum/floats"

// Demean subtracts the mean from data in place.
func Demean(data []float64) {
	if len(data) == 0 {
		return
	}

	mean := floats.Sum(data) / float64(len(data))
	for i := range data {
		data[i] -= mean
	}
}

// Simple subtracts the straight line through the first and last sample from
// data in place, removing residual DC offset and linear drift.
func Simple(data []float64) {
	n := len(data)
	if n < 2 {
		if n == 1 {
			data[0] = 0
		}
		return
	}

	x1 := data[0]
	slope := (data[n-1] - x1) / float64(n-1)

	for i := range data {
		data[i] -= x1 + float64(i)*slope
	}
}
