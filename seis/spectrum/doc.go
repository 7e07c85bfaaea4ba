// Package spectrum provides the water-level regularized spectral inversion
// used to deconvolve instrument responses.
//
// Inverting a frequency response blows up wherever its magnitude approaches
// zero. The water level clamps those bins to a dB-scaled floor below the
// spectral maximum before inversion, leaving phase untouched, so the inverse
// filter never amplifies out-of-band noise without bound.
package spectrum
