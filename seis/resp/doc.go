// Package resp defines the boundary to an external RESP-file response
// evaluator.
//
// The evaluator itself (typically an evalresp binding) is consumed as an
// opaque function mapping a calibration descriptor and a frequency grid to a
// complex instrument response. This package owns everything around that call:
// grid construction, identifier defaults, temp-file materialization of
// in-memory RESP content, and the sign and Nyquist conventions the correction
// engine relies on.
package resp
