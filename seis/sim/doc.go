// Package sim corrects and simulates seismometer recordings in the frequency
// domain.
//
// Simulate removes the frequency response of the recording instrument from a
// trace and optionally convolves in the response of a different target
// instrument. The removal response comes either from a poles-zeros-gain
// description or from an external RESP-file evaluator; inversion is
// regularized with a water level so near-zero response bins cannot amplify
// noise without bound.
//
// A note on phase: every frequency response entering the pipeline is already
// the complex conjugate of the raw analog evaluation, and the engine
// conjugates once more when multiplying into the data spectrum. The pairing
// is deliberate and matches the established deconvolution convention for
// corrected ground motion; dropping either conjugate flips the output phase.
//
// Each call is independent and holds no state; concurrent calls on separate
// inputs need no synchronization. Caller-supplied descriptors are never
// mutated: the engine inverts an owned copy of the removal response.
package sim
