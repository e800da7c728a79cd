// Package noise synthesizes discrete power-law ("colored") noise
// sequences using the spectral method of Kasdin and Walter.
//
// A power-law process has a one-sided power spectral density
// proportional to f^b. The slopes of interest in oscillator and clock
// characterization are:
//
//   - b =  0: white phase modulation
//   - b = -1: flicker phase modulation
//   - b = -2: white frequency modulation
//   - b = -3: flicker frequency modulation
//   - b = -4: random-walk frequency modulation
//
// The synthesis filters a Gaussian white sequence of variance qd through
// a fractional-integration kernel of order -b/2 in the transform domain.
// Zero padding to twice the sequence length keeps the circular
// convolution linear, so each output sample carries the full filter
// history available to it.
//
// # Usage
//
// Generate a reproducible realization of white frequency noise:
//
//	gen := noise.NewGenerator(noise.WithSeed(42))
//	x, err := gen.Generate(4096, 4e-22, -2)
//
// The slope b may be any finite real number; the five canonical slopes
// above are the ones whose statistics the stability package converts to
// spectral-density and Allan-deviation prefactors. Expected spectral
// levels for a given qd are given by stability.PhasePSDPrefactor.
//
// A Generator is not safe for concurrent use; create one per goroutine.
package noise
