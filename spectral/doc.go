// Package spectral estimates one-sided power spectral densities and fits
// power-law slopes to them.
//
// PSD implements Welch's method: the input is split into overlapping
// segments, each segment is detrended, tapered and transformed, and the
// averaged periodograms are scaled to a density in units of power per
// hertz. FitSlope then fits a straight line to the log-log spectrum
// after octave binning, which is the standard way to read off the
// exponent b of a power-law process S(f) = g * f^b.
//
// # Usage
//
// Estimate the spectral slope of a synthesized noise record sampled at
// interval tau0:
//
//	freqs, psd, err := spectral.PSD(x, 1/tau0)
//	slope, intercept, err := spectral.FitSlope(freqs, psd,
//		spectral.WithBand(1e-3, 0.1))
//
// The intercept is log10 of the estimated density at 1 Hz, directly
// comparable to the prefactors of the stability package.
package spectral
