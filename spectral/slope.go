package spectral

import (
	"fmt"
	"math"
)

const log10Of2 = math.Ln2 / math.Ln10

// FitOption configures FitSlope.
type FitOption func(*fitConfig)

type fitConfig struct {
	fLo, fHi float64
	banded   bool
}

// WithBand restricts the fit to frequencies in [lo, hi].
func WithBand(lo, hi float64) FitOption {
	return func(c *fitConfig) {
		c.fLo = lo
		c.fHi = hi
		c.banded = true
	}
}

// FitSlope fits log10(psd) = slope*log10(f) + intercept by least squares,
// estimating the exponent and level of a power-law spectrum S(f) = g*f^b.
// The intercept is log10 of the estimated density at 1 Hz.
//
// freqs must be ascending. Points with non-positive frequency or density
// are skipped. Before fitting, the usable points are averaged in the log
// domain into octave-wide bins, so the dense high-frequency end of a
// linearly spaced spectrum does not dominate the fit. At least two
// populated octaves are required.
func FitSlope(freqs, psd []float64, opts ...FitOption) (slope, intercept float64, err error) {
	if len(freqs) == 0 || len(psd) == 0 {
		return 0, 0, ErrEmptyInput
	}
	if len(freqs) != len(psd) {
		return 0, 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(freqs), len(psd))
	}

	var cfg fitConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.banded && !(cfg.fLo > 0 && cfg.fLo < cfg.fHi) {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidBand, cfg.fLo, cfg.fHi)
	}

	var logf, logp []float64
	for i := range freqs {
		f, p := freqs[i], psd[i]
		if f <= 0 || p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		if cfg.banded && (f < cfg.fLo || f > cfg.fHi) {
			continue
		}
		logf = append(logf, math.Log10(f))
		logp = append(logp, math.Log10(p))
	}

	if len(logf) < 2 {
		return 0, 0, fmt.Errorf("%w: %d usable spectrum points", ErrShortInput, len(logf))
	}

	binF, binP := binOctaves(logf, logp)
	if len(binF) < 2 {
		return 0, 0, fmt.Errorf("%w: %d populated octaves", ErrShortInput, len(binF))
	}

	n := float64(len(binF))
	var sx, sy, sxx, sxy float64
	for i := range binF {
		sx += binF[i]
		sy += binP[i]
		sxx += binF[i] * binF[i]
		sxy += binF[i] * binP[i]
	}

	denom := n*sxx - sx*sx
	if denom == 0 {
		return 0, 0, fmt.Errorf("%w: degenerate frequency spread", ErrShortInput)
	}

	slope = (n*sxy - sx*sy) / denom
	intercept = (sy - slope*sx) / n

	return slope, intercept, nil
}

// binOctaves averages ascending log-log points into octave-wide bins.
// Bin centers are the mean log-frequency of each bin, so exactly
// collinear inputs stay collinear after binning.
func binOctaves(logf, logp []float64) (binF, binP []float64) {
	base := logf[0]
	cur := 0
	var sumF, sumP float64
	n := 0

	flush := func() {
		if n > 0 {
			binF = append(binF, sumF/float64(n))
			binP = append(binP, sumP/float64(n))
			sumF, sumP = 0, 0
			n = 0
		}
	}

	for i := range logf {
		idx := int((logf[i] - base) / log10Of2)
		if idx != cur {
			flush()
			cur = idx
		}
		sumF += logf[i]
		sumP += logp[i]
		n++
	}
	flush()

	return binF, binP
}
