package spectral

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectral estimation.
var (
	ErrEmptyInput        = errors.New("spectral: empty input")
	ErrLengthMismatch    = errors.New("spectral: frequency and density slices differ in length")
	ErrInvalidSampleRate = errors.New("spectral: sample rate must be > 0 and finite")
	ErrInvalidSegments   = errors.New("spectral: segment count must be >= 1")
	ErrInvalidWindow     = errors.New("spectral: unknown window")
	ErrInvalidBand       = errors.New("spectral: band limits must satisfy 0 < lo < hi")
	ErrShortInput        = errors.New("spectral: too few usable points")
)

const defaultSegments = 4

// Option configures PSD estimation.
type Option func(*config)

type config struct {
	segments int
	window   Window
}

// WithSegments sets the nominal number of Welch segments the input is
// split into. The default is 4.
func WithSegments(n int) Option {
	return func(c *config) {
		c.segments = n
	}
}

// WithWindow sets the segment taper. The default is [Hann].
func WithWindow(w Window) Option {
	return func(c *config) {
		c.window = w
	}
}

// PSD estimates the one-sided power spectral density of x, sampled at
// sampleRate, using Welch's method: the input is split into segments of
// the largest power-of-two length that fits the requested segment count,
// advanced with 50% overlap; each segment has its mean removed, is
// tapered, transformed, and the periodograms are averaged.
//
// The returned density is scaled so that integrating psd over freqs
// recovers the signal power; all bins except DC and Nyquist carry the
// doubled one-sided value. freqs runs from 0 to sampleRate/2 inclusive.
func PSD(x []float64, sampleRate float64, opts ...Option) (freqs, psd []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	cfg := config{segments: defaultSegments, window: Hann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.segments < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidSegments, cfg.segments)
	}
	if !cfg.window.Valid() {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidWindow, cfg.window)
	}

	segLen := previousPowerOf2(len(x) / cfg.segments)
	if segLen < 2 {
		return nil, nil, fmt.Errorf("%w: %d samples across %d segments", ErrShortInput, len(x), cfg.segments)
	}

	coeffs := cfg.window.coefficients(segLen)

	sumW2 := 0.0
	for _, w := range coeffs {
		sumW2 += w * w
	}

	plan, err := algofft.NewPlan64(segLen)
	if err != nil {
		return nil, nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	bins := segLen/2 + 1
	psd = make([]float64, bins)

	seg := make([]float64, segLen)
	buf := make([]complex128, segLen)
	re := make([]float64, bins)
	im := make([]float64, bins)
	power := make([]float64, bins)

	hop := segLen / 2
	count := 0

	for start := 0; start+segLen <= len(x); start += hop {
		frame := x[start : start+segLen]

		mean := 0.0
		for _, v := range frame {
			mean += v
		}
		mean /= float64(segLen)

		for i, v := range frame {
			seg[i] = v - mean
		}

		vecmath.MulBlockInPlace(seg, coeffs)

		for i, v := range seg {
			buf[i] = complex(v, 0)
		}

		if err := plan.Forward(buf, buf); err != nil {
			return nil, nil, fmt.Errorf("spectral: forward FFT failed: %w", err)
		}

		for i := 0; i < bins; i++ {
			re[i] = real(buf[i])
			im[i] = imag(buf[i])
		}

		vecmath.Power(power, re, im)

		for i := range psd {
			psd[i] += power[i]
		}

		count++
	}

	scale := 1 / (sampleRate * sumW2 * float64(count))
	for i := range psd {
		s := psd[i] * scale
		if i != 0 && i != bins-1 {
			s *= 2
		}
		psd[i] = s
	}

	freqs = make([]float64, bins)
	df := sampleRate / float64(segLen)
	for i := range freqs {
		freqs[i] = float64(i) * df
	}

	return freqs, psd, nil
}

// previousPowerOf2 returns the largest power of two <= n, or 0 for n < 1.
func previousPowerOf2(n int) int {
	if n < 1 {
		return 0
	}

	p := 1
	for p*2 <= n {
		p *= 2
	}

	return p
}
