package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by noise generation.
var (
	ErrNegativeVariance = errors.New("noise: discrete variance must be >= 0 and finite")
	ErrInvalidLength    = errors.New("noise: sample count must be a positive power of two")
	ErrInvalidSlope     = errors.New("noise: spectral slope must be finite")
)

// Generator synthesizes power-law noise realizations from a shared
// random source. The zero value is not usable; construct with
// [NewGenerator].
type Generator struct {
	rng *rand.Rand
}

// Option configures a [Generator].
type Option func(*Generator)

// WithRNG sets a deterministic random number generator for reproducible output.
func WithRNG(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithSeed seeds the generator's PCG source for reproducible output.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// NewGenerator creates a noise generator. Without options the random
// source is seeded from entropy, so independent generators produce
// independent realizations.
func NewGenerator(opts ...Option) *Generator {
	gen := &Generator{}

	for _, opt := range opts {
		if opt != nil {
			opt(gen)
		}
	}

	if gen.rng == nil {
		gen.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return gen
}

// Generate synthesizes one realization of power-law noise whose one-sided
// power spectral density falls as f^b.
//
// nr is the number of output samples and must be a positive power of two.
// qd is the variance of the driving white sequence; with sample interval
// tau0 the asymptotic phase PSD level is qd * 2 * (2*pi)^b * tau0^(b+1)
// (see the stability package). b may be any finite real number.
//
// The returned slice is freshly allocated; successive calls draw new
// randomness from the generator's source.
func (g *Generator) Generate(nr int, qd, b float64) ([]float64, error) {
	if nr <= 0 || !isPowerOf2(nr) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, nr)
	}
	if qd < 0 || math.IsNaN(qd) || math.IsInf(qd, 0) {
		return nil, fmt.Errorf("%w: %g", ErrNegativeVariance, qd)
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSlope, b)
	}

	sigma := math.Sqrt(qd)
	fftSize := 2 * nr

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("noise: failed to create FFT plan: %w", err)
	}

	// White driving sequence in the first half, zero padding in the
	// second half so the circular convolution stays linear.
	white := make([]complex128, fftSize)
	for i := 0; i < nr; i++ {
		white[i] = complex(sigma*g.rng.NormFloat64(), 0)
	}

	taps := fractionalKernel(nr, -b/2)
	kernel := make([]complex128, fftSize)
	for i, v := range taps {
		kernel[i] = complex(v, 0)
	}

	err = plan.Forward(white, white)
	if err != nil {
		return nil, fmt.Errorf("noise: forward FFT failed: %w", err)
	}

	err = plan.Forward(kernel, kernel)
	if err != nil {
		return nil, fmt.Errorf("noise: forward FFT failed: %w", err)
	}

	for i := range white {
		white[i] *= kernel[i]
	}

	err = plan.Inverse(white, white)
	if err != nil {
		return nil, fmt.Errorf("noise: inverse FFT failed: %w", err)
	}

	out := make([]float64, nr)
	for i := range out {
		out[i] = real(white[i])
	}

	return out, nil
}

// Generate performs one-shot synthesis with an entropy-seeded generator.
// For reproducible realizations, construct a [Generator] with [WithSeed]
// or [WithRNG].
func Generate(nr int, qd, b float64) ([]float64, error) {
	return NewGenerator().Generate(nr, qd, b)
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
