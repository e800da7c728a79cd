package spectral_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-noise/noise"
	"github.com/cwbudde/algo-noise/spectral"
	"github.com/cwbudde/algo-noise/stability"
)

// TestPSDSlopeOfSynthesizedNoise closes the loop with the generator: the
// fitted spectral slope of a long realization must track the requested
// power-law exponent for all five canonical noise types.
func TestPSDSlopeOfSynthesizedNoise(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long statistical test")
	}

	const nr = 1 << 16

	tests := []struct {
		name string
		b    float64
		seed uint64
	}{
		{name: "white phase", b: 0, seed: 101},
		{name: "flicker phase", b: -1, seed: 102},
		{name: "white frequency", b: -2, seed: 103},
		{name: "flicker frequency", b: -3, seed: 104},
		{name: "random walk frequency", b: -4, seed: 105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := noise.NewGenerator(noise.WithSeed(tt.seed))

			x, err := gen.Generate(nr, 1.0, tt.b)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}

			freqs, psd, err := spectral.PSD(x, 1.0)
			if err != nil {
				t.Fatalf("PSD() error: %v", err)
			}

			slope, _, err := spectral.FitSlope(freqs, psd, spectral.WithBand(2e-3, 0.1))
			if err != nil {
				t.Fatalf("FitSlope() error: %v", err)
			}

			if math.Abs(slope-tt.b) > 0.25 {
				t.Errorf("fitted slope = %.3f, want %g within 0.25", slope, tt.b)
			}
		})
	}
}

// TestPSDLevelMatchesPhasePrefactor checks the white-frequency spectral
// level against the closed-form prefactor.
func TestPSDLevelMatchesPhasePrefactor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long statistical test")
	}

	const (
		nr   = 1 << 16
		qd   = 1e-2
		tau0 = 1.0
	)

	x, err := noise.NewGenerator(noise.WithSeed(7)).Generate(nr, qd, -2)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	freqs, psd, err := spectral.PSD(x, 1/tau0)
	if err != nil {
		t.Fatalf("PSD() error: %v", err)
	}

	_, intercept, err := spectral.FitSlope(freqs, psd, spectral.WithBand(2e-3, 0.1))
	if err != nil {
		t.Fatalf("FitSlope() error: %v", err)
	}

	g, err := stability.PhasePSDPrefactor(qd, -2, tau0)
	if err != nil {
		t.Fatalf("PhasePSDPrefactor() error: %v", err)
	}

	// The intercept estimates log10 of the density at 1 Hz; compare in
	// the log domain with a generous statistical tolerance.
	if math.Abs(intercept-math.Log10(g)) > 0.3 {
		t.Errorf("fitted level 10^%.3f, want %g within half a decade", intercept, g)
	}
}
