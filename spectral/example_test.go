package spectral_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/spectral"
)

func ExamplePSD() {
	// A 0.5-amplitude sine at a bin center carries 0.125 of power.
	const fs = 1024.0

	x := make([]float64, 4096)
	for i := range x {
		x[i] = 0.5 * math.Sin(2*math.Pi*64*float64(i)/fs)
	}

	freqs, psd, err := spectral.PSD(x, fs,
		spectral.WithSegments(1),
		spectral.WithWindow(spectral.Rectangular),
	)
	if err != nil {
		panic(err)
	}

	total := 0.0
	for _, p := range psd {
		total += p * (freqs[1] - freqs[0])
	}

	fmt.Printf("power %.3f\n", total)
	// Output: power 0.125
}

func ExampleFitSlope() {
	// Recover the exponent and level of an exact power law S(f) = 2*f^-2.
	freqs := make([]float64, 1024)
	psd := make([]float64, 1024)
	for i := 1; i < len(freqs); i++ {
		freqs[i] = float64(i) * 0.25
		psd[i] = 2 * math.Pow(freqs[i], -2)
	}

	slope, intercept, err := spectral.FitSlope(freqs, psd)
	if err != nil {
		panic(err)
	}

	fmt.Printf("slope %.2f level %.2f\n", slope, math.Pow(10, intercept))
	// Output: slope -2.00 level 2.00
}
