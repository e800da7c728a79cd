package spectral

import (
	"fmt"
	"math"
)

// Window selects the taper applied to each Welch segment.
type Window int

const (
	// Hann is the periodic Hann taper, the default for Welch averaging.
	Hann Window = iota
	// Rectangular applies no taper.
	Rectangular

	windowCount // sentinel for validation
)

var windowNames = [windowCount]string{"Hann", "Rectangular"}

// String returns the name of the window.
func (w Window) String() string {
	if w >= 0 && w < windowCount {
		return windowNames[w]
	}
	return fmt.Sprintf("Window(%d)", w)
}

// Valid reports whether w is a known window.
func (w Window) Valid() bool {
	return w >= 0 && w < windowCount
}

// coefficients returns the periodic form of the window, the variant
// suited to FFT framing where the last sample of one period is the
// first of the next.
func (w Window) coefficients(n int) []float64 {
	out := make([]float64, n)

	switch w {
	case Rectangular:
		for i := range out {
			out[i] = 1
		}
	default:
		for i := range out {
			out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
		}
	}

	return out
}
