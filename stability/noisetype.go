package stability

import (
	"fmt"
	"math"
)

// NoiseType identifies one of the five canonical power-law noise
// processes by the slope b of its phase power spectral density.
type NoiseType int

const (
	// WhitePhase is white phase modulation, b = 0.
	WhitePhase NoiseType = iota
	// FlickerPhase is flicker phase modulation, b = -1.
	FlickerPhase
	// WhiteFrequency is white frequency modulation, b = -2.
	WhiteFrequency
	// FlickerFrequency is flicker frequency modulation, b = -3.
	FlickerFrequency
	// RandomWalkFrequency is random-walk frequency modulation, b = -4.
	RandomWalkFrequency

	noiseTypeCount // sentinel for validation
)

var noiseTypeNames = [noiseTypeCount]string{
	"WhitePhase", "FlickerPhase", "WhiteFrequency", "FlickerFrequency", "RandomWalkFrequency",
}

var noiseTypeSlopes = [noiseTypeCount]float64{0, -1, -2, -3, -4}

// String returns the name of the noise type.
func (nt NoiseType) String() string {
	if nt >= 0 && nt < noiseTypeCount {
		return noiseTypeNames[nt]
	}
	return fmt.Sprintf("NoiseType(%d)", nt)
}

// Valid reports whether nt is a known noise type.
func (nt NoiseType) Valid() bool {
	return nt >= 0 && nt < noiseTypeCount
}

// Slope returns the phase PSD slope b of the noise type, or NaN for an
// invalid type.
func (nt NoiseType) Slope() float64 {
	if nt >= 0 && nt < noiseTypeCount {
		return noiseTypeSlopes[nt]
	}
	return math.NaN()
}

// FromSlope maps a phase PSD slope to its noise type. Only the five
// canonical slopes 0, -1, -2, -3, -4 are representable; anything else
// (including NaN) returns [ErrUnsupportedSlope].
func FromSlope(b float64) (NoiseType, error) {
	switch b {
	case 0:
		return WhitePhase, nil
	case -1:
		return FlickerPhase, nil
	case -2:
		return WhiteFrequency, nil
	case -3:
		return FlickerFrequency, nil
	case -4:
		return RandomWalkFrequency, nil
	}
	return 0, fmt.Errorf("%w: %g", ErrUnsupportedSlope, b)
}
