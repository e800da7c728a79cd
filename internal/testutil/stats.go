package testutil

import "math"

// Mean returns the arithmetic mean of data, 0 for empty input.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// SampleVariance returns the unbiased sample variance of data using
// Welford's online algorithm. Returns 0 for fewer than two samples.
func SampleVariance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	var mean, m2 float64
	for i, v := range data {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}
	return m2 / float64(len(data)-1)
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
