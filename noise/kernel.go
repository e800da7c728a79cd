package noise

// fractionalKernel returns the first n taps of the impulse response of a
// fractional integrator of order ord. Tap zero is 1; tap k follows the
// generalized binomial recurrence taps[k-1] * (ord + k - 1) / k.
//
// The recurrence must stay in this forward multiplicative form: the
// equivalent closed form via a ratio of Gamma functions overflows float64
// long before useful tap counts.
func fractionalKernel(n int, ord float64) []float64 {
	taps := make([]float64, n)
	taps[0] = 1
	for k := 1; k < n; k++ {
		taps[k] = taps[k-1] * (ord + float64(k-1)) / float64(k)
	}
	return taps
}
