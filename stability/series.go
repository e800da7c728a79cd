package stability

import "fmt"

// PhaseToFrequency converts a phase-deviation sequence (seconds) sampled
// at interval tau0 into fractional-frequency deviations: first
// differences scaled by 1/tau0. The result has one sample fewer than
// the input.
func PhaseToFrequency(phase []float64, tau0 float64) ([]float64, error) {
	if err := checkInterval(tau0); err != nil {
		return nil, err
	}
	if len(phase) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrShortInput, len(phase))
	}

	out := make([]float64, len(phase)-1)
	for i := range out {
		out[i] = (phase[i+1] - phase[i]) / tau0
	}

	return out, nil
}

// FrequencyToPhase integrates a fractional-frequency sequence sampled at
// interval tau0 into phase deviations, starting from zero phase. The
// result has one sample more than the input.
func FrequencyToPhase(freq []float64, tau0 float64) ([]float64, error) {
	if err := checkInterval(tau0); err != nil {
		return nil, err
	}
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(freq)+1)
	for i, v := range freq {
		out[i+1] = out[i] + v*tau0
	}

	return out, nil
}
