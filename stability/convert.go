package stability

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by stability conversions.
var (
	ErrUnsupportedSlope    = errors.New("stability: slope must be one of 0, -1, -2, -3, -4")
	ErrInvalidSlope        = errors.New("stability: slope must be finite")
	ErrNegativeVariance    = errors.New("stability: discrete variance must be >= 0 and finite")
	ErrNegativeDeviation   = errors.New("stability: target deviation must be >= 0 and finite")
	ErrNonPositiveInterval = errors.New("stability: sample interval must be > 0 and finite")
	ErrNonPositiveTau      = errors.New("stability: averaging time must be > 0 and finite")
	ErrTauTooSmall         = errors.New("stability: averaging time too small for the flicker-phase log form")
	ErrEmptyInput          = errors.New("stability: empty input")
	ErrShortInput          = errors.New("stability: need at least two samples")
)

// PhasePSDPrefactor returns g_b, the level of the one-sided phase power
// spectral density S_x(f) = g_b * f^b produced by a synthesis run with
// discrete variance qd at sample interval tau0.
//
// The formula is continuous in b, so any finite slope is accepted; the
// five canonical slopes are the ones with a named interpretation.
func PhasePSDPrefactor(qd, b, tau0 float64) (float64, error) {
	if err := checkVariance(qd); err != nil {
		return 0, err
	}
	if err := checkSlope(b); err != nil {
		return 0, err
	}
	if err := checkInterval(tau0); err != nil {
		return 0, err
	}

	return qd * 2 * math.Pow(2*math.Pi, b) * math.Pow(tau0, b+1), nil
}

// FrequencyPSDPrefactor returns h_a, the level of the one-sided
// fractional-frequency power spectral density S_y(f) = h_a * f^a of the
// same run, where a = b + 2. For any slope, h_a = g_b * (2*pi)^2.
func FrequencyPSDPrefactor(qd, b, tau0 float64) (float64, error) {
	if err := checkVariance(qd); err != nil {
		return 0, err
	}
	if err := checkSlope(b); err != nil {
		return 0, err
	}
	if err := checkInterval(tau0); err != nil {
		return 0, err
	}

	a := b + 2

	return qd * 2 * math.Pow(2*math.Pi, a) * math.Pow(tau0, a-1), nil
}

// ADEVPrefactor returns the Allan deviation scale implied by a synthesis
// run with discrete variance qd, slope b, and sample interval tau0.
//
// The closed forms use the high-frequency cutoff fH = 1/(2*tau0). Only
// the FlickerPhase form reads the averaging time tau, through its
// log(2*pi*fH*tau) term; for every other slope the returned value is
// independent of tau. Slopes outside the five canonical values are
// rejected with [ErrUnsupportedSlope].
func ADEVPrefactor(qd, b, tau0, tau float64) (float64, error) {
	if err := checkVariance(qd); err != nil {
		return 0, err
	}
	if err := checkInterval(tau0); err != nil {
		return 0, err
	}
	if err := checkTau(tau); err != nil {
		return 0, err
	}

	nt, err := FromSlope(b)
	if err != nil {
		return 0, err
	}

	coeff, err := adevCoeff(nt, tau0, tau)
	if err != nil {
		return 0, err
	}

	g := qd * 2 * math.Pow(2*math.Pi, b) * math.Pow(tau0, b+1)

	return math.Sqrt(coeff * g * math.Pow(2*math.Pi, 2)), nil
}

// MDEVPrefactor returns the modified Allan deviation scale implied by a
// synthesis run with discrete variance qd, slope b, and sample interval
// tau0.
//
// tau is accepted and validated for symmetry with [ADEVPrefactor]; none
// of the modified-Allan closed forms read it. Slopes outside the five
// canonical values are rejected with [ErrUnsupportedSlope].
func MDEVPrefactor(qd, b, tau0, tau float64) (float64, error) {
	if err := checkVariance(qd); err != nil {
		return 0, err
	}
	if err := checkInterval(tau0); err != nil {
		return 0, err
	}
	if err := checkTau(tau); err != nil {
		return 0, err
	}

	nt, err := FromSlope(b)
	if err != nil {
		return 0, err
	}

	coeff, err := mdevCoeff(nt)
	if err != nil {
		return 0, err
	}

	g := qd * 2 * math.Pow(2*math.Pi, b) * math.Pow(tau0, b+1)

	return math.Sqrt(coeff * g * math.Pow(2*math.Pi, 2)), nil
}

// QdForADEV returns the discrete variance that makes [ADEVPrefactor]
// equal sigma at the given slope, sample interval, and averaging time.
//
// At tau0 = 1 this reduces to the usual sizing rules: sigma^2/3 for
// white phase, sigma^2 for white frequency, sigma^2*pi/(2*ln 2) for
// flicker frequency.
func QdForADEV(sigma, b, tau0, tau float64) (float64, error) {
	if err := checkDeviation(sigma); err != nil {
		return 0, err
	}
	if err := checkInterval(tau0); err != nil {
		return 0, err
	}
	if err := checkTau(tau); err != nil {
		return 0, err
	}

	nt, err := FromSlope(b)
	if err != nil {
		return 0, err
	}

	coeff, err := adevCoeff(nt, tau0, tau)
	if err != nil {
		return 0, err
	}

	denom := coeff * 2 * math.Pow(2*math.Pi, b+2) * math.Pow(tau0, b+1)

	return sigma * sigma / denom, nil
}

// QdForMDEV returns the discrete variance that makes [MDEVPrefactor]
// equal sigma at the given slope, sample interval, and averaging time.
func QdForMDEV(sigma, b, tau0, tau float64) (float64, error) {
	if err := checkDeviation(sigma); err != nil {
		return 0, err
	}
	if err := checkInterval(tau0); err != nil {
		return 0, err
	}
	if err := checkTau(tau); err != nil {
		return 0, err
	}

	nt, err := FromSlope(b)
	if err != nil {
		return 0, err
	}

	coeff, err := mdevCoeff(nt)
	if err != nil {
		return 0, err
	}

	denom := coeff * 2 * math.Pow(2*math.Pi, b+2) * math.Pow(tau0, b+1)

	return sigma * sigma / denom, nil
}

// adevCoeff returns the Allan-variance coefficient for the noise type
// with the high-frequency cutoff at 1/(2*tau0). Only the flicker-phase
// form depends on tau; it turns negative once 2*pi*fH*tau drops below
// exp(-1.038/3), and that region is rejected with ErrTauTooSmall.
func adevCoeff(nt NoiseType, tau0, tau float64) (float64, error) {
	fH := 0.5 / tau0

	switch nt {
	case WhitePhase:
		return 3 * fH / (4 * math.Pi * math.Pi), nil
	case FlickerPhase:
		c := (1.038 + 3*math.Log(2*math.Pi*fH*tau)) / (4 * math.Pi * math.Pi)
		if c <= 0 {
			return 0, fmt.Errorf("%w: tau %g at tau0 %g", ErrTauTooSmall, tau, tau0)
		}
		return c, nil
	case WhiteFrequency:
		return 0.5, nil
	case FlickerFrequency:
		return 2 * math.Log(2), nil
	case RandomWalkFrequency:
		return 2 * math.Pi * math.Pi / 3, nil
	}

	return 0, fmt.Errorf("%w: %v", ErrUnsupportedSlope, nt)
}

// mdevCoeff returns the modified-Allan-variance coefficient for the
// noise type. All five closed forms are constants in tau.
func mdevCoeff(nt NoiseType) (float64, error) {
	switch nt {
	case WhitePhase:
		return 3 / (8 * math.Pi * math.Pi), nil
	case FlickerPhase:
		return (24*math.Log(2) - 9*math.Log(3)) / (8 * math.Pi * math.Pi), nil
	case WhiteFrequency:
		return 0.25, nil
	case FlickerFrequency:
		return 2 * math.Log(3*math.Pow(3, 11.0/16.0)/4), nil
	case RandomWalkFrequency:
		return 11 * math.Pi * math.Pi / 20, nil
	}

	return 0, fmt.Errorf("%w: %v", ErrUnsupportedSlope, nt)
}

func checkVariance(qd float64) error {
	if qd < 0 || math.IsNaN(qd) || math.IsInf(qd, 0) {
		return fmt.Errorf("%w: %g", ErrNegativeVariance, qd)
	}
	return nil
}

func checkDeviation(sigma float64) error {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w: %g", ErrNegativeDeviation, sigma)
	}
	return nil
}

func checkSlope(b float64) error {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSlope, b)
	}
	return nil
}

func checkInterval(tau0 float64) error {
	if tau0 <= 0 || math.IsNaN(tau0) || math.IsInf(tau0, 0) {
		return fmt.Errorf("%w: %g", ErrNonPositiveInterval, tau0)
	}
	return nil
}

func checkTau(tau float64) error {
	if tau <= 0 || math.IsNaN(tau) || math.IsInf(tau, 0) {
		return fmt.Errorf("%w: %g", ErrNonPositiveTau, tau)
	}
	return nil
}
