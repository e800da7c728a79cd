// Package stability converts discrete power-law noise parameters into
// frequency-stability measures.
//
// A synthesis run is described by (qd, b, tau0): the variance of the
// driving white sequence, the phase PSD slope, and the sample interval.
// The conversions here give the spectral-density levels and the Allan
// and modified-Allan deviation prefactors such a run produces, plus the
// inverse mappings that size qd for a target deviation.
//
// The five canonical noise processes and their deviation behavior:
//
//	NoiseType            b   S_y slope  ADEV ~     MDEV ~
//	WhitePhase            0     +2      tau^-1     tau^-3/2
//	FlickerPhase         -1     +1      tau^-1     tau^-1
//	WhiteFrequency       -2      0      tau^-1/2   tau^-1/2
//	FlickerFrequency     -3     -1      constant   constant
//	RandomWalkFrequency  -4     -2      tau^1/2    tau^1/2
//
// The deviation prefactors follow the closed forms of Dawkins, McFerran
// and Luiten (IEEE TUFFC 54(5), 2007) with the high-frequency cutoff
// pinned at the Nyquist rate fH = 1/(2*tau0).
//
// # Usage
//
// Size a white-frequency run for a target ADEV of 3.5e-13 and check the
// phase spectral level it implies:
//
//	qd, _ := stability.QdForADEV(3.5e-13, -2, 1.0, 1.0)
//	g, _ := stability.PhasePSDPrefactor(qd, -2, 1.0)
//
// PhasePSDPrefactor and FrequencyPSDPrefactor are continuous in b and
// accept any finite slope. The deviation prefactors are defined only for
// the five canonical slopes and reject anything else with
// [ErrUnsupportedSlope].
package stability
