package stability

import (
	"errors"
	"math"
	"testing"
)

func TestNoiseTypeString(t *testing.T) {
	tests := []struct {
		nt   NoiseType
		want string
	}{
		{WhitePhase, "WhitePhase"},
		{FlickerPhase, "FlickerPhase"},
		{WhiteFrequency, "WhiteFrequency"},
		{FlickerFrequency, "FlickerFrequency"},
		{RandomWalkFrequency, "RandomWalkFrequency"},
		{NoiseType(99), "NoiseType(99)"},
	}

	for _, tt := range tests {
		if got := tt.nt.String(); got != tt.want {
			t.Errorf("NoiseType(%d).String() = %q, want %q", int(tt.nt), got, tt.want)
		}
	}
}

func TestNoiseTypeValid(t *testing.T) {
	for nt := WhitePhase; nt < noiseTypeCount; nt++ {
		if !nt.Valid() {
			t.Errorf("%v.Valid() = false, want true", nt)
		}
	}

	if NoiseType(-1).Valid() {
		t.Error("NoiseType(-1).Valid() = true, want false")
	}
	if noiseTypeCount.Valid() {
		t.Error("noiseTypeCount.Valid() = true, want false")
	}
}

func TestNoiseTypeSlope(t *testing.T) {
	tests := []struct {
		nt   NoiseType
		want float64
	}{
		{WhitePhase, 0},
		{FlickerPhase, -1},
		{WhiteFrequency, -2},
		{FlickerFrequency, -3},
		{RandomWalkFrequency, -4},
	}

	for _, tt := range tests {
		if got := tt.nt.Slope(); got != tt.want {
			t.Errorf("%v.Slope() = %v, want %v", tt.nt, got, tt.want)
		}
	}

	if !math.IsNaN(NoiseType(42).Slope()) {
		t.Error("invalid type Slope() should be NaN")
	}
}

func TestFromSlope(t *testing.T) {
	tests := []struct {
		b    float64
		want NoiseType
	}{
		{0, WhitePhase},
		{-1, FlickerPhase},
		{-2, WhiteFrequency},
		{-3, FlickerFrequency},
		{-4, RandomWalkFrequency},
	}

	for _, tt := range tests {
		nt, err := FromSlope(tt.b)
		if err != nil {
			t.Errorf("FromSlope(%g) error: %v", tt.b, err)
			continue
		}
		if nt != tt.want {
			t.Errorf("FromSlope(%g) = %v, want %v", tt.b, nt, tt.want)
		}
	}
}

func TestFromSlopeUnsupported(t *testing.T) {
	for _, b := range []float64{-5, -0.5, 1, 2, 0.001, math.NaN(), math.Inf(1)} {
		_, err := FromSlope(b)
		if !errors.Is(err, ErrUnsupportedSlope) {
			t.Errorf("FromSlope(%g): expected ErrUnsupportedSlope, got %v", b, err)
		}
	}
}

func TestFromSlopeRoundTrip(t *testing.T) {
	for nt := WhitePhase; nt < noiseTypeCount; nt++ {
		back, err := FromSlope(nt.Slope())
		if err != nil {
			t.Fatalf("FromSlope(%v.Slope()) error: %v", nt, err)
		}
		if back != nt {
			t.Errorf("FromSlope(%v.Slope()) = %v", nt, back)
		}
	}
}
