package testutil

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if m := Mean([]float64{1, 2, 3, 4}); m != 2.5 {
		t.Fatalf("Mean = %v, want 2.5", m)
	}
	if m := Mean(nil); m != 0 {
		t.Fatalf("Mean(nil) = %v, want 0", m)
	}
}

func TestSampleVariance(t *testing.T) {
	// Var of {2, 4, 4, 4, 5, 5, 7, 9} is 32/7 with the n-1 denominator.
	v := SampleVariance([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(v-32.0/7.0) > 1e-12 {
		t.Fatalf("SampleVariance = %v, want %v", v, 32.0/7.0)
	}
}

func TestSampleVarianceDegenerate(t *testing.T) {
	if v := SampleVariance([]float64{3.14}); v != 0 {
		t.Fatalf("SampleVariance of one sample = %v, want 0", v)
	}
	if v := SampleVariance(nil); v != 0 {
		t.Fatalf("SampleVariance(nil) = %v, want 0", v)
	}
}

func TestSampleVarianceConstant(t *testing.T) {
	if v := SampleVariance(DC(0.5, 64)); v != 0 {
		t.Fatalf("SampleVariance of constant = %v, want 0", v)
	}
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// All values in [-1, 1].
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}
