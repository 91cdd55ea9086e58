package waveform_test

import (
	"errors"
	"math"
	"testing"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/waveform"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestSine(t *testing.T) {
	amplitude := 2.5

	if got := waveform.Sine(amplitude, 1, 0, 0); !almostEqual(got, 0) {
		t.Fatalf("Sine at t=0: expected 0, got %v", got)
	}
	if got := waveform.Sine(amplitude, 1, 0.25, 0); !almostEqual(got, amplitude) {
		t.Fatalf("Sine at quarter period: expected %v, got %v", amplitude, got)
	}
	if got := waveform.Sine(amplitude, 1, 0.75, 0); !almostEqual(got, -amplitude) {
		t.Fatalf("Sine at three-quarter period: expected %v, got %v", -amplitude, got)
	}
}

func TestSinePhaseShift(t *testing.T) {
	// A phase of π/2 turns sine into cosine.
	if got := waveform.Sine(1, 1, 0, math.Pi/2); !almostEqual(got, 1) {
		t.Fatalf("expected 1 at t=0 with phase π/2, got %v", got)
	}
}

func TestSquare(t *testing.T) {
	amplitude := 3.0

	if got := waveform.Square(amplitude, 1, 0.25, 0); got != amplitude {
		t.Fatalf("Square at t=0.25: expected %v, got %v", amplitude, got)
	}
	if got := waveform.Square(amplitude, 1, 0.75, 0); got != -amplitude {
		t.Fatalf("Square at t=0.75: expected %v, got %v", -amplitude, got)
	}
}

func TestSquareZeroCrossingYieldsZero(t *testing.T) {
	// sin(0) is exactly 0, so the sign convention produces 0, not ±amplitude.
	if got := waveform.Square(5, 1, 0, 0); got != 0 {
		t.Fatalf("Square at exact crossing: expected 0, got %v", got)
	}
}

func TestTriangle(t *testing.T) {
	amplitude := 4.0
	frequency := 0.5 // period 2s

	if got := waveform.Triangle(amplitude, frequency, 0, 0); !almostEqual(got, -amplitude) {
		t.Fatalf("Triangle at t=0: expected %v, got %v", -amplitude, got)
	}
	if got := waveform.Triangle(amplitude, frequency, 1, 0); !almostEqual(got, amplitude) {
		t.Fatalf("Triangle at half period: expected %v, got %v", amplitude, got)
	}
	if got := waveform.Triangle(amplitude, frequency, 2, 0); !almostEqual(got, -amplitude) {
		t.Fatalf("Triangle at full period: expected %v, got %v", -amplitude, got)
	}
	// Midway up the first ramp.
	if got := waveform.Triangle(amplitude, frequency, 0.5, 0); !almostEqual(got, 0) {
		t.Fatalf("Triangle at quarter period: expected 0, got %v", got)
	}
}

func TestTriangleNegativePhaseFoldsPositive(t *testing.T) {
	// A phase of -2π is a full-period shift and must not change the value.
	a := waveform.Triangle(1, 1, 0.3, 0)
	b := waveform.Triangle(1, 1, 0.3, -2*math.Pi)
	if !almostEqual(a, b) {
		t.Fatalf("expected identical values across a full-period phase shift: %v vs %v", a, b)
	}
}

func TestSawtooth(t *testing.T) {
	amplitude := 2.0

	if got := waveform.Sawtooth(amplitude, 1, 0, 0); !almostEqual(got, -amplitude) {
		t.Fatalf("Sawtooth at t=0: expected %v, got %v", -amplitude, got)
	}
	// Ramps linearly toward +amplitude as t approaches the period.
	if got := waveform.Sawtooth(amplitude, 1, 0.5, 0); !almostEqual(got, 0) {
		t.Fatalf("Sawtooth at half period: expected 0, got %v", got)
	}
	if got := waveform.Sawtooth(amplitude, 1, 0.999, 0); got <= 1.9 {
		t.Fatalf("Sawtooth approaching period: expected near %v, got %v", amplitude, got)
	}
	// Discontinuous reset at the period boundary.
	if got := waveform.Sawtooth(amplitude, 1, 1, 0); !almostEqual(got, -amplitude) {
		t.Fatalf("Sawtooth at t=1: expected %v, got %v", -amplitude, got)
	}
}

func TestForType(t *testing.T) {
	for _, w := range []types.WaveformType{
		types.WaveformSine, types.WaveformSquare, types.WaveformTriangle, types.WaveformSawtooth,
	} {
		strategy, err := waveform.ForType(w)
		if err != nil {
			t.Fatalf("ForType(%v) error: %v", w, err)
		}
		if strategy == nil {
			t.Fatalf("ForType(%v) returned nil strategy", w)
		}
	}

	if _, err := waveform.ForType(types.WaveformType(99)); !errors.Is(err, waveform.ErrUnknownWaveform) {
		t.Fatalf("expected ErrUnknownWaveform, got %v", err)
	}
}

func TestPeriodBased(t *testing.T) {
	if waveform.PeriodBased(types.WaveformSine) || waveform.PeriodBased(types.WaveformSquare) {
		t.Fatalf("sine and square are not period based")
	}
	if !waveform.PeriodBased(types.WaveformTriangle) || !waveform.PeriodBased(types.WaveformSawtooth) {
		t.Fatalf("triangle and sawtooth are period based")
	}
}
