// Package waveform provides the pure strategy functions that compute a periodic
// signal's instantaneous amplitude. Strategies have no state and no side effects;
// everything they need arrives as arguments.
package waveform

import (
	"errors"
	"math"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// ErrUnknownWaveform is returned when a waveform type falls outside the closed set.
var ErrUnknownWaveform = errors.New("waveform: unknown waveform type")

// Strategy computes the instantaneous amplitude of a waveform at the given time.
// Strategies assume frequency > 0; the period-based variants (triangle, sawtooth)
// divide by frequency and are undefined at zero.
type Strategy func(amplitude, frequency, time, phase float64) float64

// Sine returns amplitude * sin(2π·frequency·time + phase).
func Sine(amplitude, frequency, time, phase float64) float64 {
	return amplitude * math.Sin(2*math.Pi*frequency*time+phase)
}

// Square returns ±amplitude following the sign of the underlying sine. An exact zero
// crossing yields 0 rather than ±amplitude; callers sampling on crossing boundaries
// see a zero sample.
func Square(amplitude, frequency, time, phase float64) float64 {
	s := math.Sin(2*math.Pi*frequency*time + phase)
	if s > 0 {
		return amplitude
	}
	if s < 0 {
		return -amplitude
	}
	return 0
}

// Triangle ramps linearly from -amplitude to +amplitude over the first half period and
// back down over the second. Phase is converted to a time shift before folding.
func Triangle(amplitude, frequency, time, phase float64) float64 {
	period := 1 / frequency
	folded := foldTime(time, phase, frequency, period)

	half := period / 2
	if folded < half {
		return -amplitude + (2*amplitude/half)*folded
	}
	return amplitude - (2*amplitude/half)*(folded-half)
}

// Sawtooth ramps linearly from -amplitude at fold-time 0 toward +amplitude approaching
// the period boundary, resetting discontinuously each period.
func Sawtooth(amplitude, frequency, time, phase float64) float64 {
	period := 1 / frequency
	folded := foldTime(time, phase, frequency, period)
	return -amplitude + (2*amplitude/period)*folded
}

// foldTime shifts time by the phase-equivalent offset and folds it into [0, period).
func foldTime(time, phase, frequency, period float64) float64 {
	timeShift := phase / (2 * math.Pi * frequency)
	folded := math.Mod(time+timeShift, period)
	if folded < 0 {
		folded += period
	}
	return folded
}

// ForType returns the strategy for a waveform type. The dispatch is a closed switch;
// unknown values are an invalid-argument error, never a panic.
func ForType(w types.WaveformType) (Strategy, error) {
	switch w {
	case types.WaveformSine:
		return Sine, nil
	case types.WaveformSquare:
		return Square, nil
	case types.WaveformTriangle:
		return Triangle, nil
	case types.WaveformSawtooth:
		return Sawtooth, nil
	default:
		return nil, ErrUnknownWaveform
	}
}

// PeriodBased reports whether the waveform divides by frequency and therefore
// requires frequency > 0.
func PeriodBased(w types.WaveformType) bool {
	return w == types.WaveformTriangle || w == types.WaveformSawtooth
}
