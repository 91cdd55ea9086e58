package builder

import (
	"github.com/joeydtaylor/wavekit/pkg/internal/synthesizer"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// NewSynthesizer creates a new Synthesizer with the provided configuration options.
func NewSynthesizer(options ...types.Option[types.Synthesizer]) types.Synthesizer {
	return synthesizer.NewSynthesizer(options...)
}

// SynthesizerWithLogger adds a logger to the Synthesizer.
func SynthesizerWithLogger(l ...types.Logger) types.Option[types.Synthesizer] {
	return synthesizer.WithLogger(l...)
}

// SynthesizerWithSensor adds a sensor to the Synthesizer.
func SynthesizerWithSensor(s ...types.Sensor[*types.Signal]) types.Option[types.Synthesizer] {
	return synthesizer.WithSensor(s...)
}

// SynthesizerWithMeter adds a meter to the Synthesizer.
func SynthesizerWithMeter(m ...types.Meter[*types.Signal]) types.Option[types.Synthesizer] {
	return synthesizer.WithMeter(m...)
}

// SynthesizerWithComponentMetadata adds component metadata overrides.
func SynthesizerWithComponentMetadata(name string, id string) types.Option[types.Synthesizer] {
	return synthesizer.WithComponentMetadata(name, id)
}

// SynthesizerWithParallelThreshold sets the point count at which synthesis
// switches from a single goroutine to the worker pool.
func SynthesizerWithParallelThreshold(threshold int) types.Option[types.Synthesizer] {
	return synthesizer.WithParallelThreshold(threshold)
}

// SynthesizerWithMaxWorkers caps the number of goroutines used for parallel synthesis.
func SynthesizerWithMaxWorkers(workers int) types.Option[types.Synthesizer] {
	return synthesizer.WithMaxWorkers(workers)
}

// SynthesizerWithSeed pins the noise RNG seed so runs are reproducible.
func SynthesizerWithSeed(seed int64) types.Option[types.Synthesizer] {
	return synthesizer.WithSeed(seed)
}
