package synthesizer

import "github.com/joeydtaylor/wavekit/pkg/internal/types"

// WithLogger registers loggers for the synthesizer.
func WithLogger(l ...types.Logger) types.Option[types.Synthesizer] {
	return func(s types.Synthesizer) {
		s.ConnectLogger(l...)
	}
}

// WithSensor registers sensors for the synthesizer.
func WithSensor(sensors ...types.Sensor[*types.Signal]) types.Option[types.Synthesizer] {
	return func(s types.Synthesizer) {
		s.ConnectSensor(sensors...)
	}
}

// WithMeter registers meters for the synthesizer.
func WithMeter(meters ...types.Meter[*types.Signal]) types.Option[types.Synthesizer] {
	return func(s types.Synthesizer) {
		s.ConnectMeter(meters...)
	}
}

// WithComponentMetadata overrides the component name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Synthesizer] {
	return func(s types.Synthesizer) {
		s.SetComponentMetadata(name, id)
	}
}

// WithParallelThreshold sets the point count at which generation switches to the
// worker pool. Values <= 0 keep the default.
func WithParallelThreshold(threshold int) types.Option[types.Synthesizer] {
	return func(s types.Synthesizer) {
		if impl, ok := s.(*Synthesizer); ok {
			impl.parallelThreshold = threshold
		}
	}
}

// WithMaxWorkers bounds the worker pool for parallel generation. Values <= 0 select
// max(1, NumCPU-1).
func WithMaxWorkers(workers int) types.Option[types.Synthesizer] {
	return func(s types.Synthesizer) {
		if impl, ok := s.(*Synthesizer); ok {
			impl.maxWorkers = workers
		}
	}
}

// WithSeed fixes the base RNG seed so noise draws are reproducible. A zero seed keeps
// the default time-based seeding.
func WithSeed(seed int64) types.Option[types.Synthesizer] {
	return func(s types.Synthesizer) {
		if impl, ok := s.(*Synthesizer); ok {
			impl.seed = seed
		}
	}
}
