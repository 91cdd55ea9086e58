package meter

import "github.com/joeydtaylor/wavekit/pkg/internal/types"

// WithLogger adds a logger to the Meter.
func WithLogger[T any](logger ...types.Logger) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.ConnectLogger(logger...)
	}
}

// WithComponentMetadata adds component metadata overrides.
func WithComponentMetadata[T any](name string, id string) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.SetComponentMetadata(name, id)
	}
}

// WithInitialCount seeds a metric with a starting count.
func WithInitialCount[T any](metricName string, count uint64) types.Option[types.Meter[T]] {
	return func(m types.Meter[T]) {
		m.AddToCount(metricName, count)
	}
}
