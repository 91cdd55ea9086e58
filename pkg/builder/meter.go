package builder

import (
	"github.com/joeydtaylor/wavekit/pkg/internal/meter"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// NewMeter creates a new Meter with the provided configuration options.
func NewMeter[T any](options ...types.Option[types.Meter[T]]) types.Meter[T] {
	return meter.NewMeter[T](options...)
}

// MeterWithLogger adds a logger to the Meter.
func MeterWithLogger[T any](logger ...types.Logger) types.Option[types.Meter[T]] {
	return meter.WithLogger[T](logger...)
}

// MeterWithComponentMetadata adds component metadata overrides.
func MeterWithComponentMetadata[T any](name string, id string) types.Option[types.Meter[T]] {
	return meter.WithComponentMetadata[T](name, id)
}

// MeterWithInitialCount seeds a metric with a starting count.
func MeterWithInitialCount[T any](metricName string, count uint64) types.Option[types.Meter[T]] {
	return meter.WithInitialCount[T](metricName, count)
}
