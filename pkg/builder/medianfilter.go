package builder

import (
	"github.com/joeydtaylor/wavekit/pkg/internal/medianfilter"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// NewMedianFilter creates a new MedianFilter with the provided configuration options.
func NewMedianFilter(options ...types.Option[types.MedianFilter]) types.MedianFilter {
	return medianfilter.NewMedianFilter(options...)
}

// MedianFilterWithLogger adds a logger to the MedianFilter.
func MedianFilterWithLogger(l ...types.Logger) types.Option[types.MedianFilter] {
	return medianfilter.WithLogger(l...)
}

// MedianFilterWithSensor adds a sensor to the MedianFilter.
func MedianFilterWithSensor(s ...types.Sensor[*types.Signal]) types.Option[types.MedianFilter] {
	return medianfilter.WithSensor(s...)
}

// MedianFilterWithMeter adds a meter to the MedianFilter.
func MedianFilterWithMeter(m ...types.Meter[*types.Signal]) types.Option[types.MedianFilter] {
	return medianfilter.WithMeter(m...)
}

// MedianFilterWithComponentMetadata adds component metadata overrides.
func MedianFilterWithComponentMetadata(name string, id string) types.Option[types.MedianFilter] {
	return medianfilter.WithComponentMetadata(name, id)
}
