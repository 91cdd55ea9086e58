package medianfilter

import "github.com/joeydtaylor/wavekit/pkg/internal/types"

// WithLogger registers loggers for the filter.
func WithLogger(l ...types.Logger) types.Option[types.MedianFilter] {
	return func(f types.MedianFilter) {
		f.ConnectLogger(l...)
	}
}

// WithSensor registers sensors for the filter.
func WithSensor(sensors ...types.Sensor[*types.Signal]) types.Option[types.MedianFilter] {
	return func(f types.MedianFilter) {
		f.ConnectSensor(sensors...)
	}
}

// WithMeter registers meters for the filter.
func WithMeter(meters ...types.Meter[*types.Signal]) types.Option[types.MedianFilter] {
	return func(f types.MedianFilter) {
		f.ConnectMeter(meters...)
	}
}

// WithComponentMetadata overrides the component name and id.
func WithComponentMetadata(name string, id string) types.Option[types.MedianFilter] {
	return func(f types.MedianFilter) {
		f.SetComponentMetadata(name, id)
	}
}
