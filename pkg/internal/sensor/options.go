package sensor

import "github.com/joeydtaylor/wavekit/pkg/internal/types"

// WithLogger adds a logger to the Sensor.
func WithLogger[T any](logger ...types.Logger) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.ConnectLogger(logger...)
	}
}

// WithMeter adds a meter to the Sensor.
func WithMeter[T any](meter ...types.Meter[T]) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.ConnectMeter(meter...)
	}
}

// WithComponentMetadata adds component metadata overrides.
func WithComponentMetadata[T any](name string, id string) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.SetComponentMetadata(name, id)
	}
}

// WithOnStartFunc registers a callback for the OnStart event.
func WithOnStartFunc[T any](callback ...func(types.ComponentMetadata)) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.RegisterOnStart(callback...)
	}
}

// WithOnCompleteFunc registers a callback for the OnComplete event.
func WithOnCompleteFunc[T any](callback ...func(types.ComponentMetadata)) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.RegisterOnComplete(callback...)
	}
}

// WithOnCancelFunc registers a callback for the OnCancel event.
func WithOnCancelFunc[T any](callback ...func(types.ComponentMetadata, T)) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.RegisterOnCancel(callback...)
	}
}

// WithOnErrorFunc registers a callback for the OnError event.
func WithOnErrorFunc[T any](callback ...func(types.ComponentMetadata, error, T)) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.RegisterOnError(callback...)
	}
}

// WithOnElementProcessedFunc registers a callback for the OnElementProcessed event.
func WithOnElementProcessedFunc[T any](callback ...func(types.ComponentMetadata, T)) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.RegisterOnElementProcessed(callback...)
	}
}

// WithOnBatchProcessedFunc registers a callback for the OnBatchProcessed event.
func WithOnBatchProcessedFunc[T any](callback ...func(types.ComponentMetadata, int)) types.Option[types.Sensor[T]] {
	return func(s types.Sensor[T]) {
		s.RegisterOnBatchProcessed(callback...)
	}
}
