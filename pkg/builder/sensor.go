package builder

import (
	"github.com/joeydtaylor/wavekit/pkg/internal/sensor"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// NewSensor creates a new Sensor with the provided configuration options.
func NewSensor[T any](options ...types.Option[types.Sensor[T]]) types.Sensor[T] {
	return sensor.NewSensor[T](options...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata[T any](name string, id string) types.Option[types.Sensor[T]] {
	return sensor.WithComponentMetadata[T](name, id)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger[T any](logger ...types.Logger) types.Option[types.Sensor[T]] {
	return sensor.WithLogger[T](logger...)
}

// SensorWithMeter adds a meter to the Sensor.
func SensorWithMeter[T any](meter ...types.Meter[T]) types.Option[types.Sensor[T]] {
	return sensor.WithMeter[T](meter...)
}

// SensorWithOnStartFunc registers a callback for the OnStart event.
func SensorWithOnStartFunc[T any](callback ...func(c ComponentMetadata)) types.Option[types.Sensor[T]] {
	return sensor.WithOnStartFunc[T](callback...)
}

// SensorWithOnCompleteFunc registers a callback for the OnComplete event.
func SensorWithOnCompleteFunc[T any](callback ...func(c ComponentMetadata)) types.Option[types.Sensor[T]] {
	return sensor.WithOnCompleteFunc[T](callback...)
}

// SensorWithOnCancelFunc registers a callback for the OnCancel event.
func SensorWithOnCancelFunc[T any](callback ...func(c ComponentMetadata, elem T)) types.Option[types.Sensor[T]] {
	return sensor.WithOnCancelFunc[T](callback...)
}

// SensorWithOnErrorFunc registers a callback for the OnError event.
func SensorWithOnErrorFunc[T any](callback ...func(c ComponentMetadata, err error, elem T)) types.Option[types.Sensor[T]] {
	return sensor.WithOnErrorFunc[T](callback...)
}

// SensorWithOnElementProcessedFunc registers a callback for the OnElementProcessed event.
func SensorWithOnElementProcessedFunc[T any](callback ...func(c ComponentMetadata, elem T)) types.Option[types.Sensor[T]] {
	return sensor.WithOnElementProcessedFunc[T](callback...)
}

// SensorWithOnBatchProcessedFunc registers a callback for the OnBatchProcessed event.
func SensorWithOnBatchProcessedFunc[T any](callback ...func(c ComponentMetadata, batchSize int)) types.Option[types.Sensor[T]] {
	return sensor.WithOnBatchProcessedFunc[T](callback...)
}
