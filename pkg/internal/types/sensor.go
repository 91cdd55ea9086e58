package types

// Sensor provides callback hooks for component telemetry. Components invoke the hooks
// at well-defined lifecycle points; callers register functions for the events they
// care about. Registration is not synchronized with invocation, so hooks should be
// registered before the sensor is connected to a running component.
type Sensor[T any] interface {
	// GetComponentMetadata retrieves metadata about the Sensor, including identifiers like name and ID,
	// useful for logging and monitoring purposes.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata sets the metadata for the Sensor, such as its name and ID.
	SetComponentMetadata(name string, id string)

	// ConnectLogger attaches one or more loggers to the Sensor.
	ConnectLogger(...Logger)

	// ConnectMeter attaches meters that the sensor forwards counts to.
	ConnectMeter(meter ...Meter[T])

	// GetMeters returns the meters connected to this sensor.
	GetMeters() []Meter[T]

	// NotifyLoggers sends a formatted log message to all attached loggers at a specified log level.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// RegisterOnStart registers a callback to be executed at the start of a run.
	RegisterOnStart(...func(ComponentMetadata))

	// InvokeOnStart triggers all registered callbacks at the start of a run.
	InvokeOnStart(ComponentMetadata)

	// RegisterOnComplete registers a callback to be called upon successful completion of a run.
	RegisterOnComplete(...func(ComponentMetadata))

	// InvokeOnComplete triggers all registered callbacks upon the completion of a run.
	InvokeOnComplete(ComponentMetadata)

	// RegisterOnCancel registers a callback to be called when a run is cancelled.
	RegisterOnCancel(...func(cm ComponentMetadata, elem T))

	// InvokeOnCancel triggers all registered callbacks associated with cancellation.
	InvokeOnCancel(cm ComponentMetadata, elem T)

	// RegisterOnError registers a callback to handle errors occurring during a run.
	RegisterOnError(...func(cm ComponentMetadata, err error, elem T))

	// InvokeOnError triggers the registered error handling callbacks.
	InvokeOnError(cm ComponentMetadata, err error, elem T)

	// RegisterOnElementProcessed registers a callback triggered when an element is produced.
	RegisterOnElementProcessed(...func(cm ComponentMetadata, elem T))

	// InvokeOnElementProcessed triggers callbacks when an element has been produced.
	InvokeOnElementProcessed(cm ComponentMetadata, elem T)

	// RegisterOnBatchProcessed registers a callback triggered after each batch of samples.
	RegisterOnBatchProcessed(...func(cm ComponentMetadata, batchSize int))

	// InvokeOnBatchProcessed triggers callbacks after a batch of samples is processed.
	InvokeOnBatchProcessed(cm ComponentMetadata, batchSize int)
}
