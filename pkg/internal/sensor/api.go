package sensor

import "github.com/joeydtaylor/wavekit/pkg/internal/types"

// RegisterOnStart registers callbacks executed when a component begins a run.
func (s *Sensor[T]) RegisterOnStart(callback ...func(types.ComponentMetadata)) {
	s.OnStart = append(s.OnStart, callback...)
}

// InvokeOnStart triggers all registered start callbacks.
func (s *Sensor[T]) InvokeOnStart(cm types.ComponentMetadata) {
	for _, cb := range s.OnStart {
		cb(cm)
	}
	s.NotifyLoggers(types.DebugLevel,
		"Run started",
		"component", s.GetComponentMetadata(),
		"event", "OnStart",
		"source", cm)
}

// RegisterOnComplete registers callbacks executed when a run finishes successfully.
func (s *Sensor[T]) RegisterOnComplete(callback ...func(types.ComponentMetadata)) {
	s.OnComplete = append(s.OnComplete, callback...)
}

// InvokeOnComplete triggers all registered completion callbacks.
func (s *Sensor[T]) InvokeOnComplete(cm types.ComponentMetadata) {
	for _, cb := range s.OnComplete {
		cb(cm)
	}
}

// RegisterOnCancel registers callbacks executed when a run is cancelled.
func (s *Sensor[T]) RegisterOnCancel(callback ...func(types.ComponentMetadata, T)) {
	s.OnCancel = append(s.OnCancel, callback...)
}

// InvokeOnCancel triggers all registered cancellation callbacks.
func (s *Sensor[T]) InvokeOnCancel(cm types.ComponentMetadata, elem T) {
	for _, cb := range s.OnCancel {
		cb(cm, elem)
	}
}

// RegisterOnError registers callbacks for errors raised during a run.
func (s *Sensor[T]) RegisterOnError(callback ...func(types.ComponentMetadata, error, T)) {
	s.OnError = append(s.OnError, callback...)
}

// InvokeOnError triggers all registered error callbacks.
func (s *Sensor[T]) InvokeOnError(cm types.ComponentMetadata, err error, elem T) {
	for _, cb := range s.OnError {
		cb(cm, err, elem)
	}
}

// RegisterOnElementProcessed registers callbacks executed when a component produces an element.
func (s *Sensor[T]) RegisterOnElementProcessed(callback ...func(types.ComponentMetadata, T)) {
	s.OnElementProcessed = append(s.OnElementProcessed, callback...)
}

// InvokeOnElementProcessed triggers all registered element callbacks.
func (s *Sensor[T]) InvokeOnElementProcessed(cm types.ComponentMetadata, elem T) {
	for _, cb := range s.OnElementProcessed {
		cb(cm, elem)
	}
}

// RegisterOnBatchProcessed registers callbacks executed after each processed batch.
func (s *Sensor[T]) RegisterOnBatchProcessed(callback ...func(types.ComponentMetadata, int)) {
	s.OnBatchProcessed = append(s.OnBatchProcessed, callback...)
}

// InvokeOnBatchProcessed triggers all registered batch callbacks.
func (s *Sensor[T]) InvokeOnBatchProcessed(cm types.ComponentMetadata, batchSize int) {
	for _, cb := range s.OnBatchProcessed {
		cb(cm, batchSize)
	}
}
