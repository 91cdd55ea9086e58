package sensor

import (
	"sync"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/utils"
)

// Sensor provides callback hooks for component telemetry. Callbacks are registered
// before the sensor is connected to a component and invoked from the component's
// goroutines, so they should be fast and must not block.
type Sensor[T any] struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnStart            []func(types.ComponentMetadata)
	OnComplete         []func(types.ComponentMetadata)
	OnCancel           []func(types.ComponentMetadata, T)
	OnError            []func(types.ComponentMetadata, error, T)
	OnElementProcessed []func(types.ComponentMetadata, T)
	OnBatchProcessed   []func(types.ComponentMetadata, int)

	loggers     []types.Logger
	loggersLock sync.Mutex
	meters      []types.Meter[T]
}

// NewSensor initializes a new Sensor with the provided options.
func NewSensor[T any](options ...types.Option[types.Sensor[T]]) types.Sensor[T] {
	s := &Sensor[T]{
		componentMetadata: types.ComponentMetadata{
			Type: "SENSOR",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers: make([]types.Logger, 0),
		meters:  make([]types.Meter[T], 0),
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// GetComponentMetadata returns the sensor's identifying metadata.
func (s *Sensor[T]) GetComponentMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	defer s.metadataLock.Unlock()
	return s.componentMetadata
}

// SetComponentMetadata overrides the sensor's name and id.
func (s *Sensor[T]) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	defer s.metadataLock.Unlock()
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
}

// ConnectLogger attaches one or more loggers to the sensor.
func (s *Sensor[T]) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	s.loggers = append(s.loggers, loggers...)
	s.loggersLock.Unlock()
}

// ConnectMeter attaches meters that receive counts forwarded by the sensor.
func (s *Sensor[T]) ConnectMeter(meters ...types.Meter[T]) {
	s.meters = append(s.meters, meters...)
}

// GetMeters returns the meters connected to this sensor.
func (s *Sensor[T]) GetMeters() []types.Meter[T] {
	return s.meters
}

// NotifyLoggers emits a log event to all configured loggers.
func (s *Sensor[T]) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
