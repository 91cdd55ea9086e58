package meter

import (
	"sync"
	"time"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/utils"
)

// Meter accumulates named counters fed by the components it is connected to.
// Counts live behind a mutex rather than per-counter atomics; metric names are
// dynamic and the map itself needs protection anyway.
type Meter[T any] struct {
	componentMetadata types.ComponentMetadata
	counts            map[string]uint64
	mu                sync.Mutex
	loggers           []types.Logger
	loggersLock       sync.Mutex
	startTime         time.Time
}

// NewMeter initializes a new Meter with the provided options.
func NewMeter[T any](options ...types.Option[types.Meter[T]]) types.Meter[T] {
	m := &Meter[T]{
		componentMetadata: types.ComponentMetadata{
			Type: "METER",
			ID:   utils.GenerateUniqueHash(),
		},
		counts:    make(map[string]uint64),
		loggers:   make([]types.Logger, 0),
		startTime: time.Now(),
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// GetComponentMetadata returns the meter's metadata.
func (m *Meter[T]) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

// SetComponentMetadata overrides the meter's name and id.
func (m *Meter[T]) SetComponentMetadata(name string, id string) {
	m.componentMetadata.Name = name
	m.componentMetadata.ID = id
}

// ConnectLogger attaches one or more loggers to the meter.
func (m *Meter[T]) ConnectLogger(loggers ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	m.loggers = append(m.loggers, loggers...)
}

// NotifyLoggers sends a message to all attached loggers at the given level.
func (m *Meter[T]) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	for _, logger := range m.loggers {
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
