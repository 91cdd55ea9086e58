package synthesizer

import "github.com/joeydtaylor/wavekit/pkg/internal/types"

// NotifyLoggers emits a log event to all configured loggers.
func (s *Synthesizer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := s.snapshotLoggers()
	if len(loggers) == 0 {
		return
	}

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if logger.GetLevel() > level {
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

func (s *Synthesizer) notifyStart() {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnStart(s.componentMetadata)
	}
}

func (s *Synthesizer) notifyComplete() {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnComplete(s.componentMetadata)
	}
}

func (s *Synthesizer) notifyCancel(signal *types.Signal) {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnCancel(s.componentMetadata, signal)
	}
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(types.MetricRunsCancelledCount)
	}
}

func (s *Synthesizer) notifyError(err error, signal *types.Signal) {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnError(s.componentMetadata, err, signal)
	}
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(types.MetricErrorCount)
	}
	s.NotifyLoggers(types.ErrorLevel,
		"Request rejected",
		"component", s.componentMetadata,
		"event", "Synthesize",
		"error", err)
}

func (s *Synthesizer) notifyElementProcessed(signal *types.Signal) {
	for _, sensor := range s.snapshotSensors() {
		sensor.InvokeOnElementProcessed(s.componentMetadata, signal)
	}
}

func (s *Synthesizer) snapshotLoggers() []types.Logger {
	s.loggersLock.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.loggersLock.Unlock()
	return loggers
}

func (s *Synthesizer) snapshotSensors() []types.Sensor[*types.Signal] {
	s.configLock.Lock()
	sensors := append([]types.Sensor[*types.Signal](nil), s.sensors...)
	s.configLock.Unlock()
	return sensors
}

func (s *Synthesizer) snapshotMeters() []types.Meter[*types.Signal] {
	s.configLock.Lock()
	meters := append([]types.Meter[*types.Signal](nil), s.meters...)
	s.configLock.Unlock()
	return meters
}
