package medianfilter

import "github.com/joeydtaylor/wavekit/pkg/internal/types"

// NotifyLoggers emits a log event to all configured loggers.
func (f *MedianFilter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := f.snapshotLoggers()
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

func (f *MedianFilter) notifyStart() {
	for _, sensor := range f.snapshotSensors() {
		sensor.InvokeOnStart(f.componentMetadata)
	}
}

func (f *MedianFilter) notifyComplete() {
	for _, sensor := range f.snapshotSensors() {
		sensor.InvokeOnComplete(f.componentMetadata)
	}
}

func (f *MedianFilter) notifyCancel(signal *types.Signal) {
	for _, sensor := range f.snapshotSensors() {
		sensor.InvokeOnCancel(f.componentMetadata, signal)
	}
	for _, m := range f.snapshotMeters() {
		m.IncrementCount(types.MetricRunsCancelledCount)
	}
}

func (f *MedianFilter) notifyError(err error, signal *types.Signal) {
	for _, sensor := range f.snapshotSensors() {
		sensor.InvokeOnError(f.componentMetadata, err, signal)
	}
	for _, m := range f.snapshotMeters() {
		m.IncrementCount(types.MetricErrorCount)
	}
	f.NotifyLoggers(types.ErrorLevel,
		"Request rejected",
		"component", f.componentMetadata,
		"event", "Apply",
		"error", err)
}

func (f *MedianFilter) notifyElementProcessed(signal *types.Signal) {
	for _, sensor := range f.snapshotSensors() {
		sensor.InvokeOnElementProcessed(f.componentMetadata, signal)
	}
}

func (f *MedianFilter) notifyBatchProcessed(batchSize int) {
	for _, sensor := range f.snapshotSensors() {
		sensor.InvokeOnBatchProcessed(f.componentMetadata, batchSize)
	}
}

func (f *MedianFilter) recordRun(signal *types.Signal) {
	for _, m := range f.snapshotMeters() {
		m.IncrementCount(types.MetricFilterRunsCount)
		m.AddToCount(types.MetricPointsFilteredCount, uint64(len(signal.Points)))
	}
}

func (f *MedianFilter) snapshotLoggers() []types.Logger {
	f.loggersLock.Lock()
	loggers := append([]types.Logger(nil), f.loggers...)
	f.loggersLock.Unlock()
	return loggers
}

func (f *MedianFilter) snapshotSensors() []types.Sensor[*types.Signal] {
	f.configLock.Lock()
	sensors := append([]types.Sensor[*types.Signal](nil), f.sensors...)
	f.configLock.Unlock()
	return sensors
}

func (f *MedianFilter) snapshotMeters() []types.Meter[*types.Signal] {
	f.configLock.Lock()
	meters := append([]types.Meter[*types.Signal](nil), f.meters...)
	f.configLock.Unlock()
	return meters
}
