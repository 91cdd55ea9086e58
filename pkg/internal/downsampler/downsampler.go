// Package downsampler reduces a signal's point count to a display budget. The stride
// walk always keeps the first and last original samples, accepting uneven spacing in
// the final segment in exchange for never exceeding the budget.
package downsampler

import (
	"sync"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/utils"
)

// Downsampler selects a representative subset of a signal's points.
type Downsampler struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewDownsampler constructs a downsampler and applies the provided options.
func NewDownsampler(options ...types.Option[types.Downsampler]) types.Downsampler {
	d := &Downsampler{
		componentMetadata: types.ComponentMetadata{
			Type: "DOWNSAMPLER",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers: make([]types.Logger, 0),
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// Downsample returns the original signal unchanged when it already fits maxPoints or
// when maxPoints < 2. Otherwise it returns a fresh signal holding at most maxPoints
// stride-selected points, always including the first and last original samples.
func (d *Downsampler) Downsample(signal *types.Signal, maxPoints int) *types.Signal {
	count := len(signal.Points)
	if count <= maxPoints || maxPoints < 2 {
		return signal
	}

	step := (count + maxPoints - 2) / (maxPoints - 1) // ceil(count / (maxPoints-1))

	selected := make([]types.SignalPoint, 0, maxPoints)
	for i := 0; i < count && len(selected) < maxPoints-1; i += step {
		selected = append(selected, signal.Points[i])
	}

	last := signal.Points[count-1]
	if selected[len(selected)-1] != last {
		selected = append(selected, last)
	}

	out := signal.Clone()
	out.Points = selected

	d.NotifyLoggers(types.DebugLevel,
		"Reduced point count",
		"component", d.componentMetadata,
		"event", "Downsample",
		"from", count,
		"to", len(selected),
		"maxPoints", maxPoints)

	return out
}

// ConnectLogger attaches one or more loggers to the downsampler.
func (d *Downsampler) ConnectLogger(loggers ...types.Logger) {
	d.loggersLock.Lock()
	d.loggers = append(d.loggers, loggers...)
	d.loggersLock.Unlock()
}

// NotifyLoggers emits a log event to all configured loggers.
func (d *Downsampler) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	d.loggersLock.Lock()
	loggers := append([]types.Logger(nil), d.loggers...)
	d.loggersLock.Unlock()

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

// GetComponentMetadata returns the downsampler's identifying metadata.
func (d *Downsampler) GetComponentMetadata() types.ComponentMetadata {
	return d.componentMetadata
}

// SetComponentMetadata overrides the component's name and id.
func (d *Downsampler) SetComponentMetadata(name string, id string) {
	d.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: d.componentMetadata.Type}
}

// WithLogger registers loggers for the downsampler.
func WithLogger(l ...types.Logger) types.Option[types.Downsampler] {
	return func(d types.Downsampler) {
		d.ConnectLogger(l...)
	}
}

// WithComponentMetadata overrides the component name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Downsampler] {
	return func(d types.Downsampler) {
		d.SetComponentMetadata(name, id)
	}
}
