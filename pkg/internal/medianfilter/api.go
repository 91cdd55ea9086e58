package medianfilter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// Apply filters the signal with the given odd window size and returns a new signal;
// the input is never mutated. Window size 1 and empty signals return an unchanged
// clone. Cancellation is polled once per batch of samples; an aborted run discards
// its partial output and returns the context's error.
func (f *MedianFilter) Apply(ctx context.Context, signal *types.Signal, windowSize int) (*types.Signal, error) {
	if windowSize < 1 || windowSize%2 == 0 {
		err := fmt.Errorf("window size %d: %w", windowSize, ErrInvalidWindowSize)
		f.notifyError(err, signal)
		return nil, err
	}

	if len(signal.Points) == 0 || windowSize == 1 {
		return signal.Clone(), nil
	}

	if err := ctx.Err(); err != nil {
		f.notifyCancel(signal)
		return nil, err
	}

	f.notifyStart()
	f.NotifyLoggers(types.DebugLevel,
		"Starting median filter",
		"component", f.componentMetadata,
		"event", "Apply",
		"windowSize", windowSize,
		"points", len(signal.Points))

	values := signal.Values()
	filtered, err := f.filterValues(ctx, values, windowSize)
	if err != nil {
		f.notifyCancel(signal)
		f.NotifyLoggers(types.InfoLevel,
			"Run cancelled, partial output discarded",
			"component", f.componentMetadata,
			"event", "Apply")
		return nil, err
	}

	out := signal.Clone()
	out.ID = uuid.New().String()
	out.CreatedAt = time.Now()
	for i := range out.Points {
		out.Points[i].Value = filtered[i]
	}

	f.recordRun(out)
	f.notifyComplete()
	f.notifyElementProcessed(out)

	return out, nil
}

// filterValues runs the size-appropriate kernel over every index, checking the
// context at batch boundaries.
func (f *MedianFilter) filterValues(ctx context.Context, values []float64, windowSize int) ([]float64, error) {
	n := len(values)
	out := make([]float64, n)

	var scratch []float64
	if windowSize != 3 && windowSize != 5 && windowSize != 7 {
		scratch = make([]float64, windowSize)
	}
	radius := windowSize / 2

	for i := 0; i < n; i++ {
		if i%cancelCheckBatch == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if i > 0 {
				f.notifyBatchProcessed(cancelCheckBatch)
			}
		}

		switch windowSize {
		case 3:
			out[i] = median3(values, i)
		case 5:
			out[i] = median5(values, i)
		case 7:
			out[i] = median7(values, i)
		default:
			out[i] = medianGeneral(values, i, radius, scratch)
		}
	}

	return out, nil
}

// ConnectLogger attaches one or more loggers to the filter.
func (f *MedianFilter) ConnectLogger(loggers ...types.Logger) {
	f.loggersLock.Lock()
	f.loggers = append(f.loggers, loggers...)
	f.loggersLock.Unlock()
}

// ConnectSensor attaches sensors notified around the filter lifecycle.
func (f *MedianFilter) ConnectSensor(sensors ...types.Sensor[*types.Signal]) {
	f.configLock.Lock()
	f.sensors = append(f.sensors, sensors...)
	f.configLock.Unlock()
	for _, m := range sensors {
		f.NotifyLoggers(types.DebugLevel,
			"Connected sensor",
			"component", f.componentMetadata,
			"event", "ConnectSensor",
			"target", m.GetComponentMetadata())
	}
}

// ConnectMeter attaches meters that accumulate run and point counts.
func (f *MedianFilter) ConnectMeter(meters ...types.Meter[*types.Signal]) {
	f.configLock.Lock()
	f.meters = append(f.meters, meters...)
	f.configLock.Unlock()
}

// GetComponentMetadata returns the filter's identifying metadata.
func (f *MedianFilter) GetComponentMetadata() types.ComponentMetadata {
	return f.componentMetadata
}

// SetComponentMetadata overrides the component's name and id.
func (f *MedianFilter) SetComponentMetadata(name string, id string) {
	f.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: f.componentMetadata.Type}
}
