package synthesizer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joeydtaylor/wavekit/pkg/internal/noise"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/waveform"
)

// Synthesize validates the request, computes every sample, and returns the assembled
// signal. Cancellation through ctx aborts the run and discards partial output; the
// returned error is the context's error so callers can match it with errors.Is.
func (s *Synthesizer) Synthesize(ctx context.Context, req types.SynthesisRequest) (*types.Signal, error) {
	strategy, err := waveform.ForType(req.Type)
	if err != nil {
		s.notifyError(err, nil)
		return nil, err
	}

	if req.PointCount <= 0 {
		err := fmt.Errorf("point count %d: %w", req.PointCount, ErrInvalidPointCount)
		s.notifyError(err, nil)
		return nil, err
	}

	if waveform.PeriodBased(req.Type) && req.Frequency <= 0 {
		err := fmt.Errorf("%s frequency %v: %w", req.Type, req.Frequency, ErrInvalidFrequency)
		s.notifyError(err, nil)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		s.notifyCancel(nil)
		return nil, err
	}

	s.notifyStart()
	s.NotifyLoggers(types.DebugLevel,
		"Starting generation",
		"component", s.componentMetadata,
		"event", "Synthesize",
		"waveform", req.Type.String(),
		"pointCount", req.PointCount)

	denominator := req.PointCount - 1
	if denominator < 1 {
		denominator = 1
	}
	dt := req.TimeInterval / float64(denominator)
	noiseAmp := noise.Amplitude(req.Amplitude, req.NoiseLevelPercent)

	points := make([]types.SignalPoint, req.PointCount)

	if req.PointCount < s.threshold() {
		err = s.fillSequential(ctx, points, strategy, req, dt, noiseAmp)
	} else {
		err = s.fillParallel(ctx, points, strategy, req, dt, noiseAmp)
	}
	if err != nil {
		s.notifyCancel(nil)
		s.NotifyLoggers(types.InfoLevel,
			"Run cancelled, partial output discarded",
			"component", s.componentMetadata,
			"event", "Synthesize")
		return nil, err
	}

	signal := &types.Signal{
		ID:                uuid.New().String(),
		Type:              req.Type,
		Amplitude:         req.Amplitude,
		Frequency:         req.Frequency,
		Phase:             req.Phase,
		TimeInterval:      req.TimeInterval,
		NoiseLevelPercent: req.NoiseLevelPercent,
		CreatedAt:         time.Now(),
		Points:            points,
	}

	s.recordRun(signal)
	s.notifyComplete()
	s.notifyElementProcessed(signal)

	return signal, nil
}

// ConnectLogger attaches one or more loggers to the synthesizer.
func (s *Synthesizer) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	s.loggers = append(s.loggers, loggers...)
	s.loggersLock.Unlock()
}

// ConnectSensor attaches sensors notified around the synthesis lifecycle.
func (s *Synthesizer) ConnectSensor(sensors ...types.Sensor[*types.Signal]) {
	s.configLock.Lock()
	s.sensors = append(s.sensors, sensors...)
	s.configLock.Unlock()
	for _, m := range sensors {
		s.NotifyLoggers(types.DebugLevel,
			"Connected sensor",
			"component", s.componentMetadata,
			"event", "ConnectSensor",
			"target", m.GetComponentMetadata())
	}
}

// ConnectMeter attaches meters that accumulate run and point counts.
func (s *Synthesizer) ConnectMeter(meters ...types.Meter[*types.Signal]) {
	s.configLock.Lock()
	s.meters = append(s.meters, meters...)
	s.configLock.Unlock()
}

// GetComponentMetadata returns the synthesizer's identifying metadata.
func (s *Synthesizer) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// SetComponentMetadata overrides the component's name and id.
func (s *Synthesizer) SetComponentMetadata(name string, id string) {
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
}
