package types

import "context"

// SynthesisRequest carries the fully resolved parameters for one generation run.
// Validation of display-layer bounds (amplitude, frequency, interval ranges) happens
// upstream; the synthesizer enforces only the invariants required for safe math.
type SynthesisRequest struct {
	Type              WaveformType
	Amplitude         float64
	Frequency         float64
	Phase             float64
	PointCount        int
	TimeInterval      float64
	NoiseLevelPercent int
}

// Synthesizer produces fully populated, time-ordered signals from a request.
//
// Synthesize is synchronous; callers that must not block run it on their own
// goroutine and cancel through the context. A cancelled run returns the context's
// error and never a partially filled signal.
type Synthesizer interface {
	// Synthesize computes one sample per index and returns the assembled signal.
	Synthesize(ctx context.Context, req SynthesisRequest) (*Signal, error)

	// ConnectLogger attaches one or more loggers for lifecycle and error events.
	ConnectLogger(...Logger)

	// ConnectSensor attaches callback hooks invoked around the synthesis lifecycle.
	ConnectSensor(...Sensor[*Signal])

	// ConnectMeter attaches meters that accumulate point and run counts.
	ConnectMeter(...Meter[*Signal])

	// NotifyLoggers emits a log event to all connected loggers at the given level.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// GetComponentMetadata returns the identifying metadata for this component.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata overrides the component's name and id.
	SetComponentMetadata(name string, id string)
}
