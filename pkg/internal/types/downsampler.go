package types

// Downsampler reduces a signal's point count to a display budget while always keeping
// the first and last original samples.
type Downsampler interface {
	// Downsample returns the original signal unchanged when it already fits the
	// budget or when maxPoints < 2; otherwise it returns a fresh signal with at most
	// maxPoints stride-selected points.
	Downsample(signal *Signal, maxPoints int) *Signal

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
