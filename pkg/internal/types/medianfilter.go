package types

import "context"

// MedianFilter replaces each sample with the median of a centered window, returning a
// new signal and leaving the input untouched.
//
// Two boundary policies coexist, selected by window size. The specialized kernels for
// sizes 3, 5 and 7 keep the window full-length and clamp out-of-range indices to the
// nearest valid sample, duplicating edge values. Every other odd size shrinks the
// window near the edges and takes the median over only the in-bounds samples. Both
// behaviors are load-bearing for consumers of previously filtered data; do not unify
// them.
type MedianFilter interface {
	// Apply filters the signal with the given odd window size. Window size 1 and
	// empty signals return an unchanged clone.
	Apply(ctx context.Context, signal *Signal, windowSize int) (*Signal, error)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor[*Signal])
	ConnectMeter(...Meter[*Signal])
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
