package types

// Metric names shared by meters and the components that feed them.
const (
	MetricSignalsSynthesizedCount = "signals_synthesized_count"
	MetricPointsSynthesizedCount  = "points_synthesized_count"
	MetricFilterRunsCount         = "filter_runs_count"
	MetricPointsFilteredCount     = "points_filtered_count"
	MetricRunsCancelledCount      = "runs_cancelled_count"
	MetricErrorCount              = "error_count"
)

// HostStats is a point-in-time snapshot of host utilization, captured alongside
// throughput metrics when a monitor dump is requested.
type HostStats struct {
	CPUPercent    float64
	MemoryPercent float64
}

// Meter accumulates named counters for the components it is connected to. All methods
// are safe for concurrent use; synthesis workers increment counts from multiple
// goroutines.
type Meter[T any] interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// IncrementCount adds one to the named metric and returns the new value.
	IncrementCount(metricName string) uint64

	// AddToCount adds delta to the named metric.
	AddToCount(metricName string, delta uint64)

	// GetMetricCount returns the current value of the named metric.
	GetMetricCount(metricName string) uint64

	// SummarizeMetrics returns a copy of all metric counters.
	SummarizeMetrics() map[string]uint64

	// HostSnapshot samples host CPU and memory utilization.
	HostSnapshot() HostStats

	// ElapsedTime reports the time since the meter was created.
	ElapsedTimeSeconds() float64
}
