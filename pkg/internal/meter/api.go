package meter

import (
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// IncrementCount adds one to the named metric and returns the new value.
func (m *Meter[T]) IncrementCount(metricName string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[metricName]++
	return m.counts[metricName]
}

// AddToCount adds delta to the named metric.
func (m *Meter[T]) AddToCount(metricName string, delta uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[metricName] += delta
}

// GetMetricCount returns the current value of the named metric. Unknown
// metrics read as zero.
func (m *Meter[T]) GetMetricCount(metricName string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[metricName]
}

// SummarizeMetrics returns a copy of all metric counters.
func (m *Meter[T]) SummarizeMetrics() map[string]uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	summary := make(map[string]uint64, len(m.counts))
	for name, count := range m.counts {
		summary[name] = count
	}
	return summary
}

// HostSnapshot samples host CPU and memory utilization. The CPU sample blocks
// for its measurement window; failures read as zero rather than erroring, the
// snapshot is advisory.
func (m *Meter[T]) HostSnapshot() types.HostStats {
	var stats types.HostStats
	if cpuPercentages, err := cpu.Percent(time.Millisecond*500, false); err == nil && len(cpuPercentages) > 0 {
		stats.CPUPercent = cpuPercentages[0]
	}
	if memStats, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = memStats.UsedPercent
	}
	return stats
}

// ElapsedTimeSeconds reports the time since the meter was created.
func (m *Meter[T]) ElapsedTimeSeconds() float64 {
	return time.Since(m.startTime).Seconds()
}
