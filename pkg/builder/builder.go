// Package builder is the public entry point for the library. It re-exports the
// constructors, functional options, and shared types of the internal packages so
// callers assemble components from a single import.
package builder

import (
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/utils"
)

type ComponentMetadata = types.ComponentMetadata

type Option[T any] = types.Option[T]

type Signal = types.Signal

type SignalPoint = types.SignalPoint

type SignalParameters = types.SignalParameters

type SynthesisRequest = types.SynthesisRequest

type WaveformType = types.WaveformType

const (
	WaveformSine     WaveformType = types.WaveformSine
	WaveformSquare   WaveformType = types.WaveformSquare
	WaveformTriangle WaveformType = types.WaveformTriangle
	WaveformSawtooth WaveformType = types.WaveformSawtooth
)

// ParseWaveformType maps a canonical lowercase name back to its WaveformType.
func ParseWaveformType(name string) (WaveformType, bool) {
	return types.ParseWaveformType(name)
}

type Spectrum = types.Spectrum

type Peak = types.Peak

type HostStats = types.HostStats

// Metric names shared by meters and the components that feed them.
const (
	MetricSignalsSynthesizedCount = types.MetricSignalsSynthesizedCount
	MetricPointsSynthesizedCount  = types.MetricPointsSynthesizedCount
	MetricFilterRunsCount         = types.MetricFilterRunsCount
	MetricPointsFilteredCount     = types.MetricPointsFilteredCount
	MetricRunsCancelledCount      = types.MetricRunsCancelledCount
	MetricErrorCount              = types.MetricErrorCount
)

// Map applies a function to each element in the slice.
func Map[T any](elems []T, f func(T) T) []T {
	return utils.Map[T](elems, f)
}

// Filter returns a new slice holding only the elements of elems that satisfy f().
func Filter[T any](elems []T, f func(T) bool) []T {
	return utils.Filter[T](elems, f)
}

// Contains reports whether element is present in slice.
func Contains[T comparable](slice []T, element T) bool {
	return utils.Contains[T](slice, element)
}
