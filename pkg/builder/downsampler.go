package builder

import (
	"github.com/joeydtaylor/wavekit/pkg/internal/downsampler"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// NewDownsampler creates a new Downsampler with the provided configuration options.
func NewDownsampler(options ...types.Option[types.Downsampler]) types.Downsampler {
	return downsampler.NewDownsampler(options...)
}

// DownsamplerWithLogger adds a logger to the Downsampler.
func DownsamplerWithLogger(l ...types.Logger) types.Option[types.Downsampler] {
	return downsampler.WithLogger(l...)
}

// DownsamplerWithComponentMetadata adds component metadata overrides.
func DownsamplerWithComponentMetadata(name string, id string) types.Option[types.Downsampler] {
	return downsampler.WithComponentMetadata(name, id)
}
