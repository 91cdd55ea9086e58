package builder

import (
	"github.com/joeydtaylor/wavekit/pkg/internal/spectral"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// NewSpectralAnalyzer creates a new spectral Analyzer with the provided configuration options.
func NewSpectralAnalyzer(options ...types.Option[types.Analyzer]) types.Analyzer {
	return spectral.NewAnalyzer(options...)
}

// SpectralAnalyzerWithLogger adds a logger to the Analyzer.
func SpectralAnalyzerWithLogger(l ...types.Logger) types.Option[types.Analyzer] {
	return spectral.WithLogger(l...)
}

// SpectralAnalyzerWithMaxPeaks caps how many ranked peaks an analysis reports.
func SpectralAnalyzerWithMaxPeaks(limit int) types.Option[types.Analyzer] {
	return spectral.WithMaxPeaks(limit)
}

// SpectralAnalyzerWithComponentMetadata adds component metadata overrides.
func SpectralAnalyzerWithComponentMetadata(name string, id string) types.Option[types.Analyzer] {
	return spectral.WithComponentMetadata(name, id)
}
