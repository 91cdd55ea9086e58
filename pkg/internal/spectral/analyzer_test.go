package spectral_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/joeydtaylor/wavekit/pkg/internal/spectral"
	"github.com/joeydtaylor/wavekit/pkg/internal/synthesizer"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

func synthesize(t *testing.T, req types.SynthesisRequest) *types.Signal {
	t.Helper()
	s := synthesizer.NewSynthesizer()
	signal, err := s.Synthesize(context.Background(), req)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	return signal
}

func TestAnalyzeFindsDominantFrequency(t *testing.T) {
	// 512 points over 1s → ~512 Hz sample rate, sine at 50 Hz.
	signal := synthesize(t, types.SynthesisRequest{
		Type:         types.WaveformSine,
		Amplitude:    1,
		Frequency:    50,
		PointCount:   512,
		TimeInterval: 1,
	})

	a := spectral.NewAnalyzer()
	spectrum, err := a.Analyze(signal)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	// Bin resolution is sampleRate/len ≈ 1 Hz; allow a couple of bins of leakage.
	if math.Abs(spectrum.DominantFreq-50) > 3 {
		t.Fatalf("expected dominant frequency near 50 Hz, got %v", spectrum.DominantFreq)
	}
	if spectrum.SampleRate <= 0 {
		t.Fatalf("expected positive sample rate, got %v", spectrum.SampleRate)
	}
	if spectrum.TotalEnergy <= 0 {
		t.Fatalf("expected positive energy, got %v", spectrum.TotalEnergy)
	}
	if spectrum.SignalID != signal.ID {
		t.Fatalf("spectrum not tagged with source signal id")
	}
}

func TestAnalyzePureToneHasHighSNR(t *testing.T) {
	signal := synthesize(t, types.SynthesisRequest{
		Type:         types.WaveformSine,
		Amplitude:    1,
		Frequency:    32,
		PointCount:   1024,
		TimeInterval: 1,
	})

	a := spectral.NewAnalyzer()
	spectrum, err := a.Analyze(signal)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	// 32 cycles fit exactly into the window, so leakage is minimal.
	if spectrum.SNR < 20 {
		t.Fatalf("expected SNR above 20 dB for a pure tone, got %v", spectrum.SNR)
	}
}

func TestAnalyzeReportsPeaks(t *testing.T) {
	signal := synthesize(t, types.SynthesisRequest{
		Type:         types.WaveformSquare,
		Amplitude:    1,
		Frequency:    16,
		PointCount:   1024,
		TimeInterval: 1,
	})

	a := spectral.NewAnalyzer(spectral.WithMaxPeaks(3))
	spectrum, err := a.Analyze(signal)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if len(spectrum.Peaks) == 0 {
		t.Fatalf("expected at least one peak for a square wave")
	}
	if len(spectrum.Peaks) > 3 {
		t.Fatalf("expected at most 3 peaks, got %d", len(spectrum.Peaks))
	}
	// Peaks are ordered strongest first; a square wave's fundamental dominates.
	if math.Abs(spectrum.Peaks[0].Freq-16) > 3 {
		t.Fatalf("expected strongest peak near 16 Hz, got %v", spectrum.Peaks[0].Freq)
	}
	for i := 1; i < len(spectrum.Peaks); i++ {
		if spectrum.Peaks[i].Value > spectrum.Peaks[i-1].Value {
			t.Fatalf("peaks not ordered by descending power")
		}
	}
}

func TestAnalyzeRejectsShortSignals(t *testing.T) {
	a := spectral.NewAnalyzer()

	_, err := a.Analyze(&types.Signal{})
	if !errors.Is(err, spectral.ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints for empty signal, got %v", err)
	}

	oneBare := &types.Signal{Points: []types.SignalPoint{{Time: 0, Value: 1}}}
	if _, err := a.Analyze(oneBare); !errors.Is(err, spectral.ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints for single point, got %v", err)
	}
}
