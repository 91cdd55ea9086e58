package main

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/wavekit/pkg/builder"
)

func main() {
	ctx := context.Background()

	synth := builder.NewSynthesizer(builder.SynthesizerWithSeed(99))

	// A square wave carries energy at the fundamental and its odd harmonics,
	// which makes for a more interesting spectrum than a pure tone.
	signal, err := synth.Synthesize(ctx, builder.SynthesisRequest{
		Type:              builder.WaveformSquare,
		Amplitude:         1.0,
		Frequency:         16.0,
		PointCount:        4096,
		TimeInterval:      1.0,
		NoiseLevelPercent: 5,
	})
	if err != nil {
		fmt.Printf("Error synthesizing: %v\n", err)
		return
	}

	analyzer := builder.NewSpectralAnalyzer(
		builder.SpectralAnalyzerWithMaxPeaks(5),
	)

	spectrum, err := analyzer.Analyze(signal)
	if err != nil {
		fmt.Printf("Error analyzing: %v\n", err)
		return
	}

	fmt.Printf("Signal %s [%s @ %.1fHz]\n", spectrum.SignalID, signal.Type, signal.Frequency)
	fmt.Printf("Sample rate:        %.1f Hz\n", spectrum.SampleRate)
	fmt.Printf("Dominant frequency: %.2f Hz\n", spectrum.DominantFreq)
	fmt.Printf("Total energy:       %.2f\n", spectrum.TotalEnergy)
	fmt.Printf("SNR:                %.2f dB\n", spectrum.SNR)
	fmt.Println("Top peaks:")
	for i, peak := range spectrum.Peaks {
		fmt.Printf("  %d. %.2f Hz (power %.4f)\n", i+1, peak.Freq, peak.Value)
	}
}
