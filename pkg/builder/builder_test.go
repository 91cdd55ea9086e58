package builder_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/joeydtaylor/wavekit/pkg/builder"
)

// End-to-end pipeline over the public facade: synthesize, filter, downsample,
// analyze, then round trip the result through the binary codec.
func TestSignalPipeline(t *testing.T) {
	ctx := context.Background()

	synth := builder.NewSynthesizer(
		builder.SynthesizerWithComponentMetadata("PipelineSynth", "synth-1"),
		builder.SynthesizerWithSeed(42),
	)

	signal, err := synth.Synthesize(ctx, builder.SynthesisRequest{
		Type:              builder.WaveformSine,
		Amplitude:         1.0,
		Frequency:         32.0,
		PointCount:        1024,
		TimeInterval:      1.0,
		NoiseLevelPercent: 5,
	})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if len(signal.Points) != 1024 {
		t.Fatalf("expected 1024 points, got %d", len(signal.Points))
	}

	filter := builder.NewMedianFilter()
	filtered, err := filter.Apply(ctx, signal, 5)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(filtered.Points) != len(signal.Points) {
		t.Fatalf("filter changed point count: %d != %d", len(filtered.Points), len(signal.Points))
	}

	ds := builder.NewDownsampler()
	reduced := ds.Downsample(filtered, 256)
	if len(reduced.Points) > 256 {
		t.Fatalf("downsample exceeded budget: %d", len(reduced.Points))
	}
	first := reduced.Points[0]
	last := reduced.Points[len(reduced.Points)-1]
	if first != filtered.Points[0] || last != filtered.Points[len(filtered.Points)-1] {
		t.Fatalf("downsample lost the endpoints")
	}

	analyzer := builder.NewSpectralAnalyzer()
	spectrum, err := analyzer.Analyze(filtered)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if spectrum.DominantFreq < 29 || spectrum.DominantFreq > 35 {
		t.Fatalf("expected dominant frequency near 32Hz, got %f", spectrum.DominantFreq)
	}

	var buf bytes.Buffer
	enc := builder.NewBinarySignalEncoder()
	if err := enc.Encode(&buf, reduced); err != nil {
		t.Fatalf("encode: %v", err)
	}
	dec := builder.NewBinarySignalDecoder()
	decoded, err := dec.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != reduced.ID || len(decoded.Points) != len(reduced.Points) {
		t.Fatalf("binary round trip mismatch")
	}
}

func TestSensorAndMeterObserveSynthesis(t *testing.T) {
	meter := builder.NewMeter[*builder.Signal]()

	var completions int
	sensor := builder.NewSensor[*builder.Signal](
		builder.SensorWithOnCompleteFunc[*builder.Signal](func(builder.ComponentMetadata) {
			completions++
		}),
	)

	synth := builder.NewSynthesizer(
		builder.SynthesizerWithSensor(sensor),
		builder.SynthesizerWithMeter(meter),
	)

	_, err := synth.Synthesize(context.Background(), builder.SynthesisRequest{
		Type:         builder.WaveformSquare,
		Amplitude:    2.0,
		Frequency:    4.0,
		PointCount:   500,
		TimeInterval: 1.0,
	})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	if completions != 1 {
		t.Fatalf("expected 1 completion callback, got %d", completions)
	}
	if got := meter.GetMetricCount(builder.MetricSignalsSynthesizedCount); got != 1 {
		t.Fatalf("expected 1 synthesized signal, got %d", got)
	}
	if got := meter.GetMetricCount(builder.MetricPointsSynthesizedCount); got != 500 {
		t.Fatalf("expected 500 synthesized points, got %d", got)
	}
}
