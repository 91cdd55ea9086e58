package main

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/wavekit/pkg/builder"
)

func main() {
	ctx := context.Background()

	logger := builder.NewLogger(builder.LoggerWithLevel("debug"))

	synth := builder.NewSynthesizer(
		builder.SynthesizerWithLogger(logger),
		builder.SynthesizerWithSeed(7),
	)

	// A noisy sine: 20% noise makes the median filter earn its keep.
	noisy, err := synth.Synthesize(ctx, builder.SynthesisRequest{
		Type:              builder.WaveformSine,
		Amplitude:         1.0,
		Frequency:         5.0,
		PointCount:        2000,
		TimeInterval:      1.0,
		NoiseLevelPercent: 20,
	})
	if err != nil {
		fmt.Printf("Error synthesizing: %v\n", err)
		return
	}

	meter := builder.NewMeter[*builder.Signal]()
	filter := builder.NewMedianFilter(
		builder.MedianFilterWithLogger(logger),
		builder.MedianFilterWithMeter(meter),
	)

	for _, windowSize := range []int{3, 5, 7, 11} {
		smoothed, err := filter.Apply(ctx, noisy, windowSize)
		if err != nil {
			fmt.Printf("Error filtering with window %d: %v\n", windowSize, err)
			continue
		}
		fmt.Printf("Window %2d -> signal %s, residual energy %.4f\n",
			windowSize, smoothed.ID, residual(noisy, smoothed))
	}

	// Thin the last result down to something a chart can draw.
	ds := builder.NewDownsampler(builder.DownsamplerWithLogger(logger))
	smoothed, _ := filter.Apply(ctx, noisy, 5)
	reduced := ds.Downsample(smoothed, 200)
	fmt.Printf("Downsampled %d points to %d (first t=%.3f, last t=%.3f)\n",
		len(smoothed.Points), len(reduced.Points),
		reduced.Points[0].Time, reduced.Points[len(reduced.Points)-1].Time)

	fmt.Printf("Filter metrics: %v\n", meter.SummarizeMetrics())
}

// residual measures how much the filter changed the signal.
func residual(before, after *builder.Signal) float64 {
	var sum float64
	for i := range before.Points {
		diff := before.Points[i].Value - after.Points[i].Value
		sum += diff * diff
	}
	return sum / float64(len(before.Points))
}
