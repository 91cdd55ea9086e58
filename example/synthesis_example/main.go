package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joeydtaylor/wavekit/pkg/builder"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := builder.NewLogger(
		builder.LoggerWithLevel("info"),
		builder.LoggerWithDevelopment(true),
	)

	meter := builder.NewMeter[*builder.Signal](
		builder.MeterWithComponentMetadata[*builder.Signal]("SynthesisMeter", "meter-synthesis"),
	)

	sensor := builder.NewSensor[*builder.Signal](
		builder.SensorWithOnStartFunc[*builder.Signal](func(c builder.ComponentMetadata) {
			fmt.Printf("%v -> Synthesis started\n", c)
		}),
		builder.SensorWithOnCompleteFunc[*builder.Signal](func(c builder.ComponentMetadata) {
			fmt.Printf("%v -> Synthesis complete\n", c)
		}),
	)

	synth := builder.NewSynthesizer(
		builder.SynthesizerWithComponentMetadata("ExampleSynthesizer", "synth-example"),
		builder.SynthesizerWithLogger(logger),
		builder.SynthesizerWithSensor(sensor),
		builder.SynthesizerWithMeter(meter),
		builder.SynthesizerWithSeed(1234),
	)

	waveforms := []builder.WaveformType{
		builder.WaveformSine,
		builder.WaveformSquare,
		builder.WaveformTriangle,
		builder.WaveformSawtooth,
	}

	for _, wf := range waveforms {
		signal, err := synth.Synthesize(ctx, builder.SynthesisRequest{
			Type:              wf,
			Amplitude:         1.0,
			Frequency:         10.0,
			Phase:             0,
			PointCount:        50000, // above the parallel threshold
			TimeInterval:      2.0,
			NoiseLevelPercent: 10,
		})
		if err != nil {
			fmt.Printf("Error synthesizing %s wave: %v\n", wf, err)
			continue
		}
		fmt.Printf("Synthesized %s wave %s with %d points over %.1fs\n",
			signal.Type, signal.ID, len(signal.Points), signal.TimeInterval)
	}

	fmt.Printf("Metrics: %v\n", meter.SummarizeMetrics())
	fmt.Printf("Elapsed: %.3fs\n", meter.ElapsedTimeSeconds())
}
