package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/joeydtaylor/wavekit/pkg/builder"
)

func main() {
	ctx := context.Background()

	synth := builder.NewSynthesizer(builder.SynthesizerWithSeed(2024))
	signal, err := synth.Synthesize(ctx, builder.SynthesisRequest{
		Type:              builder.WaveformTriangle,
		Amplitude:         2.0,
		Frequency:         8.0,
		PointCount:        10000,
		TimeInterval:      1.0,
		NoiseLevelPercent: 2,
	})
	if err != nil {
		fmt.Printf("Error synthesizing: %v\n", err)
		return
	}

	// Baseline sizes for the two encodings.
	var jsonBuf, binBuf bytes.Buffer
	if err := builder.NewJSONEncoder[*builder.Signal]().Encode(&jsonBuf, signal); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		return
	}
	if err := builder.NewBinarySignalEncoder().Encode(&binBuf, signal); err != nil {
		fmt.Printf("Error encoding binary: %v\n", err)
		return
	}
	fmt.Printf("JSON:   %8d bytes\n", jsonBuf.Len())
	fmt.Printf("Binary: %8d bytes\n", binBuf.Len())

	algorithms := []builder.CompressionAlgorithm{
		builder.CompressGzip,
		builder.CompressSnappy,
		builder.CompressZstd,
		builder.CompressBrotli,
		builder.CompressLZ4,
	}

	for _, algo := range algorithms {
		compressed, err := builder.Compress(binBuf.Bytes(), algo)
		if err != nil {
			fmt.Printf("Error compressing with %s: %v\n", algo, err)
			continue
		}
		ratio := float64(len(compressed)) / float64(binBuf.Len()) * 100
		fmt.Printf("Binary+%-7s %8d bytes (%.1f%%)\n", algo.String()+":", len(compressed), ratio)
	}

	// Round trip through a compressed encoder to prove nothing is lost.
	var wire bytes.Buffer
	enc := builder.NewCompressedEncoder[*builder.Signal](builder.NewBinarySignalEncoder(), builder.CompressZstd)
	if err := enc.Encode(&wire, signal); err != nil {
		fmt.Printf("Error encoding compressed: %v\n", err)
		return
	}
	dec := builder.NewCompressedDecoder[*builder.Signal](builder.NewBinarySignalDecoder(), builder.CompressZstd)
	decoded, err := dec.Decode(&wire)
	if err != nil {
		fmt.Printf("Error decoding compressed: %v\n", err)
		return
	}
	fmt.Printf("Round trip OK: %s, %d points\n", decoded.ID, len(decoded.Points))
}
