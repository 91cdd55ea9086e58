package codec_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/joeydtaylor/wavekit/pkg/internal/codec"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

func sampleSignal() *types.Signal {
	return &types.Signal{
		ID:                "abc-123",
		Type:              types.WaveformTriangle,
		Amplitude:         2.5,
		Frequency:         10,
		Phase:             0.5,
		TimeInterval:      1,
		NoiseLevelPercent: 15,
		CreatedAt:         time.Unix(0, 1724630400000000000),
		Points: []types.SignalPoint{
			{Time: 0, Value: -2.5},
			{Time: 0.5, Value: 0.1},
			{Time: 1, Value: 2.5},
		},
	}
}

func assertSignalsEqual(t *testing.T, got, want *types.Signal) {
	t.Helper()
	if got.ID != want.ID || got.Type != want.Type ||
		got.Amplitude != want.Amplitude || got.Frequency != want.Frequency ||
		got.Phase != want.Phase || got.TimeInterval != want.TimeInterval ||
		got.NoiseLevelPercent != want.NoiseLevelPercent {
		t.Fatalf("metadata mismatch:\ngot  %+v\nwant %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("createdAt mismatch: got %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if len(got.Points) != len(want.Points) {
		t.Fatalf("point count mismatch: got %d, want %d", len(got.Points), len(want.Points))
	}
	for i := range got.Points {
		if got.Points[i] != want.Points[i] {
			t.Fatalf("point %d mismatch: got %+v, want %+v", i, got.Points[i], want.Points[i])
		}
	}
}

func TestBinarySignalRoundTrip(t *testing.T) {
	in := sampleSignal()

	var buf bytes.Buffer
	if err := codec.NewBinarySignalEncoder().Encode(&buf, in); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out, err := codec.NewBinarySignalDecoder().Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	assertSignalsEqual(t, out, in)
}

func TestBinarySignalEncoderRejectsNil(t *testing.T) {
	var buf bytes.Buffer
	if err := codec.NewBinarySignalEncoder().Encode(&buf, nil); err == nil {
		t.Fatalf("expected error encoding nil signal")
	}
}

func TestBinarySignalDecoderRejectsTruncatedStream(t *testing.T) {
	in := sampleSignal()

	var buf bytes.Buffer
	if err := codec.NewBinarySignalEncoder().Encode(&buf, in); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-8])
	if _, err := codec.NewBinarySignalDecoder().Decode(truncated); err == nil {
		t.Fatalf("expected error decoding truncated stream")
	}
}

func TestJSONSignalRoundTrip(t *testing.T) {
	in := sampleSignal()

	var buf bytes.Buffer
	if err := codec.NewJSONEncoder[*types.Signal]().Encode(&buf, in); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out, err := codec.NewJSONDecoder[*types.Signal]().Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	assertSignalsEqual(t, out, in)
}

func TestCompressedBinaryRoundTripAllAlgorithms(t *testing.T) {
	in := sampleSignal()

	algorithms := []types.CompressionAlgorithm{
		types.CompressNone,
		types.CompressGzip,
		types.CompressSnappy,
		types.CompressZstd,
		types.CompressBrotli,
		types.CompressLZ4,
	}

	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			enc := codec.NewCompressedEncoder[*types.Signal](codec.NewBinarySignalEncoder(), alg)
			dec := codec.NewCompressedDecoder[*types.Signal](codec.NewBinarySignalDecoder(), alg)

			var buf bytes.Buffer
			if err := enc.Encode(&buf, in); err != nil {
				t.Fatalf("Encode() error: %v", err)
			}

			out, err := dec.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			assertSignalsEqual(t, out, in)
		})
	}
}

func TestCompressRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := codec.Compress([]byte("data"), types.CompressionAlgorithm(99)); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
	if _, err := codec.Decompress([]byte("data"), types.CompressionAlgorithm(99)); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}
