package types_test

import (
	"testing"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

func TestCloneIsDeep(t *testing.T) {
	original := &types.Signal{
		ID:     "sig-1",
		Points: []types.SignalPoint{{Time: 0, Value: 1}, {Time: 1, Value: 2}},
	}

	dup := original.Clone()
	dup.Points[0].Value = 99

	if original.Points[0].Value != 1 {
		t.Fatalf("clone shares point storage with the original")
	}
	if dup.ID != original.ID {
		t.Fatalf("clone dropped scalar fields")
	}
}

func TestSampleRate(t *testing.T) {
	s := &types.Signal{
		TimeInterval: 2.0,
		Points:       make([]types.SignalPoint, 5),
	}
	if got := s.SampleRate(); got != 2.0 {
		t.Fatalf("expected 4 intervals over 2s = 2Hz, got %f", got)
	}

	empty := &types.Signal{TimeInterval: 1.0}
	if got := empty.SampleRate(); got != 0 {
		t.Fatalf("expected 0 for empty signal, got %f", got)
	}
}

func TestParseWaveformType(t *testing.T) {
	for _, wf := range []types.WaveformType{
		types.WaveformSine, types.WaveformSquare, types.WaveformTriangle, types.WaveformSawtooth,
	} {
		parsed, ok := types.ParseWaveformType(wf.String())
		if !ok || parsed != wf {
			t.Fatalf("round trip failed for %s", wf)
		}
	}
	if _, ok := types.ParseWaveformType("noise"); ok {
		t.Fatalf("expected unknown name to report ok=false")
	}
}
