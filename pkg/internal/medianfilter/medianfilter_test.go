package medianfilter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/joeydtaylor/wavekit/pkg/internal/medianfilter"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

func signalFromValues(values ...float64) *types.Signal {
	points := make([]types.SignalPoint, len(values))
	for i, v := range values {
		points[i] = types.SignalPoint{Time: float64(i), Value: v}
	}
	return &types.Signal{ID: "test-signal", Points: points}
}

func filteredValues(t *testing.T, windowSize int, values ...float64) []float64 {
	t.Helper()
	f := medianfilter.NewMedianFilter()
	out, err := f.Apply(context.Background(), signalFromValues(values...), windowSize)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	return out.Values()
}

func assertValues(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestApplyRejectsInvalidWindowSizes(t *testing.T) {
	f := medianfilter.NewMedianFilter()
	for _, ws := range []int{0, -1, 2, 4, 10} {
		_, err := f.Apply(context.Background(), signalFromValues(1, 2, 3), ws)
		if !errors.Is(err, medianfilter.ErrInvalidWindowSize) {
			t.Fatalf("window %d: expected ErrInvalidWindowSize, got %v", ws, err)
		}
	}
}

func TestApplyWindowOneReturnsClone(t *testing.T) {
	f := medianfilter.NewMedianFilter()
	in := signalFromValues(3, 1, 2)

	out, err := f.Apply(context.Background(), in, 1)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if out == in {
		t.Fatalf("expected a clone, got the same signal")
	}
	assertValues(t, out.Values(), []float64{3, 1, 2})

	out.Points[0].Value = 99
	if in.Points[0].Value != 3 {
		t.Fatalf("clone shares point storage with the input")
	}
}

func TestApplyEmptySignal(t *testing.T) {
	f := medianfilter.NewMedianFilter()
	out, err := f.Apply(context.Background(), &types.Signal{}, 3)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if len(out.Points) != 0 {
		t.Fatalf("expected empty output, got %d points", len(out.Points))
	}
}

func TestApplyWindow3BoundaryClamp(t *testing.T) {
	// Clamp duplicates the edge sample: [1,1,2]→1, [1,2,3]→2, [2,3,3]→3.
	assertValues(t, filteredValues(t, 3, 1, 2, 3), []float64{1, 2, 3})
}

func TestApplyWindow3RemovesSpike(t *testing.T) {
	assertValues(t, filteredValues(t, 3, 1, 1, 9, 1, 1), []float64{1, 1, 1, 1, 1})
}

func TestApplyWindow5(t *testing.T) {
	assertValues(t, filteredValues(t, 5, 1, 5, 2, 8, 3), []float64{1, 2, 3, 3, 3})
}

func TestApplyWindow7RemovesSpikes(t *testing.T) {
	in := []float64{2, 2, 2, 50, 2, 2, 2, 2, -50, 2, 2, 2}
	want := []float64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	assertValues(t, filteredValues(t, 7, in...), want)
}

func TestApplyGeneralWindowShrinksAtBoundaries(t *testing.T) {
	// With size 9 and only 3 samples, every window shrinks to the full array, so
	// every output is the global median. The clamped policy would behave like the
	// size-3 case instead; the divergence is intentional.
	assertValues(t, filteredValues(t, 9, 1, 2, 3), []float64{2, 2, 2})
}

func TestApplyGeneralWindowInterior(t *testing.T) {
	in := []float64{4, 1, 3, 5, 2, 9, 7, 6, 8}
	got := filteredValues(t, 9, in...)
	// Interior index 4 sees the whole array; its median is 5.
	if got[4] != 5 {
		t.Fatalf("expected 5 at center, got %v (full: %v)", got[4], got)
	}
}

func TestApplyConstantSignalIsNoOp(t *testing.T) {
	constant := []float64{7, 7, 7, 7, 7, 7, 7, 7}
	for _, ws := range []int{3, 5, 7, 9, 11} {
		assertValues(t, filteredValues(t, ws, constant...), constant)
	}
}

func TestApplyIdempotentOnConstant(t *testing.T) {
	f := medianfilter.NewMedianFilter()
	in := signalFromValues(5, 5, 5, 5, 5)

	once, err := f.Apply(context.Background(), in, 3)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	twice, err := f.Apply(context.Background(), once, 3)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	assertValues(t, twice.Values(), once.Values())
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	f := medianfilter.NewMedianFilter()
	in := signalFromValues(1, 9, 1)

	out, err := f.Apply(context.Background(), in, 3)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	assertValues(t, in.Values(), []float64{1, 9, 1})
	if out.ID == in.ID {
		t.Fatalf("expected a fresh signal id")
	}
	for i := range out.Points {
		if out.Points[i].Time != in.Points[i].Time {
			t.Fatalf("time values must be preserved, index %d differs", i)
		}
	}
}

func TestApplyCancelledBeforeStart(t *testing.T) {
	f := medianfilter.NewMedianFilter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := f.Apply(ctx, signalFromValues(1, 2, 3), 3)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected no output on cancellation")
	}
}
