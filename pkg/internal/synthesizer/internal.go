package synthesizer

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/joeydtaylor/wavekit/pkg/internal/noise"
	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/waveform"
)

func (s *Synthesizer) threshold() int {
	if s.parallelThreshold > 0 {
		return s.parallelThreshold
	}
	return DefaultParallelThreshold
}

func (s *Synthesizer) workerCount() int {
	if s.maxWorkers > 0 {
		return s.maxWorkers
	}
	// Reserve one core of headroom for the caller's control thread.
	workers := runtime.NumCPU() - 1
	if workers < 1 {
		workers = 1
	}
	return workers
}

func (s *Synthesizer) baseSeed() int64 {
	if s.seed != 0 {
		return s.seed
	}
	return time.Now().UnixNano()
}

// fillSequential computes every sample on the calling goroutine, checking the context
// once per element.
func (s *Synthesizer) fillSequential(
	ctx context.Context,
	points []types.SignalPoint,
	strategy waveform.Strategy,
	req types.SynthesisRequest,
	dt, noiseAmp float64,
) error {
	rng := rand.New(rand.NewSource(s.baseSeed()))

	for i := range points {
		if err := ctx.Err(); err != nil {
			return err
		}
		t := float64(i) * dt
		points[i] = types.SignalPoint{
			Time:  t,
			Value: strategy(req.Amplitude, req.Frequency, t, req.Phase) + noise.Sample(noiseAmp, rng),
		}
	}
	return nil
}

// fillParallel partitions the index range into contiguous chunks, one per worker. Each
// worker owns its RNG stream and writes only its own slice of the output, so the
// result needs no locking and is identical in ordering to the sequential path.
func (s *Synthesizer) fillParallel(
	ctx context.Context,
	points []types.SignalPoint,
	strategy waveform.Strategy,
	req types.SynthesisRequest,
	dt, noiseAmp float64,
) error {
	workers := s.workerCount()
	if workers > len(points) {
		workers = len(points)
	}

	chunk := (len(points) + workers - 1) / workers
	seed := s.baseSeed()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(points) {
			end = len(points)
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}

			rng := rand.New(rand.NewSource(seed + int64(worker)))
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckBatch == 0 && ctx.Err() != nil {
					return
				}
				t := float64(i) * dt
				points[i] = types.SignalPoint{
					Time:  t,
					Value: strategy(req.Amplitude, req.Frequency, t, req.Phase) + noise.Sample(noiseAmp, rng),
				}
			}
		}(w, start, end)
	}
	wg.Wait()

	return ctx.Err()
}

func (s *Synthesizer) recordRun(signal *types.Signal) {
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(types.MetricSignalsSynthesizedCount)
		m.AddToCount(types.MetricPointsSynthesizedCount, uint64(len(signal.Points)))
	}
}
