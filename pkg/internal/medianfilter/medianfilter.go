package medianfilter

import (
	"errors"
	"sync"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/utils"
)

// cancelCheckBatch bounds how often a running filter polls the context; once per
// sample would dominate the cost of the small kernels.
const cancelCheckBatch = 1024

// ErrInvalidWindowSize is returned for even or non-positive window sizes.
var ErrInvalidWindowSize = errors.New("medianfilter: window size must be a positive odd integer")

// MedianFilter smooths a signal by replacing each sample with the median of a centered
// window. Sizes 3, 5 and 7 run allocation-free specialized kernels that clamp
// out-of-range indices to the boundary sample; every other odd size runs a general
// kernel whose window shrinks at the edges instead. The two boundary policies are
// intentionally kept distinct.
type MedianFilter struct {
	componentMetadata types.ComponentMetadata
	configLock        sync.Mutex
	loggers           []types.Logger
	loggersLock       sync.Mutex
	sensors           []types.Sensor[*types.Signal]
	meters            []types.Meter[*types.Signal]
}

// NewMedianFilter constructs a median filter and applies the provided options.
func NewMedianFilter(options ...types.Option[types.MedianFilter]) types.MedianFilter {
	f := &MedianFilter{
		componentMetadata: types.ComponentMetadata{
			Type: "MEDIAN_FILTER",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers: make([]types.Logger, 0),
		sensors: make([]types.Sensor[*types.Signal], 0),
		meters:  make([]types.Meter[*types.Signal], 0),
	}

	for _, opt := range options {
		opt(f)
	}

	return f
}
