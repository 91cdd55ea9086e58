package synthesizer

import (
	"errors"
	"sync"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/utils"
)

// Thresholds that govern when a run is split across workers and how often a running
// partition checks for cancellation.
const (
	DefaultParallelThreshold = 10000
	cancelCheckBatch         = 1024
)

var (
	// ErrInvalidPointCount is returned for requests with a non-positive point count.
	ErrInvalidPointCount = errors.New("synthesizer: point count must be positive")
	// ErrInvalidFrequency is returned when a period-based waveform is requested with a
	// non-positive frequency, which would divide by zero.
	ErrInvalidFrequency = errors.New("synthesizer: frequency must be positive for period-based waveforms")
)

// Synthesizer computes signals one sample per index, sequentially for small requests
// and across a bounded worker pool for large ones. Point i always lands at position i,
// so output order never depends on the execution mode.
type Synthesizer struct {
	componentMetadata types.ComponentMetadata
	configLock        sync.Mutex
	loggers           []types.Logger
	loggersLock       sync.Mutex
	sensors           []types.Sensor[*types.Signal]
	meters            []types.Meter[*types.Signal]
	parallelThreshold int
	maxWorkers        int
	seed              int64 // 0 selects a time-based seed per run
}

// NewSynthesizer constructs a synthesizer and applies the provided options.
func NewSynthesizer(options ...types.Option[types.Synthesizer]) types.Synthesizer {
	s := &Synthesizer{
		componentMetadata: types.ComponentMetadata{
			Type: "SYNTHESIZER",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers:           make([]types.Logger, 0),
		sensors:           make([]types.Sensor[*types.Signal], 0),
		meters:            make([]types.Meter[*types.Signal], 0),
		parallelThreshold: DefaultParallelThreshold,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}
