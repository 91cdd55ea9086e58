// Package spectral computes frequency-domain summaries of signals: power spectrum,
// dominant frequency, total energy, SNR, and the most prominent peaks.
package spectral

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"sync"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
	"github.com/joeydtaylor/wavekit/pkg/internal/utils"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrTooFewPoints is returned for signals that cannot support a spectrum estimate.
var ErrTooFewPoints = errors.New("spectral: signal needs at least two evenly spaced points")

// DefaultMaxPeaks bounds the peak list when no override is configured.
const DefaultMaxPeaks = 5

// Analyzer derives a Spectrum from a signal's point sequence.
type Analyzer struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex
	maxPeaks          int
}

// NewAnalyzer constructs an analyzer and applies the provided options.
func NewAnalyzer(options ...types.Option[types.Analyzer]) types.Analyzer {
	a := &Analyzer{
		componentMetadata: types.ComponentMetadata{
			Type: "SPECTRAL_ANALYZER",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers:  make([]types.Logger, 0),
		maxPeaks: DefaultMaxPeaks,
	}

	for _, opt := range options {
		opt(a)
	}

	return a
}

// Analyze runs an FFT over the signal's values and summarizes the result. The sample
// rate is derived from the signal's even spacing; signals loaded from elsewhere must
// carry a positive TimeInterval for the frequency axis to be meaningful.
func (a *Analyzer) Analyze(signal *types.Signal) (*types.Spectrum, error) {
	sampleRate := signal.SampleRate()
	if len(signal.Points) < 2 || sampleRate <= 0 {
		a.NotifyLoggers(types.ErrorLevel,
			"Rejected signal",
			"component", a.componentMetadata,
			"event", "Analyze",
			"points", len(signal.Points))
		return nil, ErrTooFewPoints
	}

	values := signal.Values()
	spectrum := fft.FFTReal(values)

	bins := len(spectrum) / 2
	powerSpectrum := make([]float64, bins)
	totalPower := 0.0
	for i := 0; i < bins; i++ {
		magnitude := cmplx.Abs(spectrum[i])
		power := magnitude * magnitude
		powerSpectrum[i] = power
		totalPower += power
	}

	dominantIndex := floats.MaxIdx(powerSpectrum)
	dominantFreq := float64(dominantIndex) * sampleRate / float64(len(values))

	totalEnergy := 0.0
	for _, v := range values {
		totalEnergy += v * v
	}

	signalPower := powerSpectrum[dominantIndex]
	noisePower := totalPower - signalPower
	snr := math.Inf(1)
	if noisePower > 0 {
		snr = 10 * math.Log10(signalPower/noisePower)
	}

	result := &types.Spectrum{
		SignalID:      signal.ID,
		SampleRate:    sampleRate,
		PowerSpectrum: powerSpectrum,
		DominantFreq:  dominantFreq,
		TotalEnergy:   totalEnergy,
		SNR:           snr,
		Peaks:         a.findPeaks(powerSpectrum, sampleRate, len(values)),
	}

	a.NotifyLoggers(types.DebugLevel,
		"Spectrum computed",
		"component", a.componentMetadata,
		"event", "Analyze",
		"dominantFreq", dominantFreq,
		"snr", snr)

	return result, nil
}

// findPeaks collects local maxima above the mean bin power and keeps the strongest,
// ordered by descending power.
func (a *Analyzer) findPeaks(powerSpectrum []float64, sampleRate float64, sampleCount int) []types.Peak {
	if len(powerSpectrum) < 3 {
		return nil
	}

	threshold := stat.Mean(powerSpectrum, nil)

	var peaks []types.Peak
	for i := 1; i < len(powerSpectrum)-1; i++ {
		p := powerSpectrum[i]
		if p <= threshold {
			continue
		}
		if p > powerSpectrum[i-1] && p >= powerSpectrum[i+1] {
			peaks = append(peaks, types.Peak{
				Freq:  float64(i) * sampleRate / float64(sampleCount),
				Value: p,
			})
		}
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Value > peaks[j].Value })

	limit := a.maxPeaks
	if limit <= 0 {
		limit = DefaultMaxPeaks
	}
	if len(peaks) > limit {
		peaks = peaks[:limit]
	}
	return peaks
}

// ConnectLogger attaches one or more loggers to the analyzer.
func (a *Analyzer) ConnectLogger(loggers ...types.Logger) {
	a.loggersLock.Lock()
	a.loggers = append(a.loggers, loggers...)
	a.loggersLock.Unlock()
}

// NotifyLoggers emits a log event to all configured loggers.
func (a *Analyzer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	a.loggersLock.Lock()
	loggers := append([]types.Logger(nil), a.loggers...)
	a.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

// GetComponentMetadata returns the analyzer's identifying metadata.
func (a *Analyzer) GetComponentMetadata() types.ComponentMetadata {
	return a.componentMetadata
}

// SetComponentMetadata overrides the component's name and id.
func (a *Analyzer) SetComponentMetadata(name string, id string) {
	a.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: a.componentMetadata.Type}
}

// WithLogger registers loggers for the analyzer.
func WithLogger(l ...types.Logger) types.Option[types.Analyzer] {
	return func(a types.Analyzer) {
		a.ConnectLogger(l...)
	}
}

// WithMaxPeaks bounds the number of reported peaks. Values <= 0 keep the default.
func WithMaxPeaks(limit int) types.Option[types.Analyzer] {
	return func(a types.Analyzer) {
		if impl, ok := a.(*Analyzer); ok {
			impl.maxPeaks = limit
		}
	}
}

// WithComponentMetadata overrides the component name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Analyzer] {
	return func(a types.Analyzer) {
		a.SetComponentMetadata(name, id)
	}
}
