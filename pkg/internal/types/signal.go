package types

import "time"

// WaveformType selects the periodic shape a synthesizer produces. The set is closed;
// dispatch over it is a switch, not a registry.
type WaveformType int

const (
	WaveformSine WaveformType = iota
	WaveformSquare
	WaveformTriangle
	WaveformSawtooth
)

// String returns the canonical lowercase name of the waveform.
func (w WaveformType) String() string {
	switch w {
	case WaveformSine:
		return "sine"
	case WaveformSquare:
		return "square"
	case WaveformTriangle:
		return "triangle"
	case WaveformSawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// ParseWaveformType maps a canonical lowercase name back to its WaveformType.
// Unknown names report ok=false.
func ParseWaveformType(name string) (WaveformType, bool) {
	switch name {
	case "sine":
		return WaveformSine, true
	case "square":
		return WaveformSquare, true
	case "triangle":
		return WaveformTriangle, true
	case "sawtooth":
		return WaveformSawtooth, true
	default:
		return WaveformSine, false
	}
}

// SignalPoint is a single sample: an instant in seconds and the amplitude at that instant.
// It has no identity beyond its values.
type SignalPoint struct {
	Time  float64
	Value float64
}

// Signal is a fully materialized sample sequence plus the parameters that produced it.
// Points are ordered ascending by Time. Freshly synthesized signals are evenly spaced:
// dt = TimeInterval / max(1, len(Points)-1), Points[0].Time == 0 and the last point's
// Time equals TimeInterval when more than one point exists.
//
// Transforms never mutate a Signal in place; they return a fresh aggregate so the
// original stays valid for re-display or undo.
type Signal struct {
	ID                string
	Type              WaveformType
	Amplitude         float64
	Frequency         float64
	Phase             float64
	TimeInterval      float64
	NoiseLevelPercent int
	CreatedAt         time.Time
	Points            []SignalPoint
}

// Clone returns a deep copy of the signal, including its point sequence.
func (s *Signal) Clone() *Signal {
	if s == nil {
		return nil
	}
	dup := *s
	dup.Points = append([]SignalPoint(nil), s.Points...)
	return &dup
}

// Values extracts the value column of the point sequence.
func (s *Signal) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// SampleRate derives samples-per-second from the even spacing of a synthesized signal.
// Returns 0 for signals with fewer than two points or a non-positive interval.
func (s *Signal) SampleRate() float64 {
	if len(s.Points) < 2 || s.TimeInterval <= 0 {
		return 0
	}
	return float64(len(s.Points)-1) / s.TimeInterval
}

// SignalParameters stages a generation request. Nil fields mean "use the component
// default"; the struct is read once at validation time and not retained.
type SignalParameters struct {
	Amplitude         *float64
	Frequency         *float64
	Phase             *float64
	PointCount        *int
	TimeInterval      *float64
	NoiseLevelPercent int
}
