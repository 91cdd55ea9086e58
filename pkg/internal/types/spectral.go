package types

// Peak is a local maximum in a power spectrum.
type Peak struct {
	Freq  float64
	Value float64
}

// Spectrum summarizes the frequency content of a signal.
type Spectrum struct {
	SignalID      string
	SampleRate    float64
	PowerSpectrum []float64 // One entry per bin up to Nyquist.
	DominantFreq  float64
	TotalEnergy   float64 // Time-domain energy, sum of squared values.
	SNR           float64 // Dominant bin power vs everything else, in dB.
	Peaks         []Peak
}

// Analyzer computes a Spectrum from a signal's point sequence.
type Analyzer interface {
	Analyze(signal *Signal) (*Spectrum, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
