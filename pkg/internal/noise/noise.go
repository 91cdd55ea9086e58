// Package noise converts a noise-level percentage into an amplitude and draws
// normally distributed noise samples via the Box–Muller transform.
package noise

import (
	"math"
	"math/rand"
)

// Amplitude scales a signal amplitude by a noise-level percentage. Levels at or below
// zero disable noise entirely; levels above 100 keep scaling linearly and are not
// clamped.
func Amplitude(signalAmplitude float64, noiseLevelPercent int) float64 {
	if noiseLevelPercent <= 0 {
		return 0
	}
	return signalAmplitude * float64(noiseLevelPercent) / 100
}

// Sample draws one normally distributed value scaled by noiseAmplitude. It consumes
// exactly two uniform draws from rng per call and keeps no state of its own; callers
// supply one RNG stream per worker so no synchronization is needed.
//
// The native [0,1) uniforms are mapped to (0,1] via 1-u so the logarithm stays defined.
func Sample(noiseAmplitude float64, rng *rand.Rand) float64 {
	u1 := 1 - rng.Float64()
	u2 := 1 - rng.Float64()
	standardNormal := math.Sqrt(-2*math.Log(u1)) * math.Sin(2*math.Pi*u2)
	return standardNormal * noiseAmplitude
}
