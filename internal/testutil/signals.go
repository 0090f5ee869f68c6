package testutil

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Tone generates a deterministic sinusoid amplitude*sin(2*pi*freq*t + phase).
func Tone(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// GaussianNoise generates N(0, sigma^2) noise from a fixed seed, using the
// same sampler the synthesizer uses.
func GaussianNoise(seed uint64, sigma float64, length int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewSource(seed)}
	out := make([]float64, length)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp generates the sequence 0, 1, 2, ... of the given length.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
