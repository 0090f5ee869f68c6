package signal

import "github.com/cwbudde/algo-lofar/dsp/core"

// Tone is one narrowband component of a synthesized signal.
type Tone struct {
	// FrequencyHz is the tone frequency in Hz.
	FrequencyHz float64
	// Amplitude is the peak amplitude.
	Amplitude float64
	// PhaseRad is the phase offset in radians.
	PhaseRad float64
}

// ToneSet holds the tonal content of a signal as parallel slices.
//
// All three slices must have identical length. An empty set is legal and
// synthesizes to the zero signal (plus noise).
type ToneSet struct {
	Frequencies []float64
	Amplitudes  []float64
	Phases      []float64
}

// NewToneSet builds a ToneSet from individual tones.
func NewToneSet(tones ...Tone) ToneSet {
	ts := ToneSet{
		Frequencies: make([]float64, len(tones)),
		Amplitudes:  make([]float64, len(tones)),
		Phases:      make([]float64, len(tones)),
	}
	for i, t := range tones {
		ts.Frequencies[i] = t.FrequencyHz
		ts.Amplitudes[i] = t.Amplitude
		ts.Phases[i] = t.PhaseRad
	}
	return ts
}

// Len returns the number of tones.
func (ts ToneSet) Len() int {
	return len(ts.Frequencies)
}

// Validate rejects tone lists of unequal length.
func (ts ToneSet) Validate() error {
	if len(ts.Amplitudes) != len(ts.Frequencies) || len(ts.Phases) != len(ts.Frequencies) {
		return core.InvalidParameterf("tone lists must have equal length: %d frequencies, %d amplitudes, %d phases",
			len(ts.Frequencies), len(ts.Amplitudes), len(ts.Phases))
	}
	return nil
}
