package spectrum

// Spectrogram is the time-frequency power map of one analysis call.
//
// Power is indexed [frequency bin][time frame]. Frequencies ascend from 0 to
// the Nyquist frequency, Times are segment-center timestamps in seconds.
// The result is immutable once returned.
type Spectrogram struct {
	Frequencies []float64
	Times       []float64
	Power       [][]float64
}

// Bins returns the number of frequency bins.
func (s *Spectrogram) Bins() int {
	return len(s.Frequencies)
}

// Frames returns the number of time frames.
func (s *Spectrogram) Frames() int {
	return len(s.Times)
}

// PeakFrequency returns the frequency of the bin with the highest power
// summed across all time frames, along with that summed power.
func (s *Spectrogram) PeakFrequency() (freqHz, totalPower float64) {
	peakBin := -1
	peakSum := 0.0
	for k, row := range s.Power {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		if peakBin < 0 || sum > peakSum {
			peakBin = k
			peakSum = sum
		}
	}
	if peakBin < 0 {
		return 0, 0
	}
	return s.Frequencies[peakBin], peakSum
}

// FramePeak returns the peak bin index and power of a single time frame.
func (s *Spectrogram) FramePeak(frame int) (bin int, power float64) {
	if frame < 0 || frame >= s.Frames() {
		return -1, 0
	}
	bin = -1
	for k, row := range s.Power {
		if bin < 0 || row[frame] > power {
			bin = k
			power = row[frame]
		}
	}
	return bin, power
}
