// Package spectrum computes short-time power spectrograms of beamformed signals.
//
// The analyzer segments the signal into overlapping frames, removes each
// frame's mean, applies a tapering window, transforms with an FFT plan, and
// scales to a one-sided power spectral density (per-Hz density convention).
package spectrum

import (
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lofar/dsp/core"
	"github.com/cwbudde/algo-lofar/dsp/window"
)

const (
	// DefaultSegmentLength is the analysis window length in samples.
	DefaultSegmentLength = 256
	// DefaultOverlap is the overlap between consecutive segments in samples.
	DefaultOverlap = 128
)

// Analyzer computes power spectrograms from a shared configuration.
type Analyzer struct {
	cfg     core.Config
	segLen  int
	overlap int
	winType window.Type
	detrend bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSegmentLength sets the analysis window length in samples.
func WithSegmentLength(samples int) Option {
	return func(a *Analyzer) {
		if samples > 0 {
			a.segLen = samples
		}
	}
}

// WithOverlap sets the segment overlap in samples.
func WithOverlap(samples int) Option {
	return func(a *Analyzer) {
		if samples >= 0 {
			a.overlap = samples
		}
	}
}

// WithWindow selects the tapering window. The default is a periodic Hann
// window; window.TypeTukey with its default taper matches the classic
// spectrogram routine this analyzer reproduces.
func WithWindow(t window.Type) Option {
	return func(a *Analyzer) {
		a.winType = t
	}
}

// WithoutDetrend disables per-segment mean removal.
func WithoutDetrend() Option {
	return func(a *Analyzer) {
		a.detrend = false
	}
}

// NewAnalyzer creates a configured spectrogram analyzer.
func NewAnalyzer(coreOpts []core.Option, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg:     core.ApplyOptions(coreOpts...),
		segLen:  DefaultSegmentLength,
		overlap: DefaultOverlap,
		winType: window.TypeHann,
		detrend: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() core.Config {
	return a.cfg
}

// Analyze computes the power spectrogram of sig.
//
// A signal shorter than one segment is zero-padded to a single full segment,
// producing one time bin. An empty signal is rejected.
func (a *Analyzer) Analyze(sig []float64) (*Spectrogram, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	if len(sig) == 0 {
		return nil, core.InsufficientDataf("signal must not be empty")
	}

	if len(sig) < a.segLen {
		padded := make([]float64, a.segLen)
		copy(padded, sig)
		sig = padded
	}

	hop := a.segLen - a.overlap
	frames := (len(sig) - a.overlap) / hop
	bins := a.segLen/2 + 1

	plan, err := algofft.NewPlan64(a.segLen)
	if err != nil {
		return nil, err
	}

	coeffs := window.Generate(a.winType, a.segLen, window.WithPeriodic())
	winPower := 0.0
	for _, w := range coeffs {
		winPower += w * w
	}
	// One-sided PSD normalization: |X[k]|^2 / (rate * sum(w^2)).
	scale := 1 / (a.cfg.SampleRate * winPower)

	s := &Spectrogram{
		Frequencies: make([]float64, bins),
		Times:       make([]float64, frames),
		Power:       make([][]float64, bins),
	}
	binHz := a.cfg.SampleRate / float64(a.segLen)
	for k := range s.Frequencies {
		s.Frequencies[k] = float64(k) * binHz
	}
	for f := range s.Times {
		s.Times[f] = (float64(f*hop) + float64(a.segLen)/2) / a.cfg.SampleRate
	}
	for k := range s.Power {
		s.Power[k] = make([]float64, frames)
	}

	segment := make([]float64, a.segLen)
	in := make([]complex128, a.segLen)
	out := make([]complex128, a.segLen)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pow := make([]float64, bins)

	for f := 0; f < frames; f++ {
		copy(segment, sig[f*hop:f*hop+a.segLen])
		if a.detrend {
			removeMean(segment)
		}
		vecmath.MulBlockInPlace(segment, coeffs)

		for i, v := range segment {
			in[i] = complex(v, 0)
		}
		if err := plan.Forward(out, in); err != nil {
			return nil, err
		}

		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}
		vecmath.Power(pow, re, im)
		for k := 0; k < bins; k++ {
			p := pow[k] * scale
			// Doubling folds negative frequencies into the one-sided
			// spectrum; DC and Nyquist have no mirror bin.
			if k > 0 && !(a.segLen%2 == 0 && k == bins-1) {
				p *= 2
			}
			s.Power[k][f] = p
		}
	}
	return s, nil
}

func (a *Analyzer) validate() error {
	if a.cfg.SampleRate <= 0 {
		return core.InvalidParameterf("sample rate must be > 0: %f", a.cfg.SampleRate)
	}
	if a.segLen <= 0 {
		return core.InvalidParameterf("segment length must be > 0: %d", a.segLen)
	}
	if a.overlap < 0 || a.overlap >= a.segLen {
		return core.InvalidParameterf("overlap must be in [0, segment length): %d", a.overlap)
	}
	return nil
}

func removeMean(buf []float64) {
	sum := 0.0
	for _, v := range buf {
		sum += v
	}
	mean := sum / float64(len(buf))
	for i := range buf {
		buf[i] -= mean
	}
}
