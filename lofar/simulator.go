// Package lofar wires tone synthesis, delay-and-sum beamforming and
// spectrogram analysis into a LOFAR simulation pipeline.
//
// The pipeline produces a time-frequency power map (a lofargram) for visual
// inspection of narrowband tonal content. Rendering is delegated to an
// external [Renderer]; the pipeline hands over a [Frame] and performs no
// display computation itself.
package lofar

import (
	"github.com/cwbudde/algo-lofar/dsp/beamform"
	"github.com/cwbudde/algo-lofar/dsp/core"
	"github.com/cwbudde/algo-lofar/dsp/signal"
	"github.com/cwbudde/algo-lofar/dsp/spectrum"
)

// Simulator runs the synthesize -> beamform -> analyze pipeline.
type Simulator struct {
	cfg core.Config
	gen *signal.Generator
	bf  *beamform.Beamformer
	an  *spectrum.Analyzer
}

// Option configures a Simulator.
type Option func(*options)

type options struct {
	coreOpts     []core.Option
	signalOpts   []signal.Option
	beamformOpts []beamform.Option
	spectrumOpts []spectrum.Option
}

// WithConfig applies simulation parameters (sample rate, duration, noise
// level, sensor count).
func WithConfig(opts ...core.Option) Option {
	return func(o *options) {
		o.coreOpts = append(o.coreOpts, opts...)
	}
}

// WithSignalOptions forwards options to the signal generator.
func WithSignalOptions(opts ...signal.Option) Option {
	return func(o *options) {
		o.signalOpts = append(o.signalOpts, opts...)
	}
}

// WithBeamformOptions forwards options to the beamformer.
func WithBeamformOptions(opts ...beamform.Option) Option {
	return func(o *options) {
		o.beamformOpts = append(o.beamformOpts, opts...)
	}
}

// WithSpectrumOptions forwards options to the spectral analyzer.
func WithSpectrumOptions(opts ...spectrum.Option) Option {
	return func(o *options) {
		o.spectrumOpts = append(o.spectrumOpts, opts...)
	}
}

// New creates a simulator and validates its configuration.
func New(opts ...Option) (*Simulator, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cfg := core.ApplyOptions(o.coreOpts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Simulator{
		cfg: cfg,
		gen: signal.NewGenerator(o.coreOpts, o.signalOpts...),
		bf:  beamform.NewBeamformer(o.coreOpts, o.beamformOpts...),
		an:  spectrum.NewAnalyzer(o.coreOpts, o.spectrumOpts...),
	}, nil
}

// Config returns the simulation configuration.
func (s *Simulator) Config() core.Config {
	return s.cfg
}

// Run synthesizes the configured number of sensor signals from tones,
// beamforms them into one signal, and returns its spectrogram frame.
func (s *Simulator) Run(tones signal.ToneSet) (*Frame, error) {
	sensors, err := s.gen.GenerateArray(tones, s.cfg.NumSensors)
	if err != nil {
		return nil, err
	}
	return s.RunSignals(sensors)
}

// RunSignals beamforms caller-supplied sensor signals and returns their
// spectrogram frame. The sensor count is implied by the slice length.
func (s *Simulator) RunSignals(sensors [][]float64) (*Frame, error) {
	combined, err := s.bf.Beamform(sensors)
	if err != nil {
		return nil, err
	}

	gram, err := s.an.Analyze(combined)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Frequencies: gram.Frequencies,
		Times:       gram.Times,
		Power:       gram.Power,
	}, nil
}

// Analyze runs the spectral analysis stage alone on one signal.
func (s *Simulator) Analyze(sig []float64) (*spectrum.Spectrogram, error) {
	return s.an.Analyze(sig)
}
