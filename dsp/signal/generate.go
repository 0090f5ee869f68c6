// Package signal synthesizes multi-tone sensor signals with additive Gaussian noise.
package signal

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-lofar/dsp/core"
)

// Generator synthesizes sensor signals from a shared configuration.
//
// Each generator owns its noise seed; sensor j of an array draws from an
// independent sub-stream seeded seed+j, so array synthesis is reproducible
// and safe to parallelize.
type Generator struct {
	cfg      core.Config
	seed     uint64
	parallel bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic seed for noise generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithParallel enables concurrent per-sensor synthesis in GenerateArray.
func WithParallel() Option {
	return func(g *Generator) {
		g.parallel = true
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(coreOpts []core.Option, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() core.Config {
	return g.cfg
}

// Generate synthesizes one sensor signal: the sum of all tones evaluated over
// the configured time axis, plus one independent N(0, NoiseLevel^2) draw per
// sample. An empty tone set yields noise only.
func (g *Generator) Generate(tones ToneSet) ([]float64, error) {
	return g.generateSeeded(tones, g.seed)
}

// GenerateArray synthesizes numSensors signals with identical tonal content
// and independent noise realizations per sensor.
func (g *Generator) GenerateArray(tones ToneSet, numSensors int) ([][]float64, error) {
	if numSensors < 1 {
		return nil, core.InvalidParameterf("sensor count must be >= 1: %d", numSensors)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := tones.Validate(); err != nil {
		return nil, err
	}

	out := make([][]float64, numSensors)
	if !g.parallel {
		for j := range out {
			sig, err := g.generateSeeded(tones, g.seed+uint64(j))
			if err != nil {
				return nil, err
			}
			out[j] = sig
		}
		return out, nil
	}

	var wg sync.WaitGroup
	for j := range out {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			// Config and tones are validated above; the per-sensor call
			// cannot fail after that.
			out[j], _ = g.generateSeeded(tones, g.seed+uint64(j))
		}(j)
	}
	wg.Wait()
	return out, nil
}

func (g *Generator) generateSeeded(tones ToneSet, seed uint64) ([]float64, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := tones.Validate(); err != nil {
		return nil, err
	}

	axis := g.cfg.TimeAxis()
	out := make([]float64, len(axis))
	for k := range tones.Frequencies {
		addTone(out, axis, tones.Frequencies[k], tones.Amplitudes[k], tones.Phases[k])
	}

	if g.cfg.NoiseLevel > 0 {
		noise := distuv.Normal{
			Mu:    0,
			Sigma: g.cfg.NoiseLevel,
			Src:   rand.NewSource(seed),
		}
		for i := range out {
			out[i] += noise.Rand()
		}
	}
	return out, nil
}

// addTone accumulates amplitude*sin(2*pi*freq*t + phase) into out, evaluated
// at the given sample timestamps.
func addTone(out, timeAxis []float64, freqHz, amplitude, phase float64) {
	omega := 2 * math.Pi * freqHz
	for i, t := range timeAxis {
		out[i] += amplitude * math.Sin(omega*t+phase)
	}
}
