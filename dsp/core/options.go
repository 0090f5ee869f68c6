package core

import "math"

// Config defines the shared parameters of one simulation run.
type Config struct {
	// SampleRate is the sampling rate in Hz.
	SampleRate float64
	// Duration is the signal duration in seconds.
	Duration float64
	// NoiseLevel is the standard deviation of the additive Gaussian noise.
	NoiseLevel float64
	// NumSensors is the number of array sensors to simulate.
	NumSensors int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default simulation parameters.
func DefaultConfig() Config {
	return Config{
		SampleRate: 1000,
		Duration:   10,
		NoiseLevel: 0.1,
		NumSensors: 40,
	}
}

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the signal duration in seconds.
func WithDuration(duration float64) Option {
	return func(cfg *Config) {
		if duration > 0 {
			cfg.Duration = duration
		}
	}
}

// WithNoiseLevel sets the noise standard deviation.
func WithNoiseLevel(noiseLevel float64) Option {
	return func(cfg *Config) {
		if noiseLevel >= 0 {
			cfg.NoiseLevel = noiseLevel
		}
	}
}

// WithNumSensors sets the sensor count.
func WithNumSensors(numSensors int) Option {
	return func(cfg *Config) {
		if numSensors >= 1 {
			cfg.NumSensors = numSensors
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first invalid parameter, if any.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return InvalidParameterf("sample rate must be > 0: %f", c.SampleRate)
	case c.Duration <= 0:
		return InvalidParameterf("duration must be > 0: %f", c.Duration)
	case c.NoiseLevel < 0:
		return InvalidParameterf("noise level must be >= 0: %f", c.NoiseLevel)
	case c.NumSensors < 1:
		return InvalidParameterf("sensor count must be >= 1: %d", c.NumSensors)
	}
	return nil
}

// SampleCount returns the number of samples in one run.
func (c Config) SampleCount() int {
	return int(math.Round(c.SampleRate * c.Duration))
}

// TimeAxis returns sample timestamps t[i] = i / SampleRate.
func (c Config) TimeAxis() []float64 {
	out := make([]float64, c.SampleCount())
	step := 1 / c.SampleRate
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
