// Package beamform implements fixed linear delay-and-sum beamforming.
package beamform

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lofar/dsp/core"
)

// DefaultMaxDelay is the delay applied to the last sensor, in seconds.
// Delays interpolate linearly from 0 to this value across the array,
// modelling a simple progressive line geometry.
const DefaultMaxDelay = 0.01

// Beamformer combines sensor signals by time-shifting and summing.
//
// The scratch buffer is reused across calls; a Beamformer is not safe for
// concurrent use.
type Beamformer struct {
	cfg      core.Config
	maxDelay float64
	scratch  []float64
}

// Option configures a Beamformer.
type Option func(*Beamformer)

// WithMaxDelay sets the delay of the last sensor in seconds.
func WithMaxDelay(seconds float64) Option {
	return func(b *Beamformer) {
		if seconds >= 0 {
			b.maxDelay = seconds
		}
	}
}

// NewBeamformer creates a configured beamformer.
func NewBeamformer(coreOpts []core.Option, opts ...Option) *Beamformer {
	b := &Beamformer{
		cfg:      core.ApplyOptions(coreOpts...),
		maxDelay: DefaultMaxDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Config returns the beamformer configuration.
func (b *Beamformer) Config() core.Config {
	return b.cfg
}

// Delays returns the per-sensor delay in seconds for an array of n sensors:
// linear interpolation from 0 to the maximum delay inclusive. A single-sensor
// array gets delay 0.
func (b *Beamformer) Delays(n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := b.maxDelay / float64(n-1)
	for j := range out {
		out[j] = float64(j) * step
	}
	return out
}

// SampleShifts converts the per-sensor delays to integer sample shifts,
// truncating toward zero.
func (b *Beamformer) SampleShifts(n int) []int {
	delays := b.Delays(n)
	out := make([]int, len(delays))
	for j, d := range delays {
		out[j] = int(d * b.cfg.SampleRate)
	}
	return out
}

// Beamform applies the per-sensor circular shifts and sums the array into one
// signal of the same length. All sensor signals must be non-empty and of
// equal length.
func (b *Beamformer) Beamform(sensors [][]float64) ([]float64, error) {
	if err := validateShapes(sensors); err != nil {
		return nil, err
	}
	if b.cfg.SampleRate <= 0 {
		return nil, core.InvalidParameterf("sample rate must be > 0: %f", b.cfg.SampleRate)
	}

	length := len(sensors[0])
	shifts := b.SampleShifts(len(sensors))

	out := make([]float64, length)
	b.scratch = core.EnsureLen(b.scratch, length)
	for j, sig := range sensors {
		Roll(b.scratch, sig, shifts[j])
		vecmath.AddBlockInPlace(out, b.scratch)
	}
	return out, nil
}

// Roll writes src circularly shifted by shift samples into dst:
// dst[p] = src[(p-shift) mod len]. Shifted-out samples wrap around to the
// front rather than being zero-filled; this wrap-around is part of the
// beamforming contract and is relied on by regression tests.
// dst and src must not overlap.
func Roll(dst, src []float64, shift int) {
	n := len(src)
	if n == 0 {
		return
	}

	shift %= n
	if shift < 0 {
		shift += n
	}
	if shift == 0 {
		copy(dst, src)
		return
	}

	copy(dst[shift:], src[:n-shift])
	copy(dst[:shift], src[n-shift:])
}

func validateShapes(sensors [][]float64) error {
	if len(sensors) == 0 {
		return core.ShapeMismatchf("sensor array must not be empty")
	}

	length := len(sensors[0])
	if length == 0 {
		return core.ShapeMismatchf("sensor signals must not be empty")
	}
	for j, sig := range sensors {
		if len(sig) != length {
			return core.ShapeMismatchf("sensor %d has length %d, want %d", j, len(sig), length)
		}
	}
	return nil
}
