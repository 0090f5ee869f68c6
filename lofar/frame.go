package lofar

import (
	"sort"

	"github.com/cwbudde/algo-lofar/dsp/core"
)

// powerFloor replaces exact-zero power before the log conversion so display
// scaling never produces -Inf.
const powerFloor = 1e-12

// Frame is the renderer handoff: ascending frequency bins, ascending
// frame-center times, and a non-negative power matrix indexed
// [frequency bin][time frame].
type Frame struct {
	Frequencies []float64
	Times       []float64
	Power       [][]float64
}

// Renderer consumes frames for display. Implementations live outside the
// pipeline and must not mutate the frame.
type Renderer interface {
	Render(*Frame) error
}

// PowerDB returns the power matrix converted to 10*log10 display scale.
// Zero power is floored to a small epsilon before the log.
func (f *Frame) PowerDB() [][]float64 {
	out := make([][]float64, len(f.Power))
	for k, row := range f.Power {
		out[k] = make([]float64, len(row))
		for i, p := range row {
			if p < powerFloor {
				p = powerFloor
			}
			out[k][i] = core.LinearPowerToDB(p)
		}
	}
	return out
}

// ClipFrequency returns a view of the frame restricted to bins at or below
// maxHz. This is a presentation filter only; the underlying slices are shared
// with the original frame, not copied.
func (f *Frame) ClipFrequency(maxHz float64) *Frame {
	if maxHz <= 0 {
		return f
	}
	n := sort.SearchFloat64s(f.Frequencies, maxHz)
	if n < len(f.Frequencies) && f.Frequencies[n] == maxHz {
		n++
	}
	if n >= len(f.Frequencies) {
		return f
	}
	return &Frame{
		Frequencies: f.Frequencies[:n],
		Times:       f.Times,
		Power:       f.Power[:n],
	}
}
