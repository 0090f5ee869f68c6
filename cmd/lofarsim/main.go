// Command lofarsim runs the LOFAR simulation pipeline with example tones and
// prints a text summary of the resulting lofargram.
//
// Usage:
//
//	lofarsim [flags]
//
// Examples:
//
//	lofarsim
//	lofarsim -sensors 8 -noise 0.05
//	lofarsim -rate 2000 -duration 5 -max-freq 800
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-lofar/dsp/core"
	"github.com/cwbudde/algo-lofar/dsp/signal"
	"github.com/cwbudde/algo-lofar/lofar"
)

func main() {
	rate := flag.Float64("rate", 1000, "sampling rate in Hz")
	duration := flag.Float64("duration", 10, "signal duration in seconds")
	noise := flag.Float64("noise", 0.1, "noise standard deviation")
	sensors := flag.Int("sensors", 40, "number of array sensors")
	seed := flag.Uint64("seed", 1, "noise seed")
	maxFreq := flag.Float64("max-freq", 500, "displayed frequency ceiling in Hz (0 = full range)")
	flag.Parse()

	// The With* options sanitize their inputs, so user-supplied values are
	// validated up front: a bad flag aborts instead of falling back to a
	// default.
	cfg, err := buildConfig(*rate, *duration, *noise, *sensors)
	if err != nil {
		fatal(err)
	}

	sim, err := lofar.New(
		lofar.WithConfig(
			core.WithSampleRate(cfg.SampleRate),
			core.WithDuration(cfg.Duration),
			core.WithNoiseLevel(cfg.NoiseLevel),
			core.WithNumSensors(cfg.NumSensors),
		),
		lofar.WithSignalOptions(signal.WithSeed(*seed), signal.WithParallel()),
	)
	if err != nil {
		fatal(err)
	}

	tones := signal.NewToneSet(
		signal.Tone{FrequencyHz: 50, Amplitude: 1, PhaseRad: 0},
		signal.Tone{FrequencyHz: 120, Amplitude: 0.5, PhaseRad: math.Pi / 4},
	)

	frame, err := sim.Run(tones)
	if err != nil {
		fatal(err)
	}

	if err := (textRenderer{maxFreqHz: *maxFreq}).Render(frame); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "lofarsim: %v\n", err)
	os.Exit(1)
}

// buildConfig assembles the simulation config from raw flag values and
// rejects invalid parameters.
func buildConfig(rate, duration, noise float64, sensors int) (core.Config, error) {
	cfg := core.Config{
		SampleRate: rate,
		Duration:   duration,
		NoiseLevel: noise,
		NumSensors: sensors,
	}
	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}

// textRenderer prints frame-by-frame peak tones as a table. It stands in for
// a graphical lofargram display.
type textRenderer struct {
	maxFreqHz float64
}

var _ lofar.Renderer = textRenderer{}

func (r textRenderer) Render(frame *lofar.Frame) error {
	view := frame.ClipFrequency(r.maxFreqHz)
	db := view.PowerDB()

	fmt.Printf("lofargram: %d bins (0-%.1f Hz), %d frames\n",
		len(view.Frequencies), view.Frequencies[len(view.Frequencies)-1], len(view.Times))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "time (s)\tpeak (Hz)\tlevel (dB)\t")
	for f := range view.Times {
		peakBin := 0
		for k := range db {
			if db[k][f] > db[peakBin][f] {
				peakBin = k
			}
		}
		fmt.Fprintf(w, "%.2f\t%.1f\t%.1f\t\n", view.Times[f], view.Frequencies[peakBin], db[peakBin][f])
	}
	return w.Flush()
}
