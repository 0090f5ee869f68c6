package lofar

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lofar/dsp/beamform"
	"github.com/cwbudde/algo-lofar/dsp/core"
	"github.com/cwbudde/algo-lofar/dsp/signal"
	"github.com/cwbudde/algo-lofar/internal/testutil"
)

func newNoiselessSimulator(t *testing.T, opts ...Option) *Simulator {
	t.Helper()
	base := []Option{
		WithConfig(
			core.WithSampleRate(1000),
			core.WithDuration(1),
			core.WithNoiseLevel(0),
			core.WithNumSensors(1),
		),
	}
	sim, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sim
}

func TestBoundaryScenarioPureTone(t *testing.T) {
	// sampling_rate=1000, duration=1, noise_level=0, one tone at 100 Hz:
	// 1000 samples, 129 frequency bins, power concentrated at the bin
	// closest to 100 Hz.
	sim := newNoiselessSimulator(t)
	tones := signal.NewToneSet(signal.Tone{FrequencyHz: 100, Amplitude: 1})

	sensors, err := signal.NewGenerator([]core.Option{
		core.WithSampleRate(1000),
		core.WithDuration(1),
		core.WithNoiseLevel(0),
	}).GenerateArray(tones, 1)
	if err != nil {
		t.Fatalf("GenerateArray() error = %v", err)
	}
	if len(sensors[0]) != 1000 {
		t.Fatalf("signal length = %d, want 1000", len(sensors[0]))
	}

	gram, err := sim.Analyze(sensors[0])
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if gram.Bins() != 129 {
		t.Fatalf("bins = %d, want 129", gram.Bins())
	}

	peakHz, _ := gram.PeakFrequency()
	wantBin := testutil.NearestBin(gram.Frequencies, 100)
	if gotBin := testutil.NearestBin(gram.Frequencies, peakHz); gotBin != wantBin {
		t.Fatalf("peak at bin %d (%v Hz), want bin %d", gotBin, peakHz, wantBin)
	}
}

func TestRunFullPipeline(t *testing.T) {
	sim, err := New(
		WithConfig(
			core.WithSampleRate(1000),
			core.WithDuration(2),
			core.WithNoiseLevel(0.1),
			core.WithNumSensors(4),
		),
		WithSignalOptions(signal.WithSeed(11)),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tones := signal.NewToneSet(
		signal.Tone{FrequencyHz: 50, Amplitude: 1, PhaseRad: 0},
		signal.Tone{FrequencyHz: 120, Amplitude: 0.5, PhaseRad: math.Pi / 4},
	)
	frame, err := sim.Run(tones)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(frame.Frequencies) != 129 {
		t.Fatalf("bins = %d, want 129", len(frame.Frequencies))
	}
	if len(frame.Times) != (2000-128)/128 {
		t.Fatalf("frames = %d, want %d", len(frame.Times), (2000-128)/128)
	}
	for k, row := range frame.Power {
		if len(row) != len(frame.Times) {
			t.Fatalf("power row %d has %d frames, want %d", k, len(row), len(frame.Times))
		}
		testutil.RequireFinite(t, row)
	}
}

func TestRunSignalsCallerSupplied(t *testing.T) {
	// The single-array variant: sensor count comes from the caller's list.
	sim := newNoiselessSimulator(t)
	sig := testutil.Tone(120, 1000, 1, 0, 1000)

	frame, err := sim.RunSignals([][]float64{sig, sig, sig})
	if err != nil {
		t.Fatalf("RunSignals() error = %v", err)
	}

	peakBin := 0
	sums := make([]float64, len(frame.Frequencies))
	for k, row := range frame.Power {
		for _, p := range row {
			sums[k] += p
		}
		if sums[k] > sums[peakBin] {
			peakBin = k
		}
	}
	if want := testutil.NearestBin(frame.Frequencies, 120); peakBin != want {
		t.Fatalf("peak bin = %d, want %d", peakBin, want)
	}
}

func TestRunSignalsShapeMismatch(t *testing.T) {
	sim := newNoiselessSimulator(t)

	_, err := sim.RunSignals([][]float64{make([]float64, 8), make([]float64, 9)})
	if !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("RunSignals() = %v, want ErrShapeMismatch", err)
	}

	_, err = sim.RunSignals(nil)
	if !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("RunSignals(nil) = %v, want ErrShapeMismatch", err)
	}
}

func TestRunDeterministicWithSeed(t *testing.T) {
	opts := []Option{
		WithConfig(
			core.WithSampleRate(1000),
			core.WithDuration(1),
			core.WithNoiseLevel(0.1),
			core.WithNumSensors(3),
		),
		WithSignalOptions(signal.WithSeed(99)),
	}
	tones := signal.NewToneSet(signal.Tone{FrequencyHz: 50, Amplitude: 1})

	a, err := mustNew(t, opts...).Run(tones)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	b, err := mustNew(t, opts...).Run(tones)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for k := range a.Power {
		testutil.RequireSliceNearlyEqual(t, b.Power[k], a.Power[k], 0)
	}
}

func TestBeamformOptionsForwarded(t *testing.T) {
	sim := newNoiselessSimulator(t, WithBeamformOptions(beamform.WithMaxDelay(0)))

	sig := testutil.Tone(50, 1000, 1, 0, 1000)
	frame, err := sim.RunSignals([][]float64{sig, sig})
	if err != nil {
		t.Fatalf("RunSignals() error = %v", err)
	}
	if len(frame.Times) == 0 {
		t.Fatalf("expected non-empty frame")
	}
}

func mustNew(t *testing.T, opts ...Option) *Simulator {
	t.Helper()
	sim, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sim
}
