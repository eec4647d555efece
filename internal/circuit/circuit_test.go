package circuit

import (
	"math"
	"testing"
)

func TestResistiveDividerSteadyState(t *testing.T) {
	tr := ResistiveDivider(1000, 1000)
	tr.Init()
	tr.SetSampleRate(48000)
	if err := tr.Adapt(); err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	tr.SetInput(1.0)
	for i := 0; i < 8; i++ {
		if err := tr.Cycle(); err != nil {
			t.Fatalf("Cycle: %v", err)
		}
	}
	if got := tr.GetOutput(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("divider output: got %g, want 0.5", got)
	}
}

// TestRCLowpassStepResponse checks spec.md §8 scenario 2: at sample 48
// (1ms) with Rser=1k, C=1uF, fs=48000, the capacitor voltage should be
// within 1e-3 of the analytic 1-exp(-1/(RC)*1e-3).
func TestRCLowpassStepResponse(t *testing.T) {
	const rser, c, fs = 1000.0, 1e-6, 48000.0
	tr := RCLowpass(rser, c)
	tr.Init()
	tr.SetSampleRate(fs)
	if err := tr.Adapt(); err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	tr.SetInput(1.0)
	for i := 0; i < 48; i++ {
		if err := tr.Cycle(); err != nil {
			t.Fatalf("Cycle: %v", err)
		}
	}
	got := tr.GetOutput()
	want := 1 - math.Exp(-1.0/(rser*c)*1e-3)
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("RC step response at 1ms: got %g, want %g", got, want)
	}
}

// TestSwitchableAttenuatorBypassAndAttenuate checks spec.md §8 scenario 3
// against the literal topology in wdfSwitchTree.hpp: with the attenuator
// off, the source passes straight through (Rser=0, so output==Vs); with
// it on, r2 forms a divider with r1 and the output is attenuated to
// Vs*r1/(r1+r2).
func TestSwitchableAttenuatorBypassAndAttenuate(t *testing.T) {
	const r1, r2, vs = 1000.0, 1000.0, 2.0
	tr := SwitchableAttenuator(r1, r2)
	tr.Init()
	tr.SetSampleRate(48000)
	if err := tr.Adapt(); err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	tr.SetInput(vs)

	for i := 0; i < 4; i++ {
		if err := tr.Cycle(); err != nil {
			t.Fatalf("Cycle: %v", err)
		}
	}
	if got := tr.GetOutput(); math.Abs(got-vs) > 1e-9 {
		t.Errorf("attenuator off: got %g, want %g (pass-through)", got, vs)
	}

	if err := tr.SetParam(0, 1); err != nil { // attenuator on, no re-adapt required
		t.Fatalf("SetParam: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := tr.Cycle(); err != nil {
			t.Fatalf("Cycle: %v", err)
		}
	}
	want := vs * r1 / (r1 + r2)
	if got := tr.GetOutput(); math.Abs(got-want) > 1e-9 {
		t.Errorf("attenuator on: got %g, want %g", got, want)
	}
}

// TestSwitchableAttenuatorRatioRepartitionsResistors checks that the
// "attenuation" param (id 1) moves resistance between r1 and r2 while
// holding their sum fixed, matching wdfSwitchTree.hpp's setParam(1, ...).
func TestSwitchableAttenuatorRatioRepartitionsResistors(t *testing.T) {
	const r1, r2, vs = 1000.0, 1000.0, 2.0
	tr := SwitchableAttenuator(r1, r2)
	tr.Init()
	tr.SetSampleRate(48000)
	if err := tr.Adapt(); err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	tr.SetInput(vs)
	if err := tr.SetParam(0, 1); err != nil { // attenuator on
		t.Fatalf("SetParam: %v", err)
	}
	if err := tr.SetParam(1, 0.25); err != nil { // r1=0.75*sum, r2=0.25*sum
		t.Fatalf("SetParam: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := tr.Cycle(); err != nil {
			t.Fatalf("Cycle: %v", err)
		}
	}
	want := vs * 0.75
	if got := tr.GetOutput(); math.Abs(got-want) > 1e-9 {
		t.Errorf("25%% ratio: got %g, want %g", got, want)
	}
}

func TestDiodeClipperBoundedOutput(t *testing.T) {
	tr := DiodeClipper(1000, 1e-6)
	tr.Init()
	tr.SetSampleRate(96000)
	if err := tr.Adapt(); err != nil {
		t.Fatalf("Adapt: %v", err)
	}

	const freq = 1000.0
	const amp = 2.0
	const fs = 96000.0
	var peak float64
	for n := 0; n < 2000; n++ {
		v := amp * math.Sin(2*math.Pi*freq*float64(n)/fs)
		tr.SetInput(v)
		if err := tr.Cycle(); err != nil {
			t.Fatalf("Cycle: %v", err)
		}
		out := tr.GetOutput()
		if math.IsNaN(out) || math.IsInf(out, 0) {
			t.Fatalf("non-finite output at sample %d", n)
		}
		if math.Abs(out) > peak {
			peak = math.Abs(out)
		}
	}
	if peak >= amp {
		t.Errorf("diode clipper should compress the input swing: peak=%g amp=%g", peak, amp)
	}
}
