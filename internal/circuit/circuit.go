// Package circuit provides a handful of author-built example trees
// (resistive divider, RC low-pass, switchable attenuator, diode clipper)
// exercising every node and root variant. These are illustrative
// constructors for tests and the demo host, not part of the core.
package circuit

import (
	rtwdf "github.com/hollow-road/rtwdf-go"
	"github.com/hollow-road/rtwdf-go/internal/linalg"
	"github.com/hollow-road/rtwdf-go/internal/nlmodel"
	"github.com/hollow-road/rtwdf-go/internal/nlsolve"
	"github.com/hollow-road/rtwdf-go/internal/wnode"
	"github.com/hollow-road/rtwdf-go/internal/wroot"
)

// ResistiveDivider builds an ideal-voltage-source root driving a series
// adapter of two resistors, output probed across r1 (spec.md §8 scenario
// 1). SetInput drives Vs; GetOutput reads the R1 voltage, taken as the
// negated port voltage because the series adapter's port orientation
// gives v_up = -(v_r1 + v_r2).
func ResistiveDivider(r1Ohms, r2Ohms float64) *rtwdf.Tree {
	r1 := wnode.NewResistor(r1Ohms)
	r2 := wnode.NewResistor(r2Ohms)
	series := wnode.NewSeries(r1, r2)

	vs := &wroot.IdealVoltageSource{}
	root := wroot.NewSimple(vs)

	params := rtwdf.NewParamTable()
	params.Register(rtwdf.ParamDescriptor{Name: "r1", ID: 0, Kind: rtwdf.ParamReal, Value: r1Ohms, Units: "ohm"}, func(v float64) bool {
		r1.SetResistance(v)
		return true
	})
	params.Register(rtwdf.ParamDescriptor{Name: "r2", ID: 1, Kind: rtwdf.ParamReal, Value: r2Ohms, Units: "ohm"}, func(v float64) bool {
		r2.SetResistance(v)
		return true
	})

	return rtwdf.NewTree(
		[]wnode.Node{series},
		root,
		func(v float64) { vs.Vs = v },
		func() float64 { return -r1.UpPort().Voltage() },
		params,
	)
}

// RCLowpass builds an ideal-voltage-source root driving Rser in series
// with C, output probed across the capacitor (spec.md §8 scenario 2),
// negated for the same series-port orientation as ResistiveDivider.
func RCLowpass(rserOhms, cFarads float64) *rtwdf.Tree {
	rser := wnode.NewResistor(rserOhms)
	cap := wnode.NewCapacitor(cFarads)
	series := wnode.NewSeries(rser, cap)

	vs := &wroot.IdealVoltageSource{}
	root := wroot.NewSimple(vs)

	params := rtwdf.NewParamTable()
	params.Register(rtwdf.ParamDescriptor{Name: "c", ID: 0, Kind: rtwdf.ParamReal, Value: cFarads, Units: "farad"}, func(v float64) bool {
		cap.C = v
		return true
	})

	return rtwdf.NewTree(
		[]wnode.Node{series},
		root,
		func(v float64) { vs.Vs = v },
		func() float64 { return -cap.Voltage() },
		params,
	)
}

// SwitchableAttenuator reproduces the topology of
// original_source/Examples/wdfSwitchTree.hpp: an ideal source Vs in series
// with r1 (S1), paralleled with r2 (P1), with the tree's single switch
// root sitting on P1's up port and the probe reading -(voltage across
// r1) — the reference's own `getOutputValue()` (spec.md §8 scenario 3).
//
// Two params mirror the reference's two setParam ids: id 0 ("attenuator")
// toggles the switch (no re-adapt — a switch only flips the root's
// reflection sign, not any port resistance); id 1 ("attenuation") moves
// resistance between r1 and r2 while holding r1+r2 fixed, and does
// require re-adaptation, since it changes both leaves' Rp.
//
// With the attenuator off (the default, switch closed in wroot.Switch
// terms) the root's ρ=-1 reflection makes P1's down-wave collapse to
// exactly Vs regardless of r1/r2, so GetOutput reduces to the pure
// Vs*r1/(Vs's Rser+r1) divider — with Rser=0, the source passes straight
// through. Switching the attenuator on (switch open, ρ=+1) lets r2 load
// the divider, giving GetOutput = Vs*r1/(r1+r2): the resistor-split
// attenuation the param is named for.
func SwitchableAttenuator(r1Ohms, r2Ohms float64) *rtwdf.Tree {
	vs := wnode.NewVoltageSource(0)
	r1 := wnode.NewResistor(r1Ohms)
	s1 := wnode.NewSeries(vs, r1)
	r2 := wnode.NewResistor(r2Ohms)
	p1 := wnode.NewParallel(s1, r2)

	sw := &wroot.Switch{Closed: true}
	root := wroot.NewSimple(sw)

	sum := r1Ohms + r2Ohms
	params := rtwdf.NewParamTable()
	params.Register(rtwdf.ParamDescriptor{Name: "attenuator", ID: 0, Kind: rtwdf.ParamBool}, func(v float64) bool {
		sw.Closed = v == 0
		return false
	})
	params.Register(rtwdf.ParamDescriptor{Name: "attenuation", ID: 1, Kind: rtwdf.ParamReal, Value: 0.5, Low: 0, High: 1}, func(v float64) bool {
		r1.SetResistance(sum * (1 - v))
		r2.SetResistance(sum * v)
		return true
	})

	return rtwdf.NewTree(
		[]wnode.Node{p1},
		root,
		func(v float64) { vs.SetVoltage(v) },
		func() float64 { return -r1.UpPort().Voltage() },
		params,
	)
}

// diodeClipperNL wires a single antiparallel-diode pair as the sole NL
// port, directly facing the tree's one subtree — the same 1x1 E/Fmat/
// Mmat/Nmat shape as the classic single-NL-port diode clipper (spec.md
// §8 scenario 4).
type diodeClipperNL struct{}

func (diodeClipperNL) BuildMatrices(rp []float64) (wroot.NLMatrices, error) {
	r := rp[0]
	e := linalg.NewMatrix(1, 1)
	e.Set(0, 0, 1)
	fmat := linalg.NewMatrix(1, 1)
	fmat.Set(0, 0, -r)
	m := linalg.NewMatrix(1, 1)
	m.Set(0, 0, 1)
	n := linalg.NewMatrix(1, 1)
	n.Set(0, 0, -2*r)
	return wroot.NLMatrices{Emat: e, Fmat: fmat, Mmat: m, Nmat: n}, nil
}

// DiodeClipper builds an RC front-end (Rser, C) feeding an anti-parallel
// diode pair at the root via the Newton solver (spec.md §8 scenario 4).
func DiodeClipper(rserOhms, cFarads float64) *rtwdf.Tree {
	src := wnode.NewVoltageSource(rserOhms)
	cap := wnode.NewCapacitor(cFarads)
	series := wnode.NewSeries(src, cap)

	solver := nlsolve.New([]nlmodel.Model{nlmodel.AntiParallelDiodes{}}, []int{0}, 1)
	root := wroot.NewNL(1, solver, diodeClipperNL{})

	params := rtwdf.NewParamTable()
	params.Register(rtwdf.ParamDescriptor{Name: "c", ID: 0, Kind: rtwdf.ParamReal, Value: cFarads, Units: "farad"}, func(v float64) bool {
		cap.C = v
		return true
	})

	return rtwdf.NewTree(
		[]wnode.Node{series},
		root,
		func(v float64) { src.SetVoltage(v) },
		func() float64 { return cap.Voltage() },
		params,
	)
}
