// Package rtwdf implements a real-time wave digital filter engine: circuits
// built from wnode/wroot/nlmodel/nlsolve are driven sample by sample
// through a Tree façade that owns the root, the subtree entry nodes, the
// sample rate, and the parameter table (spec.md §2 L5, §4.5).
package rtwdf

import (
	"errors"
	"fmt"

	"github.com/hollow-road/rtwdf-go/internal/wnode"
	"github.com/hollow-road/rtwdf-go/internal/wroot"
)

// InputSetter stores a new input sample into the circuit author's
// designated input leaf (typically a resistive voltage source).
type InputSetter func(v float64)

// OutputGetter reads the circuit author's designated probe port voltage.
type OutputGetter func() float64

// Tree owns a wave digital filter circuit: the root, its subtree entry
// nodes (in declaration order), the sample rate, and the parameter table
// (spec.md §3 "Lifecycle", §4.5 "Tree façade").
type Tree struct {
	root    wroot.Root
	entries []wnode.Node
	fs      float64
	params  *ParamTable

	setInput  InputSetter
	getOutput OutputGetter

	initialized bool
	adapted     bool

	ascend  []float64 // scratch for the per-cycle ascending wave vector
	descend []float64
}

// NewTree builds a tree façade over a circuit author's pre-built node
// graph. entries are the subtrees hanging directly off root, in the
// strict left-to-right declaration order that participates in the root's
// matrix indexing (spec.md §4.1 "Ordering").
func NewTree(entries []wnode.Node, root wroot.Root, setInput InputSetter, getOutput OutputGetter, params *ParamTable) *Tree {
	return &Tree{
		entries:   append([]wnode.Node(nil), entries...),
		root:      root,
		setInput:  setInput,
		getOutput: getOutput,
		params:    params,
		ascend:    make([]float64, len(entries)),
		descend:   make([]float64, len(entries)),
	}
}

// Init wires the tree for use. The node graph and its down-ports are
// already materialized at construction time (spec.md §9's arena/weak-
// reference back-reference concern doesn't apply to this Go layout, since
// nodes never need to address their parent); Init exists to give hosts an
// explicit point to call before the first Adapt, matching the runtime
// contract's init() → setSamplerate() → adapt() sequence (spec.md §6).
func (t *Tree) Init() {
	t.initialized = true
}

// SetSampleRate stores fs. It does not re-adapt automatically (spec.md
// §4.5): callers must invoke Adapt afterward.
func (t *Tree) SetSampleRate(fs float64) error {
	if fs <= 0 {
		return fmt.Errorf("rtwdf: sample rate must be positive, got %g", fs)
	}
	t.fs = fs
	return nil
}

// Adapt performs the bottom-up resistance pass, the top-down scattering-
// coefficient pass, and hands the settled subtree port resistances to the
// root (spec.md §4.2). On a matrix-callback error, prior root state is
// retained and adapted stays false if this is the first call.
func (t *Tree) Adapt() error {
	if !t.initialized {
		return errors.New("rtwdf: Adapt called before Init")
	}
	if t.fs <= 0 {
		return errors.New("rtwdf: Adapt called before SetSampleRate")
	}
	rp := make([]float64, len(t.entries))
	for i, e := range t.entries {
		wnode.Adapt(e, t.fs)
		rp[i] = e.UpPort().Rp
	}
	t.root.SetSampleRate(t.fs)
	if err := t.root.SetPortResistances(rp); err != nil {
		return fmt.Errorf("rtwdf: adapt: %w", err)
	}
	t.adapted = true
	return nil
}

// SetInput stores v in the circuit's designated input leaf.
func (t *Tree) SetInput(v float64) {
	t.setInput(v)
}

// Cycle performs one sample: up-sweep over every subtree entry, the root
// step, then the down-sweep (spec.md §4.1). The tree's own ascending and
// descending vectors are sized once at construction; the root's Scatter
// returns a newly allocated descending slice each call.
func (t *Tree) Cycle() error {
	if !t.adapted {
		return errors.New("rtwdf: Cycle called before a successful Adapt")
	}
	for i, e := range t.entries {
		t.ascend[i] = e.PullWaveUp()
	}
	descending, err := t.root.Scatter(t.ascend)
	if err != nil {
		return fmt.Errorf("rtwdf: cycle: %w", err)
	}
	copy(t.descend, descending)
	for i, e := range t.entries {
		e.PushWaveDown(t.descend[i])
	}
	return nil
}

// GetOutput returns the circuit author's designated probe port voltage.
func (t *Tree) GetOutput() float64 {
	return t.getOutput()
}

// SetParam mutates a parameter by id; if the change affects port
// resistances, it re-adapts the tree (spec.md §4.5 "setParam").
func (t *Tree) SetParam(id int, value float64) error {
	needsAdapt, err := t.params.Set(id, value)
	if err != nil {
		return err
	}
	if needsAdapt {
		return t.Adapt()
	}
	return nil
}

// Params exposes the parameter table (spec.md §4.5 "getParams").
func (t *Tree) Params() []ParamDescriptor {
	return t.params.Params()
}
