// Package wnode implements the polymorphic wave digital filter tree nodes:
// adapters (series, parallel, R-type, inverter) and leaves (resistor,
// capacitor, inductor, resistive voltage/current source). It implements
// the up/down recursion described in spec.md §4.1.
//
// The node-kind set is fixed and performance matters per sample, so this
// package favors small concrete structs dispatched through one interface
// over a deep class hierarchy — the same shape the teacher repository used
// for its operator/voice structs (its internal/fm package, not part of
// this tree).
package wnode

import "github.com/hollow-road/rtwdf-go/internal/wport"

// Node is the common tree-node contract. The set of concrete
// implementations is fixed: Series, Parallel, RType, Inverter, Resistor,
// Capacitor, Inductor, VoltageSource, CurrentSource. RType is the sole
// extension point, configured with a caller-supplied ScatterCallback.
type Node interface {
	// UpPort is the port connecting this node to its parent (or the root).
	UpPort() *wport.Port
	// DownPorts mirrors the up ports of this node's children; empty for
	// leaves. The returned slice aliases fixed, pre-allocated storage —
	// callers must not retain it past the next adaptation.
	DownPorts() []*wport.Port
	// Children returns this node's children in declaration order. Empty
	// for leaves. Aliases fixed storage, like DownPorts.
	Children() []Node
	// ComputeUpRes computes this node's up-port resistance; called
	// bottom-up (children have already run) during adapt's post-order
	// pass, with fs the current sample rate.
	ComputeUpRes(fs float64)
	// ComputeScatterCoeffs computes this node's scattering coefficients
	// (or matrix, for RType); called top-down during adapt's pre-order
	// pass, after DownPorts' Rp mirrors the children's up-port Rp.
	ComputeScatterCoeffs()
	// PullWaveUp performs the up sweep: it recursively pulls waves from
	// children, applies this node's adapter rule, sets UpPort().B, and
	// returns it.
	PullWaveUp() float64
	// PushWaveDown performs the down sweep: it sets UpPort().A = d,
	// computes each down port's reflected wave, and recurses into
	// children. Leaves use it to update their one-sample memory.
	PushWaveDown(d float64)
}
