package wroot

import "fmt"

// Simple wraps a single unadapted element as the root of a one-subtree
// tree (spec.md §3 "Simple root", §4.3).
type Simple struct {
	elem UnadaptedElement
	fs   float64
}

// NewSimple builds a simple root over the given unadapted element. fs is
// supplied at SetPortResistances time via SetSampleRate, matching the
// tree façade's setSamplerate/adapt split (spec.md §4.5).
func NewSimple(elem UnadaptedElement) *Simple {
	return &Simple{elem: elem}
}

// SetSampleRate stores the sample rate used by reactive unadapted
// elements' Adapt call. Must be called (directly or via the tree façade)
// before SetPortResistances whenever fs changes.
func (r *Simple) SetSampleRate(fs float64) {
	r.fs = fs
}

func (r *Simple) SetPortResistances(rp []float64) error {
	if len(rp) != 1 {
		return fmt.Errorf("wroot: Simple root expects exactly 1 subtree, got %d", len(rp))
	}
	r.elem.Adapt(rp[0], r.fs)
	return nil
}

func (r *Simple) Scatter(ascending []float64) ([]float64, error) {
	if len(ascending) != 1 {
		return nil, fmt.Errorf("wroot: Simple root expects exactly 1 ascending wave, got %d", len(ascending))
	}
	return []float64{r.elem.Reflect(ascending[0])}, nil
}
