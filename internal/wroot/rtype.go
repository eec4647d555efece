package wroot

import (
	"fmt"

	"github.com/hollow-road/rtwdf-go/internal/linalg"
)

// RTypeCallback builds the root's linear scattering matrix from the
// settled subtree port resistances; supplied by the circuit author
// (spec.md §3 "R-type root", §4.2 matrix-population callback).
type RTypeCallback interface {
	BuildScatterMatrix(rp []float64) (*linalg.Matrix, error)
}

// RType is a linear root: descending = Smat * ascending (spec.md §4.3).
type RType struct {
	cb   RTypeCallback
	smat *linalg.Matrix
	n    int
}

// NewRType builds an R-type root over n subtrees, driven by cb.
func NewRType(n int, cb RTypeCallback) *RType {
	return &RType{cb: cb, n: n}
}

// SetSampleRate is a no-op: a linear R-type root has no fs-dependent state
// of its own (any reactive leaves live in the subtrees, not the root).
func (r *RType) SetSampleRate(fs float64) {}

func (r *RType) SetPortResistances(rp []float64) error {
	if len(rp) != r.n {
		return fmt.Errorf("wroot: RType root expects %d subtrees, got %d", r.n, len(rp))
	}
	smat, err := r.cb.BuildScatterMatrix(rp)
	if err != nil {
		return fmt.Errorf("wroot: RType matrix callback: %w", err)
	}
	r.smat = smat
	return nil
}

func (r *RType) Scatter(ascending []float64) ([]float64, error) {
	if len(ascending) != r.n {
		return nil, fmt.Errorf("wroot: RType root expects %d ascending waves, got %d", r.n, len(ascending))
	}
	return r.smat.MulVec(ascending), nil
}
