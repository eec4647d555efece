package wroot

import (
	"fmt"

	"github.com/hollow-road/rtwdf-go/internal/linalg"
	"github.com/hollow-road/rtwdf-go/internal/nlsolve"
)

// NLMatrices groups the matrix set a circuit author's callback produces
// from the settled subtree port resistances (spec.md §3 "NL root", §4.2).
type NLMatrices struct {
	Emat *linalg.Matrix // nNL x nSub
	Fmat *linalg.Matrix // nNL x nNL
	Mmat *linalg.Matrix // nSub x nSub
	Nmat *linalg.Matrix // nSub x nNL
}

// NLCallback builds the NL root's matrix set from the settled subtree
// port resistances; supplied by the circuit author.
type NLCallback interface {
	BuildMatrices(rp []float64) (NLMatrices, error)
}

// NL is an implicit-scattering root: at each sample it solves
//
//	F(x) = E*a + Fmat*f(x) - x = 0
//
// via nlsolve.Solver, then recombines descending = M*a + N*f(x)
// (spec.md §4.3 "NL root").
type NL struct {
	cb     NLCallback
	solver *nlsolve.Solver
	n      int // number of subtrees

	mats NLMatrices
}

// NewNL builds an NL root over n subtrees, using solver (which holds the
// device model catalog and its offsets into the shared x vector), driven
// by cb for matrix population.
func NewNL(n int, solver *nlsolve.Solver, cb NLCallback) *NL {
	return &NL{cb: cb, solver: solver, n: n}
}

// SetSampleRate is a no-op: the NL root's matrices depend on subtree port
// resistances, not fs directly (fs already shaped those resistances).
func (r *NL) SetSampleRate(fs float64) {}

func (r *NL) SetPortResistances(rp []float64) error {
	if len(rp) != r.n {
		return fmt.Errorf("wroot: NL root expects %d subtrees, got %d", r.n, len(rp))
	}
	mats, err := r.cb.BuildMatrices(rp)
	if err != nil {
		return fmt.Errorf("wroot: NL matrix callback: %w", err)
	}
	r.mats = mats
	r.solver.Reset()
	return nil
}

func (r *NL) Scatter(ascending []float64) ([]float64, error) {
	if len(ascending) != r.n {
		return nil, fmt.Errorf("wroot: NL root expects %d ascending waves, got %d", r.n, len(ascending))
	}
	_, f, _, _ := r.solver.Solve(r.mats.Emat, r.mats.Fmat, ascending)
	ma := r.mats.Mmat.MulVec(ascending)
	nf := r.mats.Nmat.MulVec(f)
	descending := make([]float64, len(ma))
	for i := range descending {
		descending[i] = ma[i] + nf[i]
	}
	return descending, nil
}

// LastConverged reports whether the most recent Scatter's Newton solve met
// tolerance within the iteration cap (spec.md §5 "last converged?" flag).
func (r *NL) LastConverged() bool { return r.solver.LastConverged() }

// LastIterations returns the Newton iteration count used by the most
// recent Scatter call.
func (r *NL) LastIterations() int { return r.solver.LastIterations() }
