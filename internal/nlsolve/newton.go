// Package nlsolve implements the undamped Newton-Raphson solver driving
// the NL root's implicit scattering equation (spec.md §4.3):
//
//	F(x) = E*a + Fmat*f(x) - x = 0
//	J(x) = Fmat*Jf(x) - I
//	x <- x + p,  p = -J(x)^-1 * F(x)   (alpha = 1, undamped)
//
// Termination is ||F||2 < Tol or ItMax iterations; on the bound being hit
// the solver returns its best x and reports non-convergence rather than
// treating it as fatal (spec.md §5, §7).
package nlsolve

import (
	"math"

	"github.com/hollow-road/rtwdf-go/internal/linalg"
	"github.com/hollow-road/rtwdf-go/internal/nlmodel"
)

const (
	// DefaultTol is the L2 residual norm below which Newton iteration stops.
	DefaultTol = 1e-6
	// DefaultItMax bounds Newton iteration (spec.md §4.3, §5).
	DefaultItMax = 50
)

// Solver drives the device-model catalog against the implicit scattering
// equation. It is stateful only in its warm-start memory: each model
// itself stays stateless (spec.md §4.4).
type Solver struct {
	models  []nlmodel.Model
	offsets []int
	n       int
	tol     float64
	itMax   int

	hasPrev       bool
	xPrev         []float64
	lastIters     int
	lastConverged bool

	// scratch, sized once to n and reused every Solve call.
	x      []float64
	fdev   []float64
	residF []float64
	step   []float64
}

// New builds a solver for models placed at the given offsets into the
// shared x vector (offsets[i] is where models[i]'s ports begin). n is the
// total NL dimension (sum of all models' NumPorts()).
func New(models []nlmodel.Model, offsets []int, n int) *Solver {
	return &Solver{
		models:  models,
		offsets: offsets,
		n:       n,
		tol:     DefaultTol,
		itMax:   DefaultItMax,
		x:       make([]float64, n),
		fdev:    make([]float64, n),
		residF:  make([]float64, n),
		step:    make([]float64, n),
	}
}

// SetTolerance overrides the default residual tolerance and iteration cap.
func (s *Solver) SetTolerance(tol float64, itMax int) {
	s.tol = tol
	s.itMax = itMax
}

// LastIterations returns the Newton iteration count used by the most
// recent Solve call.
func (s *Solver) LastIterations() int { return s.lastIters }

// LastConverged reports whether the most recent Solve call met tolerance
// before the iteration cap (the "last converged?" flag spec.md §5
// recommends exposing to hosts).
func (s *Solver) LastConverged() bool { return s.lastConverged }

// Reset clears the warm-start memory, forcing the next Solve to start
// from the zero vector (spec.md §4.3 "Initial guess on the first call").
func (s *Solver) Reset() {
	s.hasPrev = false
}

// Solve finds x satisfying E*a + Fmat*f(x) - x = 0 and returns it together
// with f(x) (needed by the NL root's descending-wave recombination), the
// iteration count, and whether it converged within tolerance.
func (s *Solver) Solve(e, fmat *linalg.Matrix, a []float64) (x []float64, f []float64, iters int, converged bool) {
	ea := e.MulVec(a)
	if s.hasPrev {
		// Warm start: x0 = Fmat*f(x_prev) + E*a (affine extrapolation).
		fPrev := s.evalDevices(s.xPrev)
		ffPrev := fmat.MulVec(fPrev)
		for i := range s.x {
			s.x[i] = ffPrev[i] + ea[i]
		}
	} else {
		for i := range s.x {
			s.x[i] = 0
		}
	}
	converged = false
	iters = 0
	for ; iters < s.itMax; iters++ {
		f, jf := s.evalDevicesWithJacobian(s.x)
		ffx := fmat.MulVec(f)
		for i := range s.residF {
			s.residF[i] = ea[i] + ffx[i] - s.x[i]
		}
		if norm2(s.residF) < s.tol {
			converged = true
			break
		}

		jx := buildJacobian(fmat, jf, s.n)
		negF := make([]float64, s.n)
		for i := range negF {
			negF[i] = -s.residF[i]
		}
		p, err := jx.Solve(negF)
		if err != nil {
			// Singular Newton Jacobian: hold x, report non-convergence
			// rather than propagating a fatal error mid-cycle (spec.md §7.3).
			break
		}
		for i := range s.x {
			s.x[i] += p[i] // alpha = 1, undamped (spec.md §9 open question)
		}
	}

	if !s.hasPrev {
		s.xPrev = make([]float64, s.n)
	}
	copy(s.xPrev, s.x)
	s.hasPrev = true
	s.lastIters = iters
	s.lastConverged = converged

	finalF := s.evalDevices(s.x)
	x = make([]float64, s.n)
	f = make([]float64, s.n)
	copy(x, s.x)
	copy(f, finalF)
	return x, f, iters, converged
}

func (s *Solver) evalDevices(x []float64) []float64 {
	f, _ := s.evalDevicesWithJacobian(x)
	return f
}

// evalDevicesWithJacobian assembles the full device current vector f(x)
// and the block-diagonal per-device Jacobian blocks (offset, block).
func (s *Solver) evalDevicesWithJacobian(x []float64) ([]float64, []jacBlock) {
	f := make([]float64, s.n)
	blocks := make([]jacBlock, len(s.models))
	for i, m := range s.models {
		off := s.offsets[i]
		np := m.NumPorts()
		sub := x[off : off+np]
		mf, mj := m.Eval(sub)
		copy(f[off:off+np], mf)
		blocks[i] = jacBlock{offset: off, size: np, j: mj}
	}
	return f, blocks
}

type jacBlock struct {
	offset int
	size   int
	j      [][]float64
}

// buildJacobian assembles J(x) = Fmat*Jf(x) - I from the block-diagonal
// device Jacobian and the Fmat coupling matrix.
func buildJacobian(fmat *linalg.Matrix, blocks []jacBlock, n int) *linalg.Matrix {
	jf := linalg.NewMatrix(n, n)
	for _, b := range blocks {
		for r := 0; r < b.size; r++ {
			for c := 0; c < b.size; c++ {
				jf.Set(b.offset+r, b.offset+c, b.j[r][c])
			}
		}
	}
	fj := fmat.Mul(jf)
	for i := 0; i < n; i++ {
		fj.Set(i, i, fj.At(i, i)-1)
	}
	return fj
}

func norm2(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
