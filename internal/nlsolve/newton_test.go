package nlsolve

import (
	"math"
	"testing"

	"github.com/hollow-road/rtwdf-go/internal/linalg"
	"github.com/hollow-road/rtwdf-go/internal/nlmodel"
)

// TestSolveSingleDiodeConverges builds the classic one-NL-port WDF root
// equation for a single diode terminating a resistive source (Rp fixed),
// and checks the solver converges and satisfies the implicit equation.
func TestSolveSingleDiodeConverges(t *testing.T) {
	models := []nlmodel.Model{nlmodel.Diode{}}
	s := New(models, []int{0}, 1)

	// For a 1-port NL root directly facing one subtree: E=[1], Fmat=[-Rp].
	rp := 1000.0
	e := linalg.NewMatrix(1, 1)
	e.Set(0, 0, 1)
	fmat := linalg.NewMatrix(1, 1)
	fmat.Set(0, 0, -rp)

	a := []float64{2.0}
	x, f, iters, converged := s.Solve(e, fmat, a)
	if !converged {
		t.Fatalf("expected convergence within %d iterations, used %d", DefaultItMax, iters)
	}
	if iters > 20 {
		t.Errorf("expected fast convergence for a well-scaled diode root, took %d iterations", iters)
	}

	residual := a[0] - rp*f[0] - x[0]
	if math.Abs(residual) > 1e-6 {
		t.Errorf("residual too large: %g (x=%v, f=%v)", residual, x, f)
	}
}

func TestSolveWarmStartConvergesFaster(t *testing.T) {
	models := []nlmodel.Model{nlmodel.Diode{}}
	s := New(models, []int{0}, 1)
	rp := 1000.0
	e := linalg.NewMatrix(1, 1)
	e.Set(0, 0, 1)
	fmat := linalg.NewMatrix(1, 1)
	fmat.Set(0, 0, -rp)

	_, _, coldIters, converged := s.Solve(e, fmat, []float64{2.0})
	if !converged {
		t.Fatal("first solve did not converge")
	}
	_, _, warmIters, converged := s.Solve(e, fmat, []float64{2.01})
	if !converged {
		t.Fatal("second solve did not converge")
	}
	if warmIters > coldIters {
		t.Errorf("warm start should not need more iterations than cold start: cold=%d warm=%d", coldIters, warmIters)
	}
}

func TestSolveReportsNonConvergenceFlag(t *testing.T) {
	models := []nlmodel.Model{nlmodel.Diode{}}
	s := New(models, []int{0}, 1)
	s.SetTolerance(1e-6, 1) // one iteration is not enough from a cold start on a stiff step
	e := linalg.NewMatrix(1, 1)
	e.Set(0, 0, 1)
	fmat := linalg.NewMatrix(1, 1)
	fmat.Set(0, 0, -1000.0)

	_, _, _, converged := s.Solve(e, fmat, []float64{5.0})
	if converged != s.LastConverged() {
		t.Errorf("LastConverged() disagrees with Solve's own return: %v vs %v", s.LastConverged(), converged)
	}
}
