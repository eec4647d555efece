package nlmodel

import (
	"math"
	"testing"
)

// numJacobian computes a central-difference Jacobian for comparison against
// each model's closed-form one.
func numJacobian(m Model, x []float64) [][]float64 {
	n := m.NumPorts()
	const h = 1e-6
	j := make([][]float64, n)
	for i := range j {
		j[i] = make([]float64, n)
	}
	for col := 0; col < n; col++ {
		xp := append([]float64(nil), x...)
		xm := append([]float64(nil), x...)
		xp[col] += h
		xm[col] -= h
		fp, _ := m.Eval(xp)
		fm, _ := m.Eval(xm)
		for row := 0; row < n; row++ {
			j[row][col] = (fp[row] - fm[row]) / (2 * h)
		}
	}
	return j
}

func checkJacobian(t *testing.T, m Model, x []float64) {
	t.Helper()
	_, j := m.Eval(x)
	numJ := numJacobian(m, x)
	for r := range j {
		for c := range j[r] {
			if math.Abs(j[r][c]-numJ[r][c]) > 1e-4*(1+math.Abs(numJ[r][c])) {
				t.Errorf("J[%d][%d] at x=%v: analytic %g, numeric %g", r, c, x, j[r][c], numJ[r][c])
			}
		}
	}
}

func TestDiodeJacobian(t *testing.T) {
	checkJacobian(t, Diode{}, []float64{0.3})
	checkJacobian(t, Diode{}, []float64{0.6})
}

func TestDiodeMonotonic(t *testing.T) {
	d := Diode{}
	f1, _ := d.Eval([]float64{0.1})
	f2, _ := d.Eval([]float64{0.5})
	if f2[0] <= f1[0] {
		t.Errorf("diode current should increase with voltage: got %f then %f", f1[0], f2[0])
	}
}

func TestAntiParallelDiodesSymmetric(t *testing.T) {
	d := AntiParallelDiodes{}
	checkJacobian(t, d, []float64{0.2})
	fp, _ := d.Eval([]float64{0.3})
	fn, _ := d.Eval([]float64{-0.3})
	if math.Abs(fp[0]+fn[0]) > 1e-12 {
		t.Errorf("anti-parallel pair should be odd-symmetric: f(0.3)=%f f(-0.3)=%f", fp[0], fn[0])
	}
}

func TestNPNEbersMollJacobian(t *testing.T) {
	checkJacobian(t, NPNEbersMoll{}, []float64{0.1, 0.6})
	checkJacobian(t, NPNEbersMoll{}, []float64{-0.2, 0.5})
}

func TestDempwolfTriodeJacobian(t *testing.T) {
	m := DefaultDempwolfTriode()
	checkJacobian(t, m, []float64{-1.0, 50.0})
	checkJacobian(t, m, []float64{0.0, 100.0})
}
