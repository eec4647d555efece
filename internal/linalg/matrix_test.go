package linalg

import (
	"math"
	"testing"
)

func TestIdentityMulVec(t *testing.T) {
	id := Identity(3)
	v := []float64{1, 2, 3}
	out := id.MulVec(v)
	for i := range v {
		if math.Abs(out[i]-v[i]) > 1e-12 {
			t.Errorf("identity*v[%d]: got %f, want %f", i, out[i], v[i])
		}
	}
}

func TestMul(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 1)
	a.Set(0, 1, 2)
	a.Set(1, 0, 3)
	a.Set(1, 1, 4)
	b := Identity(2)
	c := a.Mul(b)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(c.At(i, j)-a.At(i, j)) > 1e-12 {
				t.Errorf("a*I[%d][%d]: got %f, want %f", i, j, c.At(i, j), a.At(i, j))
			}
		}
	}
}

func TestSolve(t *testing.T) {
	// [[2,0],[0,4]] x = [4,8] => x = [2,2]
	m := NewMatrix(2, 2)
	m.Set(0, 0, 2)
	m.Set(1, 1, 4)
	x, err := m.Solve([]float64{4, 8})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	want := []float64{2, 2}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Errorf("x[%d]: got %f, want %f", i, x[i], want[i])
		}
	}
}

func TestSolveSingular(t *testing.T) {
	m := NewMatrix(2, 2) // all zeros: singular
	if _, err := m.Solve([]float64{1, 1}); err == nil {
		t.Error("expected singular matrix error, got nil")
	}
}

func TestInverse(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 0, 2)
	m.Set(1, 1, 4)
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	prod := m.Mul(inv)
	id := Identity(2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(prod.At(i, j)-id.At(i, j)) > 1e-9 {
				t.Errorf("m*inv(m)[%d][%d]: got %f, want %f", i, j, prod.At(i, j), id.At(i, j))
			}
		}
	}
}
