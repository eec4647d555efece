// Package linalg binds the dense real matrix/vector operations the wave
// digital filter engine needs onto gonum's mat package: multiply, solve,
// inverse, identity, element access. Sizes are only known at adaptation
// time, so matrices are allocated at run time by NewMatrix/Identity rather
// than fixed at compile time.
package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense real matrix sized at adaptation time.
type Matrix struct {
	d *mat.Dense
}

// NewMatrix allocates an r x c matrix, zeroed.
func NewMatrix(r, c int) *Matrix {
	if r <= 0 || c <= 0 {
		return &Matrix{}
	}
	return &Matrix{d: mat.NewDense(r, c, nil)}
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (int, int) {
	if m == nil || m.d == nil {
		return 0, 0
	}
	r, c := m.d.Dims()
	return r, c
}

// At returns the element at (i, j).
func (m *Matrix) At(i, j int) float64 {
	if m == nil || m.d == nil {
		return 0
	}
	return m.d.At(i, j)
}

// Set assigns the element at (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	if m == nil || m.d == nil {
		return
	}
	m.d.Set(i, j, v)
}

// Zero fills the matrix with zeros without reallocating.
func (m *Matrix) Zero() {
	if m == nil || m.d == nil {
		return
	}
	m.d.Zero()
}

// MulVec computes m * v and returns the resulting vector.
func (m *Matrix) MulVec(v []float64) []float64 {
	r, c := m.Dims()
	if r == 0 {
		return nil
	}
	if len(v) != c {
		panic(fmt.Sprintf("linalg: MulVec dimension mismatch: matrix is %dx%d, vector has %d elements", r, c, len(v)))
	}
	in := mat.NewVecDense(c, v)
	out := mat.NewVecDense(r, nil)
	out.MulVec(m.d, in)
	return vecData(out)
}

// Mul computes m * other and returns the product.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	r, _ := m.Dims()
	_, c := other.Dims()
	out := mat.NewDense(r, c, nil)
	out.Mul(m.d, other.d)
	return &Matrix{d: out}
}

// Solve solves m*x = b for x using an LU factorization, returning an error
// (rather than panicking) when m is singular or ill-conditioned. The
// Newton solver treats such an error as non-convergence for that sample.
func (m *Matrix) Solve(b []float64) ([]float64, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("linalg: Solve requires a square matrix, got %dx%d", r, c)
	}
	if len(b) != r {
		return nil, fmt.Errorf("linalg: Solve dimension mismatch: matrix is %dx%d, rhs has %d elements", r, c, len(b))
	}
	bv := mat.NewVecDense(r, b)
	xv := mat.NewVecDense(r, nil)
	if err := xv.SolveVec(m.d, bv); err != nil {
		return nil, fmt.Errorf("linalg: singular matrix: %w", err)
	}
	return vecData(xv), nil
}

// Inverse returns the matrix inverse, or an error if it is singular.
func (m *Matrix) Inverse() (*Matrix, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("linalg: Inverse requires a square matrix, got %dx%d", r, c)
	}
	out := mat.NewDense(r, c, nil)
	if err := out.Inverse(m.d); err != nil {
		return nil, fmt.Errorf("linalg: singular matrix: %w", err)
	}
	return &Matrix{d: out}, nil
}

func vecData(v *mat.VecDense) []float64 {
	n := v.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.AtVec(i)
	}
	return out
}
