// Package nlmodel implements the closed catalog of non-linear device
// models driving the tree's NL root (spec.md §4.4). Models are stateless:
// given a contiguous slice of the solver's x vector (port voltages) at the
// model's assigned offset, a model writes the port-current vector f and
// the diagonal block of the Jacobian J at that same offset. All iteration
// state lives in x, owned by the Newton solver (internal/nlsolve).
package nlmodel

// Model evaluates a non-linear device's port-current vector and Jacobian
// at a given voltage vector x (length NumPorts()).
type Model interface {
	// NumPorts returns the fixed port count: 1 or 2.
	NumPorts() int
	// Eval writes f (length NumPorts) and j (NumPorts x NumPorts) given
	// the port voltages x (length NumPorts).
	Eval(x []float64) (f []float64, j [][]float64)
}
