package nlmodel

import "math"

// Diode-equation constants shared by the single-diode and anti-parallel
// models (spec.md §4.4 table).
const (
	diodeIs = 2.52e-9
	diodeVT = 0.02585
)

// Diode is a single-junction diode: i = Is*(exp(v/VT)-1).
type Diode struct{}

func (Diode) NumPorts() int { return 1 }

func (Diode) Eval(x []float64) ([]float64, [][]float64) {
	v := x[0]
	e := math.Exp(v / diodeVT)
	f := []float64{diodeIs * (e - 1)}
	j := [][]float64{{(diodeIs / diodeVT) * e}}
	return f, j
}

// AntiParallelDiodes is a pair of diodes in anti-parallel orientation:
// i = Is*(exp(v/VT) - exp(-v/VT)).
type AntiParallelDiodes struct{}

func (AntiParallelDiodes) NumPorts() int { return 1 }

func (AntiParallelDiodes) Eval(x []float64) ([]float64, [][]float64) {
	v := x[0]
	ep := math.Exp(v / diodeVT)
	en := math.Exp(-v / diodeVT)
	f := []float64{diodeIs * (ep - en)}
	j := [][]float64{{(diodeIs / diodeVT) * (ep + en)}}
	return f, j
}
