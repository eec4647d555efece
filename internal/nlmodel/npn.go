package nlmodel

import "math"

// Ebers-Moll constants (spec.md §4.4 table).
const (
	npnIs = 5.911e-15
	npnBF = 1434.0
	npnBR = 1.262
)

// NPNEbersMoll is a 2-port NPN bipolar junction transistor model. Port 0
// is vBC, port 1 is vBE — per the Open Question in spec.md §9, the
// down-port assignment matching this ordering is topology-dependent and
// must be confirmed against the circuit author's scattering matrix.
type NPNEbersMoll struct{}

func (NPNEbersMoll) NumPorts() int { return 2 }

func (NPNEbersMoll) Eval(x []float64) ([]float64, [][]float64) {
	vBC, vBE := x[0], x[1]
	aF := npnBF / (1 + npnBF)
	aR := npnBR / (1 + npnBR)

	eBE := math.Exp(vBE / diodeVT)
	eBC := math.Exp(vBC / diodeVT)

	iBC := -npnIs*(eBE-1) + (npnIs/aR)*(eBC-1)
	iBE := (npnIs/aF)*(eBE-1) - npnIs*(eBC-1)

	invVT := 1 / diodeVT
	j := [][]float64{
		{(npnIs / aR) * invVT * eBC, -npnIs * invVT * eBE},
		{-npnIs * invVT * eBC, (npnIs / aF) * invVT * eBE},
	}
	return []float64{iBC, iBE}, j
}
