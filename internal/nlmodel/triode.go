package nlmodel

import "math"

// DempwolfTriode is a 2-port triode model (Dempwolf et al.) with closed-form
// grid and plate current laws (spec.md §4.4). Port 0 is the grid-cathode
// voltage vGC, port 1 is the anode(plate)-cathode voltage vAC.
//
//	Ig = Gg * (softplus(Cg*vGC)/Cg)^Ex + Ig0
//	Ip = Gp * (softplus(C*(vAC/Mu + vGC))/C)^Y - Ig
//
// where softplus(x) = log(1+exp(x)), evaluated in its numerically stable
// form so large grid/plate swings never overflow.
type DempwolfTriode struct {
	Mu  float64 // amplification factor
	Ex  float64 // grid current exponent
	Cg  float64 // grid softplus sharpness
	Gg  float64 // grid current scale
	Ig0 float64 // grid leakage current
	C   float64 // plate softplus sharpness
	Y   float64 // plate current exponent
	Gp  float64 // plate current scale
}

// DefaultDempwolfTriode returns typical constants for a 12AX7-class triode,
// in the spirit (not claiming bit-exact fidelity) of the Dempwolf paper's
// published fit.
func DefaultDempwolfTriode() DempwolfTriode {
	return DempwolfTriode{
		Mu:  100.0,
		Ex:  1.4,
		Cg:  11.0,
		Gg:  2.242e-3,
		Ig0: 3.917e-8,
		C:   3.4,
		Y:   1.3,
		Gp:  6.2e-4,
	}
}

func (DempwolfTriode) NumPorts() int { return 2 }

func (m DempwolfTriode) Eval(x []float64) ([]float64, [][]float64) {
	vGC, vAC := x[0], x[1]

	u := m.Cg * vGC
	spG := softplus(u) / m.Cg
	sigU := sigmoid(u)

	w := m.C * (vAC/m.Mu + vGC)
	spP := softplus(w) / m.C
	sigW := sigmoid(w)

	spGpow := math.Pow(spG, m.Ex)
	ig := m.Gg*spGpow + m.Ig0

	spPpow := math.Pow(spP, m.Y)
	ip := m.Gp*spPpow - ig

	dIgDvgc := m.Gg * m.Ex * math.Pow(spG, m.Ex-1) * sigU
	dIpDvgc := m.Gp*m.Y*math.Pow(spP, m.Y-1)*sigW - dIgDvgc
	dIpDvac := m.Gp * m.Y * math.Pow(spP, m.Y-1) * sigW / m.Mu

	f := []float64{ig, ip}
	j := [][]float64{
		{dIgDvgc, 0},
		{dIpDvgc, dIpDvac},
	}
	return f, j
}

func softplus(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
