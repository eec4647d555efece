// Package wport implements the wave digital filter "port": the two-terminal
// carrier of incident/reflected wave variables (a, b) over a reference
// resistance Rp. Every tree node owns one up port and zero or more down
// ports; ports are created with their node and live for the tree's lifetime.
package wport

// Port carries wave variables (a, b) over a reference resistance Rp.
//
// Invariants: Voltage() == (a+b)/2, Current() == (a-b)/(2*Rp). Rp must be
// strictly positive after adaptation (spec invariant P1); a port created
// before adaptation has Rp == 0 and must not be scattered through.
type Port struct {
	Rp float64 // port resistance, ohms
	Gp float64 // 1/Rp, cached alongside Rp by SetRp (0 when Rp is 0)
	A  float64 // incident wave
	B  float64 // reflected wave
}

// SetRp assigns the port resistance and refreshes the cached admittance.
// Adaptation passes Rp = 0 for degenerate elements (a capacitor with
// C <= 0 or fs <= 0, a parallel adapter whose children both have Rp = 0);
// Gp is then set to 0 as well.
func (p *Port) SetRp(rp float64) {
	p.Rp = rp
	if rp != 0 {
		p.Gp = 1 / rp
	} else {
		p.Gp = 0
	}
}

// Voltage returns the port voltage v = (a+b)/2.
func (p *Port) Voltage() float64 {
	return (p.A + p.B) / 2
}

// Current returns the port current i = (a-b)/(2*Rp).
func (p *Port) Current() float64 {
	if p.Rp == 0 {
		return 0
	}
	return (p.A - p.B) / (2 * p.Rp)
}
