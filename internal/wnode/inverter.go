package wnode

import "github.com/hollow-road/rtwdf-go/internal/wport"

// Inverter is a one-child adapter that passes resistance through unchanged
// and negates the wave in both directions (spec.md §3, §4.1).
type Inverter struct {
	up   wport.Port
	down [1]wport.Port
	kid  [1]Node
}

func NewInverter(child Node) *Inverter {
	return &Inverter{kid: [1]Node{child}}
}

func (n *Inverter) UpPort() *wport.Port      { return &n.up }
func (n *Inverter) DownPorts() []*wport.Port { return []*wport.Port{&n.down[0]} }
func (n *Inverter) Children() []Node         { return n.kid[:] }

func (n *Inverter) ComputeUpRes(fs float64) {
	n.up.SetRp(n.kid[0].UpPort().Rp)
}

func (n *Inverter) ComputeScatterCoeffs() {
	// Stateless: an inverter has no scattering coefficients to derive.
}

func (n *Inverter) PullWaveUp() float64 {
	a := n.kid[0].PullWaveUp()
	n.down[0].A = a
	b := -a
	n.up.B = b
	return b
}

func (n *Inverter) PushWaveDown(d float64) {
	n.up.A = d
	b := -d
	n.down[0].B = b
	n.kid[0].PushWaveDown(b)
}
