package wnode

import "github.com/hollow-road/rtwdf-go/internal/wport"

// leaf is the shared storage for one-port terminated elements: they own a
// single up port and no children.
type leaf struct {
	up wport.Port
}

func (l *leaf) UpPort() *wport.Port      { return &l.up }
func (l *leaf) DownPorts() []*wport.Port { return nil }
func (l *leaf) Children() []Node         { return nil }
func (l *leaf) ComputeScatterCoeffs()    {} // leaves have no scattering coefficients

// Resistor is a terminated resistor leaf: Rup=R, up-wave b=0 (spec.md §3).
type Resistor struct {
	leaf
	R float64
}

func NewResistor(r float64) *Resistor { return &Resistor{R: r} }

func (r *Resistor) ComputeUpRes(fs float64) { r.up.SetRp(r.R) }
func (r *Resistor) PullWaveUp() float64 {
	r.up.B = 0
	return 0
}
func (r *Resistor) PushWaveDown(d float64) { r.up.A = d }

// SetResistance updates R; the caller must re-adapt for the new value to
// take effect (spec.md §4.5, §7 configuration-error taxonomy).
func (r *Resistor) SetResistance(ohms float64) { r.R = ohms }

// Capacitor is a reactive leaf with one sample of memory: Rup=1/(2*fs*C),
// up-wave=prevA, and on a down-wave d, prevA<-d (spec.md §3).
type Capacitor struct {
	leaf
	C     float64
	prevA float64
}

func NewCapacitor(farads float64) *Capacitor { return &Capacitor{C: farads} }

func (c *Capacitor) ComputeUpRes(fs float64) {
	if fs <= 0 || c.C <= 0 {
		c.up.SetRp(0)
		return
	}
	c.up.SetRp(1 / (2 * fs * c.C))
}
func (c *Capacitor) PullWaveUp() float64 {
	c.up.B = c.prevA
	return c.prevA
}
func (c *Capacitor) PushWaveDown(d float64) {
	c.up.A = d
	c.prevA = d
}

// Voltage returns the capacitor's instantaneous port voltage.
func (c *Capacitor) Voltage() float64 { return c.up.Voltage() }

// Inductor is a reactive leaf with one sample of memory: Rup=2*fs*L,
// up-wave=prevA, and on a down-wave d, prevA<-(-d) (spec.md §3).
type Inductor struct {
	leaf
	L     float64
	prevA float64
}

func NewInductor(henries float64) *Inductor { return &Inductor{L: henries} }

func (i *Inductor) ComputeUpRes(fs float64) {
	i.up.SetRp(2 * fs * i.L)
}
func (i *Inductor) PullWaveUp() float64 {
	i.up.B = i.prevA
	return i.prevA
}
func (i *Inductor) PushWaveDown(d float64) {
	i.up.A = d
	i.prevA = -d
}

// VoltageSource is a resistive voltage-source leaf: Rup=Rser, up-wave=Vs,
// down-wave ignored (spec.md §3). It is typically the tree's designated
// input leaf (Tree.SetInput writes Vs).
type VoltageSource struct {
	leaf
	Vs   float64
	Rser float64
}

func NewVoltageSource(rser float64) *VoltageSource { return &VoltageSource{Rser: rser} }

func (v *VoltageSource) ComputeUpRes(fs float64) { v.up.SetRp(v.Rser) }
func (v *VoltageSource) PullWaveUp() float64 {
	v.up.B = v.Vs
	return v.Vs
}
func (v *VoltageSource) PushWaveDown(d float64) { v.up.A = d }

// SetVoltage sets the source's instantaneous value; called once per
// sample by Tree.SetInput for the designated input leaf.
func (v *VoltageSource) SetVoltage(value float64) { v.Vs = value }

// CurrentSource is a resistive current-source leaf: Rup=Rpar,
// up-wave=Rpar*Is, down-wave ignored (spec.md §3).
type CurrentSource struct {
	leaf
	Is   float64
	Rpar float64
}

func NewCurrentSource(rpar float64) *CurrentSource { return &CurrentSource{Rpar: rpar} }

func (c *CurrentSource) ComputeUpRes(fs float64) { c.up.SetRp(c.Rpar) }
func (c *CurrentSource) PullWaveUp() float64 {
	b := c.Rpar * c.Is
	c.up.B = b
	return b
}
func (c *CurrentSource) PushWaveDown(d float64) { c.up.A = d }

// SetCurrent sets the source's instantaneous value.
func (c *CurrentSource) SetCurrent(value float64) { c.Is = value }
