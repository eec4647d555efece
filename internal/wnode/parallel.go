package wnode

// Parallel is a two-child parallel adapter, dual to Series: it sums
// admittances rather than resistances (spec.md §3, §4.1).
type Parallel struct {
	twoPort
	du, dl, dr float64
}

func NewParallel(left, right Node) *Parallel {
	return &Parallel{twoPort: newTwoPort(left, right)}
}

func (p *Parallel) ComputeUpRes(fs float64) {
	rl := p.kids[0].UpPort().Rp
	rr := p.kids[1].UpPort().Rp
	gl := gOf(rl)
	gr := gOf(rr)
	gup := gl + gr
	if gup == 0 {
		p.up.SetRp(0)
		return
	}
	p.up.SetRp(1 / gup)
}

func (p *Parallel) ComputeScatterCoeffs() {
	gu := gOf(p.up.Rp)
	gl := gOf(p.down[0].Rp)
	gr := gOf(p.down[1].Rp)
	p.du = 1
	denom := gu + gl + gr
	if denom == 0 {
		p.dl, p.dr = 0, 0
		return
	}
	p.dl = 2 * gl / denom
	p.dr = 1 - p.dl
}

func (p *Parallel) PullWaveUp() float64 {
	al := p.kids[0].PullWaveUp()
	ar := p.kids[1].PullWaveUp()
	p.down[0].A = al
	p.down[1].A = ar
	b := p.dl*al + p.dr*ar
	p.up.B = b
	return b
}

func (p *Parallel) PushWaveDown(d float64) {
	p.up.A = d
	al := p.down[0].A
	ar := p.down[1].A
	bl := (p.dl-1)*al + p.dr*ar + p.du*d
	br := p.dl*al + (p.dr-1)*ar + p.du*d
	p.down[0].B = bl
	p.down[1].B = br
	p.kids[0].PushWaveDown(bl)
	p.kids[1].PushWaveDown(br)
}

func gOf(r float64) float64 {
	if r == 0 {
		return 0
	}
	return 1 / r
}
