package wnode

// Series is a two-child series adapter. Its up-port resistance is the sum
// of its children's up resistances; its down-port reflection coefficients
// make the up port reflection-free (spec.md §3, §4.1).
type Series struct {
	twoPort
	yu, yl, yr float64
}

// NewSeries builds a series adapter over left and right in declaration
// order; ordering participates in scattering-matrix indexing elsewhere in
// the tree and must not be reordered after construction.
func NewSeries(left, right Node) *Series {
	return &Series{twoPort: newTwoPort(left, right)}
}

func (s *Series) ComputeUpRes(fs float64) {
	rl := s.kids[0].UpPort().Rp
	rr := s.kids[1].UpPort().Rp
	s.up.SetRp(rl + rr)
}

func (s *Series) ComputeScatterCoeffs() {
	ru := s.up.Rp
	rl := s.down[0].Rp
	rr := s.down[1].Rp
	s.yu = 1
	denom := ru + rl + rr
	if denom == 0 {
		s.yl, s.yr = 0, 0
		return
	}
	s.yl = 2 * rl / denom
	s.yr = 1 - s.yl
}

func (s *Series) PullWaveUp() float64 {
	al := s.kids[0].PullWaveUp()
	ar := s.kids[1].PullWaveUp()
	s.down[0].A = al
	s.down[1].A = ar
	b := -(al + ar)
	s.up.B = b
	return b
}

func (s *Series) PushWaveDown(d float64) {
	s.up.A = d
	al := s.down[0].A
	ar := s.down[1].A
	var bl, br float64
	if s.yl != 0 {
		bl = s.yl * (al*(1/s.yl-1) - ar - d)
	} else {
		bl = s.yl * (-ar - d)
	}
	if s.yr != 0 {
		br = s.yr * (ar*(1/s.yr-1) - al - d)
	} else {
		br = s.yr * (-al - d)
	}
	s.down[0].B = bl
	s.down[1].B = br
	s.kids[0].PushWaveDown(bl)
	s.kids[1].PushWaveDown(br)
}
