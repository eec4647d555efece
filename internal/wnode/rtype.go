package wnode

import (
	"github.com/hollow-road/rtwdf-go/internal/linalg"
	"github.com/hollow-road/rtwdf-go/internal/wport"
)

// ScatterCallback is the capability trait an R-type adapter's author must
// supply; it is the one extension point in the otherwise-closed node-kind
// set (spec.md §9).
type ScatterCallback interface {
	// CalculateUpRes returns this adapter's up-port resistance given its
	// children's up-port resistances, computed at the given sample rate.
	CalculateUpRes(childRes []float64, fs float64) float64
	// CalculateScatterCoeffs returns the (n+1)x(n+1) scattering matrix S,
	// indexed [0]=up port, [1..n]=down ports, given the up-port
	// resistance and the children's (mirrored) down-port resistances.
	CalculateScatterCoeffs(upRes float64, childRes []float64) *linalg.Matrix
}

// RType is an n-child adapter whose scattering matrix is supplied by the
// circuit author's ScatterCallback (spec.md §3, §4.1).
type RType struct {
	up       wport.Port
	down     []wport.Port
	downPtrs []*wport.Port
	kids     []Node
	cb       ScatterCallback
	smat     *linalg.Matrix

	childRes []float64 // scratch, sized once, reused every adapt/sample
	ascend   []float64 // scratch for the up-sweep dot product
	descend  []float64 // scratch for the down-sweep matrix-vector product
}

// NewRType builds an R-type adapter over children in declaration order,
// driven by cb for its resistance and scattering-matrix computation.
func NewRType(children []Node, cb ScatterCallback) *RType {
	n := len(children)
	r := &RType{
		kids:     append([]Node(nil), children...),
		down:     make([]wport.Port, n),
		downPtrs: make([]*wport.Port, n),
		cb:       cb,
		childRes: make([]float64, n),
		ascend:   make([]float64, n),
		descend:  make([]float64, n+1),
	}
	for i := range r.down {
		r.downPtrs[i] = &r.down[i]
	}
	return r
}

func (n *RType) UpPort() *wport.Port      { return &n.up }
func (n *RType) DownPorts() []*wport.Port { return n.downPtrs }
func (n *RType) Children() []Node         { return n.kids }

func (n *RType) ComputeUpRes(fs float64) {
	for i, k := range n.kids {
		n.childRes[i] = k.UpPort().Rp
	}
	n.up.SetRp(n.cb.CalculateUpRes(n.childRes, fs))
}

func (n *RType) ComputeScatterCoeffs() {
	for i := range n.down {
		n.childRes[i] = n.down[i].Rp
	}
	n.smat = n.cb.CalculateScatterCoeffs(n.up.Rp, n.childRes)
}

func (n *RType) PullWaveUp() float64 {
	for i, k := range n.kids {
		a := k.PullWaveUp()
		n.down[i].A = a
		n.ascend[i] = a
	}
	var b float64
	for j, a := range n.ascend {
		b += n.smat.At(0, j+1) * a
	}
	n.up.B = b
	return b
}

func (n *RType) PushWaveDown(d float64) {
	n.up.A = d
	n.descend[0] = d
	for i := range n.down {
		n.descend[i+1] = n.down[i].A
	}
	size, _ := n.smat.Dims()
	for row := 0; row < size; row++ {
		var b float64
		for col := 0; col < size; col++ {
			b += n.smat.At(row, col) * n.descend[col]
		}
		if row == 0 {
			continue // row 0 reproduces the up-port wave, not needed here
		}
		n.down[row-1].B = b
		n.kids[row-1].PushWaveDown(b)
	}
}
