package wnode

import "github.com/hollow-road/rtwdf-go/internal/wport"

// twoPort is the shared storage for the two 2-child adapters (Series,
// Parallel). Down-port and children storage is allocated once so the
// per-sample up/down sweep never allocates.
type twoPort struct {
	up       wport.Port
	down     [2]wport.Port
	downPtrs [2]*wport.Port
	kids     [2]Node
}

func newTwoPort(left, right Node) twoPort {
	return twoPort{kids: [2]Node{left, right}}
}

func (n *twoPort) UpPort() *wport.Port { return &n.up }

// DownPorts points downPtrs at this value's own down ports on every call,
// since a twoPort is copied into its Series/Parallel after construction.
func (n *twoPort) DownPorts() []*wport.Port {
	n.downPtrs[0], n.downPtrs[1] = &n.down[0], &n.down[1]
	return n.downPtrs[:]
}

func (n *twoPort) Children() []Node { return n.kids[:] }
