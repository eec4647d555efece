package wnode

// Adapt runs the two-pass adaptation walk over a subtree (spec.md §4.2):
// post-order ComputeUpRes (with each child's settled Rp mirrored onto the
// matching parent down-port, invariant I2), then pre-order
// ComputeScatterCoeffs. fs is the sample rate reactive leaves need for
// their Rup formulas.
func Adapt(root Node, fs float64) {
	var postOrder func(Node)
	postOrder = func(n Node) {
		for _, c := range n.Children() {
			postOrder(c)
		}
		n.ComputeUpRes(fs)
		down := n.DownPorts()
		for i, c := range n.Children() {
			down[i].SetRp(c.UpPort().Rp)
		}
	}
	postOrder(root)

	var preOrder func(Node)
	preOrder = func(n Node) {
		n.ComputeScatterCoeffs()
		for _, c := range n.Children() {
			preOrder(c)
		}
	}
	preOrder(root)
}
