package engine

// Backward computes the gradient of v with respect to every node reachable
// through operand edges. It seeds v's gradient with 1 and sweeps the graph in
// reverse topological order, so each node's gradient is fully accumulated
// before its own rule propagates it further.
//
// Backward never resets gradients: calling it again without ZeroGradGraph (or
// an optimizer ZeroGrad over the leaves) adds a second pass's contributions
// on top of the first. Graphs are single-writer; concurrent Backward calls
// over shared nodes race on grad accumulation.
func (v *Value) Backward() {
	order := topo(v)
	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].node != nil {
			order[i].node.backward()
		}
	}
}

// ZeroGradGraph resets the gradient of every node reachable from root,
// visiting each exactly once. Idempotent.
func ZeroGradGraph(root *Value) {
	for _, v := range topo(root) {
		v.grad = 0
	}
}

// topo records a depth-first post-order over the operand graph. The visited
// set is keyed by pointer identity, so a node with many consumers still
// appears exactly once.
func topo(root *Value) []*Value {
	visited := map[*Value]bool{}
	var order []*Value
	var visit func(*Value)
	visit = func(v *Value) {
		if v == nil {
			return
		}
		if visited[v] {
			return
		}
		visited[v] = true
		for _, parent := range v.parents {
			visit(parent)
		}
		order = append(order, v)
	}
	visit(root)
	return order
}
