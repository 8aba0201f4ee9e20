package engine

// Constant conveniences. Each wraps the float in a fresh leaf so the graph
// stays uniform: the constant participates in traversal like any other node.

func AddScalar(a *Value, value float64) *Value {
	return Add(a, New(value))
}

func SubScalar(a *Value, value float64) *Value {
	return Add(a, New(-value))
}

func MulScalar(a *Value, value float64) *Value {
	return Mul(a, New(value))
}
