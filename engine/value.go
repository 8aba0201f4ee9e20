package engine

import "fmt"

// Value is a node in a dynamically built scalar computation graph. It holds
// the forward value, the gradient accumulated by Backward, references to the
// operand nodes that produced it, and the closure that propagates gradient
// into those operands. Two Values holding the same data are distinct graph
// vertices; identity is pointer identity.
type Value struct {
	data    float64
	grad    float64
	op      string
	parents []*Value
	node    *node
}

type node struct {
	backward func()
}

// New creates a leaf node: a graph input or trainable parameter with no
// operands and a zero gradient.
func New(data float64) *Value {
	return &Value{data: data}
}

func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value in place. Used by optimizers for
// parameter updates; it does not touch the graph structure.
func (v *Value) SetData(data float64) {
	v.data = data
}

func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets this node's gradient only. Use ZeroGradGraph to reset a
// whole expression, or the optimizer's ZeroGrad for a parameter set.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Adjust shifts the forward value by factor times the accumulated gradient.
// A gradient-descent step is Adjust(-learningRate).
func (v *Value) Adjust(factor float64) {
	v.data += factor * v.grad
}

// Op reports the tag of the operation that produced this node, or the empty
// string for a leaf. Diagnostics only; it plays no part in Backward.
func (v *Value) Op() string {
	return v.op
}

// Parents returns the operand nodes this value was computed from.
func (v *Value) Parents() []*Value {
	return append([]*Value(nil), v.parents...)
}

func (v *Value) String() string {
	if v.op == "" {
		return fmt.Sprintf("Value(data=%v, grad=%v)", v.data, v.grad)
	}
	return fmt.Sprintf("Value(data=%v, grad=%v, op=%q)", v.data, v.grad, v.op)
}
