package engine

import "math"

func Relu(a *Value) *Value {
	data := 0.0
	if a.data > 0 {
		data = a.data
	}
	out := &Value{
		data:    data,
		op:      "relu",
		parents: []*Value{a},
	}
	out.node = &node{
		backward: func() {
			if out.data > 0 {
				a.grad += out.grad
			}
		},
	}
	return out
}

func Sigmoid(a *Value) *Value {
	out := &Value{
		data:    1 / (1 + math.Exp(-a.data)),
		op:      "sigmoid",
		parents: []*Value{a},
	}
	out.node = &node{
		backward: func() {
			a.grad += out.data * (1 - out.data) * out.grad
		},
	}
	return out
}

func Tanh(a *Value) *Value {
	out := &Value{
		data:    math.Tanh(a.data),
		op:      "tanh",
		parents: []*Value{a},
	}
	out.node = &node{
		backward: func() {
			a.grad += (1 - out.data*out.data) * out.grad
		},
	}
	return out
}
