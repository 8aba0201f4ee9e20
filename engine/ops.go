package engine

import "math"

// Operations never fail: non-finite inputs and results follow IEEE semantics
// (division by zero yields Inf, not an error). Callers own numeric sanity.

func Add(a, b *Value) *Value {
	out := &Value{
		data:    a.data + b.data,
		op:      "+",
		parents: []*Value{a, b},
	}
	out.node = &node{
		backward: func() {
			a.grad += out.grad
			b.grad += out.grad
		},
	}
	return out
}

func Mul(a, b *Value) *Value {
	out := &Value{
		data:    a.data * b.data,
		op:      "*",
		parents: []*Value{a, b},
	}
	out.node = &node{
		backward: func() {
			a.grad += b.data * out.grad
			b.grad += a.data * out.grad
		},
	}
	return out
}

func Neg(a *Value) *Value {
	return MulScalar(a, -1)
}

func Sub(a, b *Value) *Value {
	return Add(a, Neg(b))
}

func Div(a, b *Value) *Value {
	return Mul(a, Pow(b, -1))
}

// Pow raises a to a constant real exponent. The exponent is not a graph node,
// so no gradient flows into it.
func Pow(a *Value, exponent float64) *Value {
	out := &Value{
		data:    math.Pow(a.data, exponent),
		op:      "^",
		parents: []*Value{a},
	}
	out.node = &node{
		backward: func() {
			a.grad += exponent * math.Pow(a.data, exponent-1) * out.grad
		},
	}
	return out
}

func Exp(a *Value) *Value {
	out := &Value{
		data:    math.Exp(a.data),
		op:      "exp",
		parents: []*Value{a},
	}
	out.node = &node{
		backward: func() {
			a.grad += out.data * out.grad
		},
	}
	return out
}

func Log(a *Value) *Value {
	out := &Value{
		data:    math.Log(a.data),
		op:      "log",
		parents: []*Value{a},
	}
	out.node = &node{
		backward: func() {
			a.grad += out.grad / a.data
		},
	}
	return out
}

// Sum folds Add over the given values, starting from a zero leaf so the
// result is a graph node even for the empty case.
func Sum(values ...*Value) *Value {
	acc := New(0)
	for _, v := range values {
		acc = Add(acc, v)
	}
	return acc
}
