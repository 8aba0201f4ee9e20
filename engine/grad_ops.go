package engine

import "math"

// Gradient post-processing hooks used by the optimizer package.

func (v *Value) GradPow(norm float64) float64 {
	if v == nil {
		return 0
	}
	return math.Pow(math.Abs(v.grad), norm)
}

func (v *Value) ScaleGrad(factor float64) {
	if v == nil {
		return
	}
	v.grad *= factor
}

func (v *Value) ClipGradValue(limit float64) {
	if v == nil || limit <= 0 {
		return
	}
	if v.grad > limit {
		v.grad = limit
	} else if v.grad < -limit {
		v.grad = -limit
	}
}
