package engine

import (
	"math"
	"testing"
)

func TestTanhAtZero(t *testing.T) {
	x := New(0)
	y := Tanh(x)
	if y.Data() != 0 {
		t.Fatalf("tanh(0) forward: got %v want 0", y.Data())
	}
	y.Backward()
	if x.Grad() != 1 {
		t.Fatalf("tanh'(0): got %v want 1", x.Grad())
	}
}

func TestTanhGrad(t *testing.T) {
	x := New(0.7)
	y := Tanh(x)
	y.Backward()
	want := 1 - math.Tanh(0.7)*math.Tanh(0.7)
	if !almostEqual(x.Grad(), want, 1e-12) {
		t.Fatalf("tanh grad: got %v want %v", x.Grad(), want)
	}
}

func TestReluGrad(t *testing.T) {
	pos := New(1.5)
	y := Relu(pos)
	if y.Data() != 1.5 {
		t.Fatalf("relu forward: got %v want 1.5", y.Data())
	}
	y.Backward()
	if pos.Grad() != 1 {
		t.Fatalf("relu grad on positive input: got %v want 1", pos.Grad())
	}

	neg := New(-2)
	z := Relu(neg)
	if z.Data() != 0 {
		t.Fatalf("relu forward on negative input: got %v want 0", z.Data())
	}
	z.Backward()
	if neg.Grad() != 0 {
		t.Fatalf("relu grad on negative input: got %v want 0", neg.Grad())
	}
}

func TestSigmoidGrad(t *testing.T) {
	x := New(0)
	y := Sigmoid(x)
	if !almostEqual(y.Data(), 0.5, 1e-12) {
		t.Fatalf("sigmoid(0): got %v want 0.5", y.Data())
	}
	y.Backward()
	if !almostEqual(x.Grad(), 0.25, 1e-12) {
		t.Fatalf("sigmoid'(0): got %v want 0.25", x.Grad())
	}
}
