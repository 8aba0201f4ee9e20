package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/fumitoshi0524/ixeoriGrad/engine"
	"github.com/fumitoshi0524/ixeoriGrad/loss"
	"github.com/fumitoshi0524/ixeoriGrad/nn"
	"github.com/fumitoshi0524/ixeoriGrad/optim"
)

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	samples := 32
	inputs := make([]float64, samples)
	targets := make([]*engine.Value, samples)
	for i := 0; i < samples; i++ {
		x := rng.Float64()*4 - 2
		inputs[i] = x
		targets[i] = engine.New(3.5*x - 1.2)
	}

	model := nn.NewMLP(1, 8, 1)
	opt := optim.NewSGD(model.Parameters(), 0.01, 0.9)

	epochs := 200
	bar := progressbar.Default(int64(epochs), "training")
	var finalLoss float64
	for epoch := 0; epoch < epochs; epoch++ {
		opt.ZeroGrad()
		preds := make([]*engine.Value, samples)
		for i, x := range inputs {
			out, err := model.Forward([]*engine.Value{engine.New(x)})
			if err != nil {
				panic(err)
			}
			preds[i] = out[0]
		}
		lossVal, err := loss.MSE(preds, targets)
		if err != nil {
			panic(err)
		}
		lossVal.Backward()
		opt.Step()
		finalLoss = lossVal.Data()
		bar.Describe(fmt.Sprintf("loss %.4f", finalLoss))
		_ = bar.Add(1)
	}
	fmt.Printf("\nfinal loss %.4f\n", finalLoss)
	for _, probe := range []float64{-1, 0, 1} {
		out, err := model.Forward([]*engine.Value{engine.New(probe)})
		if err != nil {
			panic(err)
		}
		fmt.Printf("f(%+.1f) = %+.3f (want %+.3f)\n", probe, out[0].Data(), 3.5*probe-1.2)
	}
}
