package optim

import "github.com/fumitoshi0524/ixeoriGrad/engine"

// SGD performs gradient descent over a fixed set of leaf parameters. It reads
// gradients written by Backward and mutates parameter data in place; it never
// touches graph structure.
type SGD struct {
	params        []*engine.Value
	lr            float64
	momentum      float64
	weightDecay   float64
	maxGradNorm   float64
	gradNormType  float64
	gradValueClip float64
	velocity      map[*engine.Value]float64
}

type SGDConfig struct {
	LR            float64
	Momentum      float64
	WeightDecay   float64
	MaxGradNorm   float64
	GradNormType  float64
	GradValueClip float64
}

func NewSGD(params []*engine.Value, lr float64, momentum float64) *SGD {
	return NewSGDWithConfig(params, SGDConfig{LR: lr, Momentum: momentum})
}

func NewSGDWithConfig(params []*engine.Value, cfg SGDConfig) *SGD {
	return &SGD{
		params:        params,
		lr:            cfg.LR,
		momentum:      cfg.Momentum,
		weightDecay:   cfg.WeightDecay,
		maxGradNorm:   cfg.MaxGradNorm,
		gradNormType:  cfg.GradNormType,
		gradValueClip: cfg.GradValueClip,
		velocity:      make(map[*engine.Value]float64),
	}
}

// Step applies one update: data -= lr * (grad + weightDecay*data), routed
// through the velocity buffer when momentum is enabled. Gradients are left in
// place; pair every Step with a ZeroGrad before the next backward pass.
func (o *SGD) Step() {
	if o.maxGradNorm > 0 {
		ClipGradNorm(o.params, o.maxGradNorm, o.gradNormType)
	}
	if o.gradValueClip > 0 {
		ClipGradValue(o.params, o.gradValueClip)
	}
	for _, p := range o.params {
		if p == nil {
			continue
		}
		update := p.Grad()
		if o.weightDecay > 0 {
			update += o.weightDecay * p.Data()
		}
		if o.momentum > 0 {
			v := o.momentum*o.velocity[p] + update
			o.velocity[p] = v
			update = v
		}
		p.SetData(p.Data() - o.lr*update)
	}
}

func (o *SGD) ZeroGrad() {
	for _, p := range o.params {
		if p != nil {
			p.ZeroGrad()
		}
	}
}

func (o *SGD) LR() float64 {
	return o.lr
}

func (o *SGD) SetLR(lr float64) {
	o.lr = lr
}

func (o *SGD) SetWeightDecay(v float64) {
	o.weightDecay = v
}

func (o *SGD) WeightDecay() float64 {
	return o.weightDecay
}

func (o *SGD) SetGradNorm(maxNorm, normType float64) {
	o.maxGradNorm = maxNorm
	o.gradNormType = normType
}

func (o *SGD) GradNorm() (float64, float64) {
	return o.maxGradNorm, o.gradNormType
}

func (o *SGD) SetGradValueClip(limit float64) {
	o.gradValueClip = limit
}

func (o *SGD) GradValueClip() float64 {
	return o.gradValueClip
}
