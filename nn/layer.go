package nn

import (
	"fmt"

	"github.com/fumitoshi0524/ixeoriGrad/engine"
)

// Layer is a fully connected set of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

func NewLayer(nin, nout int, activation Activation) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, activation)
	}
	return &Layer{neurons: neurons}
}

func (l *Layer) Forward(inputs []*engine.Value) ([]*engine.Value, error) {
	outputs := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Forward(inputs)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}

func (l *Layer) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}

func (l *Layer) Neurons() []*Neuron {
	return append([]*Neuron(nil), l.neurons...)
}

func (l *Layer) StateDict(prefix string, state map[string]*engine.Value) {
	for i, n := range l.neurons {
		n.StateDict(joinPrefix(prefix, fmt.Sprintf("neurons.%d", i)), state)
	}
}

func (l *Layer) LoadState(prefix string, state map[string]float64) error {
	for i, n := range l.neurons {
		if err := n.LoadState(joinPrefix(prefix, fmt.Sprintf("neurons.%d", i)), state); err != nil {
			return err
		}
	}
	return nil
}
