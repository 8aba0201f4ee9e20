package nn

import (
	"fmt"

	"github.com/fumitoshi0524/ixeoriGrad/engine"
)

// MLP chains fully connected layers. Hidden layers use Tanh; the final layer
// is linear so outputs are unbounded for regression use.
type MLP struct {
	layers []*Layer
}

// NewMLP builds a perceptron with nin inputs and one layer per entry of
// nouts, e.g. NewMLP(3, 4, 4, 1) for two hidden layers of four neurons and a
// single output.
func NewMLP(nin int, nouts ...int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		activation := Activation(engine.Tanh)
		if i == len(layers)-1 {
			activation = Identity
		}
		layers[i] = NewLayer(sizes[i], sizes[i+1], activation)
	}
	return &MLP{layers: layers}
}

// NewMLPWithActivation is NewMLP with the same activation on every layer.
func NewMLPWithActivation(activation Activation, nin int, nouts ...int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], activation)
	}
	return &MLP{layers: layers}
}

func (m *MLP) Forward(inputs []*engine.Value) ([]*engine.Value, error) {
	outputs := inputs
	var err error
	for _, layer := range m.layers {
		outputs, err = layer.Forward(outputs)
		if err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

func (m *MLP) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

func (m *MLP) ZeroGrad() {
	for _, layer := range m.layers {
		layer.ZeroGrad()
	}
}

func (m *MLP) Layers() []*Layer {
	return append([]*Layer(nil), m.layers...)
}

func (m *MLP) StateDict(prefix string, state map[string]*engine.Value) {
	for i, layer := range m.layers {
		layer.StateDict(joinPrefix(prefix, fmt.Sprintf("layers.%d", i)), state)
	}
}

func (m *MLP) LoadState(prefix string, state map[string]float64) error {
	for i, layer := range m.layers {
		if err := layer.LoadState(joinPrefix(prefix, fmt.Sprintf("layers.%d", i)), state); err != nil {
			return err
		}
	}
	return nil
}
