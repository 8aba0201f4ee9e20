package nn

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/fumitoshi0524/ixeoriGrad/engine"
)

// Activation maps a pre-activation node to an activated one while extending
// the graph. Any unary engine function qualifies.
type Activation func(*engine.Value) *engine.Value

// Identity passes the pre-activation through unchanged, for linear outputs.
func Identity(v *engine.Value) *engine.Value {
	return v
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))
var rngLock sync.Mutex

func randomParameter() *engine.Value {
	rngLock.Lock()
	defer rngLock.Unlock()
	return engine.New(rng.Float64()*2 - 1)
}

// Neuron holds nin weight leaves and a bias leaf, all initialized uniformly
// in [-1, 1).
type Neuron struct {
	weights    []*engine.Value
	bias       *engine.Value
	activation Activation
}

// NewNeuron creates a neuron with nin inputs. A nil activation defaults to
// engine.Tanh.
func NewNeuron(nin int, activation Activation) *Neuron {
	if activation == nil {
		activation = engine.Tanh
	}
	weights := make([]*engine.Value, nin)
	for i := range weights {
		weights[i] = randomParameter()
	}
	return &Neuron{
		weights:    weights,
		bias:       randomParameter(),
		activation: activation,
	}
}

// Forward computes act(sum_i w_i*x_i + b), extending the graph.
func (n *Neuron) Forward(inputs []*engine.Value) (*engine.Value, error) {
	if len(inputs) != len(n.weights) {
		return nil, fmt.Errorf("neuron expects %d inputs, got %d", len(n.weights), len(inputs))
	}
	act := n.bias
	for i, w := range n.weights {
		act = engine.Add(act, engine.Mul(w, inputs[i]))
	}
	return n.activation(act), nil
}

func (n *Neuron) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}

func (n *Neuron) Weights() []*engine.Value {
	return append([]*engine.Value(nil), n.weights...)
}

func (n *Neuron) Bias() *engine.Value {
	return n.bias
}

func (n *Neuron) StateDict(prefix string, state map[string]*engine.Value) {
	if state == nil {
		return
	}
	for i, w := range n.weights {
		state[joinPrefix(prefix, fmt.Sprintf("weight.%d", i))] = w
	}
	state[joinPrefix(prefix, "bias")] = n.bias
}

func (n *Neuron) LoadState(prefix string, state map[string]float64) error {
	for i, w := range n.weights {
		key := joinPrefix(prefix, fmt.Sprintf("weight.%d", i))
		data, ok := state[key]
		if !ok {
			return fmt.Errorf("neuron missing %s", key)
		}
		w.SetData(data)
	}
	biasKey := joinPrefix(prefix, "bias")
	data, ok := state[biasKey]
	if !ok {
		return fmt.Errorf("neuron missing %s", biasKey)
	}
	n.bias.SetData(data)
	return nil
}
