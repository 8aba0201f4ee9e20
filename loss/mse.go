package loss

import (
	"errors"

	"github.com/fumitoshi0524/ixeoriGrad/engine"
)

// MSE builds the mean squared error node over matching prediction/target
// slices. Targets are usually leaves, so no gradient flows into them unless
// the caller wires them deeper into a graph.
func MSE(preds, targets []*engine.Value) (*engine.Value, error) {
	if len(preds) == 0 {
		return nil, errors.New("MSE requires at least one prediction")
	}
	if len(preds) != len(targets) {
		return nil, errors.New("MSE requires matching prediction and target counts")
	}
	terms := make([]*engine.Value, len(preds))
	for i := range preds {
		diff := engine.Sub(preds[i], targets[i])
		terms[i] = engine.Pow(diff, 2)
	}
	return engine.MulScalar(engine.Sum(terms...), 1/float64(len(terms))), nil
}
