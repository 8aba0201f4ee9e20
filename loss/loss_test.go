package loss

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fumitoshi0524/ixeoriGrad/engine"
)

func TestMSEForwardBackward(t *testing.T) {
	preds := []*engine.Value{engine.New(2), engine.New(-1)}
	targets := []*engine.Value{engine.New(1), engine.New(1)}

	l, err := MSE(preds, targets)
	require.NoError(t, err)
	require.InDelta(t, 2.5, l.Data(), 1e-12)

	l.Backward()
	// d/dp_i = 2*(p_i - t_i)/n
	require.InDelta(t, 1, preds[0].Grad(), 1e-12)
	require.InDelta(t, -2, preds[1].Grad(), 1e-12)
}

func TestMSESinglePair(t *testing.T) {
	l, err := MSE([]*engine.Value{engine.New(0)}, []*engine.Value{engine.New(1)})
	require.NoError(t, err)
	require.InDelta(t, 1, l.Data(), 1e-12)
}

func TestMSEErrors(t *testing.T) {
	_, err := MSE(nil, nil)
	require.Error(t, err)

	_, err = MSE([]*engine.Value{engine.New(1)}, nil)
	require.Error(t, err)
}
