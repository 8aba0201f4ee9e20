package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/fumitoshi0524/ixeoriGrad/engine"
)

type Module interface {
	Parameters() []*engine.Value
	ZeroGrad()
}

type StatefulModule interface {
	Module
	StateDict(prefix string, state map[string]*engine.Value)
	LoadState(prefix string, state map[string]float64) error
}

func ZeroGradAll(mods ...Module) {
	for _, m := range mods {
		if m == nil {
			continue
		}
		m.ZeroGrad()
	}
}

func SaveModule(path string, mod Module) error {
	if mod == nil {
		return errors.New("SaveModule requires non-nil module")
	}
	state := make(map[string]*engine.Value)
	if sm, ok := mod.(StatefulModule); ok {
		sm.StateDict("", state)
	} else {
		captureParameters("", mod, state)
	}
	if len(state) == 0 {
		return errors.New("module has no state to save")
	}
	return engine.SaveValues(path, state)
}

func LoadModule(path string, mod Module) error {
	if mod == nil {
		return errors.New("LoadModule requires non-nil module")
	}
	state, err := engine.LoadValues(path)
	if err != nil {
		return err
	}
	if sm, ok := mod.(StatefulModule); ok {
		return sm.LoadState("", state)
	}
	return loadParameters("", mod, state)
}

func joinPrefix(prefix, name string) string {
	if prefix == "" {
		return name
	}
	if name == "" {
		return prefix
	}
	return prefix + "." + name
}

func captureParameters(prefix string, mod Module, state map[string]*engine.Value) {
	for idx, p := range mod.Parameters() {
		if p == nil {
			continue
		}
		state[joinPrefix(prefix, fmt.Sprintf("param_%d", idx))] = p
	}
}

func loadParameters(prefix string, mod Module, state map[string]float64) error {
	for idx, p := range mod.Parameters() {
		if p == nil {
			continue
		}
		key := joinPrefix(prefix, fmt.Sprintf("param_%d", idx))
		data, ok := state[key]
		if !ok {
			return errors.Errorf("missing parameter %s", key)
		}
		p.SetData(data)
	}
	return nil
}
