package engine

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// SaveValues serializes a named set of scalars to disk as JSON. Only the
// forward data is persisted; gradients and graph structure are per-pass state
// and never survive a save.
func SaveValues(path string, values map[string]*Value) error {
	if len(values) == 0 {
		return errors.New("SaveValues requires at least one value")
	}
	records := make(map[string]float64, len(values))
	for name, v := range values {
		if v == nil {
			return errors.Errorf("value %s is nil", name)
		}
		records[name] = v.data
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create value file")
	}
	defer file.Close()
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(records), "encode values")
}

// LoadValues deserializes scalars saved with SaveValues.
func LoadValues(path string) (map[string]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open value file")
	}
	defer file.Close()
	records := make(map[string]float64)
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decode values")
	}
	return records, nil
}
