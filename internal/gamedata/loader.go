package gamedata

import (
	"encoding/json"
	"fmt"
)

// validator is implemented by data files that check their own contents
// after decoding.
type validator interface {
	Validate() error
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
// If the decoded value implements Validate, it is called before returning.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse JSON from %s: %w", filename, err)
	}

	if v, ok := any(&result).(validator); ok {
		if err := v.Validate(); err != nil {
			return result, fmt.Errorf("validate %s: %w", filename, err)
		}
	}

	return result, nil
}

