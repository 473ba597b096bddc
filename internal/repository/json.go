package repository

import (
	"encoding/json"
	"fmt"
)

// decodeJSON unmarshals a jsonb column. Empty and null values leave out untouched.
func decodeJSON(b []byte, out any, column string) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", column, err)
	}
	return nil
}

func stringList(b []byte, column string) ([]string, error) {
	out := make([]string, 0)
	if err := decodeJSON(b, &out, column); err != nil {
		return nil, err
	}
	return out, nil
}
