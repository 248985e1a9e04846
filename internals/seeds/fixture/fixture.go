// Package fixture reads seed files and filters out rows that already exist.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSON decodes a fixture file into a slice of T.
func ReadJSON[T any](path string) ([]T, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// NewOnly drops items whose key is in existing.
func NewOnly[T any](items []T, existing []string, key func(T) string) []T {
	seen := make(map[string]bool, len(existing))
	for _, k := range existing {
		seen[k] = true
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}
