// Package preset persists named snapshots of the overlay settings as
// JSON files, one file per preset.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrInvalidName = errors.New("invalid preset name")
	ErrExists      = errors.New("preset already exists")
	ErrNotFound    = errors.New("preset not found")
)

// Store keeps presets as <name>.json files under a single directory.
type Store struct {
	dir string
}

// NewStore creates the preset directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create preset dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// safeName validates a preset name. Path separators are rejected so a
// name can never escape the preset directory.
func safeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidName
	}
	return name, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// List returns all preset names, sorted, without the .json extension.
func (s *Store) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Save writes a new preset. Existing presets are never overwritten.
func (s *Store) Save(name string, state map[string]any) error {
	name, err := safeName(name)
	if err != nil {
		return err
	}
	path := s.path(name)
	if _, err := os.Stat(path); err == nil {
		return ErrExists
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a preset by name. Presets stored either as a bare settings
// map or wrapped as {"state": {...}} are both accepted; the wrapped form
// is unwrapped.
func (s *Store) Load(name string) (map[string]any, error) {
	name, err := safeName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var preset map[string]any
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("decode preset %s: %w", name, err)
	}
	if inner, ok := preset["state"].(map[string]any); ok {
		return inner, nil
	}
	return preset, nil
}

// Delete removes a preset. Deleting a missing preset is not an error.
func (s *Store) Delete(name string) error {
	name, err := safeName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
