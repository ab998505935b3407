package engine

import (
	"reflect"
	"strings"
	"sync"
)

// Settings is one snapshot of the overlay configuration.
type Settings map[string]any

// allowedKeys is the closed set of recognized settings, in application
// order. selected_column must be applied before groupByColumn so the
// group spec is normalized against the post-update display column.
var allowedKeys = []string{
	"text",
	"fontSize",
	"color",
	"backgroundColor",
	"backgroundOpacity",
	"selected_column",
	"containerWidth",
	"containerHeight",
	"scrollSpeed",
	"listFontSize",
	"listColor",
	"textSegmentDuration",
	"groupByColumn",
	"textFontFamily",
	"textFontWeight",
	"listFontFamily",
	"listFontWeight",
	"borderRadius",
}

// Numeric defaults are float64 so a value that round-trips through JSON
// compares equal to its default.
func defaultSettings(firstColumn string) Settings {
	return Settings{
		"selected_column":     firstColumn,
		"text":                "place holder",
		"fontSize":            float64(36),
		"color":               "#ffffff",
		"backgroundColor":     "#000000",
		"backgroundOpacity":   0.4,
		"containerWidth":      float64(600),
		"containerHeight":     float64(300),
		"scrollSpeed":         30.0,
		"listFontSize":        float64(24),
		"listColor":           "#ffffff",
		"textSegmentDuration": 5.0,
		"groupByColumn":       "",
		"textFontFamily":      "system",
		"textFontWeight":      float64(400),
		"listFontFamily":      "system",
		"listFontWeight":      float64(400),
		"borderRadius":        float64(4),
	}
}

// Store owns the mutable overlay configuration and its version counter.
// It is the only mutation point in the process; every reader goes through
// Snapshot or Version and never sees a half-applied update.
type Store struct {
	ds *Dataset

	mu      sync.RWMutex
	state   Settings
	version uint64
}

// NewStore creates the store with defaults: the dataset's first column is
// the initial display column.
func NewStore(ds *Dataset) *Store {
	return &Store{ds: ds, state: defaultSettings(ds.Columns[0])}
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(Settings, len(s.state))
	for k, v := range s.state {
		snap[k] = v
	}
	return snap
}

// Version returns the current state version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Update applies a partial settings map. Unrecognized keys are ignored;
// recognized keys are applied independently and only when the new value
// differs from the stored one. The version is bumped exactly once when
// anything actually changed. Returns the resulting snapshot.
func (s *Store) Update(partial map[string]any) (Settings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, key := range allowedKeys {
		val, present := partial[key]
		if !present {
			continue
		}
		switch key {
		case "selected_column":
			col, ok := val.(string)
			if !ok || !s.ds.HasColumn(col) || col == s.state[key] {
				continue
			}
			s.state[key] = col
			changed = true
			// Only the exact string match clears the group spec; a
			// composite spec that mentions the new column survives.
			if s.state["groupByColumn"] == col {
				s.state["groupByColumn"] = ""
			}
		case "groupByColumn":
			raw, ok := val.(string)
			if !ok {
				continue
			}
			sel, _ := s.state["selected_column"].(string)
			cols := ParseGroupSpec(strings.TrimSpace(raw), sel, s.ds.Columns)
			canon := strings.Join(cols, "+")
			if canon != s.state[key] {
				s.state[key] = canon
				changed = true
			}
		default:
			if !reflect.DeepEqual(val, s.state[key]) {
				s.state[key] = val
				changed = true
			}
		}
	}

	if changed {
		s.version++
	}

	snap := make(Settings, len(s.state))
	for k, v := range s.state {
		snap[k] = v
	}
	return snap, changed
}
