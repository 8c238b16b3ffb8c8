// Package windowstate remembers the overlay window geometry between runs.
// Opacity and cursor mode are not stored.
package windowstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/1broseidon/boxoverlay/internal/statedir"
)

// Geometry is a root-relative window rectangle.
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether g describes a window at least minW x minH.
func (g Geometry) Valid(minW, minH int) bool {
	return g.Width >= minW && g.Height >= minH
}

// Store reads and writes Geometry at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore returns the store at statedir.WindowStatePath.
func DefaultStore() (*Store, error) {
	path, err := statedir.WindowStatePath()
	if err != nil {
		return nil, err
	}
	return NewStore(path), nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load returns the saved geometry. ok is false when nothing was saved.
func (s *Store) Load() (g Geometry, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Geometry{}, false, nil
		}
		return Geometry{}, false, fmt.Errorf("failed to read window state: %w", err)
	}
	if err := json.Unmarshal(data, &g); err != nil {
		return Geometry{}, false, fmt.Errorf("failed to parse window state %s: %w", s.path, err)
	}
	return g, true, nil
}

// Save writes g, replacing any previous state atomically.
func (s *Store) Save(g Geometry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode window state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write window state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace window state: %w", err)
	}
	return nil
}
