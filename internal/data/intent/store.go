package intent

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/util"
)

// Store reads and writes the widget configuration file. The file is a flat
// TOML table; unknown keys are preserved on save.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store for the file at path. An empty path means
// ~/.go-apod-widget/intent.toml.
func NewStore(path string) (*Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".go-apod-widget", "intent.toml")
	}
	return &Store{path: path}, nil
}

// Path returns the file location
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored intent. A missing file gives a nil intent and a
// malformed one an empty intent; neither is an error, both read as
// "caption off".
func (s *Store) Load() model.Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, err := s.read()
	if err != nil {
		util.LogWarnf("Ignoring unreadable configuration %s: %v", s.path, err)
		return model.Intent{}
	}
	return intent
}

func (s *Store) read() (model.Intent, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	intent := model.Intent{}
	if _, err := toml.Decode(string(data), &intent); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return intent, nil
}

// SetShowText persists the caption toggle and returns the updated intent
func (s *Store) SetShowText(show bool) (model.Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		// Start over rather than refuse to save a broken file
		util.LogWarnf("Replacing unreadable configuration %s: %v", s.path, err)
		current = nil
	}

	updated := current.WithShowText(show)
	if err := s.write(updated); err != nil {
		return nil, err
	}
	util.LogInfof("Saved %s = %t to %s", model.ShowTextKey, show, s.path)
	return updated, nil
}

// Save writes the whole intent
func (s *Store) Save(intent model.Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(intent)
}

func (s *Store) write(intent model.Intent) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]interface{}(intent)); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := os.Rename(tmpFile, s.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename configuration file: %w", err)
	}
	return nil
}
