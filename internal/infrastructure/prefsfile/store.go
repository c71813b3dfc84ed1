package prefsfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"locstore/internal/ports/output"
)

var _ output.PreferenceStore = (*Store)(nil)

// Store implements output.PreferenceStore on a local TOML file, for hosts
// that run without a database. Reads and writes are whole-file; the file is
// created on first Set.
type Store struct {
	path string
}

// NewStore creates a Store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the stored value for key, or def when the file or key is
// absent.
func (s *Store) Get(_ context.Context, key, def string) (string, error) {
	prefs, err := s.load()
	if err != nil {
		return def, err
	}
	value, ok := prefs[key]
	if !ok {
		return def, nil
	}
	return value, nil
}

// Set stores value under key, rewriting the whole file.
func (s *Store) Set(_ context.Context, key, value string) error {
	prefs, err := s.load()
	if err != nil {
		return err
	}
	prefs[key] = value

	data, err := toml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return map[string]string{}, fmt.Errorf("read preferences: %w", err)
	}
	prefs := map[string]string{}
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return map[string]string{}, fmt.Errorf("decode preferences: %w", err)
	}
	return prefs, nil
}
