// Package prefs is a small string-keyed preference store persisted as YAML.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Store holds preferences in memory until Flush writes them out.
// A Store with an empty path never touches the disk.
type Store struct {
	path   string
	values map[string]string
}

// NewMemory returns a store that is never persisted.
func NewMemory() *Store {
	return &Store{values: make(map[string]string)}
}

// Open loads the preferences at path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read prefs %s: %w", path, err)
	}
	if len(b) == 0 {
		return s, nil
	}
	if err := yaml.Unmarshal(b, &s.values); err != nil {
		return nil, fmt.Errorf("decode prefs %s: %w", path, err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Int returns the integer stored under key, or def when the key is
// missing or does not parse.
func (s *Store) Int(key string, def int) int {
	v, ok := s.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (s *Store) SetInt(key string, v int) {
	s.values[key] = strconv.Itoa(v)
}

func (s *Store) String(key, def string) string {
	v, ok := s.values[key]
	if !ok {
		return def
	}
	return v
}

func (s *Store) SetString(key, v string) {
	s.values[key] = v
}

// Flush writes the store to disk through a temp file so a crash never
// leaves a half-written file behind.
func (s *Store) Flush() error {
	if s.path == "" {
		return nil
	}
	out, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace prefs %s: %w", s.path, err)
	}
	return nil
}
