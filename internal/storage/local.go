package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem. Each key maps to
// one JSON file under the state directory. Writes go through a temp file and
// rename so a crash mid-write leaves the previous value intact rather than a
// truncated file.
type LocalStorage struct {
	basePath string // state directory (e.g., "~/.local/state/shopkit")
}

// NewLocalStorage creates a filesystem-backed state store rooted at basePath
// (created if it doesn't exist).
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

func (s *LocalStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", ErrInvalidKey(key)
	}
	return filepath.Join(s.basePath, key+".json"), nil
}

// Put stores a value under the key, replacing any previous value.
func (s *LocalStorage) Put(key string, value []byte) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}

// Get retrieves the value stored under the key.
func (s *LocalStorage) Get(key string) ([]byte, error) {
	fullPath, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound(key)
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	return data, nil
}

// Delete removes the key's state file.
func (s *LocalStorage) Delete(key string) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state: %w", err)
	}

	return nil
}

// Exists checks whether a value is stored under the key.
func (s *LocalStorage) Exists(key string) (bool, error) {
	fullPath, err := s.path(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat state file: %w", err)
	}

	return true, nil
}
