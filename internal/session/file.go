package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage keeps the session as JSON in a single file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() (State, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return State{}, nil
	}

	if err != nil {
		return State{}, fmt.Errorf("read session file: %w", err)
	}

	var state State

	err = json.Unmarshal(raw, &state)
	if err != nil {
		return State{}, fmt.Errorf("decode session file: %w", err)
	}

	return state, nil
}

func (f *FileStorage) Save(state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer os.Remove(tmp.Name())

	_, err = tmp.Write(raw)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("close session file: %w", err)
	}

	err = os.Chmod(tmp.Name(), 0o600)
	if err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}

	return os.Rename(tmp.Name(), f.path)
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
