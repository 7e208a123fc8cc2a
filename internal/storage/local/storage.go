package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

// Storage keeps document files under a directory on disk.
type Storage struct {
	dir string
}

func New(dir string) (*Storage, error) {
	err := os.MkdirAll(dir, 0o750)
	if err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &Storage{dir: dir}, nil
}

func (s *Storage) Type() entity.StorageType {
	return entity.StorageTypeLocal
}

func (s *Storage) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}

func (s *Storage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, entity.ErrNotFound
	}

	return f, err
}

func (s *Storage) Remove(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func (s *Storage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}

	return filepath.Join(s.dir, key), nil
}
