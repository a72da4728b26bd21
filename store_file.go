package macrostate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	writeFile  = os.WriteFile
	openFile   = os.OpenFile
	removeFile = os.Remove
)

type fileStore struct {
	dir string
}

func newFileStore(dir string) Store {
	if dir == "" {
		dir = defaultStateDir()
	}
	return &fileStore{dir: dir}
}

func (s *fileStore) Driver() Driver {
	return DriverFile
}

func (s *fileStore) Get(_ context.Context, name string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *fileStore) Set(_ context.Context, name string, value []byte) error {
	return writeFile(s.path(name), value, 0o644)
}

func (s *fileStore) Append(_ context.Context, name string, value []byte) error {
	f, err := openFile(s.path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(value); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *fileStore) Delete(_ context.Context, name string) error {
	if err := removeFile(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Flush removes every state entry in the storage root, across all epochs.
// Files without the state prefix are left alone since the root may be a
// shared build directory.
func (s *fileStore) Flush(_ context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), statePrefix) {
			continue
		}
		_ = os.Remove(filepath.Join(s.dir, entry.Name()))
	}
	return nil
}

func (s *fileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}
