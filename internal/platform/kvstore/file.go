// Copyright (c) 2026 ArtStudy. All rights reserved.
// Author: lin.wanqing.art@gmail.com

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as a JSON file under a state directory.
//
// It is the default driver: zero external dependencies, good enough for the
// single-user study workload.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if missing and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: failed to create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the document stored for key, reporting found=false when the
// file does not exist.
func (store *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(store.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kvstore: read %q: %w", key, err)
	}
	return data, true, nil
}

// Set overwrites the document stored for key.
//
// The write goes to a temp file first and is moved into place with rename,
// so a crash mid-write never leaves a truncated document behind.
func (store *FileStore) Set(_ context.Context, key string, value []byte) error {
	target := store.path(key)

	tmp, err := os.CreateTemp(store.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("kvstore: temp file for %q: %w", key, err)
	}

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("kvstore: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("kvstore: close %q: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("kvstore: rename %q: %w", key, err)
	}

	return nil
}

// path maps a storage key to its file name. Keys contain dots but never
// path separators; the replacement is a guard against hostile keys.
func (store *FileStore) path(key string) string {
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(store.dir, safe+".json")
}
