// Package kvstore persists JSON documents under fixed keys on a
// filesystem. Each key maps to one file holding one JSON value; every
// save is a full overwrite and every load is an independent read.
// Concurrent processes sharing a data dir are not coordinated — last
// writer wins.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

// Store reads and writes keyed JSON documents.
type Store struct {
	fs zfilesystem.ReadWriteFileFS
}

// Open returns a store over the given filesystem.
func Open(fsys zfilesystem.ReadWriteFileFS) *Store {
	return &Store{fs: fsys}
}

// Save marshals v and overwrites the document under key.
func Save[T any](s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("save %s: marshal: %w", key, err)
	}

	if err := s.fs.WriteFile(keyPath(key), data, 0o600); err != nil {
		return fmt.Errorf("save %s: write: %w", key, err)
	}

	return nil
}

// Load reads the document under key. A missing file or unparsable JSON
// yields the zero value — the store is the only source of truth, so a
// corrupt document is unrecoverable and treated as absent.
func Load[T any](s *Store, key string) T {
	var zero T

	data, err := s.fs.ReadFile(keyPath(key))
	if err != nil {
		return zero
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero
	}

	return v
}

// Remove deletes the document under key. Removing an absent key is not
// an error.
func (s *Store) Remove(key string) error {
	if err := s.fs.Remove(keyPath(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func keyPath(key string) string {
	return key + ".json"
}
