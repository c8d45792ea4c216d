package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

const fileFormatVersion = "1.0"

// storeFile is the on-disk document written by File.
type storeFile struct {
	Version string            `json:"version"`
	Entries map[string]string `json:"entries"`
}

// File persists entries as a single JSON document. Every Set rewrites the document
// atomically through a temporary file.
type File struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
}

// NewFile opens the document at path, creating its directory if needed. A missing
// document starts an empty store.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, lkerrors.NewStorageError("", "open", fmt.Errorf("file store requires a path"))
	}

	f := &File{
		path:    path,
		entries: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, lkerrors.NewStorageError("", "open", fmt.Errorf("create store directory: %w", err))
	}

	if err := f.load(); err != nil && !os.IsNotExist(err) {
		return nil, lkerrors.NewStorageError("", "open", err)
	}

	return f, nil
}

func (f *File) load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	var doc storeFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse store file: %w", err)
	}

	if doc.Entries != nil {
		f.entries = doc.Entries
	}
	return nil
}

// Get implements Store.
func (f *File) Get(key string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	value, ok := f.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, existed := f.entries[key]
	f.entries[key] = value

	if err := f.save(); err != nil {
		if existed {
			f.entries[key] = previous
		} else {
			delete(f.entries, key)
		}
		return lkerrors.NewStorageError(key, "set", err)
	}
	return nil
}

func (f *File) save() error {
	data, err := json.MarshalIndent(storeFile{Version: fileFormatVersion, Entries: f.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store file: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}
