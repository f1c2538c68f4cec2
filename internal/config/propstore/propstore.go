// Package propstore implements config.Store backed by a properties file.
//
// The file holds one key=value pair per line. Lines starting with '#' or
// '!' are comments, blank lines are ignored and lines without a key or an
// '=' separator are skipped. Backslash escapes (\\, \n, \r, \t, \f, \uXXXX,
// and an escaped space, '=', '#' or '!') are decoded in keys and values.
// Entries are written back sorted by key so the output is deterministic
// and diff-friendly.
package propstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"botkit/internal/config"
)

// Store implements config.Store using a properties file on disk.
type Store struct {
	path    string
	bundled fs.FS
	data    map[string]string
	skipped int
}

// Option configures a Store.
type Option func(*Store)

// WithBundled supplies default resources. When the backing file is missing,
// Load reads the file with the same base name from fsys instead.
func WithBundled(fsys fs.FS) Option {
	return func(s *Store) {
		s.bundled = fsys
	}
}

// New creates a Store that reads from and writes to path. Nothing is read
// until Load is called.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		data: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a Store and loads it.
func Open(path string, opts ...Option) (*Store, config.Source, error) {
	s := New(path, opts...)
	src, err := s.Load()
	if err != nil {
		return nil, src, err
	}
	return s, src, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory entries. It reads the backing file, or the
// bundled default of the same name when the file does not exist. If neither
// exists the store is emptied and SourceEmpty is returned with a nil error.
func (s *Store) Load() (config.Source, error) {
	raw, err := os.ReadFile(s.path)
	if err == nil {
		s.data, s.skipped = decode(raw)
		return config.SourceFile, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return config.SourceFile, &config.IOError{Op: "read", Path: s.path, Err: err}
	}

	if s.bundled != nil {
		name := filepath.Base(s.path)
		raw, err := fs.ReadFile(s.bundled, name)
		if err == nil {
			s.data, s.skipped = decode(raw)
			return config.SourceBundled, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return config.SourceBundled, &config.IOError{Op: "read", Path: "bundled:" + name, Err: err}
		}
	}

	s.data = make(map[string]string)
	s.skipped = 0
	return config.SourceEmpty, nil
}

// Skipped returns the number of malformed lines ignored by the last Load.
func (s *Store) Skipped() int {
	return s.skipped
}

// Get returns the value for key, or def if absent.
func (s *Store) Get(key, def string) string {
	if v, ok := s.data[key]; ok {
		return v
	}
	return def
}

// Lookup returns the value for key and whether it was found.
func (s *Store) Lookup(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetOrInsertDefault returns the value for key, storing def in memory
// first if the key is absent.
func (s *Store) GetOrInsertDefault(key, def string) string {
	if v, ok := s.data[key]; ok {
		return v
	}
	s.data[key] = def
	return def
}

// Put writes key=value in memory.
func (s *Store) Put(key, value string) {
	s.data[key] = value
}

// Remove deletes key in memory.
func (s *Store) Remove(key string) {
	delete(s.data, key)
}

// All returns a copy of all key-value pairs.
func (s *Store) All() map[string]string {
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Save overwrites the backing file with every in-memory entry, creating
// parent directories as needed. Special characters are escaped so every
// entry reads back unchanged; an empty key has no line form and is not
// written.
func (s *Store) Save() error {
	raw := encode(s.data)
	if err := writeFile(s.path, raw); err != nil {
		return &config.IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// Compile-time check that Store implements config.Store.
var _ config.Store = (*Store)(nil)
