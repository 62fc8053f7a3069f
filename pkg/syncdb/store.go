package syncdb

import (
	"bytes"
	"fmt"
	"os"

	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/utils"
)

// Store reads and writes the local pack database file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the pack database file exists.
func (s *Store) Exists() bool {
	return utils.FileExists(s.path)
}

// Load reads the pack database.
// If the file does not exist, the returned error wraps errors.NoLocalCache.
func (s *Store) Load() (*pack.PackSet, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, reporter.NewErrorEvent(
			reporter.NoLocalCache,
			errors.NoLocalCache,
			fmt.Sprintf("can't find a locally stored pack database '%s'.", s.path),
		)
	}
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedLoadPackDB, err, fmt.Sprintf("failed to open '%s'.", s.path))
	}
	defer f.Close()

	packSet, err := pack.Decode(f)
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedLoadPackDB, err, fmt.Sprintf("failed to load '%s'.", s.path))
	}
	return packSet, nil
}

// Save replaces the pack database with 'packSet'.
func (s *Store) Save(packSet *pack.PackSet) error {
	var buf bytes.Buffer
	if err := packSet.Encode(&buf); err != nil {
		return reporter.NewErrorEvent(reporter.Bug, err, "failed to encode the pack database.")
	}
	if err := utils.AtomicWriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return reporter.NewErrorEvent(reporter.FailedStorePackDB, err, fmt.Sprintf("failed to write '%s'.", s.path))
	}
	return nil
}
