package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amonks/pomo/internal/logging"
	"github.com/amonks/pomo/internal/paths"
)

// Store reads and writes the status file.
type Store struct {
	dir string
}

// NewStore creates a new status store using the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the path to the status file.
func (s *Store) Path() string {
	return paths.StatusFile(s.dir)
}

// Read loads the current status. It returns nil without error when the file
// does not exist or does not hold a valid record; only I/O failures are
// errors.
func (s *Store) Read() (*Status, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read status file: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		logging.Logger.Debug("ignoring unreadable status record", "path", s.Path(), "error", err)
		return nil, nil
	}
	st, err := rec.status()
	if err != nil {
		logging.Logger.Debug("ignoring invalid status record", "path", s.Path(), "error", err)
		return nil, nil
	}

	return &st, nil
}

// Write replaces the status file with st.
func (s *Store) Write(st Status) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create status dir: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}
	data = append(data, '\n')

	if existing, err := os.ReadFile(s.Path()); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read status file: %w", err)
	}

	// Write atomically via temp file
	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(s.Path())+".tmp")
	if err != nil {
		return fmt.Errorf("create temp status file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp status file: %w", err)
	}

	if err := os.Rename(name, s.Path()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename status file: %w", err)
	}

	return nil
}

// Clear writes the idle record.
func (s *Store) Clear(now time.Time) error {
	return s.Write(IdleStatus(now))
}
