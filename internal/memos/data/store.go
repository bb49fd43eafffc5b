package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"memo/internal/logs"
)

// ErrNotFound is returned when an identifier does not resolve to a memo file.
var ErrNotFound = errors.New("memo not found")

// ErrInvalidTitle is returned when a title would place the memo file outside
// the store directory.
var ErrInvalidTitle = errors.New("title must not contain path separators")

// Store keeps one plain-text file per memo in a single directory.
// The directory listing is the index; nothing is cached between calls.
type Store struct {
	dir string
	now func() time.Time
	mu  sync.RWMutex
}

// NewStore creates a store rooted at dir. The directory is created lazily.
func NewStore(dir string) *Store {
	return NewStoreWithClock(dir, time.Now)
}

// NewStoreWithClock creates a store that stamps new memos using now.
func NewStoreWithClock(dir string, now func() time.Time) *Store {
	return &Store{dir: dir, now: now}
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureDir creates the store directory and any missing parents.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("error creating memo directory: %w", err)
	}
	return nil
}

// Create writes content under a fresh identifier and returns it. An existing
// file with the same identifier (same second, same title) is overwritten.
func (s *Store) Create(title, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.EnsureDir(); err != nil {
		return "", err
	}

	name := FilenameFor(s.now(), title)
	path, ok := s.resolve(name)
	if !ok {
		return "", fmt.Errorf("error creating memo %q: %w", title, ErrInvalidTitle)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}

	logs.Logger.Infow("memo saved", "id", name, "bytes", len(content))
	return name, nil
}

// List returns every memo file in the store directory, in directory order.
// A missing directory yields an empty list.
func (s *Store) List() ([]Memo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Memo{}, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", s.dir, err)
	}

	memos := make([]Memo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error reading %s: %w", entry.Name(), err)
		}
		memos = append(memos, memoFromFilename(entry.Name(), info.Size()))
	}
	return memos, nil
}

// Read returns the full body of the memo with the given identifier.
func (s *Store) Read(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, ok := s.resolve(id)
	if !ok {
		return "", ErrNotFound
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return string(content), nil
}

// Delete removes the memo with the given identifier. It reports false when
// there was nothing to remove.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, ok := s.resolve(id)
	if !ok {
		logs.Logger.Infow("delete of unknown memo", "id", id)
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logs.Logger.Infow("delete of unknown memo", "id", id)
			return false, nil
		}
		return false, fmt.Errorf("error deleting %s: %w", path, err)
	}

	logs.Logger.Infow("memo deleted", "id", id)
	return true, nil
}

// resolve maps an identifier to a path inside the store directory. Anything
// that is not a bare memo filename cannot name a memo.
func (s *Store) resolve(id string) (string, bool) {
	if id == "" || id != filepath.Base(id) || strings.ContainsAny(id, `/\`) {
		return "", false
	}
	if !strings.HasSuffix(id, Ext) {
		return "", false
	}
	return filepath.Join(s.dir, id), true
}
