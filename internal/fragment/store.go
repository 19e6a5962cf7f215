package fragment

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/phpenv-dev/phpenv-ini/internal/logging"
)

// AvailableStore is the directory holding every known fragment file.
type AvailableStore struct {
	dir string
	log zerolog.Logger
}

// NewAvailableStore returns a store rooted at dir. The directory is not
// created until the first write.
func NewAvailableStore(dir string) *AvailableStore {
	return &AvailableStore{dir: dir, log: logging.GetLogger("store")}
}

// Dir returns the store directory.
func (s *AvailableStore) Dir() string {
	return s.dir
}

// Path returns the file path for a stored fragment name.
func (s *AvailableStore) Path(name string) string {
	return filepath.Join(s.dir, fileName(name))
}

// Exists reports whether a fragment is present in the store.
func (s *AvailableStore) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Write stores content under name, replacing any existing fragment
// atomically.
func (s *AvailableStore) Write(name string, content []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create available dir: %w", err)
	}
	pending, err := renameio.NewPendingFile(s.Path(name))
	if err != nil {
		return fmt.Errorf("create pending fragment file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			s.log.Debug().Err(err).Msg("cleanup pending fragment file")
		}
	}()
	if _, err := pending.Write(content); err != nil {
		return fmt.Errorf("write fragment %s: %w", name, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace fragment %s: %w", name, err)
	}
	return nil
}

// Read returns the raw content of a stored fragment.
func (s *AvailableStore) Read(name string) ([]byte, error) {
	return os.ReadFile(s.Path(name))
}

// Remove deletes a fragment file from the store.
func (s *AvailableStore) Remove(name string) error {
	return os.Remove(s.Path(name))
}

// Names returns the stored fragment names, lexicographically sorted.
// A missing directory yields an empty list.
func (s *AvailableStore) Names() ([]string, error) {
	return dirNames(s.dir)
}

// EnabledStore tracks which fragments the active PHP runtime loads.
// The production implementation is symlink-backed; alternate backends
// only need to satisfy this interface.
type EnabledStore interface {
	IsEnabled(name string) bool
	Enable(name string) error
	Disable(name string) error
	Names() ([]string, error)
}

// symlinkStore implements EnabledStore with symlinks into the
// available store.
type symlinkStore struct {
	dir       string
	available *AvailableStore
	log       zerolog.Logger
}

// NewSymlinkStore returns the symlink-backed EnabledStore rooted at dir.
func NewSymlinkStore(dir string, available *AvailableStore) EnabledStore {
	return &symlinkStore{dir: dir, available: available, log: logging.GetLogger("store")}
}

func (s *symlinkStore) path(name string) string {
	return filepath.Join(s.dir, fileName(name))
}

// IsEnabled reports whether any entry exists for name in the enabled
// directory. A plain file left behind by a failed disable counts as
// enabled.
func (s *symlinkStore) IsEnabled(name string) bool {
	_, err := os.Lstat(s.path(name))
	return err == nil
}

func (s *symlinkStore) Enable(name string) error {
	if !s.available.Exists(name) {
		return fmt.Errorf("%w: %s", ErrUnknownFragment, name)
	}
	if s.IsEnabled(name) {
		return fmt.Errorf("%w: %s", ErrAlreadyEnabled, name)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create enabled dir: %w", err)
	}
	if err := os.Symlink(s.available.Path(name), s.path(name)); err != nil {
		return fmt.Errorf("enable %s: %w", name, err)
	}
	s.log.Debug().Str("name", name).Msg("created enabled symlink")
	return nil
}

func (s *symlinkStore) Disable(name string) error {
	path := s.path(name)
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownFragment, name)
	}
	// A regular file here was not created by Enable. If the available
	// store has no counterpart, move it there so the content survives.
	if info.Mode().IsRegular() && !s.available.Exists(name) {
		if err := os.MkdirAll(s.available.Dir(), 0755); err != nil {
			return fmt.Errorf("create available dir: %w", err)
		}
		if err := os.Rename(path, s.available.Path(name)); err != nil {
			return fmt.Errorf("move %s to available store: %w", name, err)
		}
		s.log.Debug().Str("name", name).Msg("rescued plain file into available store")
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("disable %s: %w", name, err)
	}
	return nil
}

func (s *symlinkStore) Names() ([]string, error) {
	return dirNames(s.dir)
}

// dirNames lists a directory's entries as fragment names, sorted.
func dirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".ini"))
	}
	sort.Strings(names)
	return names, nil
}
