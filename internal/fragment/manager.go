package fragment

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/phpenv-dev/phpenv-ini/internal/logging"
	"github.com/phpenv-dev/phpenv-ini/internal/phpenv"
)

// Manager performs the fragment operations for the active PHP version.
type Manager struct {
	version   string
	available *AvailableStore
	enabled   EnabledStore
	log       zerolog.Logger
}

// NewManager resolves the managed directories for the host's active
// version. Directories are created lazily by the first mutating
// operation, not here.
func NewManager(host phpenv.Host, root string) (*Manager, error) {
	version, err := host.ActiveVersion()
	if err != nil {
		return nil, fmt.Errorf("query active version: %w", err)
	}
	available := NewAvailableStore(phpenv.AvailableDir(root, version))
	return &Manager{
		version:   version,
		available: available,
		enabled:   NewSymlinkStore(phpenv.EnabledDir(root, version), available),
		log:       logging.GetLogger("manager"),
	}, nil
}

// Version returns the PHP version this manager operates on.
func (m *Manager) Version() string {
	return m.version
}

// guard rejects mutating operations while the system PHP is active.
func (m *Manager) guard() error {
	if m.version == phpenv.SystemVersion {
		return ErrUnsupportedVersion
	}
	return nil
}

// AddConfig copies a general config file into the available store under
// cfg-<name>.ini. The fragment is not enabled.
func (m *Manager) AddConfig(sourcePath string) (string, error) {
	return m.add(KindConfig, sourcePath)
}

// AddExtension copies an extension config file into the available store
// under ext-<name>.ini. The fragment is not enabled.
func (m *Manager) AddExtension(sourcePath string) (string, error) {
	return m.add(KindExtension, sourcePath)
}

func (m *Manager) add(kind, sourcePath string) (string, error) {
	if err := m.guard(); err != nil {
		return "", err
	}
	info, err := os.Stat(sourcePath)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrInvalidSourcePath, sourcePath)
	}
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", sourcePath, err)
	}
	name := StoredName(kind, CanonicalName(sourcePath))
	if err := m.available.Write(name, content); err != nil {
		return "", err
	}
	m.log.Debug().Str("name", name).Str("source", sourcePath).Msg("added fragment")
	return name, nil
}

// NewExtension synthesizes an extension-loading fragment for extName and
// stores it as ext-<extName>.ini, overwriting any existing fragment of
// that name.
func (m *Manager) NewExtension(extName string) (string, error) {
	if err := m.guard(); err != nil {
		return "", err
	}
	if extName == "" {
		return "", fmt.Errorf("%w: extension name", ErrMissingArgument)
	}
	canonical := CanonicalName(extName)
	name := StoredName(KindExtension, canonical)
	content := fmt.Sprintf("extension=%s.so\n", canonical)
	if err := m.available.Write(name, []byte(content)); err != nil {
		return "", err
	}
	m.log.Debug().Str("name", name).Msg("synthesized extension fragment")
	return name, nil
}

// Enable symlinks an available fragment into the enabled directory.
func (m *Manager) Enable(name string) error {
	if err := m.guard(); err != nil {
		return err
	}
	return m.enabled.Enable(CanonicalName(name))
}

// Disable removes a fragment's entry from the enabled directory.
func (m *Manager) Disable(name string) error {
	if err := m.guard(); err != nil {
		return err
	}
	return m.enabled.Disable(CanonicalName(name))
}

// Remove deletes a fragment from the available store, dropping any
// enabled entry first. Irreversible.
func (m *Manager) Remove(name string) error {
	if err := m.guard(); err != nil {
		return err
	}
	canonical := CanonicalName(name)
	if !m.available.Exists(canonical) {
		return fmt.Errorf("%w: %s", ErrUnknownFragment, canonical)
	}
	// Best effort: a missing enabled entry is fine.
	if m.enabled.IsEnabled(canonical) {
		if err := m.enabled.Disable(canonical); err != nil {
			m.log.Debug().Err(err).Str("name", canonical).Msg("drop enabled entry")
		}
	}
	if err := m.available.Remove(canonical); err != nil {
		return fmt.Errorf("remove %s: %w", canonical, err)
	}
	return nil
}

// List returns the enabled and disabled fragment names, each sorted.
// Disabled means present in the available store with no enabled entry.
func (m *Manager) List() (enabled, disabled []string, err error) {
	enabled, err = m.enabled.Names()
	if err != nil {
		return nil, nil, err
	}
	available, err := m.available.Names()
	if err != nil {
		return nil, nil, err
	}
	enabledSet := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		enabledSet[name] = true
	}
	for _, name := range available {
		if !enabledSet[name] {
			disabled = append(disabled, name)
		}
	}
	return enabled, disabled, nil
}

// Show returns a fragment's content annotated line by line by the given
// annotator.
func (m *Manager) Show(annotator *Annotator, name string) (string, error) {
	canonical := CanonicalName(name)
	content, err := m.available.Read(canonical)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrUnknownFragment, canonical)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", canonical, err)
	}
	return annotator.Annotate(canonical, content), nil
}
