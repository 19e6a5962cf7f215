package phpenv

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SystemVersion is the sentinel reported by phpenv when no managed
// version is selected and the OS-provided PHP is in use.
const SystemVersion = "system"

// Host exposes the parts of the phpenv installation this plugin needs.
type Host interface {
	Root() (string, error)
	ActiveVersion() (string, error)
	ListInstalledVersions() ([]string, error)
}

// CLI is a Host backed by the phpenv executable.
type CLI struct {
	binary string
}

// NewCLI returns a Host that shells out to the given phpenv binary.
// An empty binary defaults to "phpenv".
func NewCLI(binary string) *CLI {
	if binary == "" {
		binary = "phpenv"
	}
	return &CLI{binary: binary}
}

func (c *CLI) run(args ...string) (string, error) {
	out, err := exec.Command(c.binary, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", c.binary, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Root returns the phpenv installation root.
func (c *CLI) Root() (string, error) {
	return c.run("root")
}

// ActiveVersion returns the currently selected PHP version name.
func (c *CLI) ActiveVersion() (string, error) {
	return c.run("version-name")
}

// ListInstalledVersions returns the installed version names, sorted.
func (c *CLI) ListInstalledVersions() ([]string, error) {
	out, err := c.run("versions", "--bare")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	versions := strings.Split(out, "\n")
	for i, v := range versions {
		versions[i] = strings.TrimSpace(v)
	}
	SortVersions(versions)
	return versions, nil
}

// SortVersions orders version names ascending by semantic version.
// Names that do not parse as semver sort after all that do,
// lexicographically among themselves.
func SortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, erri := semver.NewVersion(versions[i])
		vj, errj := semver.NewVersion(versions[j])
		switch {
		case erri == nil && errj == nil:
			return vi.LessThan(vj)
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return versions[i] < versions[j]
		}
	})
}

// EnabledDir returns the conf.d directory loaded by the given version.
func EnabledDir(root, version string) string {
	return filepath.Join(root, "versions", version, "etc", "conf.d")
}

// AvailableDir returns the directory holding all known config fragments
// for the given version.
func AvailableDir(root, version string) string {
	return filepath.Join(root, "versions", version, "etc", "conf.d-available")
}
