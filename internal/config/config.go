// Package config resolves plugin settings and the phpenv root directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/phpenv-dev/phpenv-ini/internal/phpenv"
)

// EnvRoot overrides the phpenv root when set.
const EnvRoot = "PHPENV_ROOT"

// Config holds the optional plugin config file contents.
type Config struct {
	// Root is the phpenv installation root. Empty means unset.
	Root string `toml:"root"`
	// Phpenv is the host binary name or path. Defaults to "phpenv".
	Phpenv string `toml:"phpenv"`
}

// Path returns the plugin config file location:
// $XDG_CONFIG_HOME/phpenv-ini/config.toml, falling back to
// ~/.config/phpenv-ini/config.toml.
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "phpenv-ini", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "phpenv-ini", "config.toml"), nil
}

// Load reads the plugin config file. A missing file yields defaults.
func Load() (*Config, error) {
	cfg := &Config{Phpenv: "phpenv"}
	path, err := Path()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Phpenv == "" {
		cfg.Phpenv = "phpenv"
	}
	return cfg, nil
}

// ResolveRoot returns the phpenv root, precedence:
// PHPENV_ROOT env > config file > host query.
func (c *Config) ResolveRoot(host phpenv.Host) (string, error) {
	if env := os.Getenv(EnvRoot); env != "" {
		return env, nil
	}
	if c.Root != "" {
		return c.Root, nil
	}
	root, err := host.Root()
	if err != nil {
		return "", fmt.Errorf("resolve phpenv root: %w", err)
	}
	return root, nil
}
