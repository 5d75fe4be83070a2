// Package config loads eda configuration from .eda.yaml and the
// environment. Configuration is plain data handed to constructors; nothing
// here is process-global.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/ogaworks/eda/internal/worktree"
)

// Config represents the eda configuration.
type Config struct {
	// Location selects worktree placement: "project" or "central".
	Location string `koanf:"location"`
	// CentralDir overrides the base directory for central placement.
	// Empty means the per-user default (user cache dir).
	CentralDir string `koanf:"central_dir"`
	// CommandTimeout bounds each git invocation.
	CommandTimeout time.Duration `koanf:"command_timeout"`
}

func defaults() map[string]any {
	return map[string]any{
		"location":        worktree.LocationProject.String(),
		"central_dir":     "",
		"command_timeout": "30s",
	}
}

// Load reads configuration from the given YAML file path and environment
// variables. A missing file is not an error; defaults are used.
// Priority: environment variables > file > defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// confmap.Provider wraps an in-memory map and never fails.
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("EDA_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "EDA_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	return unmarshal(k)
}

// LoadFromReader reads configuration from an io.Reader containing YAML.
// Environment variables are not applied. Useful for testing.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := worktree.ParseLocation(c.Location); err != nil {
		return err
	}
	if c.CentralDir != "" && !filepath.IsAbs(c.CentralDir) {
		return fmt.Errorf("central_dir must be an absolute path: %s", c.CentralDir)
	}
	if c.CommandTimeout <= 0 {
		return fmt.Errorf("command_timeout must be positive: %s", c.CommandTimeout)
	}
	return nil
}

// ParsedLocation returns the Location value; validate guarantees it parses.
func (c *Config) ParsedLocation() worktree.Location {
	l, _ := worktree.ParseLocation(c.Location)
	return l
}
