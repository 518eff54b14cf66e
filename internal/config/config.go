// Package config loads the optional fnode.yaml project configuration and
// its environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fnode/pkg/fnode"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the file probed in the working directory.
const ConfigFileName = "fnode.yaml"

// Environment variables overriding file values. They are also honored when
// no config file exists at all.
const (
	EnvMode   = "FNODE_MODE"
	EnvMaxAge = "FNODE_MAX_AGE"
)

// Config is the on-disk configuration shape.
type Config struct {
	// Mode is the error-handling mode: strict, normal or forgiving.
	Mode string `yaml:"mode,omitempty"`

	// MaxAge is the attribute cache freshness window as a Go duration
	// string, e.g. "500ms".
	MaxAge string `yaml:"max_age,omitempty"`
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

// ApplyEnv overlays FNODE_* environment variables onto the config.
// Set variables win over file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = v
	}
	if v := os.Getenv(EnvMaxAge); v != "" {
		c.MaxAge = v
	}
}

// TreeOptions converts the config into fnode.Tree options. Unknown modes
// and unparseable durations are configuration errors.
func (c *Config) TreeOptions() ([]fnode.Option, error) {
	var opts []fnode.Option

	mode, err := fnode.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	opts = append(opts, fnode.WithMode(mode))

	if c.MaxAge != "" {
		d, err := time.ParseDuration(c.MaxAge)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("max_age %q: %w", c.MaxAge, fnode.ErrInvalidConfig)
		}
		opts = append(opts, fnode.WithMaxAge(d))
	}

	return opts, nil
}
