// Package config holds server settings. Settings come from an
// optional YAML file plus environment overrides; everything has a
// working default so the server runs with no configuration at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized at startup.
const (
	// EnvConfigFile points to a YAML config file.
	EnvConfigFile = "ARCHFORGE_CONFIG"
	// EnvDataDir overrides the run database directory.
	EnvDataDir = "ARCHFORGE_DATA_DIR"
)

// Config holds all server settings.
type Config struct {
	// DataDir is the directory for the run database. Default
	// ~/.archforge. Empty after resolution means persistence is
	// disabled and runs are held in memory only.
	DataDir string `yaml:"data_dir"`

	// Ephemeral disables on-disk persistence. Halted runs then
	// survive only for the lifetime of the server process.
	Ephemeral bool `yaml:"ephemeral"`
}

// Load reads a YAML config file and applies defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Resolve builds the effective configuration: the file named by
// ARCHFORGE_CONFIG if set, then environment overrides, then defaults.
func Resolve() (Config, error) {
	var cfg Config

	if path := os.Getenv(EnvConfigFile); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" && !c.Ephemeral {
		home, err := os.UserHomeDir()
		if err == nil {
			c.DataDir = filepath.Join(home, ".archforge")
		} else {
			// No resolvable home directory. Fall back to
			// in-memory persistence rather than failing startup.
			c.Ephemeral = true
		}
	}
	if c.Ephemeral {
		c.DataDir = ""
	}
}
