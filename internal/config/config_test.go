package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := writeConfig(t, "data_dir: /var/lib/archforge\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/var/lib/archforge" {
		t.Errorf("DataDir = %q, want /var/lib/archforge", cfg.DataDir)
	}
	if cfg.Ephemeral {
		t.Error("Ephemeral = true, want false")
	}
}

func TestLoad_EphemeralClearsDataDir(t *testing.T) {
	path := writeConfig(t, "data_dir: /var/lib/archforge\nephemeral: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("DataDir = %q, want empty for ephemeral config", cfg.DataDir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() error = nil, want read failure")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "data_dir: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse failure")
	}
}

func TestResolve_DefaultsToHomeDir(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvDataDir, "")

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.Ephemeral {
		t.Skip("no home directory in this environment")
	}
	if !strings.HasSuffix(cfg.DataDir, ".archforge") {
		t.Errorf("DataDir = %q, want a .archforge default", cfg.DataDir)
	}
}

func TestResolve_EnvDirOverridesFile(t *testing.T) {
	path := writeConfig(t, "data_dir: /from/file\n")
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvDataDir, "/from/env")

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.DataDir != "/from/env" {
		t.Errorf("DataDir = %q, want /from/env", cfg.DataDir)
	}
}

func TestResolve_UsesConfigFile(t *testing.T) {
	path := writeConfig(t, "ephemeral: true\n")
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvDataDir, "")

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !cfg.Ephemeral || cfg.DataDir != "" {
		t.Errorf("Resolve() = %+v, want ephemeral with no data dir", cfg)
	}
}

func TestResolve_BadConfigFileFails(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Resolve(); err == nil {
		t.Error("Resolve() error = nil, want load failure")
	}
}
