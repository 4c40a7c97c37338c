package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFromCreatesDefault(t *testing.T) {
	t.Setenv("URLL_DEBUG", "")
	path := filepath.Join(t.TempDir(), "nested", "urll.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !strings.Contains(string(data), `fetch_timeout = "30s"`) {
		t.Errorf("unexpected default config:\n%s", data)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Setenv("URLL_DEBUG", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "urll.toml")
	contents := `
user_agent = "custom"
fetch_timeout = "5s"
log_file = "~/urll.log"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UserAgent != "custom" {
		t.Errorf("user agent = %q", cfg.UserAgent)
	}
	if cfg.FetchTimeout.Duration != 5*time.Second {
		t.Errorf("fetch timeout = %v", cfg.FetchTimeout)
	}
	if cfg.MaxBodyBytes != Default().MaxBodyBytes {
		t.Errorf("max body bytes = %d, want default", cfg.MaxBodyBytes)
	}
	if cfg.LogFile != filepath.Join(home, "urll.log") {
		t.Errorf("log file = %q", cfg.LogFile)
	}
	if cfg.Debug {
		t.Error("debug should default to false")
	}
}

func TestLoadFromDebugEnv(t *testing.T) {
	t.Setenv("URLL_DEBUG", "1")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "urll.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if !cfg.Debug {
		t.Error("URLL_DEBUG=1 should enable debug")
	}
}

func TestLoadFromInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urll.toml")
	if err := os.WriteFile(path, []byte(`fetch_timeout = "soon"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected invalid duration to fail")
	}
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := Path(), filepath.Join(home, ".urll", "urll.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
