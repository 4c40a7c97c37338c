package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const defaultConfig = `# urll configuration file.

# Show internal counters and pane transitions in the status bar.
# URLL_DEBUG=1 in the environment has the same effect.
debug = false

# User-Agent header sent when fetching pages.
user_agent = "Mozilla/5.0 (compatible; urll/1.0)"

# How long a single page fetch may take.
fetch_timeout = "30s"

# Page bodies are truncated beyond this many bytes.
max_body_bytes = 10485760

# Write debug logs to this file. Empty disables logging.
log_file = ""
`

// Duration is a time.Duration that decodes from strings like "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

type Config struct {
	Debug        bool     `toml:"debug"`
	UserAgent    string   `toml:"user_agent"`
	FetchTimeout Duration `toml:"fetch_timeout"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
	LogFile      string   `toml:"log_file"`
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	return Config{
		UserAgent:    "Mozilla/5.0 (compatible; urll/1.0)",
		FetchTimeout: Duration{30 * time.Second},
		MaxBodyBytes: 10 << 20,
	}
}

// Dir returns the urll configuration directory (~/.urll).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".urll"), nil
}

// Path returns the path to the urll config file.
func Path() string {
	dir, _ := Dir()
	return filepath.Join(dir, "urll.toml")
}

// Load reads the config from ~/.urll/urll.toml, creating a default config
// file if one doesn't exist.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(filepath.Join(dir, "urll.toml"))
}

// LoadFrom reads the config at path, creating it with defaults if it doesn't
// exist. Environment overrides are applied last.
func LoadFrom(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return Config{}, fmt.Errorf("could not create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return Config{}, fmt.Errorf("could not write default config: %w", err)
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse %s: %w", path, err)
	}

	// Expand ~ in log_file.
	if strings.HasPrefix(cfg.LogFile, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("could not determine home directory: %w", err)
		}
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	if strings.TrimSpace(os.Getenv("URLL_DEBUG")) == "1" {
		cfg.Debug = true
	}

	return cfg, nil
}
