// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Breaks BreaksConfig `toml:"breaks"`
	UI     UIConfig     `toml:"ui"`
}

// BreaksConfig holds the break shortcuts offered in diff mode.
type BreaksConfig struct {
	Shortcuts []int `toml:"shortcuts"` // minutes, e.g. [0, 15, 30, 60]
}

// UIConfig holds TUI settings.
type UIConfig struct {
	AltScreen bool `toml:"alt_screen"`
}

// maxShortcuts is the number of alt+digit keys the TUI binds.
const maxShortcuts = 9

// maxBreakMinutes keeps a shortcut within the four digits of the break field.
const maxBreakMinutes = 9999

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Breaks: BreaksConfig{
			Shortcuts: []int{0, 15, 30, 60},
		},
		UI: UIConfig{
			AltScreen: true,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timecalc", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TIMECALC_BREAK_SHORTCUTS"); v != "" {
		shortcuts, err := parseShortcuts(v)
		if err != nil {
			return fmt.Errorf("TIMECALC_BREAK_SHORTCUTS: %w", err)
		}
		cfg.Breaks.Shortcuts = shortcuts
	}
	if v := os.Getenv("TIMECALC_ALT_SCREEN"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TIMECALC_ALT_SCREEN: %w", err)
		}
		cfg.UI.AltScreen = on
	}
	return nil
}

// parseShortcuts reads a comma separated list of minutes such as "0,15,30".
func parseShortcuts(v string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid break minutes %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Breaks.Shortcuts) == 0 {
		return errors.New("at least one break shortcut must be configured")
	}
	if len(c.Breaks.Shortcuts) > maxShortcuts {
		return fmt.Errorf("at most %d break shortcuts are supported, got %d", maxShortcuts, len(c.Breaks.Shortcuts))
	}
	for _, m := range c.Breaks.Shortcuts {
		if m < 0 {
			return fmt.Errorf("break shortcut must not be negative, got %d", m)
		}
		if m > maxBreakMinutes {
			return fmt.Errorf("break shortcut must be at most %d minutes, got %d", maxBreakMinutes, m)
		}
	}
	return nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	data, err := toml.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
