// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// EnvFileName is the optional KEY=VALUE file read from the config directory.
const EnvFileName = "tarjama.env"

// Font size bounds for the reader.
const (
	MinFontSize = 8
	MaxFontSize = 72
)

// Config holds the application configuration.
type Config struct {
	Reader  ReaderConfig  `toml:"reader"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// ReaderConfig holds the translation reader settings.
type ReaderConfig struct {
	FontSize        int      `toml:"font_size"`        // Base translation text size
	NightMode       bool     `toml:"night_mode"`       // Render with night colors
	NightBrightness int      `toml:"night_brightness"` // Gray level (0-255) for night text
	ArabicShaping   bool     `toml:"arabic_shaping"`   // Terminal can shape Arabic script
	Translations    []string `toml:"translations"`     // Names of translations to show; empty means all
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "light", "dark", "sepia"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

var availableThemes = []string{"light", "dark", "sepia"}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Reader: ReaderConfig{
			FontSize:        15,
			NightMode:       false,
			NightBrightness: 255,
			ArabicShaping:   true,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "light",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tarjama.db"
	}
	return filepath.Join(home, ".local", "share", "tarjama", "tarjama.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tarjama", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
// TARJAMA_* variables may also come from tarjama.env next to the config file;
// variables already set in the environment take precedence over it.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := loadEnvFile(filepath.Join(filepath.Dir(path), EnvFileName)); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

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
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// loadEnvFile exports the variables in path unless they are already set.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("reading env file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TARJAMA_FONT_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TARJAMA_FONT_SIZE: %w", err)
		}
		cfg.Reader.FontSize = n
	}
	if v := os.Getenv("TARJAMA_NIGHT_MODE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TARJAMA_NIGHT_MODE: %w", err)
		}
		cfg.Reader.NightMode = b
	}
	if v := os.Getenv("TARJAMA_NIGHT_BRIGHTNESS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TARJAMA_NIGHT_BRIGHTNESS: %w", err)
		}
		cfg.Reader.NightBrightness = n
	}
	if v := os.Getenv("TARJAMA_ARABIC_SHAPING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TARJAMA_ARABIC_SHAPING: %w", err)
		}
		cfg.Reader.ArabicShaping = b
	}

	if v := os.Getenv("TARJAMA_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("TARJAMA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Reader.FontSize < MinFontSize || c.Reader.FontSize > MaxFontSize {
		return fmt.Errorf("font_size must be between %d and %d, got %d", MinFontSize, MaxFontSize, c.Reader.FontSize)
	}
	if c.Reader.NightBrightness < 0 || c.Reader.NightBrightness > 255 {
		return fmt.Errorf("night_brightness must be between 0 and 255, got %d", c.Reader.NightBrightness)
	}
	if !IsAvailableTheme(c.UI.Theme) {
		return fmt.Errorf("unknown theme: %s", c.UI.Theme)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// IsAvailableTheme reports whether name is a theme shipped with tarjama.
func IsAvailableTheme(name string) bool {
	name = strings.ToLower(name)
	for _, t := range availableThemes {
		if t == name {
			return true
		}
	}
	return false
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
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
