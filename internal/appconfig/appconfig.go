// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the config file read when --config is not given.
	DefaultConfigPath = "config/config.json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings that shape a run but not what is searched for.
type Config struct {
	Debug       bool   `json:"debug"`
	LogFile     string `json:"logFile,omitempty"`
	Color       string `json:"color,omitempty"`
	JSONMode    bool   `json:"jsonMode"`
	Interactive bool   `json:"interactive"`
	ConfigPath  string `json:"-"`
}

// SetDefaults registers the fallback value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("logFile", "")
	v.SetDefault("color", ColorAuto)
	v.SetDefault("jsonMode", false)
	v.SetDefault("interactive", false)
}

// ColorMode returns the normalized color setting, auto when unset.
func (c Config) ColorMode() string {
	mode := strings.ToLower(strings.TrimSpace(c.Color))
	if mode == "" {
		return ColorAuto
	}
	return mode
}

// ColorEnabled resolves the color mode for an output that is or is not a terminal.
func (c Config) ColorEnabled(isTTY bool) bool {
	switch c.ColorMode() {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}

// Validate rejects values viper accepts but the application cannot use.
func (c Config) Validate() error {
	switch c.ColorMode() {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
}

// Read loads the config file at path into v. A missing file is only an error
// when the path was given explicitly. JSON files are checked against the
// config schema first. It returns the path that was read, or "" if none.
func Read(v *viper.Viper, path string, explicit bool) (string, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return "", nil
		}
		return "", fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := ValidateJSON(data); err != nil {
			return "", fmt.Errorf("invalid config file %q: %w", path, err)
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return path, nil
}

// Load materializes the merged flag, file and default values of v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Color = cfg.ColorMode()
	return cfg, nil
}
