// Package config loads mono's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/mono/internal/logging"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full configuration.
type Config struct {
	// DataPath is the SQLite file holding the document and preferences.
	DataPath string `toml:"data_path"`

	// ExportDir is where exported files are written.
	ExportDir string `toml:"export_dir"`

	// HealthAddr enables the health endpoint when non-empty.
	HealthAddr string `toml:"health_addr"`

	Logging LoggingConfig `toml:"logging"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DataPath:  filepath.Join(DataDir(), "mono.db"),
		ExportDir: ".",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   logging.DefaultLogPath(),
		},
	}
}

// DataDir returns the platform-specific data directory.
func DataDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "mono")
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "mono")
	default:
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, _ := os.UserHomeDir()
			dataHome = filepath.Join(home, ".local", "share")
		}
		return filepath.Join(dataHome, "mono")
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	if runtime.GOOS == "linux" {
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, _ := os.UserHomeDir()
			configHome = filepath.Join(home, ".config")
		}
		return filepath.Join(configHome, "mono", "config.toml")
	}
	return filepath.Join(DataDir(), "config.toml")
}

// Load reads the configuration at path, or DefaultPath when empty. A missing
// file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// ApplyEnvOverrides applies MONO_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MONO_DATA"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("MONO_EXPORT_DIR"); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv("MONO_HEALTH_ADDR"); v != "" {
		c.HealthAddr = v
	}
	if v := os.Getenv("MONO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []string

	if c.DataPath == "" {
		errs = append(errs, "data_path is required")
	}
	if c.ExportDir == "" {
		errs = append(errs, "export_dir is required")
	}
	if c.HealthAddr != "" {
		if _, _, err := net.SplitHostPort(c.HealthAddr); err != nil {
			errs = append(errs, fmt.Sprintf("health_addr: %v", err))
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Sprintf("logging.level: %v", err))
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		errs = append(errs, fmt.Sprintf("logging.format: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

// LogConfig converts the logging section into a logging.Config.
// Validate must have succeeded.
func (c *Config) LogConfig() *logging.Config {
	lc := logging.DefaultConfig()
	lc.Level, _ = logging.ParseLevel(c.Logging.Level)
	lc.Format, _ = logging.ParseFormat(c.Logging.Format)
	if c.Logging.File != "" {
		lc.FilePath = c.Logging.File
	}
	return lc
}
