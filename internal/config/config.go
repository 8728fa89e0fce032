// Package config loads and persists matcompare configuration.
//
// Configuration lives in ~/.matcompare/config.yaml (or $MATCOMPARE_HOME).
// Command-line flags and MATCOMPARE_* environment variables are layered on
// top by the cli package; nothing below the cli reads the environment for
// backend settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/matcompare/internal/backend"
	"github.com/rshade/matcompare/internal/logging"
)

// Defaults.
const (
	DefaultTimeout       = "30s"
	DefaultLogLevel      = "info"
	DefaultOutputFormat  = "table"
	configFileName       = "config.yaml"
	logFileName          = "matcompare.log"
	logDirName           = "logs"
	configFilePermission = 0o600
)

// Output formats accepted by output.default_format.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config is the on-disk configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
	loadErr    error
}

// BackendConfig locates the materials backend.
type BackendConfig struct {
	URL string `yaml:"url"`
	// Timeout is a Go duration string; "0" disables the timeout.
	Timeout string `yaml:"timeout"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Defaults returns a Config populated with built-in defaults only.
func Defaults() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:     backend.DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Output: OutputConfig{DefaultFormat: DefaultOutputFormat},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: logging.FormatConsole,
		},
	}
}

// New returns the defaults overlaid with the user's config file, when one
// exists. A broken file does not fail New; the error is kept for LoadError.
func New() *Config {
	cfg := Defaults()

	dir, err := GetConfigDir()
	if err != nil {
		cfg.loadErr = err
		return cfg
	}
	cfg.configPath = filepath.Join(dir, configFileName)
	cfg.Logging.File = filepath.Join(dir, logDirName, logFileName)

	if _, statErr := os.Stat(cfg.configPath); statErr == nil {
		cfg.loadErr = cfg.Load(cfg.configPath)
	}
	return cfg
}

// NewFromFile returns the defaults overlaid with the file at path. Unlike
// New, a missing or invalid file is an error.
func NewFromFile(path string) (*Config, error) {
	cfg := New()
	cfg.loadErr = nil
	if err := cfg.Load(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load overlays the YAML file at path onto c. Keys absent from the file keep
// their current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

// LoadError returns the error New hit while reading the user file, if any.
func (c *Config) LoadError() error { return c.loadErr }

// ConfigPath returns the file this configuration is read from and saved to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no config path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, configFilePermission); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	if _, err := backend.NormalizeBaseURL(c.Backend.URL); err != nil {
		errs = append(errs, fmt.Errorf("backend.url: %w", err))
	}
	if _, err := ParseTimeout(c.Backend.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("backend.timeout: %w", err))
	}

	switch strings.ToLower(c.Output.DefaultFormat) {
	case "", OutputTable, OutputJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format: unsupported format %q", c.Output.DefaultFormat))
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
			errs = append(errs, fmt.Errorf("logging.level: %w", err))
		}
	}
	switch c.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format: unsupported format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// BackendTimeout returns the parsed backend timeout, falling back to the
// default when the configured value is invalid.
func (c *Config) BackendTimeout() time.Duration {
	d, err := ParseTimeout(c.Backend.Timeout)
	if err != nil {
		d, _ = ParseTimeout(DefaultTimeout)
	}
	return d
}

// ParseTimeout parses a timeout duration. Empty means the default; "0"
// disables the timeout. Negative durations are rejected.
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultTimeout
	}
	if s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must be >= 0, got %s", d)
	}
	return d, nil
}
