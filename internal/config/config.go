package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is prepended to every environment variable read by Load.
	EnvPrefix = "ICONBROWSER_"

	// AllCollections is the collection selector entry that disables the collection filter.
	AllCollections = "All"

	DefaultColumns     = 15
	DefaultSearchDelay = 500 * time.Millisecond
	MaxSearchDelay     = 5 * time.Second

	StyleSystem = "System"
	StyleLight  = "Light"
	StyleDark   = "Dark"

	minWindowWidth  = 900
	minWindowHeight = 600

	appDirName     = "IconBrowser"
	configFileName = "config.yaml"
)

// ColumnOptions lists the column counts offered by the icon grid.
var ColumnOptions = []int{5, 10, 15, 20, 25}

// Styles lists the selectable colour styles.
var Styles = []string{StyleSystem, StyleLight, StyleDark}

var logLevels = []string{"debug", "info", "warn", "error"}

// Config defines the icon browser settings. Values come from DefaultConfig,
// then the YAML file, then ICONBROWSER_* environment variables.
type Config struct {
	Columns     int           `yaml:"columns" env:"COLUMNS"`
	Style       string        `yaml:"style" env:"STYLE"`
	Collection  string        `yaml:"collection" env:"COLLECTION"`
	SearchDelay time.Duration `yaml:"search_delay" env:"SEARCH_DELAY"`

	WindowWidth  int `yaml:"window_width" env:"WINDOW_WIDTH"`
	WindowHeight int `yaml:"window_height" env:"WINDOW_HEIGHT"`

	LogLevel        string `yaml:"log_level" env:"LOG_LEVEL"`
	RememberChoices bool   `yaml:"remember_choices" env:"REMEMBER_CHOICES"`

	// Path is where the configuration was loaded from and where Save writes.
	Path string `yaml:"-" env:"CONFIG"`
	// UnitTest builds the window without entering the event loop.
	UnitTest bool `yaml:"-" env:"UNITTEST_ACTIVE"`
}

// DefaultConfig returns a configuration with sensible defaults: 15 columns, system style, 500ms search delay.
func DefaultConfig() *Config {
	return &Config{
		Columns:         DefaultColumns,
		Style:           StyleSystem,
		Collection:      AllCollections,
		SearchDelay:     DefaultSearchDelay,
		WindowWidth:     1200,
		WindowHeight:    800,
		LogLevel:        "info",
		RememberChoices: true,
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDirName, configFileName)
}

// Load reads the configuration file at path (DefaultPath when empty) and applies
// environment overrides. A missing file is not an error. On error the returned
// configuration still carries the defaults, the environment overrides that
// could be read and the resolved Path, so callers can keep going and save later.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}

	var errs []error
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		errs = append(errs, fmt.Errorf("failed to read config %q: %w", path, err))
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			cfg = DefaultConfig()
			errs = append(errs, fmt.Errorf("failed to parse config %q: %w", path, err))
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		errs = append(errs, fmt.Errorf("parse env: %w", err))
	}
	if cfg.Path == "" {
		cfg.Path = path
	}

	cfg.Validate()
	return cfg, errors.Join(errs...)
}

// Save writes the configuration to cfg.Path as YAML.
func Save(cfg *Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("config path is empty")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(cfg.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %q: %w", cfg.Path, err)
	}
	return nil
}

// Validate replaces out-of-range values with defaults.
func (c *Config) Validate() {
	if !slices.Contains(ColumnOptions, c.Columns) {
		c.Columns = DefaultColumns
	}
	if !slices.Contains(Styles, c.Style) {
		c.Style = StyleSystem
	}
	if c.Collection == "" {
		c.Collection = AllCollections
	}

	if c.SearchDelay < 0 {
		c.SearchDelay = DefaultSearchDelay
	}
	if c.SearchDelay > MaxSearchDelay {
		c.SearchDelay = MaxSearchDelay
	}

	if c.WindowWidth < minWindowWidth {
		c.WindowWidth = minWindowWidth
	}
	if c.WindowHeight < minWindowHeight {
		c.WindowHeight = minWindowHeight
	}

	if !slices.Contains(logLevels, c.LogLevel) {
		c.LogLevel = "info"
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
