package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/taskboard/internal/util"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Seed     SeedConfig     `yaml:"seed"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`
	Reports  ReportsConfig  `yaml:"reports"`
}

type DatabaseConfig struct {
	// DSN is passed to the sqlite3 driver. Empty means in-memory.
	DSN string `yaml:"dsn"`
}

type SeedConfig struct {
	// Path to a YAML dataset. Empty means the built-in sample board.
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

type UIConfig struct {
	Locale       string        `yaml:"locale"`
	Theme        string        `yaml:"theme"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

type LoggingConfig struct {
	Development bool   `yaml:"development"`
	Path        string `yaml:"path"`
}

type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Locale:       LocaleEnglish,
			Theme:        "default",
			TickInterval: TickInterval,
		},
		Logging: LoggingConfig{
			Path: filepath.Join(util.DataDir(AppName), LogFileName),
		},
		Reports: ReportsConfig{
			Dir: util.ReportsDir(AppName),
		},
	}
}

// DefaultPath is config.yaml under the user config dir.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads path over the defaults and then applies TASKBOARD_* overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config %s: %w", path, err)
		default:
			defer file.Close()
			decoder := yaml.NewDecoder(file)
			decoder.KnownFields(true)
			if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("DSN", &c.Database.DSN)
	str("SEED", &c.Seed.Path)
	str("LOCALE", &c.UI.Locale)
	str("THEME", &c.UI.Theme)
	str("LOG_PATH", &c.Logging.Path)
	str("REPORTS_DIR", &c.Reports.Dir)

	if v, ok := lookup(EnvPrefix + "LOG_DEVELOPMENT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sLOG_DEVELOPMENT: %w", EnvPrefix, err)
		}
		c.Logging.Development = b
	}
	if v, ok := lookup(EnvPrefix + "TICK_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTICK_INTERVAL: %w", EnvPrefix, err)
		}
		c.UI.TickInterval = d
	}
	return nil
}

// Validate rejects settings the UI cannot run with.
func (c *Config) Validate() error {
	switch c.UI.Locale {
	case LocaleEnglish, LocaleSpanish:
	default:
		return fmt.Errorf("unsupported locale %q", c.UI.Locale)
	}
	if c.UI.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.UI.TickInterval)
	}
	return nil
}
