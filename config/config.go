// Package config holds the client configuration: API location, the page's
// element ids, the detail-link route and every user-visible string.
// Defaults are embedded; a YAML file and environment variables can override them.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the full client configuration.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Elements ElementsConfig `yaml:"elements"`
	Routes   RoutesConfig   `yaml:"routes"`
	Messages MessagesConfig `yaml:"messages"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// APIConfig locates the cafe backend.
type APIConfig struct {
	BaseURL string `yaml:"base_url"` // empty = same origin
}

// ElementsConfig names the page elements by id.
type ElementsConfig struct {
	List         string `yaml:"list"`
	RandomButton string `yaml:"random_button"`
	SearchForm   string `yaml:"search_form"`
	SearchInput  string `yaml:"search_input"`
}

// RoutesConfig builds outbound links.
type RoutesConfig struct {
	DetailPrefix string `yaml:"detail_prefix"` // detail link is prefix + id
}

// MessagesConfig holds alert texts, inline messages and card labels.
type MessagesConfig struct {
	EmptySearch        string `yaml:"empty_search"`
	NoResults          string `yaml:"no_results"`
	ListFailed         string `yaml:"list_failed"`
	SearchFailedPrefix string `yaml:"search_failed_prefix"`
	SearchFailed       string `yaml:"search_failed"`
	RandomPickPrefix   string `yaml:"random_pick_prefix"`
	RandomFailedPrefix string `yaml:"random_failed_prefix"`
	RandomFailed       string `yaml:"random_failed"`
	LocationLabel      string `yaml:"location_label"`
	PriceLabel         string `yaml:"price_label"`
	PriceFallback      string `yaml:"price_fallback"`
	MapLink            string `yaml:"map_link"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the embedded defaults.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Parse overlays YAML data on the defaults. Keys absent from data keep
// their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Load reads the file at path (defaults only when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides lets CAFELIST_BASE_URL and CAFELIST_LOG_LEVEL win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CAFELIST_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("CAFELIST_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks that every element id and route is set and the log level is known.
func (c Config) Validate() error {
	var errs []error

	required := []struct{ key, value string }{
		{"elements.list", c.Elements.List},
		{"elements.random_button", c.Elements.RandomButton},
		{"elements.search_form", c.Elements.SearchForm},
		{"elements.search_input", c.Elements.SearchInput},
		{"routes.detail_prefix", c.Routes.DetailPrefix},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.key))
		}
	}

	if _, err := c.Logging.ZapLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ZapLevel parses the configured level. Empty means info.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
