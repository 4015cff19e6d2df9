// Package config handles configuration loading for finsight.
// It supports YAML config files with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FINSIGHT_API_PORT.
const EnvPrefix = "FINSIGHT"

// Output formats understood by the CLI.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the complete application configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis" json:"analysis"`
	API      APIConfig      `mapstructure:"api"      yaml:"api"      json:"api"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"  json:"logging"`
	Output   OutputConfig   `mapstructure:"output"   yaml:"output"   json:"output"`
}

// AnalysisConfig holds summary engine settings.
type AnalysisConfig struct {
	Concurrency   int `mapstructure:"concurrency"    yaml:"concurrency"    json:"concurrency"`    // analyzers run in parallel when > 1
	ExcerptLength int `mapstructure:"excerpt_length" yaml:"excerpt_length" json:"excerpt_length"` // runes kept from a news summary
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host         string   `mapstructure:"host"           yaml:"host"           json:"host"`
	Port         int      `mapstructure:"port"           yaml:"port"           json:"port"`
	CORSOrigins  []string `mapstructure:"cors_origins"   yaml:"cors_origins"   json:"cors_origins"`
	MaxBodyBytes int64    `mapstructure:"max_body_bytes" yaml:"max_body_bytes" json:"max_body_bytes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  json:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format" json:"format"` // "text" or "json"
}

// OutputConfig controls how the CLI prints summaries.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"` // "json" or "yaml"
	Indent int    `mapstructure:"indent" yaml:"indent" json:"indent"`
}

// Addr returns the API listen address.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.finsight/config.yaml (home directory)
//  3. /etc/finsight/config.yaml (system)
//
// Environment variables override config file values.
// Format: FINSIGHT_<SECTION>_<KEY>, e.g., FINSIGHT_ANALYSIS_CONCURRENCY
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".finsight"))
	v.AddConfigPath("/etc/finsight")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("analysis.concurrency", 1)
	v.SetDefault("analysis.excerpt_length", 200)

	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("api.max_body_bytes", 10<<20) // 10 MiB

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.format", FormatJSON)
	v.SetDefault("output.indent", 2)
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Analysis.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("analysis.concurrency must be at least 1, got %d", c.Analysis.Concurrency))
	}
	if c.Analysis.ExcerptLength < 0 {
		errs = append(errs, fmt.Errorf("analysis.excerpt_length must not be negative, got %d", c.Analysis.ExcerptLength))
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		errs = append(errs, fmt.Errorf("api.port out of range: %d", c.API.Port))
	}
	if c.API.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("api.max_body_bytes must be positive, got %d", c.API.MaxBodyBytes))
	}
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format must be %q or %q, got %q", FormatJSON, FormatYAML, c.Output.Format))
	}
	if c.Output.Indent < 0 {
		errs = append(errs, fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
