// Package config loads panelcheck settings from defaults, an optional YAML
// file and PANELCHECK_ environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/grindlemire/panelcheck/internal/scenario"
)

// EnvPrefix prefixes every environment override, e.g. PANELCHECK_RUN_SLACK.
const EnvPrefix = "PANELCHECK"

// Engines lists the engine names a run may select.
var Engines = []string{"flex", "gio"}

// Config is the full configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Run    RunConfig    `mapstructure:"run" yaml:"run"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
	// DebugFile, usually set through PANELCHECK_DEBUG, receives a
	// debug-level log regardless of Level.
	DebugFile string `mapstructure:"debug_file" yaml:"debug_file"`
}

// RunConfig controls a scenario run.
type RunConfig struct {
	Engines []string `mapstructure:"engines" yaml:"engines"`
	Slack   float64  `mapstructure:"slack" yaml:"slack"`
	// Scale applies to grids without a scale of their own, as "1.25" or "125%".
	Scale string `mapstructure:"scale" yaml:"scale"`
	// Scenarios is an extra scenario file merged over the built-in table.
	Scenarios string        `mapstructure:"scenarios" yaml:"scenarios"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Metrics   bool          `mapstructure:"metrics" yaml:"metrics"`
	Verbose   bool          `mapstructure:"verbose" yaml:"verbose"`
}

// SetDefaults initializes default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "panelcheck")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.debug_file", "")

	v.SetDefault("run.engines", slices.Clone(Engines))
	v.SetDefault("run.slack", 1.0)
	v.SetDefault("run.scale", "1")
	v.SetDefault("run.scenarios", "")
	v.SetDefault("run.timeout", "5s")
	v.SetDefault("run.metrics", false)
	v.SetDefault("run.verbose", false)
}

// NewDefaultConfig returns the configuration with nothing but defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("unmarshal default config: %v", err))
	}
	return &cfg
}

// Bind points v at an optional config file and the environment. A missing
// default file is not an error; a missing explicit file is.
func Bind(v *viper.Viper, file string) error {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("panelcheck")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("logger.debug_file", EnvPrefix+"_DEBUG"); err != nil {
		return fmt.Errorf("bind debug env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

// FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if len(c.Run.Engines) == 0 {
		return errors.New("run.engines must name at least one engine")
	}
	for _, e := range c.Run.Engines {
		if !slices.Contains(Engines, e) {
			return fmt.Errorf("run.engines: unknown engine %q, want one of %v", e, Engines)
		}
	}
	if c.Run.Slack < 0 {
		return fmt.Errorf("run.slack must not be negative, got %g", c.Run.Slack)
	}
	if c.Run.Timeout <= 0 {
		return fmt.Errorf("run.timeout must be a positive duration, got %s", c.Run.Timeout)
	}
	if _, err := c.Run.ScaleFactor(); err != nil {
		return fmt.Errorf("run.scale: %w", err)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	return nil
}

// ScaleFactor parses Scale.
func (r RunConfig) ScaleFactor() (float64, error) {
	return scenario.ParseScale(r.Scale)
}
