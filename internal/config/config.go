// Package config loads trellis settings from an optional YAML file and
// TRELLIS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TRELLIS_VIEWPORT_WIDTH.
const EnvPrefix = "TRELLIS"

// Config holds the whole application configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Viewport ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	Project  ProjectConfig  `mapstructure:"project" yaml:"project"`
	Fonts    FontsConfig    `mapstructure:"fonts" yaml:"fonts"`
	Scroll   ScrollConfig   `mapstructure:"scroll" yaml:"scroll"`
}

// LoggerConfig configures the process logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig names the console color of each log level.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
}

// ViewportConfig is the size of the root allocation in pixels.
type ViewportConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// ProjectConfig locates the files of a project, relative to Root.
type ProjectConfig struct {
	Root       string `mapstructure:"root" yaml:"root"`
	Index      string `mapstructure:"index" yaml:"index"`
	Stylesheet string `mapstructure:"stylesheet" yaml:"stylesheet"`
	Components string `mapstructure:"components" yaml:"components"`
}

// FontsConfig points at a directory of TrueType fonts. Empty means text is
// measured with the approximate metrics.
type FontsConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// ScrollConfig tunes wheel scrolling.
type ScrollConfig struct {
	// Step is the fraction of the scroll range moved per wheel notch.
	Step float64 `mapstructure:"step" yaml:"step"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "trellis")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "magenta")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	// -- Viewport --
	v.SetDefault("viewport.width", 800)
	v.SetDefault("viewport.height", 600)

	// -- Project --
	v.SetDefault("project.root", ".")
	v.SetDefault("project.index", "index.html")
	v.SetDefault("project.stylesheet", "styles.css")
	v.SetDefault("project.components", "components")

	// -- Fonts --
	v.SetDefault("fonts.dir", "")

	// -- Scroll --
	v.SetDefault("scroll.step", 0.05)
}

// NewViper returns a viper instance with defaults and environment
// overrides registered.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// NewDefaultConfig returns the configuration with nothing but defaults.
func NewDefaultConfig() *Config {
	cfg, err := NewConfigFromViper(NewViper())
	if err != nil {
		panic(fmt.Sprintf("failed to build default config: %v", err))
	}
	return cfg
}

// Load reads path, if given, on top of the defaults. Without a path a
// trellis.yaml in the working directory is used when present.
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("trellis")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Scroll.Step <= 0 || c.Scroll.Step > 1 {
		return fmt.Errorf("scroll.step must be in (0, 1], got %v", c.Scroll.Step)
	}
	if c.Project.Index == "" {
		return errors.New("project.index is required")
	}
	return nil
}
