// Package config provides Viper-based configuration management for fakeimg
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-fakeimage/pkg/filler"
	"github.com/goliatone/go-fakeimage/pkg/placeholder"
)

// EnvPrefix prefixes every environment override, e.g. FAKEIMG_BASE_URL.
const EnvPrefix = "FAKEIMG"

// Config represents the complete fakeimg configuration
type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	GalleryCount int           `mapstructure:"gallery_count"`
	SizesFile    string        `mapstructure:"sizes_file"`
	Theme        ThemeConfig   `mapstructure:"theme"`
	Logging      LoggingConfig `mapstructure:"logging"`
}

// ThemeConfig selects an optional go-theme manifest used to colour refs
type ThemeConfig struct {
	File    string `mapstructure:"file"`
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and environment variables. overrides
// are applied last and win over both.
func Load(cfgFile string, overrides map[string]any) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".fakeimg")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fakeimg")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or env is present.
func Default() *Config {
	return &Config{
		BaseURL:      placeholder.DefaultBaseURL,
		GalleryCount: filler.DefaultGalleryCount,
		Logging:      LoggingConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("gallery_count", def.GalleryCount)
	v.SetDefault("sizes_file", "")
	v.SetDefault("theme.file", "")
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("logging.level", def.Logging.Level)
}

func validate(cfg *Config) error {
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if cfg.GalleryCount < 1 {
		return fmt.Errorf("gallery_count must be at least 1, got %d", cfg.GalleryCount)
	}
	if cfg.Theme.File != "" && strings.TrimSpace(cfg.Theme.Name) == "" {
		return fmt.Errorf("theme.name is required when theme.file is set")
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "", "info", "debug", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", cfg.Logging.Level)
	}
	return nil
}
