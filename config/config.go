// Package config loads application configuration from environment
// variables (LMS_ prefix) and an optional config file, and validates the
// result before the application starts.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alem-hub/alem-lms/internal/validate"
)

// Config holds all application configuration, grouped by concern.
type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	Policy PolicyConfig `mapstructure:"policy"`
}

// AppConfig contains general application settings.
type AppConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// SeedData loads the built-in demo courses and accounts at startup.
	SeedData bool `mapstructure:"seed_data"`
}

// Load reads configuration from the environment and an optional
// lms.yaml in the working directory. Environment variables take
// precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "alem-lms")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.seed_data", true)
	setPolicyDefaults(v)

	v.SetConfigName("lms")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return &cfg, nil
}
