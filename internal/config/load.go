package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// LINGOLOG_SERVER_PORT for server.port.
const envPrefix = "LINGOLOG"

// Load reads configuration from environment variables and an optional
// config file (config.yaml in the working directory). Environment variables
// take precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Optional config file; a missing file is fine, a malformed one is not.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables: LINGOLOG_SERVER_PORT overrides server.port.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not register keys on its own; bind each known key
	// explicitly so Unmarshal sees env-only values.
	for _, key := range configKeys() {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults for everything that has a sensible one.
// Secrets and the database URL deliberately have none.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("study.weekly_goal_minutes", 150)
	v.SetDefault("study.week_start_day", "monday")
	v.SetDefault("study.streak_lookback_days", 365)
	v.SetDefault("study.rolling_window_days", 28)
	v.SetDefault("study.heatmap_weeks", 12)
}

// configKeys lists every key Load understands, for explicit env binding.
func configKeys() []string {
	return []string{
		"server.port",
		"server.log_level",
		"database.url",
		"auth.jwt_secret",
		"auth.password_hash",
		"auth.token_lifetime_minutes",
		"study.weekly_goal_minutes",
		"study.week_start_day",
		"study.streak_lookback_days",
		"study.rolling_window_days",
		"study.heatmap_weeks",
	}
}
