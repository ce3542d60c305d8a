package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Study    StudyConfig    `mapstructure:"study" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the single-user authentication settings: a bcrypt
// hash of the owner's password and the JWT signing material.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	PasswordHash         string `mapstructure:"password_hash" validate:"required"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// StudyConfig contains the study-tracking parameters consumed by the
// analytics engine and its HTTP views.
type StudyConfig struct {
	// WeeklyGoalMinutes is the minutes-per-week study goal.
	WeeklyGoalMinutes int `mapstructure:"weekly_goal_minutes" validate:"required,gt=0"`

	// WeekStartDay names the weekday on which goal weeks begin.
	WeekStartDay string `mapstructure:"week_start_day" validate:"required,oneof=sunday monday tuesday wednesday thursday friday saturday"`

	// StreakLookbackDays bounds how far back streak computation scans.
	StreakLookbackDays int `mapstructure:"streak_lookback_days" validate:"required,gt=0"`

	// RollingWindowDays is the default size of the rolling per-day series.
	RollingWindowDays int `mapstructure:"rolling_window_days" validate:"required,gt=0"`

	// HeatmapWeeks is the default number of trailing weeks in the heatmap.
	HeatmapWeeks int `mapstructure:"heatmap_weeks" validate:"required,gt=0"`
}

// weekdays maps configured week-start names to time.Weekday values.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WeekStart returns the configured week-start day as a time.Weekday.
// Returns an error for names the validator would also have rejected.
func (c StudyConfig) WeekStart() (time.Weekday, error) {
	day, ok := weekdays[strings.ToLower(c.WeekStartDay)]
	if !ok {
		return time.Monday, fmt.Errorf("unknown week start day: %q", c.WeekStartDay)
	}
	return day, nil
}
