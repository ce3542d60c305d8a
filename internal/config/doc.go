// Package config defines the application's configuration structure and
// loading. Values come from an optional config.yaml plus LINGOLOG_-prefixed
// environment variables (env wins), unmarshalled with viper and validated
// with go-playground/validator struct tags.
package config
