// Package app holds application identity settings: name, version,
// environment and debug mode.
package app

import (
	"errors"
	"fmt"
)

// Default configuration values
const (
	DefaultName        = "news-aggregator"
	DefaultVersion     = "1.0.0"
	DefaultEnvironment = "production"
)

// Config represents application-specific configuration settings.
type Config struct {
	// Name is the name of the application
	Name string `mapstructure:"name" yaml:"name"`
	// Version is the version of the application
	Version string `mapstructure:"version" yaml:"version"`
	// Environment is the application environment (development, staging, production)
	Environment string `mapstructure:"environment" yaml:"environment"`
	// Debug indicates whether debug mode is enabled
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "staging", "production":
	case "":
		return errors.New("environment must be specified")
	default:
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	if c.Name == "" {
		return errors.New("application name must be specified")
	}

	if c.Version == "" {
		return errors.New("application version must be specified")
	}

	return nil
}

// New creates a new application configuration with the given options.
func New(opts ...Option) *Config {
	cfg := &Config{
		Name:        DefaultName,
		Version:     DefaultVersion,
		Environment: DefaultEnvironment,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option is a function that configures an application configuration.
type Option func(*Config)

// WithEnvironment sets the environment.
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}
