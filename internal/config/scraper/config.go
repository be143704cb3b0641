// Package scraper provides configuration for fetching and parsing news
// section pages.
package scraper

import (
	"errors"
	"time"
)

// Default configuration values
const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultAccept         = "text/html,application/xhtml+xml,application/xml"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
	DefaultTimeout        = 10 * time.Second
	// DefaultWorkers is the size of the multi-source fan-out pool
	DefaultWorkers = 4
)

// Config represents the scraper configuration.
type Config struct {
	// UserAgent is sent with every page request
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// Accept is the Accept header value
	Accept string `mapstructure:"accept" yaml:"accept"`
	// AcceptLanguage is the Accept-Language header value
	AcceptLanguage string `mapstructure:"accept_language" yaml:"accept_language"`
	// Timeout bounds each page request
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// Workers is the number of sources scraped concurrently
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// Validate validates the scraper configuration.
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		return errors.New("user_agent is required")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.Workers < 1 {
		return errors.New("workers must be positive")
	}
	return nil
}

// New creates a new scraper configuration with the given options.
func New(opts ...Option) *Config {
	cfg := &Config{
		UserAgent:      DefaultUserAgent,
		Accept:         DefaultAccept,
		AcceptLanguage: DefaultAcceptLanguage,
		Timeout:        DefaultTimeout,
		Workers:        DefaultWorkers,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option is a function that configures a scraper configuration.
type Option func(*Config)

// WithUserAgent sets the user agent.
func WithUserAgent(agent string) Option {
	return func(c *Config) {
		c.UserAgent = agent
	}
}

// WithTimeout sets the page request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithWorkers sets the fan-out pool size.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}
