// Package newsapi provides configuration for the news search API client:
// endpoint, credentials, retry budget and request timeout.
package newsapi

import (
	"errors"
	"net/url"
	"time"
)

// Default configuration values
const (
	DefaultEndpoint   = "https://newsapi.org/v2/everything"
	DefaultLanguage   = "en"
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 * time.Second
	DefaultTimeout    = 10 * time.Second
)

// Config represents the news API configuration.
type Config struct {
	// APIKey authenticates against the news API. Empty is allowed; requests
	// then fail and the fetcher degrades to no results.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
	// Endpoint is the search endpoint URL
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	// Language restricts results to one language code
	Language string `mapstructure:"language" yaml:"language"`
	// MaxRetries is the number of attempts of the primary strategy
	MaxRetries int `mapstructure:"max_retries" yaml:"max_retries"`
	// RetryDelay is the fixed wait between attempts
	RetryDelay time.Duration `mapstructure:"retry_delay" yaml:"retry_delay"`
	// Timeout bounds each request
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Validate validates the news API configuration.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("endpoint must be an absolute http(s) URL")
	}
	if c.MaxRetries < 1 {
		return errors.New("max_retries must be positive")
	}
	if c.RetryDelay < 0 {
		return errors.New("retry_delay must be non-negative")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

// New creates a new news API configuration with the given options.
func New(opts ...Option) *Config {
	cfg := &Config{
		Endpoint:   DefaultEndpoint,
		Language:   DefaultLanguage,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
		Timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option is a function that configures a news API configuration.
type Option func(*Config)

// WithAPIKey sets the API key.
func WithAPIKey(key string) Option {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithEndpoint sets the search endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.Endpoint = endpoint
	}
}

// WithMaxRetries sets the number of attempts.
func WithMaxRetries(n int) Option {
	return func(c *Config) {
		c.MaxRetries = n
	}
}

// WithRetryDelay sets the wait between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Config) {
		c.RetryDelay = d
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}
