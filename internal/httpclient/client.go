// Package httpclient builds the HTTP clients and transports shared by the
// news API client and the page scraper.
package httpclient

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout is the default timeout for HTTP requests
	DefaultTimeout = 10 * time.Second

	// DefaultMaxIdleConns is the default maximum number of idle connections
	DefaultMaxIdleConns = 20

	// DefaultMaxIdleConnsPerHost is the default maximum number of idle connections per host
	DefaultMaxIdleConnsPerHost = 4

	// DefaultIdleConnTimeout is the default idle connection timeout
	DefaultIdleConnTimeout = 90 * time.Second

	// DefaultTLSHandshakeTimeout is the default TLS handshake timeout
	DefaultTLSHandshakeTimeout = 10 * time.Second
)

// ClientConfig configures an HTTP client.
type ClientConfig struct {
	// Timeout specifies a time limit for requests made by this Client.
	Timeout time.Duration

	// MaxIdleConns controls the maximum number of idle (keep-alive) connections
	// across all hosts.
	MaxIdleConns int

	// MaxIdleConnsPerHost controls the maximum idle connections to keep per-host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is the maximum amount of time an idle connection will
	// remain idle before closing itself.
	IdleConnTimeout time.Duration

	// ResponseHeaderTimeout, if non-zero, bounds the wait for response headers.
	// Zero falls back to Timeout.
	ResponseHeaderTimeout time.Duration

	// TLSHandshakeTimeout specifies the maximum amount of time to wait for a
	// TLS handshake.
	TLSHandshakeTimeout time.Duration
}

// withDefaults fills zero values.
func (cfg ClientConfig) withDefaults() ClientConfig {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = DefaultMaxIdleConns
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = DefaultIdleConnTimeout
	}
	if cfg.ResponseHeaderTimeout == 0 {
		cfg.ResponseHeaderTimeout = cfg.Timeout
	}
	if cfg.TLSHandshakeTimeout == 0 {
		cfg.TLSHandshakeTimeout = DefaultTLSHandshakeTimeout
	}
	return cfg
}

// NewTransport creates a transport with standardized pooling and timeouts.
// If cfg is nil, default values are used.
func NewTransport(cfg *ClientConfig) *http.Transport {
	if cfg == nil {
		cfg = &ClientConfig{}
	}
	c := cfg.withDefaults()

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          c.MaxIdleConns,
		MaxIdleConnsPerHost:   c.MaxIdleConnsPerHost,
		IdleConnTimeout:       c.IdleConnTimeout,
		ResponseHeaderTimeout: c.ResponseHeaderTimeout,
		TLSHandshakeTimeout:   c.TLSHandshakeTimeout,
		ForceAttemptHTTP2:     true,
	}
}

// NewClient creates a new HTTP client with standardized configuration.
// If cfg is nil, default values are used.
func NewClient(cfg *ClientConfig) *http.Client {
	if cfg == nil {
		cfg = &ClientConfig{}
	}
	c := cfg.withDefaults()

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: NewTransport(&c),
	}
}
