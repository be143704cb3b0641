// Package config assembles the application configuration from defaults, an
// optional YAML file and the environment. The resulting Config is built once
// per process and handed to every component; nothing mutates it afterwards.
package config

import (
	"fmt"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/app"
	newsapicfg "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/newsapi"
	scrapercfg "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/scraper"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// Interface defines the interface for configuration access.
type Interface interface {
	// GetAppConfig returns the application configuration.
	GetAppConfig() *app.Config
	// GetLoggerConfig returns the logger configuration.
	GetLoggerConfig() *logger.Config
	// GetNewsAPIConfig returns the news API configuration.
	GetNewsAPIConfig() *newsapicfg.Config
	// GetScraperConfig returns the scraper configuration.
	GetScraperConfig() *scrapercfg.Config
	// GetSources returns the source registry.
	GetSources() *sources.Registry
	// Validate validates the configuration.
	Validate() error
}

// Ensure Config implements Interface
var _ Interface = (*Config)(nil)

// SourcesConfig points at an optional sources file.
type SourcesConfig struct {
	// File overrides the built-in source table when set
	File string `mapstructure:"file" yaml:"file"`
}

// Config represents the application configuration.
type Config struct {
	App     *app.Config        `mapstructure:"app" yaml:"app"`
	Logger  *logger.Config     `mapstructure:"logger" yaml:"logger"`
	NewsAPI *newsapicfg.Config `mapstructure:"newsapi" yaml:"newsapi"`
	Scraper *scrapercfg.Config `mapstructure:"scraper" yaml:"scraper"`
	Sources SourcesConfig      `mapstructure:"sources" yaml:"sources"`

	registry *sources.Registry
}

// New returns a Config populated with defaults and the built-in sources.
func New() (*Config, error) {
	registry, err := sources.Default()
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	return &Config{
		App:      app.New(),
		Logger:   &logger.Config{Level: logger.DefaultLevel, Encoding: logger.DefaultEncoding},
		NewsAPI:  newsapicfg.New(),
		Scraper:  scrapercfg.New(),
		registry: registry,
	}, nil
}

// GetAppConfig returns the application configuration.
func (c *Config) GetAppConfig() *app.Config { return c.App }

// GetLoggerConfig returns the logger configuration.
func (c *Config) GetLoggerConfig() *logger.Config { return c.Logger }

// GetNewsAPIConfig returns the news API configuration.
func (c *Config) GetNewsAPIConfig() *newsapicfg.Config { return c.NewsAPI }

// GetScraperConfig returns the scraper configuration.
func (c *Config) GetScraperConfig() *scrapercfg.Config { return c.Scraper }

// GetSources returns the source registry.
func (c *Config) GetSources() *sources.Registry { return c.registry }

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.App == nil || c.Logger == nil || c.NewsAPI == nil || c.Scraper == nil {
		return ErrIncompleteConfig
	}
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if _, err := logger.ParseLevel(string(c.Logger.Level)); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if err := c.NewsAPI.Validate(); err != nil {
		return fmt.Errorf("newsapi: %w", err)
	}
	if err := c.Scraper.Validate(); err != nil {
		return fmt.Errorf("scraper: %w", err)
	}
	if c.registry == nil || c.registry.Len() == 0 {
		return fmt.Errorf("sources: %w", sources.ErrNoSources)
	}
	return nil
}
