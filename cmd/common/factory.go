package common

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/classifier"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/newsapi"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/scraper"
)

// NewCommandDeps loads the configuration from the global viper instance and
// creates the run's logger.
func NewCommandDeps() (CommandDeps, error) {
	return NewCommandDepsFrom(viper.GetViper())
}

// NewCommandDepsFrom builds CommandDeps from v.
func NewCommandDepsFrom(v *viper.Viper) (CommandDeps, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	logCfg := *cfg.GetLoggerConfig()
	level, err := logger.ParseLevel(string(logCfg.Level))
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}
	logCfg.Level = level

	log, err := logger.New(&logCfg)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	runID := uuid.NewString()
	appCfg := cfg.GetAppConfig()
	log = log.WithRunID(runID).WithVersion(appCfg.Version).WithEnvironment(appCfg.Environment)

	deps := CommandDeps{
		Logger: log,
		Config: cfg,
		RunID:  runID,
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}

// Fetchers holds one fetcher per strategy.
type Fetchers struct {
	API     news.Fetcher
	Scraper news.Fetcher
}

// NewFetchers wires both strategies from the configuration. They share one
// classifier.
func NewFetchers(deps CommandDeps) Fetchers {
	cfg := deps.Config
	cls := classifier.New(classifier.WithLogger(deps.Logger))

	return Fetchers{
		API: newsapi.NewFetcher(newsapi.FetcherParams{
			Config:     cfg.GetNewsAPIConfig(),
			Resolver:   cfg.GetSources(),
			Classifier: cls,
			Logger:     deps.Logger,
		}),
		Scraper: scraper.New(scraper.Params{
			Config:     cfg.GetScraperConfig(),
			Registry:   cfg.GetSources(),
			Classifier: cls,
			Logger:     deps.Logger,
		}),
	}
}
