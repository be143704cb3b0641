package headlines

import (
	"context"
	"fmt"
	"time"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/render"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// Runner fetches headlines with the selected strategy and renders them.
// Fetch failures never escape Run: they end up in a panel.
type Runner struct {
	api      news.Fetcher
	scraper  news.Fetcher
	registry *sources.Registry
	renderer *render.Renderer
	tracker  render.Tracker
	logger   logger.Interface
}

// RunnerParams holds the collaborators of a Runner.
type RunnerParams struct {
	API      news.Fetcher
	Scraper  news.Fetcher
	Registry *sources.Registry
	Renderer *render.Renderer
	Tracker  render.Tracker
	Logger   logger.Interface
}

// NewRunner creates a Runner.
func NewRunner(p RunnerParams) *Runner {
	renderer := p.Renderer
	if renderer == nil {
		renderer = render.New(nil)
	}
	tracker := p.Tracker
	if tracker == nil {
		tracker = render.NoopTracker{}
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Runner{
		api:      p.API,
		scraper:  p.Scraper,
		registry: p.Registry,
		renderer: renderer,
		tracker:  tracker,
		logger:   log.WithComponent("headlines"),
	}
}

// Registry returns the source registry used for validation.
func (r *Runner) Registry() *sources.Registry {
	return r.registry
}

// Renderer returns the output renderer.
func (r *Runner) Renderer() *render.Renderer {
	return r.renderer
}

// Run fetches and renders one result set.
func (r *Runner) Run(ctx context.Context, opts Options) {
	log := r.logger.With("mode", opts.Mode(), "limit", opts.Limit)
	if opts.Source != "" {
		log = log.WithSource(opts.Source)
	}
	if opts.Category != "" {
		log = log.WithCategory(opts.Category)
	}

	start := time.Now()
	done := r.tracker.Track(render.FetchingMessage)
	items, err := r.fetch(ctx, opts)
	done()

	switch {
	case err != nil:
		log.Error("Fetching headlines failed", "error", err)
		r.renderer.Error(err)
	case len(items) == 0:
		log.WithDuration(time.Since(start)).Info("No headlines found")
		r.renderer.NoResults()
	default:
		log.WithDuration(time.Since(start)).Info("Fetched headlines", "count", len(items))
		r.renderer.Headlines(items, opts.Source, opts.Category)
	}
}

func (r *Runner) fetch(ctx context.Context, opts Options) (items []news.Item, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			items = nil
			err = fmt.Errorf("%w: %v", ErrFetchPanicked, rec)
		}
	}()

	fetcher := r.api
	if opts.UseScraper {
		fetcher = r.scraper
	}
	if fetcher == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFetcher, opts.Mode())
	}
	return fetcher.Fetch(ctx, opts.Query()), nil
}
