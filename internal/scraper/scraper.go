// Package scraper collects headlines straight from news section pages. One
// source is scraped directly; without a source filter every registered
// source is scraped by a fixed pool of workers and the results are merged.
package scraper

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/classifier"
	scrapercfg "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/scraper"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// SourceScraper scrapes one source.
type SourceScraper interface {
	Scrape(ctx context.Context, d sources.Descriptor, category string, limit int) ([]news.Item, error)
}

// SourceScraperFunc adapts a function to SourceScraper.
type SourceScraperFunc func(ctx context.Context, d sources.Descriptor, category string, limit int) ([]news.Item, error)

// Scrape calls f.
func (f SourceScraperFunc) Scrape(ctx context.Context, d sources.Descriptor, category string, limit int) ([]news.Item, error) {
	return f(ctx, d, category, limit)
}

// PageScraper fetches a source's section page and extracts its headlines.
type PageScraper struct {
	fetcher   PageFetcher
	extractor *Extractor
}

// Ensure PageScraper implements SourceScraper
var _ SourceScraper = (*PageScraper)(nil)

// NewPageScraper creates a PageScraper.
func NewPageScraper(fetcher PageFetcher, extractor *Extractor) *PageScraper {
	return &PageScraper{fetcher: fetcher, extractor: extractor}
}

// Scrape returns up to limit headlines from d's page for category.
func (s *PageScraper) Scrape(ctx context.Context, d sources.Descriptor, category string, limit int) ([]news.Item, error) {
	pageURL := d.URLFor(category)
	doc, err := s.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	return s.extractor.Extract(doc, d, category, limit), nil
}

// Scraper implements news.Fetcher over the source registry.
type Scraper struct {
	registry *sources.Registry
	source   SourceScraper
	workers  int
	logger   logger.Interface
}

// Ensure Scraper implements news.Fetcher
var _ news.Fetcher = (*Scraper)(nil)

// Params holds the collaborators of a Scraper.
type Params struct {
	Config     *scrapercfg.Config
	Registry   *sources.Registry
	Source     SourceScraper
	Classifier *classifier.Classifier
	Logger     logger.Interface
}

// New creates a Scraper. A nil Source is wired to a colly-backed
// PageScraper.
func New(p Params) *Scraper {
	cfg := p.Config
	if cfg == nil {
		cfg = scrapercfg.New()
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNoOp()
	}
	log = log.WithComponent("scraper")

	src := p.Source
	if src == nil {
		src = NewPageScraper(
			NewCollyFetcher(cfg, nil),
			NewExtractor(p.Classifier, WithExtractorLogger(log)),
		)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = scrapercfg.DefaultWorkers
	}

	return &Scraper{
		registry: p.Registry,
		source:   src,
		workers:  workers,
		logger:   log,
	}
}

// Fetch scrapes q.Source, or every source when q.Source is empty. Failures
// are logged and yield fewer or no items.
func (s *Scraper) Fetch(ctx context.Context, q news.Query) []news.Item {
	if s.registry == nil {
		return []news.Item{}
	}
	if q.Source != "" {
		return s.fetchOne(ctx, q)
	}
	return s.fetchAll(ctx, q)
}

func (s *Scraper) fetchOne(ctx context.Context, q news.Query) []news.Item {
	d, ok := s.registry.Lookup(q.Source)
	if !ok {
		s.logger.Warn("Cannot scrape source", "error", fmt.Errorf("%w: %s", ErrUnknownSource, q.Source))
		return []news.Item{}
	}
	return s.scrape(ctx, d, q.Category, q.Limit)
}

// fetchAll fans out over all sources, each asked for limit/n+1 items, then
// sorts the merged result by PublishedAt descending and truncates it.
func (s *Scraper) fetchAll(ctx context.Context, q news.Query) []news.Item {
	all := s.registry.All()
	perSource := q.Limit/len(all) + 1
	results := make([][]news.Item, len(all))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(s.workers, len(all)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.scrapeRecovered(ctx, all[i], q.Category, perSource)
			}
		}()
	}
	for i := range all {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	merged := make([]news.Item, 0, perSource*len(all))
	for _, items := range results {
		merged = append(merged, items...)
	}

	SortByPublished(merged)
	if q.Limit >= 0 && len(merged) > q.Limit {
		merged = merged[:q.Limit]
	}
	return merged
}

// scrapeRecovered runs scrape on a worker goroutine. A panicking source is
// logged and contributes no items.
func (s *Scraper) scrapeRecovered(ctx context.Context, d sources.Descriptor, category string, limit int) (items []news.Item) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithSource(d.Key).Error("Scrape panicked", "panic", fmt.Sprint(r))
			items = []news.Item{}
		}
	}()
	return s.scrape(ctx, d, category, limit)
}

func (s *Scraper) scrape(ctx context.Context, d sources.Descriptor, category string, limit int) []news.Item {
	log := s.logger.WithSource(d.Key)
	start := time.Now()

	items, err := s.source.Scrape(ctx, d, category, limit)
	if err != nil {
		log.Warn("Scrape failed", "error", err)
		return []news.Item{}
	}
	if items == nil {
		items = []news.Item{}
	}

	log.WithDuration(time.Since(start)).Debug("Scraped source", "count", len(items))
	return items
}

// SortByPublished orders items by their PublishedAt text, greatest first.
// The comparison is lexicographic on the display string, and ties keep
// their input order.
func SortByPublished(items []news.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt > items[j].PublishedAt
	})
}
