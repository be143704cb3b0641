package newsapi

import (
	"context"
	"net/http"
	"time"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/classifier"
	newsapicfg "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/newsapi"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/httpclient"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/retry"
)

// ArticleSource fetches raw articles in one shot.
type ArticleSource interface {
	Fetch(ctx context.Context, params SearchParams) ([]news.RawItem, error)
}

// Fetcher implements news.Fetcher on top of the news API. Every failure
// degrades: primary errors fall through to the fallback, fallback errors to
// an empty result.
type Fetcher struct {
	searcher   Searcher
	fallback   ArticleSource
	resolver   APIIDResolver
	classifier *classifier.Classifier
	language   string
	retry      retry.Config
	logger     logger.Interface
}

// Ensure Fetcher implements news.Fetcher
var _ news.Fetcher = (*Fetcher)(nil)

// FetcherParams holds the collaborators of a Fetcher.
type FetcherParams struct {
	Config     *newsapicfg.Config
	Searcher   Searcher
	Fallback   ArticleSource
	Resolver   APIIDResolver
	Classifier *classifier.Classifier
	Logger     logger.Interface
}

// NewFetcher creates a Fetcher. A nil Searcher or Fallback is built from the
// configuration with a shared HTTP client.
func NewFetcher(p FetcherParams) *Fetcher {
	cfg := p.Config
	if cfg == nil {
		cfg = newsapicfg.New()
	}

	var httpClient *http.Client
	if p.Searcher == nil || p.Fallback == nil {
		httpClient = httpclient.NewClient(&httpclient.ClientConfig{Timeout: cfg.Timeout})
	}

	searcher := p.Searcher
	if searcher == nil {
		searcher = NewClientFromConfig(cfg, httpClient)
	}
	fallback := p.Fallback
	if fallback == nil {
		fallback = NewFallback(cfg.Endpoint, cfg.APIKey, httpClient)
	}
	cls := p.Classifier
	if cls == nil {
		cls = classifier.New()
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNoOp()
	}

	return &Fetcher{
		searcher:   searcher,
		fallback:   fallback,
		resolver:   p.Resolver,
		classifier: cls,
		language:   cfg.Language,
		retry:      retry.Fixed(cfg.MaxRetries, cfg.RetryDelay),
		logger:     log.WithComponent("newsapi"),
	}
}

// Fetch returns up to q.Limit normalized headlines.
func (f *Fetcher) Fetch(ctx context.Context, q news.Query) []news.Item {
	params := BuildParams(q, f.resolver, f.language)
	log := f.logger.WithSource(q.Source).WithCategory(q.Category)
	start := time.Now()

	articles, err := f.search(ctx, params, log)
	switch {
	case err != nil:
		log.Warn("News API search failed, trying fallback", "error", err)
		return f.fetchFallback(ctx, q, params, log)
	case len(articles) == 0:
		log.Info("News API returned no articles, trying fallback")
		return f.fetchFallback(ctx, q, params, log)
	}

	items := f.toItems(articles, q)
	log.WithDuration(time.Since(start)).Debug("Fetched headlines from news API", "count", len(items))
	return items
}

func (f *Fetcher) search(ctx context.Context, params SearchParams, log logger.Interface) ([]news.RawItem, error) {
	cfg := f.retry
	cfg.OnRetry = func(attempt int, err error) {
		log.Debug("News API attempt failed", "attempt", attempt, "error", err)
	}

	var articles []news.RawItem
	err := retry.Do(ctx, cfg, func(ctx context.Context) error {
		resp, err := f.searcher.Search(ctx, params)
		if err != nil {
			return err
		}
		if resp != nil {
			articles = resp.Articles
		}
		return nil
	})
	return articles, err
}

func (f *Fetcher) fetchFallback(ctx context.Context, q news.Query, params SearchParams, log logger.Interface) []news.Item {
	articles, err := f.fallback.Fetch(ctx, params)
	if err != nil {
		log.Warn("Fallback request failed, no headlines available", "error", err)
		return []news.Item{}
	}
	return f.toItems(articles, q)
}

// toItems caps, categorizes and normalizes articles.
func (f *Fetcher) toItems(articles []news.RawItem, q news.Query) []news.Item {
	if q.Limit > 0 && len(articles) > q.Limit {
		articles = articles[:q.Limit]
	}

	items := make([]news.Item, 0, len(articles))
	for _, article := range articles {
		if news.IsSpecific(q.Category) {
			article.Category = q.Category
		} else {
			article.Category = f.classifier.Categorize(article.Title, article.Description)
		}
		items = append(items, news.Normalize(article, news.UnknownSource))
	}
	return items
}
