package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	scrapercfg "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/scraper"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/httpclient"
)

// PageFetcher downloads and parses one HTML page.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// CollyFetcher fetches pages with a fresh colly collector per request so
// concurrent workers share no collector state.
type CollyFetcher struct {
	cfg       *scrapercfg.Config
	transport http.RoundTripper
}

// Ensure CollyFetcher implements PageFetcher
var _ PageFetcher = (*CollyFetcher)(nil)

// NewCollyFetcher creates a CollyFetcher. A nil transport selects a pooled
// transport built from the scraper timeout.
func NewCollyFetcher(cfg *scrapercfg.Config, transport http.RoundTripper) *CollyFetcher {
	if cfg == nil {
		cfg = scrapercfg.New()
	}
	if transport == nil {
		transport = httpclient.NewTransport(&httpclient.ClientConfig{Timeout: cfg.Timeout})
	}
	return &CollyFetcher{cfg: cfg, transport: transport}
}

// FetchPage visits pageURL and parses the body. Anything but a 200 is an
// error.
func (f *CollyFetcher) FetchPage(ctx context.Context, pageURL string) (*goquery.Document, error) {
	c := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent(f.cfg.UserAgent),
		colly.IgnoreRobotsTxt(),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.cfg.Timeout)
	c.WithTransport(f.transport)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", f.cfg.Accept)
		r.Headers.Set("Accept-Language", f.cfg.AcceptLanguage)
	})

	var (
		doc      *goquery.Document
		parseErr error
	)
	c.OnResponse(func(r *colly.Response) {
		if r.StatusCode != http.StatusOK {
			parseErr = fmt.Errorf("%w: %d", ErrUnexpectedStatus, r.StatusCode)
			return
		}
		doc, parseErr = goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", pageURL, err)
	}
	c.Wait()

	if parseErr != nil {
		return nil, parseErr
	}
	if doc == nil {
		return nil, ErrEmptyPage
	}
	return doc, nil
}
