package scraper

import (
	"fmt"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/classifier"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/logger"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// Extractor turns a section page into headlines using a source's selector
// table.
type Extractor struct {
	classifier *classifier.Classifier
	now        func() time.Time
	logger     logger.Interface
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithClock sets the clock used for cards without a date.
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithExtractorLogger sets the logger.
func WithExtractorLogger(log logger.Interface) ExtractorOption {
	return func(e *Extractor) {
		e.logger = log
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(cls *classifier.Classifier, opts ...ExtractorOption) *Extractor {
	if cls == nil {
		cls = classifier.New()
	}
	e := &Extractor{
		classifier: cls,
		now:        time.Now,
		logger:     logger.NewNoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads at most limit article candidates from doc. Candidates that
// fail extraction are skipped, so fewer than limit items may come back.
func (e *Extractor) Extract(doc *goquery.Document, d sources.Descriptor, category string, limit int) []news.Item {
	base, err := url.Parse(d.ScrapeURL)
	if err != nil {
		e.logger.Warn("Invalid scrape URL", "source", d.Key, "error", err)
		return []news.Item{}
	}

	candidates := doc.Find(d.Selectors.ArticleGroup())
	if limit >= 0 && candidates.Length() > limit {
		candidates = candidates.Slice(0, limit)
	}

	items := make([]news.Item, 0, candidates.Length())
	candidates.Each(func(i int, card *goquery.Selection) {
		item, extractErr := e.extractCandidate(card, d, base, category)
		if extractErr != nil {
			e.logger.Debug("Skipping candidate", "source", d.Key, "index", i, "error", extractErr)
			return
		}
		items = append(items, item)
	})
	return items
}

func (e *Extractor) extractCandidate(
	card *goquery.Selection,
	d sources.Descriptor,
	base *url.URL,
	category string,
) (news.Item, error) {
	titleText, _ := firstText(card, d.Selectors.Title)
	title := news.CleanText(titleText)
	if title == "" {
		return news.Item{}, ErrMissingTitle
	}

	link, err := resolveLink(base, firstAttr(card, d.Selectors.Link, "href"))
	if err != nil {
		return news.Item{}, err
	}

	descriptionText, _ := firstText(card, d.Selectors.Description)
	description := news.CleanText(descriptionText)

	// A date element that matched but is empty renders as unknown; only a
	// card without one gets today's date.
	dateText, found := firstText(card, d.Selectors.Date)
	published := news.CleanText(dateText)
	if !found {
		published = e.now().Format(news.ScrapeFallbackLayout)
	}

	itemCategory := category
	if !news.IsSpecific(category) {
		itemCategory = e.classifier.Categorize(title, description)
	}

	return news.Normalize(news.RawItem{
		Title:       title,
		Description: description,
		URL:         link,
		Category:    itemCategory,
		PublishedAt: published,
		URLToImage:  firstAttr(card, d.Selectors.Image, "src"),
	}, d.Name), nil
}

// firstText returns the text of the first selector that matches and whether
// any selector matched.
func firstText(card *goquery.Selection, selectors []string) (string, bool) {
	for _, sel := range selectors {
		if match := card.Find(sel).First(); match.Length() > 0 {
			return match.Text(), true
		}
	}
	return "", false
}

// firstAttr returns attr of the first selector that matches.
func firstAttr(card *goquery.Selection, selectors []string, attr string) string {
	for _, sel := range selectors {
		if match := card.Find(sel).First(); match.Length() > 0 {
			value, _ := match.Attr(attr)
			return value
		}
	}
	return ""
}

// resolveLink makes href absolute against base. An empty href stays empty.
func resolveLink(base *url.URL, href string) (string, error) {
	if href == "" {
		return "", nil
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}
	return base.ResolveReference(ref).String(), nil
}
