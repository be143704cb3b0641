package scraper_test

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/scraper"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// theHinduHTML has two story cards and one card without a headline.
const theHinduHTML = `<!DOCTYPE html>
<html>
<body>
  <div class="story-card">
    <h3 class="title">  Cabinet approves <b>new</b> rail line </h3>
    <a href="/news/national/rail-line/article1.ece">Read</a>
    <p class="intro">The government cleared the project on Monday.</p>
    <img src="https://img.example.com/rail.jpg">
    <span class="dateline">15 May 2023 14:30</span>
  </div>
  <div class="story-card">
    <a href="/news/national/untitled.ece">No headline here</a>
  </div>
  <div class="story-card-33">
    <h2 class="title">ISRO schedules next launch</h2>
    <a href="https://www.thehindu.com/sci-tech/science/isro.ece">Read</a>
    <div class="story-card-33-text">Space agency confirms date</div>
  </div>
</body>
</html>`

// ndtvHTML only matches the secondary title and description selectors.
const ndtvHTML = `<!DOCTYPE html>
<html>
<body>
  <div class="story_list">
    <h2 class="headline">Markets close higher</h2>
    <a href="business/markets-close-higher-123">Read</a>
    <p class="description">Stock indices gain on trade data</p>
    <span class="update_date">2023-05-16 09:15:00</span>
  </div>
</body>
</html>`

// timesOfIndiaHTML nests cards under the main content container; the
// sidebar card must be ignored.
const timesOfIndiaHTML = `<!DOCTYPE html>
<html>
<body>
  <div class="sidebar">
    <div class="card-container"><span class="title">Sidebar promo</span></div>
  </div>
  <div class="main-content">
    <div class="card-container">
      <a href="/india/story-1.cms"><span class="title">Heatwave alert in Delhi</span></a>
      <p class="synopsis">IMD issues warning</p>
      <span class="date">16/05/2023</span>
    </div>
  </div>
</body>
</html>`

var fixedNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

func newExtractor(t *testing.T) *scraper.Extractor {
	t.Helper()
	return scraper.NewExtractor(nil, scraper.WithClock(func() time.Time { return fixedNow }))
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func lookup(t *testing.T, key string) sources.Descriptor {
	t.Helper()
	registry, err := sources.Default()
	require.NoError(t, err)
	d, ok := registry.Lookup(key)
	require.True(t, ok)
	return d
}

func TestExtractor_TheHindu(t *testing.T) {
	t.Parallel()

	items := newExtractor(t).Extract(parseHTML(t, theHinduHTML), lookup(t, "the-hindu"), "", 10)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Cabinet approves new rail line", first.Title)
	assert.Equal(t, "https://www.thehindu.com/news/national/rail-line/article1.ece", first.URL)
	assert.Equal(t, "The government cleared the project on Monday.", first.Description)
	assert.Equal(t, "https://img.example.com/rail.jpg", first.ImageURL)
	assert.Equal(t, "15 May 2023, 14:30", first.PublishedAt)
	assert.Equal(t, "The Hindu", first.Source)
	assert.Equal(t, news.CategoryPolitics, first.Category)
	assert.Equal(t, news.Truncate(first.URL, news.MaxIDLength), first.ID)

	second := items[1]
	assert.Equal(t, "ISRO schedules next launch", second.Title)
	assert.Equal(t, "Space agency confirms date", second.Description)
	assert.Equal(t, "18 Oct 2026", second.PublishedAt)
	assert.Equal(t, news.CategoryScience, second.Category)
	assert.Empty(t, second.ImageURL)
}

func TestExtractor_LimitAppliesToCandidates(t *testing.T) {
	t.Parallel()

	items := newExtractor(t).Extract(parseHTML(t, theHinduHTML), lookup(t, "the-hindu"), "", 2)
	require.Len(t, items, 1)
	assert.Equal(t, "Cabinet approves new rail line", items[0].Title)
}

func TestExtractor_SpecificCategoryWins(t *testing.T) {
	t.Parallel()

	items := newExtractor(t).Extract(parseHTML(t, theHinduHTML), lookup(t, "the-hindu"), news.CategoryHealth, 10)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, news.CategoryHealth, item.Category)
	}
}

func TestExtractor_NDTVSecondarySelectors(t *testing.T) {
	t.Parallel()

	items := newExtractor(t).Extract(parseHTML(t, ndtvHTML), lookup(t, "ndtv"), "", 10)
	require.Len(t, items, 1)

	assert.Equal(t, "Markets close higher", items[0].Title)
	assert.Equal(t, "https://www.ndtv.com/business/markets-close-higher-123", items[0].URL)
	assert.Equal(t, "16 May 2023, 09:15", items[0].PublishedAt)
	assert.Equal(t, news.CategoryBusiness, items[0].Category)
	assert.Equal(t, "NDTV", items[0].Source)
}

func TestExtractor_TimesOfIndiaScopedCards(t *testing.T) {
	t.Parallel()

	items := newExtractor(t).Extract(parseHTML(t, timesOfIndiaHTML), lookup(t, "times-of-india"), "", 10)
	require.Len(t, items, 1)

	assert.Equal(t, "Heatwave alert in Delhi", items[0].Title)
	assert.Equal(t, "https://timesofindia.indiatimes.com/india/story-1.cms", items[0].URL)
	assert.Equal(t, "16 May 2023, 00:00", items[0].PublishedAt)
}

func TestExtractor_NoCandidates(t *testing.T) {
	t.Parallel()

	items := newExtractor(t).Extract(parseHTML(t, "<html><body><p>maintenance</p></body></html>"), lookup(t, "indian-express"), "", 10)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestExtractor_EmptyDateIsUnknown(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="story-card">
  <h3 class="title">Parliament adjourned</h3>
  <span class="dateline">   </span>
</div></body></html>`

	items := newExtractor(t).Extract(parseHTML(t, html), lookup(t, "the-hindu"), "", 10)
	require.Len(t, items, 1)
	assert.Equal(t, news.UnknownDate, items[0].PublishedAt)
}
