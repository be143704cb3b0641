package headlines

import (
	"fmt"
	"strings"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// DefaultLimit is the number of headlines shown when --limit is not given.
const DefaultLimit = 10

// Options are the filters of one headlines run.
type Options struct {
	Source     string
	Category   string
	Limit      int
	UseScraper bool
}

// Query converts the options into a fetch query.
func (o Options) Query() news.Query {
	return news.Query{
		Source:   o.Source,
		Category: o.Category,
		Limit:    o.Limit,
	}
}

// Mode names the fetch strategy.
func (o Options) Mode() string {
	if o.UseScraper {
		return "scraper"
	}
	return "api"
}

// Validate checks the options against the registry and category set.
func (o Options) Validate(registry *sources.Registry) error {
	if o.Source != "" {
		if registry == nil {
			return fmt.Errorf("%w: %q", ErrInvalidSource, o.Source)
		}
		if _, ok := registry.Lookup(o.Source); !ok {
			return fmt.Errorf("%w: %q is not one of %s", ErrInvalidSource, o.Source, choices(registry.Keys()))
		}
	}
	if o.Category != "" && !news.IsCategory(o.Category) {
		return fmt.Errorf("%w: %q is not one of %s", ErrInvalidCategory, o.Category, choices(news.Categories()))
	}
	if o.Limit < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, o.Limit)
	}
	return nil
}

func choices(values []string) string {
	return strings.Join(values, ", ")
}
