// Package sources describes the news sites the aggregator knows about: how
// they are named by the news API, where their section pages live, and which
// CSS selectors pull headlines out of those pages.
package sources

import (
	"fmt"
	"strings"
)

// Selectors is the declarative extraction table of a source. Every field is
// an ordered list of CSS selectors; Articles entries are matched together as
// one selector group.
type Selectors struct {
	Articles    []string `mapstructure:"articles" yaml:"articles"`
	Title       []string `mapstructure:"title" yaml:"title"`
	Link        []string `mapstructure:"link" yaml:"link"`
	Description []string `mapstructure:"description" yaml:"description"`
	Image       []string `mapstructure:"image" yaml:"image"`
	Date        []string `mapstructure:"date" yaml:"date"`
}

// ArticleGroup joins the article container selectors into one CSS group.
func (s Selectors) ArticleGroup() string {
	return strings.Join(s.Articles, ", ")
}

// Descriptor is a read-only description of one news source.
type Descriptor struct {
	Key        string            `mapstructure:"key" yaml:"key"`
	Name       string            `mapstructure:"name" yaml:"name"`
	APIID      string            `mapstructure:"api_id" yaml:"api_id"`
	ScrapeURL  string            `mapstructure:"scrape_url" yaml:"scrape_url"`
	Categories map[string]string `mapstructure:"categories" yaml:"categories"`
	Selectors  Selectors         `mapstructure:"selectors" yaml:"selectors"`
}

// URLFor returns the page to scrape for category: the scrape URL joined with
// the category path, or the scrape URL itself when the source has no page
// for that category.
func (d Descriptor) URLFor(category string) string {
	path, ok := d.Categories[category]
	if !ok || path == "" {
		return d.ScrapeURL
	}
	return strings.TrimRight(d.ScrapeURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Registry is an ordered, immutable set of descriptors.
type Registry struct {
	descriptors []Descriptor
	index       map[string]int
}

// NewRegistry builds a registry, rejecting duplicate keys.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	if len(descriptors) == 0 {
		return nil, ErrNoSources
	}

	r := &Registry{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}
	for _, d := range descriptors {
		if _, exists := r.index[d.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSource, d.Key)
		}
		r.index[d.Key] = len(r.descriptors)
		r.descriptors = append(r.descriptors, d)
	}
	return r, nil
}

// Lookup returns the descriptor registered under key.
func (r *Registry) Lookup(key string) (Descriptor, bool) {
	i, ok := r.index[key]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// All returns the descriptors in declaration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Keys returns the source keys in declaration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.descriptors))
	for i, d := range r.descriptors {
		keys[i] = d.Key
	}
	return keys
}

// Len returns the number of sources.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// APIID returns the news API identifier for key, or "" when the key is
// unknown.
func (r *Registry) APIID(key string) string {
	d, ok := r.Lookup(key)
	if !ok {
		return ""
	}
	return d.APIID
}
