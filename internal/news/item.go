// Package news holds the normalized headline model and the helpers that
// turn raw API articles and scraped cards into it.
package news

import "context"

// Item is a normalized headline. Fields are never absent; "" is the empty value.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	PublishedAt string `json:"published_at"`
	ImageURL    string `json:"image_url"`
}

// RawSource is the nested source object of an API article.
type RawSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawItem is an un-normalized article as delivered by the news API or built
// by the scraper.
type RawItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	PublishedAt string    `json:"publishedAt"`
	URLToImage  string    `json:"urlToImage"`
	Source      RawSource `json:"source"`
}

// Query selects which headlines to fetch. Empty Source and Category mean
// "all".
type Query struct {
	Source   string
	Category string
	Limit    int
}

// Fetcher retrieves normalized headlines. Implementations never fail: every
// error degrades to an empty slice.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) []Item
}
