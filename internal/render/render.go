// Package render draws headlines, notices and menus on the terminal with
// go-pretty tables.
package render

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// Table layout constants
const (
	// DefaultTitleWidth wraps long headlines in the Title column
	DefaultTitleWidth = 70

	// NoResultsMessage is shown when a fetch yields nothing
	NoResultsMessage = "No news found matching your criteria."

	// BannerTitle heads the interactive menu
	BannerTitle = "Indian News Aggregator"

	// BannerSubtitle sits under the banner title
	BannerSubtitle = "Get the latest Indian news headlines"

	headlinesTitle = "Latest Indian News"
	errorTitle     = "Error"
)

// Renderer writes tables to one output.
type Renderer struct {
	out        io.Writer
	color      bool
	titleWidth int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor toggles column and border colors.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// WithTitleWidth sets the wrap width of the Title column.
func WithTitleWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.titleWidth = width
		}
	}
}

// New creates a Renderer writing to out, or stdout when out is nil.
func New(out io.Writer, opts ...Option) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	r := &Renderer{
		out:        out,
		color:      true,
		titleWidth: DefaultTitleWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HeadlinesTitle builds the table caption for a source key and category.
func HeadlinesTitle(source, category string) string {
	title := headlinesTitle
	if source != "" {
		title += " from " + source
	}
	if category != "" {
		title += " - " + Capitalize(category)
	}
	return title
}

// Headlines renders items as a Source, Title, Category, Published table.
func (r *Renderer) Headlines(items []news.Item, source, category string) {
	title := HeadlinesTitle(source, category)
	t := r.newTable()
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Source", "Title", "Category", "Published"})
	for _, item := range items {
		t.AppendRow(table.Row{
			orDefault(item.Source, news.UnknownSource),
			orDefault(item.Title, "No title"),
			orDefault(item.Category, news.CategoryGeneral),
			orDefault(item.PublishedAt, news.UnknownDate),
		})
	}

	configs := []table.ColumnConfig{
		{Name: "Source"},
		{Name: "Title", WidthMin: min(text.RuneWidthWithoutEscSequences(title), r.titleWidth), WidthMax: r.titleWidth},
		{Name: "Category"},
		{Name: "Published"},
	}
	if r.color {
		configs[0].Colors = text.Colors{text.FgCyan}
		configs[2].Colors = text.Colors{text.FgGreen}
		configs[3].Colors = text.Colors{text.FgYellow}
	}
	t.SetColumnConfigs(configs)

	t.Render()
}

// NoResults renders the empty-result notice.
func (r *Renderer) NoResults() {
	r.panel(errorTitle, NoResultsMessage, text.FgRed)
}

// Error renders err in the error panel.
func (r *Renderer) Error(err error) {
	r.panel(errorTitle, fmt.Sprintf("Error: %v", err), text.FgRed)
}

// Banner renders the application banner.
func (r *Renderer) Banner() {
	t := r.newTable()
	t.SetStyle(table.StyleRounded)
	t.AppendRow(table.Row{BannerTitle})
	t.AppendFooter(table.Row{BannerSubtitle})
	t.Style().Format.Footer = text.FormatDefault
	if r.color {
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Colors: text.Colors{text.Bold, text.FgGreen}, ColorsFooter: text.Colors{text.Faint}},
		})
	}
	t.Render()
}

// Sources renders the source registry.
func (r *Renderer) Sources(registry *sources.Registry) {
	t := r.newTable()
	t.SetTitle("News Sources")
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Name", "API ID", "Scrape URL", "Categories"})

	for _, d := range registry.All() {
		t.AppendRow(table.Row{
			d.Key,
			d.Name,
			d.APIID,
			d.ScrapeURL,
			strings.Join(slices.Sorted(maps.Keys(d.Categories)), ", "),
		})
	}
	if r.color {
		t.SetColumnConfigs([]table.ColumnConfig{{Name: "Key", Colors: text.Colors{text.FgCyan}}})
	}
	t.AppendFooter(table.Row{"Total", registry.Len()})
	t.Render()
}

// Line writes a plain line of text.
func (r *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) panel(title, message string, border text.Color) {
	t := r.newTable()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	t.AppendRow(table.Row{message})
	if r.color {
		t.Style().Color.Border = text.Colors{border}
		t.Style().Title.Colors = text.Colors{text.Bold, border}
	}
	t.Render()
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	return t
}

// Capitalize title-cases a category name for display.
func Capitalize(s string) string {
	return cases.Title(language.English).String(s)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
