// Package menu implements an interactive launcher for users who prefer
// picking from numbered lists over typing flags.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/cmd/headlines"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/render"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// Main menu entries
const (
	optionLatest = iota + 1
	optionByCategory
	optionBySource
	optionByCategoryAndSource
	optionExit
)

const (
	// ReturnPrompt is shown after each result set
	ReturnPrompt = "Press Enter to return to the menu..."

	// Farewell is printed on exit
	Farewell = "Thank you for using Indian News Aggregator!"

	invalidChoice = "Please select one of the available options"
)

var mainOptions = []render.MenuOption{
	{Key: strconv.Itoa(optionLatest), Label: "View latest headlines"},
	{Key: strconv.Itoa(optionByCategory), Label: "View headlines by category"},
	{Key: strconv.Itoa(optionBySource), Label: "View headlines by source"},
	{Key: strconv.Itoa(optionByCategoryAndSource), Label: "View headlines by category and source"},
	{Key: strconv.Itoa(optionExit), Label: "Exit"},
}

// Menu drives the launcher over a line-oriented input.
type Menu struct {
	in         *bufio.Scanner
	out        io.Writer
	runner     *headlines.Runner
	renderer   *render.Renderer
	registry   *sources.Registry
	useScraper bool
}

// New creates a Menu reading choices from in and writing to out. Result
// tables go wherever the runner's renderer writes.
func New(in io.Reader, out io.Writer, runner *headlines.Runner, useScraper bool) *Menu {
	return &Menu{
		in:         bufio.NewScanner(in),
		out:        out,
		runner:     runner,
		renderer:   runner.Renderer(),
		registry:   runner.Registry(),
		useScraper: useScraper,
	}
}

// Run shows the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.renderer.Banner()
		m.renderer.Menu("Main Menu", "Description", mainOptions)

		choice, err := m.choose("Select an option", len(mainOptions))
		if err != nil {
			return ignoreEOF(err)
		}

		if choice == optionExit {
			m.renderer.Line(Farewell)
			return nil
		}

		if err := m.runChoice(ctx, choice); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *Menu) runChoice(ctx context.Context, choice int) error {
	opts := headlines.Options{Limit: headlines.DefaultLimit, UseScraper: m.useScraper}

	if choice == optionByCategory || choice == optionByCategoryAndSource {
		category, err := m.pickCategory()
		if err != nil {
			return err
		}
		opts.Category = category
	}
	if choice == optionBySource || choice == optionByCategoryAndSource {
		source, err := m.pickSource()
		if err != nil {
			return err
		}
		opts.Source = source
	}

	m.renderer.Line("%s", m.fetchingMessage(opts))
	m.runner.Run(ctx, opts)

	m.renderer.Line("\n%s", ReturnPrompt)
	_, err := m.readLine()
	return err
}

func (m *Menu) pickCategory() (string, error) {
	categories := news.Categories()
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, render.Capitalize(c))
	}
	m.renderer.Menu("Select a Category", "Category", render.NumberedOptions(labels))

	choice, err := m.choose("Select a category", len(categories))
	if err != nil {
		return "", err
	}
	return categories[choice-1], nil
}

func (m *Menu) pickSource() (string, error) {
	all := m.registry.All()
	labels := make([]string, 0, len(all))
	for _, d := range all {
		labels = append(labels, d.Name)
	}
	m.renderer.Menu("Select a News Source", "Source", render.NumberedOptions(labels))

	choice, err := m.choose("Select a source", len(all))
	if err != nil {
		return "", err
	}
	return all[choice-1].Key, nil
}

func (m *Menu) fetchingMessage(opts headlines.Options) string {
	var b strings.Builder
	b.WriteString("Fetching ")
	if opts.Source == "" && opts.Category == "" {
		b.WriteString("latest ")
	}
	if opts.Category != "" {
		b.WriteString(render.Capitalize(opts.Category) + " ")
	}
	b.WriteString("headlines")
	if opts.Source != "" && m.registry != nil {
		if d, ok := m.registry.Lookup(opts.Source); ok {
			b.WriteString(" from " + d.Name)
		}
	}
	b.WriteString("...")
	return b.String()
}

// choose prompts until a number in [1, n] is entered.
func (m *Menu) choose(prompt string, n int) (int, error) {
	for {
		fmt.Fprintf(m.out, "%s [1-%d]: ", prompt, n)
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && choice >= 1 && choice <= n {
			return choice, nil
		}
		m.renderer.Line(invalidChoice)
	}
}

func (m *Menu) readLine() (string, error) {
	if m.in.Scan() {
		return m.in.Text(), nil
	}
	if err := m.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Command returns the menu command wired to the real fetchers.
func Command() *cobra.Command {
	return NewCommand(headlines.DefaultRunner)
}

// NewCommand creates the menu command with a custom runner factory.
func NewCommand(build headlines.RunnerFactory) *cobra.Command {
	var useScraper bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Browse headlines through an interactive menu",
		Long: `Browse headlines through numbered menus: latest headlines, by
category, by source, or both. Each result table is followed by a prompt to
return to the main menu.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := build(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return New(cmd.InOrStdin(), cmd.OutOrStdout(), runner, useScraper).Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&useScraper, "use-scraper", false, "Scrape the news websites instead of using the API")

	return cmd
}
