// Package headlines implements the headlines command, which fetches the
// latest Indian headlines from the news API or by scraping news sites and
// prints them as a table.
package headlines

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/cmd/common"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/render"
)

// RunnerFactory builds the Runner for one invocation of cmd.
type RunnerFactory func(cmd *cobra.Command) (*Runner, error)

// Command returns the headlines command wired to the real fetchers.
func Command() *cobra.Command {
	return NewCommand(DefaultRunner)
}

// NewCommand creates the headlines command with a custom runner factory.
func NewCommand(build RunnerFactory) *cobra.Command {
	var (
		opts       Options
		useAPI     bool
		useScraper bool
	)

	cmd := &cobra.Command{
		Use:   "headlines",
		Short: "Fetch and display the latest Indian news headlines",
		Long: `Fetch the latest Indian news headlines and display them as a table.

Headlines come from the news API by default, falling back to a direct
request when the API keeps failing. --use-scraper scrapes the news sites
instead.

Examples:
  # Latest headlines
  news-aggregator headlines

  # Sports headlines from NDTV, scraped
  news-aggregator headlines -s ndtv -c sports --use-scraper

  # Five business headlines
  news-aggregator headlines -c business -l 5
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := build(cmd)
			if err != nil {
				return err
			}

			opts.UseScraper = useScraper && !useAPI
			if validateErr := opts.Validate(runner.Registry()); validateErr != nil {
				return validateErr
			}

			cmd.SilenceUsage = true
			runner.Run(cmd.Context(), opts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Source, "source", "s", "", "News source to fetch from")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "News category to filter by")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", DefaultLimit, "Number of headlines to display")
	cmd.Flags().BoolVar(&useAPI, "use-api", false, "Use the news API (default)")
	cmd.Flags().BoolVar(&useScraper, "use-scraper", false, "Scrape the news websites instead of using the API")
	cmd.MarkFlagsMutuallyExclusive("use-api", "use-scraper")

	return cmd
}

// DefaultRunner builds a Runner from the loaded configuration. Tables go to
// the command's stdout, progress to its stderr.
func DefaultRunner(cmd *cobra.Command) (*Runner, error) {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return nil, fmt.Errorf("failed to get dependencies: %w", err)
	}
	return NewRunnerFromDeps(cmd, deps), nil
}

// NewRunnerFromDeps wires a Runner to both fetch strategies.
func NewRunnerFromDeps(cmd *cobra.Command, deps common.CommandDeps) *Runner {
	useScraper, _ := cmd.Flags().GetBool("use-scraper")
	if !useScraper && deps.Config.GetNewsAPIConfig().APIKey == "" {
		deps.Logger.Warn("News API key is not set; API requests will be rejected. Set NEWS_API_KEY or newsapi.api_key")
	}

	fetchers := common.NewFetchers(deps)
	return NewRunner(RunnerParams{
		API:      fetchers.API,
		Scraper:  fetchers.Scraper,
		Registry: deps.Config.GetSources(),
		Renderer: render.New(cmd.OutOrStdout()),
		Tracker:  render.NewProgressTracker(cmd.ErrOrStderr()),
		Logger:   deps.Logger,
	})
}
