package menu_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/cmd/headlines"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/cmd/menu"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/news"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/render"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
	newsMock "github.com/JairajKolhatkar/News-Aggregator-CLI-App/testutils/mocks/news"
)

func setup(t *testing.T) (*newsMock.MockFetcher, *newsMock.MockFetcher, headlines.RunnerFactory, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	registry, err := sources.Default()
	require.NoError(t, err)

	api := newsMock.NewMockFetcher(ctrl)
	scraper := newsMock.NewMockFetcher(ctrl)
	var out bytes.Buffer

	build := func(*cobra.Command) (*headlines.Runner, error) {
		return headlines.NewRunner(headlines.RunnerParams{
			API:      api,
			Scraper:  scraper,
			Registry: registry,
			Renderer: render.New(&out, render.WithColor(false)),
		}), nil
	}
	return api, scraper, build, &out
}

func runMenu(t *testing.T, build headlines.RunnerFactory, out *bytes.Buffer, input string, args ...string) {
	t.Helper()

	cmd := menu.NewCommand(build)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

func headline(title string) []news.Item {
	return []news.Item{{Source: "NDTV", Title: title, Category: news.CategoryGeneral, PublishedAt: "16 May 2023, 09:15"}}
}

func TestMenu_LatestThenExit(t *testing.T) {
	t.Parallel()

	api, _, build, out := setup(t)
	api.EXPECT().
		Fetch(gomock.Any(), news.Query{Limit: headlines.DefaultLimit}).
		Return(headline("Monsoon arrives early")).
		Times(1)

	runMenu(t, build, out, "1\n\n5\n")

	text := out.String()
	assert.Contains(t, text, render.BannerTitle)
	assert.Contains(t, text, "Main Menu")
	assert.Contains(t, text, "Fetching latest headlines...")
	assert.Contains(t, text, "Monsoon arrives early")
	assert.Contains(t, text, menu.ReturnPrompt)
	assert.Contains(t, text, menu.Farewell)
}

func TestMenu_CategoryAndSource(t *testing.T) {
	t.Parallel()

	api, _, build, out := setup(t)
	api.EXPECT().
		Fetch(gomock.Any(), news.Query{Source: "ndtv", Category: news.CategorySports, Limit: headlines.DefaultLimit}).
		Return(headline("Series levelled")).
		Times(1)

	// Option 4, category 4 (sports), source 4 (ndtv), Enter, exit.
	runMenu(t, build, out, "4\n4\n4\n\n5\n")

	text := out.String()
	assert.Contains(t, text, "Select a Category")
	assert.Contains(t, text, "Select a News Source")
	assert.Contains(t, text, "Fetching Sports headlines from NDTV...")
	assert.Contains(t, text, "Latest Indian News from ndtv - Sports")
}

func TestMenu_ScraperFlag(t *testing.T) {
	t.Parallel()

	_, scraper, build, out := setup(t)
	scraper.EXPECT().
		Fetch(gomock.Any(), news.Query{Source: "the-hindu", Limit: headlines.DefaultLimit}).
		Return(nil).
		Times(1)

	runMenu(t, build, out, "3\n1\n\n5\n", "--use-scraper")

	assert.Contains(t, out.String(), "Fetching headlines from The Hindu...")
	assert.Contains(t, out.String(), render.NoResultsMessage)
}

func TestMenu_InvalidChoiceReprompts(t *testing.T) {
	t.Parallel()

	api, _, build, out := setup(t)
	api.EXPECT().
		Fetch(gomock.Any(), news.Query{Category: news.CategoryGeneral, Limit: headlines.DefaultLimit}).
		Return(headline("Budget session opens")).
		Times(1)

	runMenu(t, build, out, "9\nabc\n2\n0\n1\n\n5\n")

	assert.Equal(t, 3, strings.Count(out.String(), "Please select one of the available options"))
	assert.Contains(t, out.String(), "Fetching General headlines...")
}

func TestMenu_EndOfInputExits(t *testing.T) {
	t.Parallel()

	_, _, build, out := setup(t)
	runMenu(t, build, out, "2\n")

	assert.Contains(t, out.String(), "Select a category")
	assert.NotContains(t, out.String(), menu.Farewell)
}
