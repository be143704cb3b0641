// Package sources implements the sources command, which lists the news
// sites the aggregator knows and validates source override files.
package sources

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/cmd/common"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/render"
	internalsources "github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/sources"
)

// RegistryFactory returns the registry to list.
type RegistryFactory func() (*internalsources.Registry, error)

// NewSourcesCommand creates the sources command backed by the loaded
// configuration.
func NewSourcesCommand() *cobra.Command {
	return NewCommand(configuredRegistry)
}

// NewCommand creates the sources command with a custom registry factory.
func NewCommand(load RegistryFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the configured news sources",
		Long: `List the news sources with their news API identifiers, scrape URLs
and the categories that have a dedicated section page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := load()
			if err != nil {
				return err
			}
			render.New(cmd.OutOrStdout()).Sources(registry)
			return nil
		},
	}

	cmd.AddCommand(NewValidateCommand())

	return cmd
}

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a sources file",
		Long: `Parse and validate a sources YAML file the way it is loaded through
sources.file, then list its entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := internalsources.NewLoader(args[0]).Load()
			if err != nil {
				return fmt.Errorf("invalid sources file: %w", err)
			}

			cmd.SilenceUsage = true
			r := render.New(cmd.OutOrStdout())
			r.Line("%s: %d sources OK", args[0], registry.Len())
			r.Sources(registry)
			return nil
		},
	}
}

func configuredRegistry() (*internalsources.Registry, error) {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return nil, fmt.Errorf("failed to get dependencies: %w", err)
	}
	deps.Logger.Debug("Listing sources")
	return deps.Config.GetSources(), nil
}
