// Package cmd implements the command-line interface for the Indian news
// aggregator. It provides the root command and its subcommands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/cmd/headlines"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/cmd/menu"
	cmdsources "github.com/JairajKolhatkar/News-Aggregator-CLI-App/cmd/sources"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config"
	"github.com/JairajKolhatkar/News-Aggregator-CLI-App/internal/config/app"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug logging for all commands
	Debug bool

	// rootCmd represents the root command of the CLI.
	rootCmd = &cobra.Command{
		Use:   app.DefaultName,
		Short: "Indian News Aggregator - Get the latest Indian news headlines",
		Long: `Indian News Aggregator fetches the latest Indian news headlines from a
news search API or by scraping major Indian news sites, sorts them into
topics and prints them as a table.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env early so environment variables are available to viper
	_ = godotenv.Load()

	// Parse flags early to get --config and --debug before loading config
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", app.DefaultName, versionString())
		},
	})

	rootCmd.AddCommand(headlines.Command())
	rootCmd.AddCommand(cmdsources.NewSourcesCommand())
	rootCmd.AddCommand(menu.Command())
}

// initConfig reads in the config file and environment variables.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults(viper.GetViper())

	// The config file is optional; a missing default file is not an error
	// but an explicit --config must exist.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	if err := config.BindEnv(viper.GetViper()); err != nil {
		return fmt.Errorf("failed to bind environment variables: %w", err)
	}

	setupDevelopmentLogging()

	return nil
}

// setupDevelopmentLogging raises the log level for --debug / APP_DEBUG and
// switches to the development encoder in the development environment.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	if viper.GetString("app.environment") == "development" {
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}

func versionString() string {
	if v := viper.GetString("app.version"); v != "" {
		return v
	}
	return app.DefaultVersion
}
