// Root command and application wiring for the wtc CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ftambara/what-to-cook/internal/loader"
	"github.com/ftambara/what-to-cook/internal/logging"
	"github.com/ftambara/what-to-cook/internal/paths"
	"github.com/ftambara/what-to-cook/internal/search"
	"github.com/ftambara/what-to-cook/internal/sqlite"
	"github.com/ftambara/what-to-cook/internal/stem"
	"github.com/ftambara/what-to-cook/pkg/types"
	"github.com/ftambara/what-to-cook/pkg/wtc"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagLogLevel  string
)

// Application state initialized by setup and shared by all subcommands.
var (
	appConfig types.Config
	logger    *zap.Logger
	store     *sqlite.Store
	engine    *loader.Loader
	searcher  *search.Searcher
)

var rootCmd = &cobra.Command{
	Use:     "wtc",
	Short:   "wtc tracks recipes by the ingredients you can actually cook with",
	Version: wtc.Version,
	Long: `What-to-cook ingests recipes from CSV sources, resolves each
ingredient line to a canonical ingredient, and keeps a review backlog
for the lines it could not resolve.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.wtc)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(ingredientsCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(searchCmd)
}

// setup loads configuration and opens the store. Skipped for commands
// that do not touch the database.
func setup(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "help":
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return err
	}

	appConfig = types.Config{
		DataDir:  dataDir,
		Language: cfg.GetString(cfgKeyLanguage),
		LogLevel: cfg.GetString(cfgKeyLogLevel),
	}
	if flagLogLevel != "" {
		appConfig.LogLevel = flagLogLevel
	}

	logger, err = logging.New(appConfig.LogLevel)
	if err != nil {
		return err
	}

	stemmer, err := stem.New(appConfig.Language)
	if err != nil {
		return err
	}

	store, err = sqlite.Open(appConfig, stemmer)
	if err != nil {
		return err
	}

	engine = loader.New(store, stemmer, logger)
	searcher = search.New(store, stemmer)
	return nil
}

// teardown releases the store and flushes the logger.
func teardown() error {
	if logger != nil {
		_ = logger.Sync()
	}
	if store != nil {
		return store.Close()
	}
	return nil
}
