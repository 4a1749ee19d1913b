// Package cli wires the cobra command tree for the lexa binary.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/openlexica/lexa-cli/internal/core/ports/driving"
	"github.com/openlexica/lexa-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services bundles everything the commands need.
type Services struct {
	Searcher  driving.Searcher
	Freshness driving.FreshnessController
	Importer  DatasetImporter
}

var (
	searchService    driving.Searcher
	freshnessService driving.FreshnessController
	datasetImporter  DatasetImporter

	// bootstrap builds the services once flags are parsed. Set by the
	// composition root; tests inject services directly instead.
	bootstrap func(dataDir, configDir string) (Services, error)

	verboseFlag   bool
	dataDirFlag   string
	configDirFlag string
)

// SetServices injects pre-built core services into the command tree.
func SetServices(s Services) {
	searchService = s.Searcher
	freshnessService = s.Freshness
	datasetImporter = s.Importer
}

// SetBootstrap registers the factory that builds the services after the
// persistent flags have been parsed.
func SetBootstrap(fn func(dataDir, configDir string) (Services, error)) {
	bootstrap = fn
}

var rootCmd = &cobra.Command{
	Use:   "lexa",
	Short: "Fast offline dictionary lookup",
	Long: `Lexa is a terminal dictionary backed by a local full-text index.

Running lexa without a subcommand opens the interactive search screen.
The local dataset refreshes itself in the background at most once a week.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)

		if searchService == nil && bootstrap != nil {
			services, err := bootstrap(dataDirFlag, configDirFlag)
			if err != nil {
				return err
			}
			SetServices(services)
		}
		return nil
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "override the dataset directory (default ~/.lexa/data)")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "override the config directory (default ~/.lexa)")
}

// errNotConfigured is returned when a command runs without its service.
var errNotConfigured = errors.New("service not configured")

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
