// Package cli defines the cobra command tree for quotectl, the admin
// command line over the configured quote store.
package cli

import (
	"context"
	"os"
	"strings"

	"quotedesk/internal/adapter/persistence/repository"
	"quotedesk/internal/infrastructure/config"
	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagFile   string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quotectl",
		Short:         "Manage quote requests",
		Long:          "Inspect, update and export quote requests directly against the configured store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagFile, "file", "", "quotes JSON file (overrides QUOTES_FILE)")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newStatusCmd(),
		newStatsCmd(),
		newExportCmd(),
	)

	return root
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return strings.EqualFold(flagFormat, "json")
}

// openUseCase wires a quote use case without notifications. The returned
// func releases the store.
func openUseCase(ctx context.Context) (*usecase.QuoteUseCase, func(), error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.Env, cfg.LogLevel)
	logging.L().SetOutput(os.Stderr)
	if flagFile != "" {
		cfg.Store.Backend = config.BackendFile
		cfg.Store.File = flagFile
	}

	repo, closeStore, err := repository.OpenQuoteStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return usecase.NewQuoteUseCase(repo, nil, nil, nil), closeStore, nil
}
