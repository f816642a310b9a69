package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"quotedesk/internal/adapter/export"
	"quotedesk/internal/usecase"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var filter usecase.QuoteFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes",
		Long:  "List quotes in admin order: open requests first, newest first within a status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeStore, err := openUseCase(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			quotes, err := uc.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), quotes)
			}
			return printQuoteTable(cmd.OutOrStdout(), quotes)
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "match name, phone, address or request text")
	cmd.Flags().StringVar(&filter.ServiceType, "service", "all", "service type (direct|partner|all)")
	cmd.Flags().StringVar(&filter.Status, "status", "all", "status filter")

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeStore, err := openUseCase(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			q, err := uc.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), q)
			}
			printQuoteDetail(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a quote's status",
		Long:  "Set status to new, contacted, in_progress, completed or cancelled.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeStore, err := openUseCase(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			q, err := uc.SetStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), q)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", q.ID, q.Status, q.Status.Label())
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show quote counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeStore, err := openUseCase(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			stats, err := uc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			return printStats(cmd.OutOrStdout(), stats)
		},
	}
}

func newExportCmd() *cobra.Command {
	var (
		kind   string
		output string
		filter usecase.QuoteFilter
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export quotes to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind = strings.ToLower(strings.TrimSpace(kind))
			if kind != "csv" && kind != "xlsx" {
				return fmt.Errorf("unsupported export type %q (csv|xlsx)", kind)
			}

			uc, closeStore, err := openUseCase(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			quotes, err := uc.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			var data []byte
			if kind == "csv" {
				data = export.NewCSVExporter().Export(quotes)
			} else if data, err = export.NewXLSXExporter().Export(quotes); err != nil {
				return err
			}

			if output == "" {
				output = "quotes_" + time.Now().Format("2006-01-02") + "." + kind
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d quotes to %s\n", len(quotes), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "csv", "export type (csv|xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path, - for stdout (default quotes_<date>.<type>)")
	cmd.Flags().StringVar(&filter.Search, "search", "", "match name, phone, address or request text")
	cmd.Flags().StringVar(&filter.ServiceType, "service", "all", "service type (direct|partner|all)")
	cmd.Flags().StringVar(&filter.Status, "status", "all", "status filter")

	return cmd
}
