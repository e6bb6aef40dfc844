package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ShwetaPawar0705/IRIS/internal/app"
	"github.com/ShwetaPawar0705/IRIS/internal/config"
	"github.com/ShwetaPawar0705/IRIS/internal/services"
	"github.com/ShwetaPawar0705/IRIS/internal/tables"
)

type queryFlags struct {
	pretty bool
	sheets []string
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "iris",
		Short:         "Discover tables in a workbook and sum their rows",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	flags := &queryFlags{}
	rootCmd.PersistentFlags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringSliceVar(&flags.sheets, "sheet", nil, "Only segment the named sheets (repeatable)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP service (default)",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "tables <file>",
			Short: "List the tables discovered in a workbook",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return query(cmd.Context(), out, flags, args[0], func(ctx context.Context, s *services.TableService) (any, error) {
					return s.ListTables(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "rows <file> <table>",
			Short: "List the row labels of a table",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return query(cmd.Context(), out, flags, args[0], func(ctx context.Context, s *services.TableService) (any, error) {
					return s.TableDetails(ctx, args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "sum <file> <table> <row>",
			Short: "Sum the numeric cells of a row",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return query(cmd.Context(), out, flags, args[0], func(ctx context.Context, s *services.TableService) (any, error) {
					return s.RowSum(ctx, args[1], args[2])
				})
			},
		},
	)

	return rootCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run()
}

// query loads path and prints the result of fn as JSON
func query(ctx context.Context, out io.Writer, flags *queryFlags, path string, fn func(context.Context, *services.TableService) (any, error)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	reg, err := tables.Load(ctx, path, tables.OnlySheets(flags.sheets...), tables.LoadLogger(logger))
	if err != nil {
		return err
	}

	result, err := fn(ctx, services.NewTableService(reg, nil, logger))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	if flags.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
