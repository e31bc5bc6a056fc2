package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bluecheck/internal/batch"
	"bluecheck/internal/citation"
	"bluecheck/internal/diagfmt"
	"bluecheck/internal/refdata"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Check the built-in example citations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd.Flags(), activeConfig(), time.Now)
		if err != nil {
			return err
		}
		entries, err := exampleEntries(cmd.Context(), settings)
		if err != nil {
			return err
		}
		if settings.format == "pretty" {
			fmt.Fprintln(cmd.OutOrStdout(), citation.Guide)
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return render(cmd.OutOrStdout(), filterEntries(entries, settings), settings, true)
	},
}

func init() {
	examplesCmd.Flags().String("format", "pretty", "output format (pretty|json|short|msgpack)")
	examplesCmd.Flags().Bool("codes", false, "show diagnostic codes")
}

func exampleEntries(ctx context.Context, s checkSettings) ([]diagfmt.Entry, error) {
	v := citation.New(citation.Options{
		Tables:      activeConfig().ApplyTables(refdata.Default()),
		CurrentYear: s.currentYear,
	})
	items, err := batch.Run(ctx, v, batch.FromArgs(citation.Examples()), batch.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	entries := make([]diagfmt.Entry, len(items))
	for i, it := range items {
		entries[i] = diagfmt.Entry{Label: fmt.Sprintf("example %d", i+1), Result: it.Result}
	}
	return entries, nil
}
