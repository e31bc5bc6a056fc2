package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"bluecheck/internal/refdata"
)

var tablesCmd = &cobra.Command{
	Use:       "tables [reporters|courts]",
	Short:     "List the known reporters and courts",
	Long:      `List the reference tables used by check, including reporters and courts added in the configuration file.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"reporters", "courts"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		which := ""
		if len(args) == 1 {
			which = args[0]
		}
		tables := activeConfig().ApplyTables(refdata.Default())
		switch strings.ToLower(format) {
		case "pretty":
			writeTablesPretty(cmd.OutOrStdout(), tables, which)
			return nil
		case "json":
			return writeTablesJSON(cmd.OutOrStdout(), tables, which)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		}
	},
}

func init() {
	tablesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type tablesPayload struct {
	Reporters []refdata.Reporter `json:"reporters,omitempty"`
	Courts    []string           `json:"courts,omitempty"`
}

func writeTablesPretty(out io.Writer, t *refdata.Tables, which string) {
	if which != "courts" {
		reporters := t.Reporters()
		width := 0
		for _, r := range reporters {
			width = max(width, runewidth.StringWidth(r.Abbrev))
		}
		fmt.Fprintf(out, "REPORTERS (%d):\n", len(reporters))
		for _, r := range reporters {
			fmt.Fprintf(out, "  %s  %s\n", runewidth.FillRight(r.Abbrev, width), r.Name)
		}
	}
	if which == "" {
		fmt.Fprintln(out)
	}
	if which != "reporters" {
		courts := t.Courts()
		fmt.Fprintf(out, "COURTS (%d):\n", len(courts))
		for _, c := range courts {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}
}

func writeTablesJSON(out io.Writer, t *refdata.Tables, which string) error {
	var payload tablesPayload
	if which != "courts" {
		payload.Reporters = t.Reporters()
	}
	if which != "reporters" {
		payload.Courts = t.Courts()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
