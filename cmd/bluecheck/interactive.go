package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bluecheck/internal/citation"
	"bluecheck/internal/refdata"
	"bluecheck/internal/ui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Check citations in an interactive terminal form",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd.Flags(), activeConfig(), time.Now)
		if err != nil {
			return err
		}
		v := citation.New(citation.Options{
			Tables:      activeConfig().ApplyTables(refdata.Default()),
			CurrentYear: settings.currentYear,
		})
		examples := citation.Examples()
		model := ui.NewFormModel(v, ui.FormOptions{
			Initial:      examples[0],
			Examples:     examples,
			ShowCodes:    settings.showCodes,
			HideWarnings: settings.noWarnings,
			HideInfo:     settings.quiet,
		})
		program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("interactive session failed: %w", err)
		}
		return nil
	},
}

func init() {
	interactiveCmd.Flags().Int("year", 0, "reference year for the year range check (0=current year, -1=no upper bound)")
	interactiveCmd.Flags().Bool("codes", false, "show diagnostic codes")
}
