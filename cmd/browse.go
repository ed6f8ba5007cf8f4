package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/filmdex/filmdex/tui"
	"github.com/filmdex/filmdex/view"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse films interactively",
	Long: `Open an interactive film browser. The list reloads on demand with
'r', shows the selected film's opening crawl on enter, and renders
loading and error states as they happen.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctrl := view.NewController(swapiClient, logger)
	model := tui.NewModel(ctrl, swapiClient)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}

	return nil
}
