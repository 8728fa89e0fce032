package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/matcompare/internal/tui"
)

// runInteractive launches the full-screen search and compare UI.
func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	if !tui.IsInteractive() {
		return ErrNotInteractive
	}

	client, err := opts.client()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	model := tui.NewModel(ctx, client, baseLogger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
