package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/baki/internal/config"
	"github.com/faizmokh/baki/internal/files"
	"github.com/faizmokh/baki/internal/ui"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and
// the TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baki",
		Short: "Track worked hours against a daily target from a markdown time log.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, manager, cfg.TargetMinutes)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newBalanceCommand(manager, cfg),
		newRunningCommand(manager, cfg),
		newTodayCommand(manager, cfg),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that loads configuration and executes the
// Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	manager, err := files.NewManager(cfg.Home)
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager, cfg)
	return cmd.Execute()
}

// Main is a helper used by cmd/baki/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
