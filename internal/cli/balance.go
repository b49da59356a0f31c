package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/baki/internal/config"
	"github.com/faizmokh/baki/internal/files"
	"github.com/faizmokh/baki/internal/timelog"
)

func newBalanceCommand(manager *files.Manager, cfg config.Config) *cobra.Command {
	var (
		fileFlag   string
		targetFlag int
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print per-day totals against the target and the most recent day's entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := loadSummaries(manager, fileFlag, targetFlag)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), timelog.Render(summaries))
			return nil
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Path to the log file (default: <home>/log.md)")
	cmd.Flags().IntVar(&targetFlag, "target-minutes", cfg.TargetMinutes, "Expected worked minutes per day")

	return cmd
}

func newRunningCommand(manager *files.Manager, cfg config.Config) *cobra.Command {
	var (
		fileFlag   string
		targetFlag int
	)

	cmd := &cobra.Command{
		Use:   "running",
		Short: "Print per-day totals with a cumulative vs-target balance, newest first.",
		Long:  "running walks the log from the most recent day backwards and stops after the first day whose cumulative balance reaches zero.",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := loadSummaries(manager, fileFlag, targetFlag)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), timelog.RenderRunning(summaries))
			return nil
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Path to the log file (default: <home>/log.md)")
	cmd.Flags().IntVar(&targetFlag, "target-minutes", cfg.TargetMinutes, "Expected worked minutes per day")

	return cmd
}
