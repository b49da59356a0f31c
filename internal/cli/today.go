package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/baki/internal/config"
	"github.com/faizmokh/baki/internal/files"
	"github.com/faizmokh/baki/internal/version"
)

func newTodayCommand(manager *files.Manager, cfg config.Config) *cobra.Command {
	var (
		fileFlag   string
		targetFlag int
	)

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the most recent day's entries and its target delta.",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := loadSummaries(manager, fileFlag, targetFlag)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no entries)")
				return nil
			}
			printSummary(cmd, summaries[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Path to the log file (default: <home>/log.md)")
	cmd.Flags().IntVar(&targetFlag, "target-minutes", cfg.TargetMinutes, "Expected worked minutes per day")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
