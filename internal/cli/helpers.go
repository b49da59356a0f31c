package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/faizmokh/baki/internal/files"
	"github.com/faizmokh/baki/internal/timelog"
)

// loadSummaries reads the log, runs the parse-and-aggregate pipeline, and
// surfaces any parse anomalies as warnings without failing the command.
func loadSummaries(manager *files.Manager, path string, target int) ([]timelog.DaySummary, error) {
	source, err := manager.ReadLog(path)
	if err != nil {
		return nil, err
	}

	summaries, conditions := timelog.ParseLog(source, target)
	logConditions(conditions)
	return summaries, nil
}

func logConditions(conditions []timelog.Condition) {
	for _, cond := range conditions {
		logrus.WithFields(logrus.Fields{
			"line": cond.Line,
			"kind": cond.Kind.String(),
		}).Warn(cond.Detail)
	}
}

func formatEntry(entry timelog.Entry) string {
	builder := strings.Builder{}
	builder.Grow(24 + len(entry.Text) + len(entry.TagPath)*8)

	builder.WriteString(entry.Start.String())
	builder.WriteByte('-')
	builder.WriteString(entry.End.String())

	if entry.Text != "" {
		builder.WriteByte(' ')
		builder.WriteString(entry.Text)
	}
	if len(entry.TagPath) > 0 {
		builder.WriteString(" // ")
		builder.WriteString(strings.Join(entry.TagPath, " / "))
	}

	return builder.String()
}

func printSummary(cmd *cobra.Command, day timelog.DaySummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s, delta minutes %d)\n",
		day.Date.Format("2006-01-02"),
		timelog.FormatMinutes(day.TotalMinutes),
		day.DeltaMinutes)
	if len(day.Entries) == 0 {
		fmt.Fprintln(out, "(no entries)")
		return
	}
	for i, entry := range day.Entries {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatEntry(entry))
	}
}
