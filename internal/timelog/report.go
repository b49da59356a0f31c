package timelog

import (
	"fmt"
	"strings"
	"time"
)

// Render produces the balance report: one line per day summary in first-seen
// order, then a detail listing of the first (most recent) day's entries. The
// layout is a fixed contract consumed downstream; keep the spacing exact.
func Render(days []DaySummary) string {
	var b strings.Builder
	b.WriteString("Balance:\n\n")

	if len(days) == 0 {
		b.WriteString("Logs for the current day:\n\n(no entries)\n")
		return b.String()
	}

	for _, day := range days {
		fmt.Fprintf(&b, "day: %s %s, delta minutes %d\n",
			day.Date.Format(dateLayout), FormatMinutes(day.TotalMinutes), day.DeltaMinutes)
	}

	current := days[0]
	fmt.Fprintf(&b, "\nLogs for %s:\n\n", current.Date.Format(dateLayout))
	for _, entry := range current.Entries {
		b.WriteString(FormatEntry(current.Date, entry))
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderRunning produces the running-balance view: per-day totals with a
// cumulative vs-target delta, most recent day first, stopping after the
// first day whose running delta reaches zero.
func RenderRunning(days []DaySummary) string {
	var b strings.Builder
	b.WriteString("Running balance:\n\n")

	if len(days) == 0 {
		b.WriteString("(no entries)\n")
		return b.String()
	}

	// First-seen order is most-recent-first, so the cumulative delta
	// accumulates from the tail of the slice.
	running := make([]int, len(days))
	cumulative := 0
	for i := len(days) - 1; i >= 0; i-- {
		cumulative += days[i].DeltaMinutes
		running[i] = cumulative
	}

	for i, day := range days {
		fmt.Fprintf(&b, "%s %s %dm\n",
			day.Date.Format(dateLayout), FormatMinutes(day.TotalMinutes), running[i])
		if running[i] == 0 {
			break
		}
	}

	return b.String()
}

// FormatMinutes renders a minute count as whole hours and remainder minutes.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// FormatEntry renders one entry in its canonical log form, prefixed with its
// owning date.
func FormatEntry(date time.Time, entry Entry) string {
	var b strings.Builder
	b.Grow(40 + len(entry.Text) + len(entry.TagPath)*8)

	b.WriteString(date.Format(dateLayout))
	b.WriteByte(' ')
	b.WriteString(entry.Start.String())
	b.WriteByte('-')
	b.WriteString(entry.End.String())

	if entry.Text != "" {
		b.WriteByte(' ')
		b.WriteString(entry.Text)
	}
	if len(entry.TagPath) > 0 {
		b.WriteString(" // ")
		b.WriteString(strings.Join(entry.TagPath, " / "))
	}

	return b.String()
}
