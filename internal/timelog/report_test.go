package timelog

import (
	"strings"
	"testing"
)

func TestRenderMatchesFixedLayout(t *testing.T) {
	input := `# 2023-12-04

- 09:00:00-13:00:00 Coding // Work / MyOrg / MyDept / MyProj
- 14:00:00-18:00:00 Coding // Work / MyOrg / MyDept / MyProj
`

	summaries, conds := ParseLog(input, 480)
	if len(conds) != 0 {
		t.Fatalf("conditions = %v, want none", conds)
	}

	got := Render(summaries)
	want := `Balance:

day: 2023-12-04 8h 0m, delta minutes 0

Logs for 2023-12-04:

2023-12-04 09:00:00-13:00:00 Coding // Work / MyOrg / MyDept / MyProj
2023-12-04 14:00:00-18:00:00 Coding // Work / MyOrg / MyDept / MyProj
`
	if got != want {
		t.Fatalf("Render output = %q, want %q", got, want)
	}
}

func TestRenderPositiveDeltaAndMultipleDays(t *testing.T) {
	input := `# 2023-12-05

- 09:00-13:00 Coding
- 14:00-18:10 Coding

# 2023-12-04

- 09:00-12:50 Writing docs // Work / Docs
`

	summaries, _ := ParseLog(input, 480)
	got := Render(summaries)

	if !strings.Contains(got, "day: 2023-12-05 8h 10m, delta minutes 10\n") {
		t.Fatalf("missing positive delta line in %q", got)
	}
	if !strings.Contains(got, "day: 2023-12-04 3h 50m, delta minutes -250\n") {
		t.Fatalf("missing negative delta line in %q", got)
	}
	if !strings.Contains(got, "Logs for 2023-12-05:\n\n2023-12-05 09:00:00-13:00:00 Coding\n") {
		t.Fatalf("detail section should list the first day's entries, got %q", got)
	}
	if strings.Contains(got, "2023-12-04 09:00:00-12:50:00") {
		t.Fatalf("detail section leaked an older day's entries: %q", got)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	summaries, conds := ParseLog("", 480)
	if len(summaries) != 0 || len(conds) != 0 {
		t.Fatalf("ParseLog on empty input = %v, %v, want nothing", summaries, conds)
	}

	want := "Balance:\n\nLogs for the current day:\n\n(no entries)\n"
	if got := Render(summaries); got != want {
		t.Fatalf("Render output = %q, want %q", got, want)
	}
}

func TestRenderExcludesDiscardedEntries(t *testing.T) {
	input := `# 2023-12-04

- 09:00-10:00 Kept
- 11:00-10:00 Discarded, negative duration
`

	summaries, conds := ParseLog(input, 480)
	if len(conds) != 1 || conds[0].Kind != NegativeDuration {
		t.Fatalf("conditions = %v, want one negative duration", conds)
	}
	if summaries[0].TotalMinutes != 60 {
		t.Fatalf("TotalMinutes = %d, want 60", summaries[0].TotalMinutes)
	}

	got := Render(summaries)
	if strings.Contains(got, "Discarded") {
		t.Fatalf("discarded entry leaked into detail listing: %q", got)
	}
}

func TestRenderRunningStopsAtZeroBalance(t *testing.T) {
	input := `# 2023-12-06

- 09:00-13:00 Coding
- 14:00-18:10 Coding

# 2023-12-05

- 09:00-12:00 Meetings
- 13:00-17:55 Coding

# 2023-12-04

- 09:00-13:05 Coding
- 14:00-18:00 Coding
`

	summaries, _ := ParseLog(input, 480)
	got := RenderRunning(summaries)
	want := `Running balance:

2023-12-06 8h 10m 10m
2023-12-05 7h 55m 0m
`
	if got != want {
		t.Fatalf("RenderRunning output = %q, want %q", got, want)
	}
}

func TestRenderRunningEmpty(t *testing.T) {
	want := "Running balance:\n\n(no entries)\n"
	if got := RenderRunning(nil); got != want {
		t.Fatalf("RenderRunning output = %q, want %q", got, want)
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(470); got != "7h 50m" {
		t.Fatalf("FormatMinutes(470) = %q, want %q", got, "7h 50m")
	}
	if got := FormatMinutes(0); got != "0h 0m" {
		t.Fatalf("FormatMinutes(0) = %q, want %q", got, "0h 0m")
	}
	if got := FormatMinutes(480); got != "8h 0m" {
		t.Fatalf("FormatMinutes(480) = %q, want %q", got, "8h 0m")
	}
}
