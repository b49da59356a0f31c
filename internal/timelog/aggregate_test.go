package timelog

import (
	"testing"
	"time"
)

func TestAggregatorSumsAndComputesDelta(t *testing.T) {
	agg := NewAggregator(480)
	date := time.Date(2023, time.December, 4, 0, 0, 0, 0, time.UTC)

	agg.Add(date, Entry{Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 13}, Text: "Coding"})
	agg.Add(date, Entry{Start: ClockTime{Hour: 14}, End: ClockTime{Hour: 17, Minute: 50}, Text: "Coding"})

	summaries := agg.Summaries()
	if len(summaries) != 1 {
		t.Fatalf("summaries length = %d, want 1", len(summaries))
	}
	day := summaries[0]
	if day.TotalMinutes != 470 {
		t.Fatalf("TotalMinutes = %d, want 470", day.TotalMinutes)
	}
	if day.DeltaMinutes != -10 {
		t.Fatalf("DeltaMinutes = %d, want -10", day.DeltaMinutes)
	}
	if len(day.Entries) != 2 {
		t.Fatalf("entries length = %d, want 2", len(day.Entries))
	}
}

func TestAggregatorKeepsFirstSeenOrderAndMergesDates(t *testing.T) {
	agg := NewAggregator(480)
	newer := time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC)
	older := time.Date(2023, time.December, 4, 0, 0, 0, 0, time.UTC)

	agg.Add(newer, Entry{Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 10}, Text: "A"})
	agg.Add(older, Entry{Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 11}, Text: "B"})
	// The newer date reappears later in the source; it must merge, not
	// create a duplicate summary.
	agg.Add(newer, Entry{Start: ClockTime{Hour: 11}, End: ClockTime{Hour: 12}, Text: "C"})

	summaries := agg.Summaries()
	if len(summaries) != 2 {
		t.Fatalf("summaries length = %d, want 2", len(summaries))
	}
	if !summaries[0].Date.Equal(newer) || !summaries[1].Date.Equal(older) {
		t.Fatalf("summary order = [%s %s], want first-seen [%s %s]",
			summaries[0].Date, summaries[1].Date, newer, older)
	}
	if summaries[0].TotalMinutes != 120 {
		t.Fatalf("merged TotalMinutes = %d, want 120", summaries[0].TotalMinutes)
	}
	if len(summaries[0].Entries) != 2 || summaries[0].Entries[1].Text != "C" {
		t.Fatalf("merged entries = %+v, want [A C] in parse order", summaries[0].Entries)
	}
}

func TestAggregatorTargetFallback(t *testing.T) {
	if got := NewAggregator(0).Target(); got != DefaultTargetMinutes {
		t.Fatalf("Target() = %d, want %d", got, DefaultTargetMinutes)
	}
	if got := NewAggregator(300).Target(); got != 300 {
		t.Fatalf("Target() = %d, want 300", got)
	}
}

func TestParseLogPipeline(t *testing.T) {
	input := `# 2023-12-05

- 09:00-13:00 Coding // Work

# 2023-12-04

- 09:00-12:00 Meetings

# 2023-12-05

- 14:00-18:10 Coding // Work
`

	summaries, conds := ParseLog(input, 480)
	if len(summaries) != 2 {
		t.Fatalf("summaries length = %d, want 2", len(summaries))
	}
	if summaries[0].TotalMinutes != 490 {
		t.Fatalf("first day TotalMinutes = %d, want 490", summaries[0].TotalMinutes)
	}
	if summaries[0].DeltaMinutes != 10 {
		t.Fatalf("first day DeltaMinutes = %d, want 10", summaries[0].DeltaMinutes)
	}
	if summaries[1].DeltaMinutes != -300 {
		t.Fatalf("second day DeltaMinutes = %d, want -300", summaries[1].DeltaMinutes)
	}

	// The repeated 2023-12-05 heading is not strictly decreasing, which is
	// reported but still merged.
	if len(conds) != 1 || conds[0].Kind != OutOfOrderHeading {
		t.Fatalf("conditions = %v, want one out-of-order heading", conds)
	}
}

func TestSecondsAreTruncatedNotRounded(t *testing.T) {
	entry := Entry{Start: ClockTime{}, End: ClockTime{Second: 1}}
	if got := entry.DurationMinutes(); got != 0 {
		t.Fatalf("DurationMinutes for 00:00:00-00:00:01 = %d, want 0", got)
	}

	entry = Entry{
		Start: ClockTime{Hour: 8, Minute: 59, Second: 59},
		End:   ClockTime{Hour: 9, Minute: 0, Second: 0},
	}
	if got := entry.DurationMinutes(); got != 1 {
		t.Fatalf("DurationMinutes for 08:59:59-09:00:00 = %d, want 1", got)
	}
}
