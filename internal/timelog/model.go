package timelog

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day within a single log entry.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// Minutes returns the time of day as whole minutes since midnight.
// Seconds are truncated, never rounded.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier than other, seconds included.
func (c ClockTime) Before(other ClockTime) bool {
	if c.Hour != other.Hour {
		return c.Hour < other.Hour
	}
	if c.Minute != other.Minute {
		return c.Minute < other.Minute
	}
	return c.Second < other.Second
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Entry represents a single time-range line within a dated section.
type Entry struct {
	Start   ClockTime
	End     ClockTime
	Text    string
	TagPath []string
}

// DurationMinutes computes the worked minutes of the entry from its
// minute-resolution endpoints. Entries never span midnight.
func (e Entry) DurationMinutes() int {
	return e.End.Minutes() - e.Start.Minutes()
}

// DatedEntry pairs an entry with the date heading that owns it.
type DatedEntry struct {
	Date  time.Time
	Entry Entry
}

// DaySummary aggregates the entries recorded under one calendar date.
type DaySummary struct {
	Date         time.Time
	Entries      []Entry
	TotalMinutes int
	DeltaMinutes int
}
