package timelog

import (
	"strings"
	"time"
)

// DefaultTargetMinutes is the expected worked minutes per day (8 hours).
const DefaultTargetMinutes = 480

// Aggregator folds parsed entries into per-day summaries. Dates are merge
// keys: a date heading reappearing later in the source accumulates into the
// summary created at its first appearance, and summaries keep first-seen
// order.
type Aggregator struct {
	target int
	order  []string
	byDate map[string]*DaySummary
}

// NewAggregator creates an aggregator comparing day totals against target
// minutes. A non-positive target falls back to DefaultTargetMinutes.
func NewAggregator(target int) *Aggregator {
	if target <= 0 {
		target = DefaultTargetMinutes
	}
	return &Aggregator{
		target: target,
		byDate: make(map[string]*DaySummary),
	}
}

// Add folds one entry into its day's summary.
func (a *Aggregator) Add(date time.Time, entry Entry) {
	key := date.Format(dateLayout)
	summary, ok := a.byDate[key]
	if !ok {
		summary = &DaySummary{Date: date}
		a.byDate[key] = summary
		a.order = append(a.order, key)
	}
	summary.Entries = append(summary.Entries, entry)
	summary.TotalMinutes += entry.DurationMinutes()
}

// Target returns the configured minutes-per-day target.
func (a *Aggregator) Target() int {
	return a.target
}

// Summaries finalizes and returns the day summaries in first-seen order.
func (a *Aggregator) Summaries() []DaySummary {
	summaries := make([]DaySummary, 0, len(a.order))
	for _, key := range a.order {
		summary := *a.byDate[key]
		summary.DeltaMinutes = summary.TotalMinutes - a.target
		summaries = append(summaries, summary)
	}
	return summaries
}

// ParseLog runs the full scan-parse-aggregate pipeline over source and
// returns the day summaries in first-seen order together with any anomalies
// encountered. It never fails: malformed units are excluded and reported as
// Conditions.
func ParseLog(source string, target int) ([]DaySummary, []Condition) {
	parser := NewParser(strings.NewReader(source))
	agg := NewAggregator(target)

	for {
		dated, err := parser.Next()
		if err != nil {
			// io.EOF, or a scanner error, which cannot happen over an
			// in-memory string.
			break
		}
		agg.Add(dated.Date, dated.Entry)
	}

	return agg.Summaries(), parser.Conditions()
}
