package timelog

import "fmt"

// ConditionKind classifies a recoverable parse anomaly.
type ConditionKind uint8

const (
	// MalformedDate marks a heading whose text is not a valid YYYY-MM-DD date.
	MalformedDate ConditionKind = iota
	// NegativeDuration marks an entry whose end time precedes its start time.
	NegativeDuration
	// OrphanEntry marks an entry found before any valid date heading.
	OrphanEntry
	// OutOfOrderHeading marks a heading date that is not strictly older than
	// the heading before it. The day is still recorded.
	OutOfOrderHeading
)

func (k ConditionKind) String() string {
	switch k {
	case MalformedDate:
		return "malformed date"
	case NegativeDuration:
		return "negative duration"
	case OrphanEntry:
		return "orphan entry"
	case OutOfOrderHeading:
		return "out-of-order heading"
	default:
		return "unknown"
	}
}

// Condition records one anomaly encountered while parsing. Conditions never
// abort a run; the offending unit is excluded and parsing continues.
type Condition struct {
	Kind   ConditionKind
	Line   int
	Detail string
}

func (c Condition) String() string {
	return fmt.Sprintf("line %d: %s: %s", c.Line, c.Kind, c.Detail)
}
