package timelog

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// entryPattern matches the time-range entry grammar. Seconds are optional on
// either endpoint and default to :00.
var entryPattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?-(\d{2}):(\d{2})(?::(\d{2}))?(?:\s+(.*))?$`)

// Parser interprets scanner blocks as date headings and time entries and
// emits (owning date, entry) pairs in source order. The owning date is the
// most recent successfully parsed heading. Anomalies are collected as
// Conditions and never stop the stream.
type Parser struct {
	sc      *Scanner
	current *time.Time
	conds   []Condition
}

// NewParser returns a parser reading log text from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{sc: NewScanner(r)}
}

// Next returns the next valid entry with its owning date, or io.EOF when the
// source is exhausted. Malformed units are recorded and skipped.
func (p *Parser) Next() (DatedEntry, error) {
	for {
		block, err := p.sc.Next()
		if err != nil {
			return DatedEntry{}, err
		}

		switch block.Kind {
		case BlockHeading:
			p.consumeHeading(block)
		case BlockListItem:
			entry, ok := parseEntryLine(block.Text)
			if !ok {
				// Annotation line, carries no time information.
				continue
			}
			if p.current == nil {
				p.record(OrphanEntry, block)
				continue
			}
			if entry.End.Before(entry.Start) {
				p.record(NegativeDuration, block)
				continue
			}
			return DatedEntry{Date: *p.current, Entry: entry}, nil
		}
	}
}

// Conditions returns the anomalies seen so far, in source order.
func (p *Parser) Conditions() []Condition {
	return p.conds
}

func (p *Parser) consumeHeading(block Block) {
	date, err := time.Parse(dateLayout, block.Text)
	if err != nil {
		p.record(MalformedDate, block)
		return
	}
	if p.current != nil && !date.Before(*p.current) {
		p.record(OutOfOrderHeading, block)
	}
	p.current = &date
}

func (p *Parser) record(kind ConditionKind, block Block) {
	p.conds = append(p.conds, Condition{Kind: kind, Line: block.Line, Detail: block.Text})
}

func parseEntryLine(text string) (Entry, bool) {
	matches := entryPattern.FindStringSubmatch(text)
	if matches == nil {
		return Entry{}, false
	}

	start, ok := clockFromParts(matches[1], matches[2], matches[3])
	if !ok {
		return Entry{}, false
	}
	end, ok := clockFromParts(matches[4], matches[5], matches[6])
	if !ok {
		return Entry{}, false
	}

	description, tags := splitTagPath(matches[7])

	return Entry{
		Start:   start,
		End:     end,
		Text:    description,
		TagPath: tags,
	}, true
}

func clockFromParts(hour, minute, second string) (ClockTime, bool) {
	h, err := strconv.Atoi(hour)
	if err != nil || h > 23 {
		return ClockTime{}, false
	}
	m, err := strconv.Atoi(minute)
	if err != nil || m > 59 {
		return ClockTime{}, false
	}
	s := 0
	if second != "" {
		s, err = strconv.Atoi(second)
		if err != nil || s > 59 {
			return ClockTime{}, false
		}
	}
	return ClockTime{Hour: h, Minute: m, Second: s}, true
}

func splitTagPath(rest string) (string, []string) {
	rest = strings.TrimSpace(rest)
	idx := strings.Index(rest, "//")
	if idx < 0 {
		return rest, nil
	}

	description := strings.TrimSpace(rest[:idx])
	var tags []string
	for _, segment := range strings.Split(rest[idx+2:], "/") {
		tags = append(tags, strings.TrimSpace(segment))
	}
	return description, tags
}
