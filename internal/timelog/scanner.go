package timelog

import (
	"bufio"
	"io"
	"strings"
)

// BlockKind distinguishes the two structural units the scanner recognizes.
type BlockKind uint8

const (
	// BlockHeading is a markdown heading line.
	BlockHeading BlockKind = iota
	// BlockListItem is a markdown bullet list item line.
	BlockListItem
)

// Block is one structural unit of the source, with markers stripped.
// Level carries the heading depth or the list item indentation; semantics
// beyond item boundaries ignore it.
type Block struct {
	Kind  BlockKind
	Level int
	Line  int
	Text  string
}

// Scanner segments raw log text into heading and list-item blocks in source
// order. Blank lines and any other content are skipped without error. The
// scanner performs no interpretation of block contents; restart by
// constructing a new Scanner over the same source.
type Scanner struct {
	scanner *bufio.Scanner
	line    int
}

// NewScanner returns a scanner ready to segment r line by line.
func NewScanner(r io.Reader) *Scanner {
	if r == nil {
		return &Scanner{}
	}
	return &Scanner{scanner: bufio.NewScanner(r)}
}

// Next returns the next block in source order, or io.EOF when the source is
// exhausted.
func (s *Scanner) Next() (Block, error) {
	if s.scanner == nil {
		return Block{}, io.EOF
	}

	for s.scanner.Scan() {
		s.line++
		raw := s.scanner.Text()
		trimmed := strings.TrimLeft(raw, " \t")

		switch {
		case strings.HasPrefix(trimmed, "#"):
			depth := 0
			for depth < len(trimmed) && trimmed[depth] == '#' {
				depth++
			}
			return Block{
				Kind:  BlockHeading,
				Level: depth,
				Line:  s.line,
				Text:  strings.TrimSpace(trimmed[depth:]),
			}, nil
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			return Block{
				Kind:  BlockListItem,
				Level: len(raw) - len(trimmed),
				Line:  s.line,
				Text:  strings.TrimSpace(trimmed[2:]),
			}, nil
		}
	}

	if err := s.scanner.Err(); err != nil {
		return Block{}, err
	}
	return Block{}, io.EOF
}
