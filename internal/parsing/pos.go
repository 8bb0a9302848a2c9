package parsing

import (
	"fmt"
	"sort"
)

// Location is a single point in the input: a zero-based cursor
// together with its derived 1-based line and column.
type Location struct {
	Line   int
	Column int
	Cursor int
}

// Span is a half-open region of the input, [Start, End).
type Span struct {
	Start Location
	End   Location
}

func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		if s.Start.Column == s.End.Column {
			return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
		}
		return fmt.Sprintf("%d:%d..%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d..%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// LineIndex converts cursor offsets into (line, column) pairs in
// O(log lines) by recording the start offset of every line once, up
// front, instead of rescanning the buffer on every lookup.
type LineIndex struct {
	input     []rune
	lineStart []int
}

func NewLineIndex(input []rune) *LineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, r := range input {
		if r == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &LineIndex{input: input, lineStart: lineStart}
}

// LocationAt returns the Location for cursor, clamping to the input
// bounds.
func (li *LineIndex) LocationAt(cursor int) Location {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(li.input) {
		cursor = len(li.input)
	}

	lineIdx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	lineStart := li.lineStart[lineIdx]
	return Location{
		Line:   lineIdx + 1,
		Column: cursor - lineStart + 1,
		Cursor: cursor,
	}
}

// LineText returns the full text of the line containing cursor,
// without its trailing newline.
func (li *LineIndex) LineText(cursor int) string {
	loc := li.LocationAt(cursor)
	start := li.lineStart[loc.Line-1]
	end := len(li.input)
	if loc.Line < len(li.lineStart) {
		end = li.lineStart[loc.Line] - 1
	}
	if end < start {
		end = start
	}
	return string(li.input[start:end])
}
