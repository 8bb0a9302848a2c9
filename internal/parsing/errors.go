package parsing

import (
	"fmt"
	"sort"
	"strings"
)

// frontier tracks the deepest cursor ever reached during a parse
// attempt, and the set of atomic rule names that were expected there.
// It is only ever extended forward: ties grow the expected set, a
// strictly deeper miss resets it.
type frontier struct {
	offset   int
	expected map[string]struct{}
}

func newFrontier() *frontier {
	return &frontier{expected: map[string]struct{}{}}
}

func (f *frontier) record(offset int, name string) {
	switch {
	case offset > f.offset:
		f.offset = offset
		f.expected = map[string]struct{}{name: {}}
	case offset == f.offset:
		f.expected[name] = struct{}{}
	}
}

func (f *frontier) merge(other *frontier) {
	switch {
	case other.offset > f.offset:
		f.offset = other.offset
		f.expected = other.expected
	case other.offset == f.offset:
		for name := range other.expected {
			f.expected[name] = struct{}{}
		}
	}
}

func (f *frontier) names() []string {
	names := make([]string, 0, len(f.expected))
	for name := range f.expected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseError is the single error kind the recognizer produces. It is
// only ever constructed by the top-level entry point, never by
// individual rules: rule failures are plain backtracking values that
// flow through ordered choice and accumulate into the frontier.
type ParseError struct {
	Offset   int
	Line     int
	Column   int
	Expected []string
	Trace    []string

	lineIndex *LineIndex
}

// Incomplete is a distinct, programmer-facing error: the top rule
// succeeded but did not consume the entire input. It is never
// produced by a grammar failure.
type Incomplete struct {
	Offset int
}

func (e *Incomplete) Error() string {
	return fmt.Sprintf("parse succeeded but stopped at offset %d before end of input", e.Offset)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s", e.Line, e.Column, e.FormattedExpected())
}

// FormattedExpected joins the expected set alphabetically, using
// " or " between the final two elements and ", " elsewhere.
func (e *ParseError) FormattedExpected() string {
	return formatExpectedAsString(e.Expected)
}

func formatExpectedAsString(names []string) string {
	switch len(names) {
	case 0:
		return "<nothing>"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}

// buildError turns the parser's accumulated frontier into the public
// ParseError the top-level Parse entry point returns on failure.
func (p *Parser) buildError() *ParseError {
	loc := p.in.LocationAt(p.front.offset)
	return &ParseError{
		Offset:    p.front.offset,
		Line:      loc.Line,
		Column:    loc.Column,
		Expected:  p.front.names(),
		Trace:     p.FrameStack(),
		lineIndex: p.in.lines,
	}
}

// FormattedLine renders the failing source line with a caret under
// the failing column.
func (e *ParseError) FormattedLine() string {
	if e.lineIndex == nil {
		return ""
	}
	line := e.lineIndex.LineText(e.Offset)
	col := e.Column
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return fmt.Sprintf("%s\n%s", line, caret)
}

// FormattedTrace renders the named-rule frame stack innermost-last,
// for diagnostic dumps.
func (e *ParseError) FormattedTrace() string {
	return strings.Join(e.Trace, " > ")
}
