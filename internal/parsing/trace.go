package parsing

import (
	"fmt"
	"strings"
)

// Instrument is the optional tracing harness described in §6: a
// collector that a driver can attach to a Parser via WithInstrument to
// record every atomic rule attempt along with the cursor position it
// was tried at. It never influences parsing outcomes — atomic rules
// report to it purely as a side channel, which is why Atomic calls
// Enter unconditionally on both success and failure.
//
// Instrument itself knows nothing about files, terminals, or process
// exit codes; that's the driver's job (C13). It only accumulates a
// flat, ordered entry log and renders it back out as text.
type Instrument struct {
	entries []traceEntry
	depth   int
	max     int
}

type traceEntry struct {
	name   string
	cursor int
	depth  int
}

// NewInstrument creates a tracing instrument. maxEntries caps memory
// use on pathological grammars/inputs; 0 means unbounded.
func NewInstrument(maxEntries int) *Instrument {
	return &Instrument{max: maxEntries}
}

// Enter records one atomic rule attempt at the given cursor position.
func (in *Instrument) Enter(name string, cursor int) {
	if in == nil {
		return
	}
	if in.max > 0 && len(in.entries) >= in.max {
		return
	}
	in.entries = append(in.entries, traceEntry{name: name, cursor: cursor, depth: in.depth})
}

// Push and Pop let a driver bracket a named, non-atomic region (e.g. a
// whole top-level declaration) so Report can indent its atomic
// attempts underneath it.
func (in *Instrument) Push(name string, cursor int) {
	if in == nil {
		return
	}
	in.Enter(name, cursor)
	in.depth++
}

func (in *Instrument) Pop() {
	if in == nil || in.depth == 0 {
		return
	}
	in.depth--
}

// Len reports how many entries have been recorded so far.
func (in *Instrument) Len() int {
	if in == nil {
		return 0
	}
	return len(in.entries)
}

// Report renders the full trace as indented `name@cursor` lines, one
// per recorded attempt, in the order they occurred.
func (in *Instrument) Report() string {
	if in == nil || len(in.entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range in.entries {
		b.WriteString(strings.Repeat("  ", e.depth))
		fmt.Fprintf(&b, "%s@%d\n", e.name, e.cursor)
	}
	return b.String()
}

// Reset clears all recorded entries, leaving the instrument usable for
// another parse.
func (in *Instrument) Reset() {
	if in == nil {
		return
	}
	in.entries = nil
	in.depth = 0
}
