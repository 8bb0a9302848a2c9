package parsing

// Parser owns an Input, a mutable cursor, the deepest-failure
// frontier, the named-rule frame stack used for traces, and the
// semicolon-inference mode flag. It is single-threaded and
// synchronous: parsing many inputs concurrently means instantiating
// one Parser per input, never sharing one (see §5 of the design doc).
type Parser struct {
	in     *Input
	cursor int

	front  *frontier
	frames []string

	// sensitive is the semicolon-inference mode bit. It is set by
	// the syntactic construct that introduces a new context (braces
	// => true, parens => false) and is restored on backtrack by
	// virtue of being saved/restored explicitly around those
	// constructs rather than mutated as global state.
	sensitive bool

	instr *Instrument
}

func NewParser(src string) *Parser {
	return &Parser{
		in:    NewInput(src),
		front: newFrontier(),
	}
}

// WithInstrument attaches a tracing instrument to the parser. Passing
// nil (the default) disables tracing entirely with no overhead beyond
// a nil check.
func (p *Parser) WithInstrument(instr *Instrument) *Parser {
	p.instr = instr
	return p
}

func (p *Parser) Cursor() int      { return p.cursor }
func (p *Parser) Length() int      { return p.in.Length() }
func (p *Parser) AtEOI() bool      { return p.cursor >= p.in.Length() }
func (p *Parser) Peek() rune       { return p.in.At(p.cursor) }
func (p *Parser) Slice(i, j int) string { return p.in.Slice(i, j) }

// Location returns the current cursor position's (line, column).
func (p *Parser) Location() Location { return p.in.LocationAt(p.cursor) }

// mark/reset implement the "cursor restored exactly on backtrack"
// invariant: every combinator that can fail after partial progress
// saves a mark before attempting and resets to it on failure.
type mark struct {
	cursor    int
	sensitive bool
}

func (p *Parser) save() mark {
	return mark{cursor: p.cursor, sensitive: p.sensitive}
}

func (p *Parser) reset(m mark) {
	p.cursor = m.cursor
	p.sensitive = m.sensitive
}

// fail records a failed match attempt at the current cursor against
// the frontier, under the given atomic name.
func (p *Parser) fail(name string) bool {
	p.front.record(p.cursor, name)
	return false
}

// ---- primitive token-level combinators (C2) ----

// Ch matches a single literal rune.
func (p *Parser) Ch(c rune) bool {
	if p.Peek() != c {
		return p.fail(string(c))
	}
	p.cursor++
	return true
}

// Str matches a literal string in full, or not at all: the cursor is
// restored to its entry position on any mismatch.
func (p *Parser) Str(s string) bool {
	m := p.save()
	for _, c := range s {
		if p.Peek() != c {
			p.reset(m)
			return p.fail("\"" + s + "\"")
		}
		p.cursor++
	}
	return true
}

// AnyOf matches one rune that is a member of set.
func (p *Parser) AnyOf(set string) bool {
	c := p.Peek()
	for _, r := range set {
		if c == r {
			p.cursor++
			return true
		}
	}
	return p.fail("one of " + set)
}

// Range matches one rune in [lo, hi].
func (p *Parser) Range(lo, hi rune) bool {
	c := p.Peek()
	if c >= lo && c <= hi {
		p.cursor++
		return true
	}
	return p.fail("range " + string(lo) + "-" + string(hi))
}

// Any matches any single rune, failing only at end of input.
func (p *Parser) Any() bool {
	if p.AtEOI() {
		return p.fail("any character")
	}
	p.cursor++
	return true
}

// EOI matches at, and only at, the end of input.
func (p *Parser) EOI() bool {
	if p.AtEOI() {
		return true
	}
	return p.fail("end of input")
}

// ---- generic combinators, parameterized on a rule's result type ----
//
// Rule is the shape every non-primitive grammar production takes: try
// to match, and on success return whatever value it captured (often
// nothing useful, represented as struct{}).
type Rule[T any] func(p *Parser) (T, bool)

// Seq2 matches a then b in order, as a single atomic attempt: if b
// fails after a succeeded, the whole sequence backtracks to where it
// started.
func Seq2[A, B any](p *Parser, a Rule[A], b Rule[B]) (A, B, bool) {
	var za A
	var zb B
	m := p.save()
	va, ok := a(p)
	if !ok {
		p.reset(m)
		return za, zb, false
	}
	vb, ok := b(p)
	if !ok {
		p.reset(m)
		return za, zb, false
	}
	return va, vb, true
}

// Choice is ordered alternation: the first branch to succeed wins,
// later branches are never tried. The cursor is restored between
// failed attempts; frontiers of all failed branches are merged.
func Choice[T any](p *Parser, fns ...Rule[T]) (T, bool) {
	var zero T
	m := p.save()
	for _, fn := range fns {
		if v, ok := fn(p); ok {
			return v, true
		}
		p.reset(m)
	}
	return zero, false
}

// ZeroOrMore always succeeds, collecting as many matches as possible
// and stopping at the first failure (which is discarded, not
// propagated).
func ZeroOrMore[T any](p *Parser, fn Rule[T]) []T {
	var out []T
	for {
		m := p.save()
		v, ok := fn(p)
		if !ok {
			p.reset(m)
			return out
		}
		if p.cursor == m.cursor {
			// fn matched without consuming input; stop here to
			// avoid looping forever on a nullable rule.
			out = append(out, v)
			return out
		}
		out = append(out, v)
	}
}

// OneOrMore requires at least one match before behaving like
// ZeroOrMore.
func OneOrMore[T any](p *Parser, fn Rule[T]) ([]T, bool) {
	head, ok := fn(p)
	if !ok {
		var zero []T
		return zero, false
	}
	tail := ZeroOrMore(p, fn)
	return append([]T{head}, tail...), true
}

// Opt always succeeds; ok reports whether fn actually matched.
func Opt[T any](p *Parser, fn Rule[T]) (T, bool) {
	m := p.save()
	v, ok := fn(p)
	if !ok {
		p.reset(m)
		var zero T
		return zero, false
	}
	return v, true
}

// SepBy matches `item (sep item)*`.
func SepBy[T, S any](p *Parser, item Rule[T], sep Rule[S]) ([]T, bool) {
	head, ok := item(p)
	if !ok {
		var zero []T
		return zero, false
	}
	out := []T{head}
	for {
		m := p.save()
		if _, ok := sep(p); !ok {
			p.reset(m)
			break
		}
		v, ok := item(p)
		if !ok {
			p.reset(m)
			break
		}
		out = append(out, v)
	}
	return out, true
}

// And is positive lookahead: succeeds without consuming input iff fn
// would succeed.
func And[T any](p *Parser, fn Rule[T]) bool {
	m := p.save()
	_, ok := fn(p)
	p.reset(m)
	return ok
}

// Not is negative lookahead: succeeds without consuming input iff fn
// would fail.
func Not[T any](p *Parser, fn Rule[T]) bool {
	m := p.save()
	_, ok := fn(p)
	p.reset(m)
	if ok {
		return p.fail("not " + p.topFrame())
	}
	return true
}

// Named pushes name onto the trace frame stack for the duration of
// fn, without collapsing its inner failures the way Atomic does:
// sub-rule failures still bubble their own names into the frontier.
// Use Named for structural, non-terminal productions (Type, Pattern,
// Expr, ...) and Atomic for leaf tokens.
func Named[T any](p *Parser, name string, fn Rule[T]) (T, bool) {
	p.pushFrame(name)
	v, ok := fn(p)
	p.popFrame()
	return v, ok
}

// Atomic runs fn as a single named token: if fn fails anywhere inside
// itself, only the atomic's own name is recorded in the frontier, not
// whatever sub-rule failures occurred underneath it.
func Atomic[T any](p *Parser, name string, fn Rule[T]) (T, bool) {
	m := p.save()
	outer := p.front
	p.front = newFrontier()
	p.pushFrame(name)
	v, ok := fn(p)
	p.popFrame()
	p.front = outer
	if p.instr != nil {
		p.instr.Enter(name, m.cursor)
	}
	if !ok {
		p.reset(m)
		var zero T
		p.fail(name)
		return zero, false
	}
	return v, true
}

// Capture runs fn and, on success, returns the substring of the input
// it consumed instead of fn's own result.
func Capture[T any](p *Parser, fn Rule[T]) (string, bool) {
	start := p.cursor
	if _, ok := fn(p); !ok {
		return "", false
	}
	return p.Slice(start, p.cursor), true
}

// ---- named rule frames, used for atomic naming and error traces ----

func (p *Parser) pushFrame(name string) { p.frames = append(p.frames, name) }

func (p *Parser) popFrame() {
	if n := len(p.frames); n > 0 {
		p.frames = p.frames[:n-1]
	}
}

func (p *Parser) topFrame() string {
	if n := len(p.frames); n > 0 {
		return p.frames[n-1]
	}
	return "<root>"
}

// FrameStack returns a snapshot of the currently active named-rule
// stack, innermost last.
func (p *Parser) FrameStack() []string {
	out := make([]string, len(p.frames))
	copy(out, p.frames)
	return out
}
