package parsing

// IntegerLiteral matches an optional sign, decimal or hex digits, and
// an optional `L`/`l` suffix.
func (p *Parser) IntegerLiteral() (string, bool) {
	return Atomic(p, "IntegerLiteral", func(p *Parser) (string, bool) {
		p.skipWL()
		start := p.cursor
		p.AnyOf("+-") // optional sign; AnyOf leaves the cursor untouched on a miss

		if p.hexLiteralBody() {
			p.AnyOf("Ll")
			return p.Slice(start, p.cursor), true
		}
		if !p.decimalDigits() {
			p.cursor = start
			return "", false
		}
		p.AnyOf("Ll")
		return p.Slice(start, p.cursor), true
	})
}

func (p *Parser) decimalDigits() bool {
	_, ok := OneOrMore(p, func(p *Parser) (rune, bool) { return p.DigitChar() })
	return ok
}

func (p *Parser) hexLiteralBody() bool {
	m := p.save()
	if !(p.Ch('0') && (p.Ch('x') || p.Ch('X'))) {
		p.reset(m)
		return false
	}
	if _, ok := OneOrMore(p, func(p *Parser) (rune, bool) { return p.HexDigitChar() }); !ok {
		p.reset(m)
		return false
	}
	return true
}

// FloatLiteral matches `digits . digits [exponent] [f/F/d/D]`.
func (p *Parser) FloatLiteral() (string, bool) {
	return Atomic(p, "FloatLiteral", func(p *Parser) (string, bool) {
		p.skipWL()
		start := p.cursor
		if !p.decimalDigits() {
			return "", false
		}
		if !p.Ch('.') {
			p.cursor = start
			return "", false
		}
		if !p.decimalDigits() {
			p.cursor = start
			return "", false
		}
		m := p.save()
		if p.AnyOf("eE") {
			p.AnyOf("+-")
			if !p.decimalDigits() {
				p.reset(m)
			}
		}
		p.AnyOf("fFdD")
		return p.Slice(start, p.cursor), true
	})
}

// BooleanLiteral matches `true` or `false`.
func (p *Parser) BooleanLiteral() (string, bool) {
	return Atomic(p, "BooleanLiteral", func(p *Parser) (string, bool) {
		p.skipWL()
		start := p.cursor
		if p.Keyword("true") || p.Keyword("false") {
			return p.Slice(start, p.cursor), true
		}
		return "", false
	})
}

// NullLiteral matches `null`.
func (p *Parser) NullLiteral() bool {
	_, ok := Atomic(p, "NullLiteral", func(p *Parser) (struct{}, bool) {
		p.skipWL()
		return struct{}{}, p.Keyword("null")
	})
	return ok
}

func (p *Parser) escapeOrChar() bool {
	m := p.save()
	if p.Ch('\\') {
		if p.UnicodeEscapeTail() {
			return true
		}
		if p.AnyOf(`\btnfr"'`) {
			return true
		}
		p.reset(m)
		return p.fail("escape sequence")
	}
	p.reset(m)
	if p.AtEOI() {
		return p.fail("character")
	}
	p.cursor++
	return true
}

// UnicodeEscapeTail matches the `uXXXX` half of `\uXXXX`, assuming the
// leading backslash has already been consumed.
func (p *Parser) UnicodeEscapeTail() bool {
	m := p.save()
	if !p.Ch('u') {
		p.reset(m)
		return false
	}
	for i := 0; i < 4; i++ {
		if _, ok := p.HexDigitChar(); !ok {
			p.reset(m)
			return false
		}
	}
	return true
}

// CharLiteral matches `'` (plain char | escape | unicode escape) `'`.
func (p *Parser) CharLiteral() (string, bool) {
	return Atomic(p, "CharLiteral", func(p *Parser) (string, bool) {
		p.skipWL()
		start := p.cursor
		if !p.Ch('\'') {
			return "", false
		}
		if !p.escapeOrChar() {
			p.cursor = start
			return "", false
		}
		if !p.Ch('\'') {
			p.cursor = start
			return "", false
		}
		return p.Slice(start, p.cursor), true
	})
}

// StringLiteral matches either a triple-quoted string (raw, greedy to
// the last `"""`) or a plain double-quoted string with escapes.
func (p *Parser) StringLiteral() (string, bool) {
	return Atomic(p, "StringLiteral", func(p *Parser) (string, bool) {
		p.skipWL()
		if s, ok := p.tripleQuotedString(); ok {
			return s, true
		}
		return p.plainString()
	})
}

func (p *Parser) tripleQuotedString() (string, bool) {
	m := p.save()
	if !(p.Ch('"') && p.Ch('"') && p.Ch('"')) {
		p.reset(m)
		return "", false
	}
	start := p.cursor
	for {
		if p.AtEOI() {
			p.reset(m)
			return "", p.fail(`"""`)
		}
		m2 := p.save()
		if p.Ch('"') && p.Ch('"') && p.Ch('"') {
			// greedy: keep absorbing further quotes into the body
			for p.Peek() == '"' {
				p.cursor++
			}
			end := m2.cursor
			return p.Slice(start, end), true
		}
		p.reset(m2)
		p.cursor++
	}
}

func (p *Parser) plainString() (string, bool) {
	m := p.save()
	if !p.Ch('"') {
		return "", p.fail("\"")
	}
	start := p.cursor
	for p.Peek() != '"' {
		if p.AtEOI() || IsNewlineStart(p.Peek()) {
			p.reset(m)
			return "", p.fail("closing \"")
		}
		if !p.escapeOrChar() {
			p.reset(m)
			return "", false
		}
	}
	text := p.Slice(start, p.cursor)
	p.cursor++ // closing quote
	return text, true
}

// InterpolatedString recognizes `id"..."` / `id"""..."""` as a single
// token: an identifier immediately followed by a string literal, no
// whitespace in between. The interior is parsed as raw string text —
// this recognizer freezes interpolation interiors as opaque per the
// source language's own behavior (no nested `${ ... }` expression
// grammar).
func (p *Parser) InterpolatedString() (string, bool) {
	return Atomic(p, "InterpolatedString", func(p *Parser) (string, bool) {
		p.skipWL()
		start := p.cursor
		prefix, ok := p.plainIdentBody()
		if !ok || IsReservedWord(prefix) {
			p.cursor = start
			return "", false
		}
		if p.Peek() != '"' {
			p.cursor = start
			return "", false
		}
		if _, ok := p.StringLiteral(); !ok {
			p.cursor = start
			return "", false
		}
		return p.Slice(start, p.cursor), true
	})
}

// Literal matches any literal form in ordered-choice preference:
// float before integer (so `1.0` isn't consumed as `1` followed by a
// dangling `.0`), interpolated strings before plain identifiers,
// strings before chars/symbols since they all start with a quote-ish
// token but are mutually exclusive once the second character is seen.
func (p *Parser) Literal() bool {
	_, ok := Atomic(p, "Literal", func(p *Parser) (string, bool) {
		if s, ok := p.InterpolatedString(); ok {
			return s, true
		}
		if s, ok := p.FloatLiteral(); ok {
			return s, true
		}
		if s, ok := p.IntegerLiteral(); ok {
			return s, true
		}
		if s, ok := p.StringLiteral(); ok {
			return s, true
		}
		if s, ok := p.CharLiteral(); ok {
			return s, true
		}
		if s, ok := p.SymbolLiteral(); ok {
			return s, true
		}
		if s, ok := p.BooleanLiteral(); ok {
			return s, true
		}
		start := p.cursor
		if p.NullLiteral() {
			return p.Slice(start, p.cursor), true
		}
		return "", false
	})
	return ok
}

// SymbolLiteral matches `'` + PlainId.
func (p *Parser) SymbolLiteral() (string, bool) {
	return Atomic(p, "SymbolLiteral", func(p *Parser) (string, bool) {
		p.skipWL()
		start := p.cursor
		if !p.Ch('\'') {
			return "", false
		}
		if _, ok := p.plainIdentBody(); !ok {
			p.cursor = start
			return "", false
		}
		return p.Slice(start, p.cursor), true
	})
}
