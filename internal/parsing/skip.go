package parsing

// Comment matches either a `//` line comment or a `/* ... */` block
// comment, the latter nestable to arbitrary depth.
func (p *Parser) Comment() bool {
	m := p.save()
	if p.Ch('/') && p.Ch('/') {
		for !p.AtEOI() && !IsNewlineStart(p.Peek()) {
			p.cursor++
		}
		return true
	}
	p.reset(m)

	if p.Ch('/') && p.Ch('*') {
		depth := 1
		for depth > 0 {
			if p.AtEOI() {
				return p.fail("*/")
			}
			m2 := p.save()
			if p.Ch('/') && p.Ch('*') {
				depth++
				continue
			}
			p.reset(m2)
			if p.Ch('*') && p.Ch('/') {
				depth--
				continue
			}
			p.reset(m2)
			p.cursor++
		}
		return true
	}
	p.reset(m)
	return p.fail("comment")
}

// skipWS consumes whitespace and comments but never crosses a
// newline: WS is used wherever the grammar must not silently merge
// two statements across a line break.
func (p *Parser) skipWS() {
	for {
		if IsWhitespaceChar(p.Peek()) {
			p.cursor++
			continue
		}
		m := p.save()
		if p.Comment() {
			continue
		}
		p.reset(m)
		return
	}
}

// skipWL consumes whitespace, comments, and newlines.
func (p *Parser) skipWL() {
	for {
		if IsWhitespaceChar(p.Peek()) || IsNewlineStart(p.Peek()) {
			p.cursor++
			continue
		}
		m := p.save()
		if p.Comment() {
			continue
		}
		p.reset(m)
		return
	}
}

// Token wraps fn with an implicit WL skip beforehand — every literal
// string/character token in the grammar is preceded by one (§4.4).
func Token[T any](p *Parser, fn Rule[T]) (T, bool) {
	p.skipWL()
	return fn(p)
}

// tokenWS is the sensitive-mode counterpart: it skips WS (not
// crossing newlines) before fn, used by the rules that must not eat a
// newline that could terminate the preceding statement (§4.9).
func tokenWS[T any](p *Parser, fn Rule[T]) (T, bool) {
	p.skipWS()
	return fn(p)
}
