package parsing

import "unicode"

// IsWhitespaceChar matches a space or tab, nothing else — newlines
// are handled separately since WS and WL skippers treat them
// differently (§4.3, §4.4).
func IsWhitespaceChar(c rune) bool {
	return c == ' ' || c == '\t'
}

func IsNewlineStart(c rune) bool {
	return c == '\n' || c == '\r'
}

func IsLetter(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func IsHexDigit(c rune) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// operatorChars is the union of printable ASCII operator symbols the
// grammar recognizes (§4.3).
const operatorChars = "!#$%&*+-/:<=>?@\\^|~"

// IsOperatorChar matches an ASCII operator symbol or a Unicode
// mathematical/other-symbol code point.
func IsOperatorChar(c rune) bool {
	for _, o := range operatorChars {
		if c == o {
			return true
		}
	}
	switch unicode.In(c, unicode.Sm, unicode.So) {
	case true:
		return true
	}
	return false
}

// Newline matches `\n` or `\r\n` as a single logical newline and
// advances past it.
func (p *Parser) Newline() bool {
	m := p.save()
	if p.Peek() == '\r' {
		p.cursor++
		if p.Peek() == '\n' {
			p.cursor++
		}
		return true
	}
	if p.Peek() == '\n' {
		p.cursor++
		return true
	}
	p.reset(m)
	return p.fail("newline")
}

func (p *Parser) WhitespaceChar() bool {
	if IsWhitespaceChar(p.Peek()) {
		p.cursor++
		return true
	}
	return p.fail("whitespace")
}

func (p *Parser) LetterChar() (rune, bool) {
	c := p.Peek()
	if IsLetter(c) {
		p.cursor++
		return c, true
	}
	return 0, p.fail("letter")
}

func (p *Parser) DigitChar() (rune, bool) {
	c := p.Peek()
	if IsDigit(c) {
		p.cursor++
		return c, true
	}
	return 0, p.fail("digit")
}

func (p *Parser) HexDigitChar() (rune, bool) {
	c := p.Peek()
	if IsHexDigit(c) {
		p.cursor++
		return c, true
	}
	return 0, p.fail("hex digit")
}

func (p *Parser) OperatorChar() (rune, bool) {
	c := p.Peek()
	if IsOperatorChar(c) {
		p.cursor++
		return c, true
	}
	return 0, p.fail("operator character")
}

// UnicodeEscape matches `\uXXXX`.
func (p *Parser) UnicodeEscape() bool {
	m := p.save()
	if !p.Ch('\\') || !p.Ch('u') {
		p.reset(m)
		return p.fail("unicode escape")
	}
	for i := 0; i < 4; i++ {
		if _, ok := p.HexDigitChar(); !ok {
			p.reset(m)
			return p.fail("unicode escape")
		}
	}
	return true
}

// Semi matches `;` or one inferred newline. The "inferred newline"
// half is only meaningful in sensitive mode and is handled by the
// expression/definition layer (§4.9), which calls Newline directly
// when p.sensitive is true; this helper covers the explicit-semicolon
// case shared by both modes.
func (p *Parser) SemiChar() bool {
	return p.Ch(';')
}
