package parsing

// reservedWords is the set of control-flow, definition, modifier, and
// type keywords of the recognized language (§4.5).
var reservedWords = map[string]struct{}{
	"if": {}, "else": {}, "while": {}, "do": {}, "for": {}, "yield": {},
	"try": {}, "catch": {}, "finally": {}, "throw": {}, "return": {},
	"new": {}, "this": {}, "super": {}, "match": {}, "case": {},
	"class": {}, "trait": {}, "object": {}, "package": {}, "import": {},
	"val": {}, "var": {}, "def": {}, "type": {}, "implicit": {},
	"lazy": {}, "abstract": {}, "final": {}, "sealed": {}, "override": {},
	"private": {}, "protected": {}, "extends": {}, "with": {},
	"forSome": {}, "macro": {}, "true": {}, "false": {}, "null": {},
}

// reservedOperators is the set of reserved operator tokens, including
// the Unicode arrow aliases.
var reservedOperators = map[string]struct{}{
	"=": {}, "=>": {}, "<-": {}, "<:": {}, ">:": {}, "<%": {}, "#": {},
	"@": {}, ":": {}, "_": {}, "←": {}, "⇒": {},
}

// IsReservedWord reports whether word is a reserved word of the
// grammar: an exact identifier match, not merely a prefix (so
// "classX" is not reserved, only "class" is).
func IsReservedWord(word string) bool {
	_, ok := reservedWords[word]
	return ok
}

func IsReservedOperator(op string) bool {
	_, ok := reservedOperators[op]
	return ok
}

// Keyword matches the literal keyword only if it is not immediately
// followed by an identifier-continuation character — "class" must
// not match inside "classX".
func (p *Parser) Keyword(word string) bool {
	p.skipWL()
	m := p.save()
	for _, c := range word {
		if p.Peek() != c {
			p.reset(m)
			return p.fail("`" + word + "`")
		}
		p.cursor++
	}
	if next := p.Peek(); IsLetter(next) || IsDigit(next) {
		p.reset(m)
		return p.fail("`" + word + "`")
	}
	_, _ = Opt[struct{}](p, func(p *Parser) (struct{}, bool) {
		p.skipWS()
		return struct{}{}, true
	})
	return true
}

// plainIdentBody matches one identifier-shaped run of characters:
// letter-start plus letters/digits/underscores, optionally continued
// by `_` and one or more operator characters.
func (p *Parser) plainIdentBody() (string, bool) {
	start := p.cursor
	if _, ok := p.LetterChar(); !ok {
		return "", false
	}
	ZeroOrMore(p, func(p *Parser) (rune, bool) {
		c := p.Peek()
		if IsLetter(c) || IsDigit(c) {
			p.cursor++
			return c, true
		}
		return 0, false
	})
	// optional `_` + operator-char suffix, e.g. `unary_!`
	// (the letter run above already consumed that `_`).
	m := p.save()
	if p.cursor-1 > start && p.in.At(p.cursor-1) == '_' {
		ops, ok := OneOrMore(p, func(p *Parser) (rune, bool) { return p.OperatorChar() })
		if !ok || len(ops) == 0 {
			p.reset(m)
		}
	}
	return p.Slice(start, p.cursor), true
}

// operatorIdentBody matches one or more operator characters.
func (p *Parser) operatorIdentBody() (string, bool) {
	start := p.cursor
	if _, ok := OneOrMore(p, func(p *Parser) (rune, bool) { return p.OperatorChar() }); !ok {
		return "", false
	}
	return p.Slice(start, p.cursor), true
}

// backtickIdentBody matches `` `...` `` with no embedded backtick.
func (p *Parser) backtickIdentBody() (string, bool) {
	m := p.save()
	if !p.Ch('`') {
		return "", p.fail("`")
	}
	start := p.cursor
	for p.Peek() != '`' {
		if p.AtEOI() {
			p.reset(m)
			return "", p.fail("closing `")
		}
		p.cursor++
	}
	text := p.Slice(start, p.cursor)
	p.cursor++ // closing backtick
	return text, true
}

// Id matches any identifier shape that is not itself a reserved word,
// skipping leading whitespace/comments/newlines first.
func (p *Parser) Id() (string, bool) {
	return Atomic(p, "Id", func(p *Parser) (string, bool) {
		p.skipWL()
		if name, ok := p.backtickIdentBody(); ok {
			return name, true
		}
		start := p.cursor
		if name, ok := p.plainIdentBody(); ok {
			if IsReservedWord(name) || IsReservedOperator(name) {
				p.cursor = start
				return "", false
			}
			return name, true
		}
		opStart := p.cursor
		if name, ok := p.operatorIdentBody(); ok {
			if IsReservedOperator(name) {
				p.cursor = opStart
				return "", false
			}
			return name, true
		}
		return "", false
	})
}

// VarId matches an Id whose first character is a lowercase letter —
// used to disambiguate pattern binders from stable identifiers.
func (p *Parser) VarId() (string, bool) {
	return Atomic(p, "VarId", func(p *Parser) (string, bool) {
		m := p.save()
		name, ok := p.Id()
		if !ok {
			return "", false
		}
		r := []rune(name)
		if len(r) == 0 || !(r[0] >= 'a' && r[0] <= 'z') {
			p.reset(m)
			return "", false
		}
		return name, true
	})
}
