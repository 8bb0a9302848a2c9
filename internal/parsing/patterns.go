package parsing

// This file implements C8, the pattern grammar:
//
//   Pattern   = Pattern1 ('|' Pattern1)*
//   Pattern1  = '_' ':' TypePat | VarId ':' TypePat | Pattern2
//   Pattern2  = VarId '@' Pattern3 | Pattern3 | VarId
//   Pattern3  = '_' '*' | SimplePattern (Id SimplePattern)*
//   SimplePattern = '_' (':' TypePat)? !'*'
//                 | Literal | '(' ExtractorArgs? ')'
//                 | StableId ('(' ExtractorArgs? ')')?
//                 | VarId

// Pattern = Pattern1 ('|' Pattern1)*
func (p *Parser) Pattern() bool {
	_, ok := Named(p, "Pattern", func(p *Parser) (struct{}, bool) {
		if !p.pattern1() {
			return struct{}{}, false
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			m := p.save()
			p.skipWL()
			if !p.Ch('|') {
				p.reset(m)
				return struct{}{}, false
			}
			if !p.pattern1() {
				p.reset(m)
				return struct{}{}, false
			}
			return struct{}{}, true
		})
		return struct{}{}, true
	})
	return ok
}

// Pattern1 = '_' ':' TypePat | VarId ':' TypePat | Pattern2
func (p *Parser) pattern1() bool {
	m := p.save()
	p.skipWL()
	if p.Ch('_') {
		p.skipWL()
		if p.Ch(':') && p.typePat() {
			return true
		}
		p.reset(m)
	}

	m = p.save()
	if _, ok := p.VarId(); ok {
		p.skipWL()
		if p.Ch(':') && p.typePat() {
			return true
		}
	}
	p.reset(m)

	return p.pattern2()
}

// typePat is a CompoundType rather than a full Type, so the `=>` that
// closes a typed case pattern is not read as a function-type arrow.
func (p *Parser) typePat() bool { return p.CompoundType() }

// Pattern2 = VarId '@' Pattern3 | Pattern3 | VarId
func (p *Parser) pattern2() bool {
	m := p.save()
	if _, ok := p.VarId(); ok {
		p.skipWL()
		if p.Ch('@') {
			if p.pattern3() {
				return true
			}
		}
	}
	p.reset(m)

	if p.pattern3() {
		return true
	}
	p.reset(m)

	if _, ok := p.VarId(); ok {
		return true
	}
	p.reset(m)
	return false
}

// Pattern3 = '_' '*' | SimplePattern (Id SimplePattern)*
func (p *Parser) pattern3() bool {
	m := p.save()
	p.skipWL()
	if p.Ch('_') {
		if p.Ch('*') {
			return true
		}
		p.reset(m)
	}

	if !p.simplePattern() {
		return false
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		m2 := p.save()
		p.skipWS()
		if _, ok := p.Id(); !ok {
			p.reset(m2)
			return struct{}{}, false
		}
		if !p.simplePattern() {
			p.reset(m2)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return true
}

// SimplePattern = '_' (':' TypePat)? !'*' | Literal | '(' ExtractorArgs? ')' | StableId ('(' ExtractorArgs? ')')? | VarId
func (p *Parser) simplePattern() bool {
	_, ok := Named(p, "SimplePattern", func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.simplePatternBody()
	})
	return ok
}

// simplePatternBody exists purely so simplePattern can route through
// Named without repeating the ordered choice indentation twice.
func (p *Parser) simplePatternBody() bool {
	m := p.save()
	p.skipWL()
	if p.Ch('_') {
		m2 := p.save()
		if p.Ch(':') {
			if !p.typePat() {
				p.reset(m2)
			}
		} else {
			p.reset(m2)
		}
		if !And(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.Ch('*') }) {
			return true
		}
		p.reset(m)
	}

	if p.Literal() {
		return true
	}
	p.reset(m)

	p.skipWL()
	if p.Ch('(') {
		prevSensitive := p.sensitive
		p.sensitive = false
		Opt(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.extractorArgs() })
		p.sensitive = prevSensitive
		p.skipWL()
		if p.Ch(')') {
			return true
		}
		p.fail(")")
		p.reset(m)
		return false
	}
	p.reset(m)

	if p.StableId() {
		m2 := p.save()
		p.skipWL()
		if p.Ch('(') {
			prevSensitive := p.sensitive
			p.sensitive = false
			Opt(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.extractorArgs() })
			p.sensitive = prevSensitive
			p.skipWL()
			if p.Ch(')') {
				return true
			}
			p.fail(")")
			p.reset(m2)
			return true // StableId alone still matches without the call suffix
		}
		p.reset(m2)
		return true
	}
	p.reset(m)

	if _, ok := p.VarId(); ok {
		return true
	}
	p.reset(m)
	return false
}

// extractorArgs = Pattern (',' Pattern)*
func (p *Parser) extractorArgs() bool {
	_, ok := SepBy(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.Pattern()
	}, func(p *Parser) (struct{}, bool) {
		p.skipWL()
		return struct{}{}, p.Ch(',')
	})
	return ok
}
