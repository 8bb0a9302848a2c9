package parsing

// This file implements C7, the type grammar:
//
//   Type          = TypeStart ~ TypeBounds
//   TypeStart     = '_' | FunctionArgTypes ~ '=>' ~ Type | InfixType ~ (ArrowType | ExistentialClause)?
//   InfixType     = CompoundType ~ (Id ~ OneNewlineMax ~ CompoundType)*
//   CompoundType  = AnnotType (with AnnotType)* Refinement? | Refinement
//   AnnotType     = SimpleType ~ (Annotation+)?
//   SimpleType    = (ProductType | SingletonType | StableId) ~ TypeSuffix
//   TypeSuffix    = (TypeArgs | '#' Id)*
//   TypeBounds    = ('>:' Type)? ('<:' Type)?

// Type is the top-level entry point of the type grammar.
func (p *Parser) Type() bool {
	_, ok := Named(p, "Type", func(p *Parser) (struct{}, bool) {
		if !p.typeStart() {
			return struct{}{}, false
		}
		p.TypeBounds()
		return struct{}{}, true
	})
	return ok
}

func (p *Parser) typeStart() bool {
	p.skipWL()
	m := p.save()
	if p.Ch('_') {
		if next := p.Peek(); !(IsLetter(next) || IsDigit(next)) {
			return true
		}
		p.reset(m)
	}

	m = p.save()
	if p.functionArgTypes() {
		p.skipWL()
		if p.Str("=>") {
			if p.Type() {
				return true
			}
		}
	}
	p.reset(m)

	if !p.InfixType() {
		return false
	}
	m = p.save()
	if p.arrowType() {
		return true
	}
	p.reset(m)
	if p.existentialClause() {
		return true
	}
	p.reset(m)
	return true
}

func (p *Parser) arrowType() bool {
	p.skipWL()
	if !p.Str("=>") {
		return false
	}
	return p.Type()
}

// ExistentialClause = 'forSome' '{' ExistentialDcl (Semi? ExistentialDcl)* '}'
func (p *Parser) existentialClause() bool {
	_, ok := Named(p, "ExistentialClause", func(p *Parser) (struct{}, bool) {
		m := p.save()
		if !p.Keyword("forSome") {
			return struct{}{}, false
		}
		p.skipWL()
		if !p.Ch('{') {
			p.reset(m)
			return struct{}{}, false
		}
		prevSensitive := p.sensitive
		p.sensitive = true
		if _, ok := OneOrMore(p, func(p *Parser) (struct{}, bool) {
			ok := p.existentialDcl()
			return struct{}{}, ok
		}); !ok {
			p.sensitive = prevSensitive
			p.reset(m)
			return struct{}{}, false
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			p.Semi()
			return struct{}{}, p.existentialDcl()
		})
		p.sensitive = prevSensitive
		p.skipWL()
		if !p.Ch('}') {
			p.fail("}")
			p.reset(m)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return ok
}

func (p *Parser) existentialDcl() bool {
	m := p.save()
	if p.Keyword("val") {
		if _, ok := p.Id(); ok {
			p.skipWL()
			if p.Ch(':') && p.Type() {
				return true
			}
		}
		p.reset(m)
		return false
	}
	if p.Keyword("type") {
		if _, ok := p.Id(); ok {
			p.typeParamClause()
			p.TypeBounds()
			return true
		}
		p.reset(m)
		return false
	}
	return false
}

// InfixType = CompoundType ~ (Id ~ OneNewlineMax ~ CompoundType)*
func (p *Parser) InfixType() bool {
	_, ok := Named(p, "InfixType", func(p *Parser) (struct{}, bool) {
		if !p.CompoundType() {
			return struct{}{}, false
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			m := p.save()
			p.skipWS()
			if _, ok := p.Id(); !ok {
				p.reset(m)
				return struct{}{}, false
			}
			if !p.oneNewlineMax() {
				p.reset(m)
				return struct{}{}, false
			}
			if !p.CompoundType() {
				p.reset(m)
				return struct{}{}, false
			}
			return struct{}{}, true
		})
		return struct{}{}, true
	})
	return ok
}

// oneNewlineMax permits at most one newline between an infix operator
// and its right operand: a second, consecutive newline would mean the
// operand line is blank and the chain should not merge across it, so
// that case fails rather than silently continuing. In insensitive
// mode this is always a no-op success.
func (p *Parser) oneNewlineMax() bool {
	if !p.sensitive {
		return true
	}
	m := p.save()
	p.skipWS()
	if IsNewlineStart(p.Peek()) {
		p.Newline()
		p.skipWS()
		if IsNewlineStart(p.Peek()) {
			p.reset(m)
			return p.fail("non-blank continuation line")
		}
		return true
	}
	p.reset(m)
	return true
}

// CompoundType = AnnotType (with AnnotType)* Refinement? | Refinement
func (p *Parser) CompoundType() bool {
	_, ok := Named(p, "CompoundType", func(p *Parser) (struct{}, bool) {
		m := p.save()
		if p.refinement() {
			return struct{}{}, true
		}
		p.reset(m)

		if !p.annotType() {
			return struct{}{}, false
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			m2 := p.save()
			p.skipWL()
			if !p.Keyword("with") {
				p.reset(m2)
				return struct{}{}, false
			}
			if !p.annotType() {
				p.reset(m2)
				return struct{}{}, false
			}
			return struct{}{}, true
		})
		m2 := p.save()
		if !p.refinement() {
			p.reset(m2)
		}
		return struct{}{}, true
	})
	return ok
}

func (p *Parser) annotType() bool {
	if !p.SimpleType() {
		return false
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		ok := p.Annotation()
		return struct{}{}, ok
	})
	return true
}

// Refinement is the brace-delimited member list attached to a
// compound type, e.g. `Seq[A] { def size: Int }`.
func (p *Parser) refinement() bool {
	_, ok := Named(p, "Refinement", func(p *Parser) (struct{}, bool) {
		m := p.save()
		p.skipWL()
		if !p.Ch('{') {
			p.reset(m)
			return struct{}{}, false
		}
		prevSensitive := p.sensitive
		p.sensitive = true
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			if p.refineStat() {
				m2 := p.save()
				if !p.Semi() {
					p.reset(m2)
				}
				return struct{}{}, true
			}
			return struct{}{}, false
		})
		p.sensitive = prevSensitive
		p.skipWL()
		if !p.Ch('}') {
			p.fail("}")
			p.reset(m)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return ok
}

func (p *Parser) refineStat() bool {
	m := p.save()
	if p.Dcl() {
		return true
	}
	p.reset(m)
	if p.typeDef() {
		return true
	}
	p.reset(m)
	return false
}

// SimpleType = (ProductType | SingletonType | StableId) ~ TypeSuffix
func (p *Parser) SimpleType() bool {
	_, ok := Named(p, "SimpleType", func(p *Parser) (struct{}, bool) {
		m := p.save()
		if p.productType() {
			p.typeSuffix()
			return struct{}{}, true
		}
		p.reset(m)
		if p.singletonType() {
			p.typeSuffix()
			return struct{}{}, true
		}
		p.reset(m)
		if p.StableId() {
			p.typeSuffix()
			return struct{}{}, true
		}
		return struct{}{}, false
	})
	return ok
}

// productType = '(' (Type (',' Type)*)? ')'   (the tuple-type form)
func (p *Parser) productType() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('(') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = false
	_, _ = Opt(p, func(p *Parser) ([]struct{}, bool) {
		items, ok := SepBy(p, func(p *Parser) (struct{}, bool) {
			return struct{}{}, p.Type()
		}, func(p *Parser) (struct{}, bool) {
			p.skipWL()
			return struct{}{}, p.Ch(',')
		})
		return items, ok
	})
	p.sensitive = prevSensitive
	p.skipWL()
	if !p.Ch(')') {
		p.fail(")")
		p.reset(m)
		return false
	}
	return true
}

// singletonType = StableId '.' 'type'
func (p *Parser) singletonType() bool {
	m := p.save()
	if !p.StableId() {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch('.') {
		p.reset(m)
		return false
	}
	if !p.Keyword("type") {
		p.reset(m)
		return false
	}
	return true
}

func (p *Parser) typeSuffix() {
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		m := p.save()
		if p.typeArgs() {
			return struct{}{}, true
		}
		p.reset(m)
		p.skipWL()
		if p.Ch('#') {
			if _, ok := p.Id(); ok {
				return struct{}{}, true
			}
		}
		p.reset(m)
		return struct{}{}, false
	})
}

// typeArgs = '[' Type (',' Type)* ']'
func (p *Parser) typeArgs() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('[') {
		p.reset(m)
		return false
	}
	if _, ok := SepBy(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.Type()
	}, func(p *Parser) (struct{}, bool) {
		p.skipWL()
		return struct{}{}, p.Ch(',')
	}); !ok {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch(']') {
		p.fail("]")
		p.reset(m)
		return false
	}
	return true
}

// StableId = Id ('.' Id)* | ('this' | 'super' TypeProjection?) ('.' Id)*
func (p *Parser) StableId() bool {
	_, ok := Named(p, "StableId", func(p *Parser) (struct{}, bool) {
		m := p.save()
		if p.Keyword("this") || p.thisOrSuperQualified() {
			ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
				m2 := p.save()
				p.skipWL()
				if !p.Ch('.') {
					p.reset(m2)
					return struct{}{}, false
				}
				if _, ok := p.Id(); !ok {
					p.reset(m2)
					return struct{}{}, false
				}
				return struct{}{}, true
			})
			return struct{}{}, true
		}
		p.reset(m)

		if _, ok := p.Id(); !ok {
			return struct{}{}, false
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			m2 := p.save()
			p.skipWL()
			if !p.Ch('.') {
				p.reset(m2)
				return struct{}{}, false
			}
			if _, ok := p.Id(); !ok {
				p.reset(m2)
				return struct{}{}, false
			}
			return struct{}{}, true
		})
		return struct{}{}, true
	})
	return ok
}

func (p *Parser) thisOrSuperQualified() bool {
	m := p.save()
	if !p.Keyword("super") {
		return false
	}
	m2 := p.save()
	p.skipWL()
	if p.Ch('[') {
		if _, ok := p.Id(); ok {
			p.skipWL()
			if p.Ch(']') {
				return true
			}
		}
		p.reset(m2)
		p.fail("]")
		p.reset(m)
		return false
	}
	p.reset(m2)
	return true
}

// FunctionArgTypes = '(' ParamType (',' ParamType)* ')' | SimpleType
func (p *Parser) functionArgTypes() bool {
	m := p.save()
	p.skipWL()
	if p.Ch('(') {
		prevSensitive := p.sensitive
		p.sensitive = false
		Opt(p, func(p *Parser) ([]struct{}, bool) {
			return SepBy(p, func(p *Parser) (struct{}, bool) {
				return struct{}{}, p.paramType()
			}, func(p *Parser) (struct{}, bool) {
				p.skipWL()
				return struct{}{}, p.Ch(',')
			})
		})
		p.sensitive = prevSensitive
		p.skipWL()
		if !p.Ch(')') {
			p.fail(")")
			p.reset(m)
			return false
		}
		return true
	}
	p.reset(m)
	return p.SimpleType()
}

func (p *Parser) paramType() bool {
	m := p.save()
	p.skipWL()
	if p.Str("=>") {
		if p.Type() {
			return true
		}
		p.reset(m)
		return false
	}
	p.reset(m)
	if !p.Type() {
		return false
	}
	p.skipWL()
	p.Ch('*')
	return true
}

// TypeBounds = ('>:' Type)? ('<:' Type)?
func (p *Parser) TypeBounds() bool {
	_, ok := Named(p, "TypeBounds", func(p *Parser) (struct{}, bool) {
		m := p.save()
		p.skipWL()
		if p.Str(">:") {
			if !p.Type() {
				p.reset(m)
			}
		} else {
			p.reset(m)
		}
		m = p.save()
		p.skipWL()
		if p.Str("<:") {
			if !p.Type() {
				p.reset(m)
			}
		} else {
			p.reset(m)
		}
		return struct{}{}, true
	})
	return ok
}

// Annotation = '@' SimpleType ArgumentExprs*
func (p *Parser) Annotation() bool {
	_, ok := Named(p, "Annotation", func(p *Parser) (struct{}, bool) {
		m := p.save()
		p.skipWL()
		if !p.Ch('@') {
			return struct{}{}, false
		}
		if !p.SimpleType() {
			p.reset(m)
			return struct{}{}, false
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			ok := p.ArgumentExprs()
			return struct{}{}, ok
		})
		return struct{}{}, true
	})
	return ok
}

// typeParamClause = '[' TypeParam (',' TypeParam)* ']'
func (p *Parser) typeParamClause() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('[') {
		p.reset(m)
		return false
	}
	if _, ok := SepBy(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.typeParam()
	}, func(p *Parser) (struct{}, bool) {
		p.skipWL()
		return struct{}{}, p.Ch(',')
	}); !ok {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch(']') {
		p.fail("]")
		p.reset(m)
		return false
	}
	return true
}

// typeParam = Variance? (Id | '_') typeParamClause? ('>:' Type)? ('<%' Type)* ('<:' Type)? (':' Type)*
func (p *Parser) typeParam() bool {
	p.variance()
	p.skipWL()
	if _, ok := p.Id(); !ok {
		if !p.Ch('_') {
			return false
		}
	}
	p.typeParamClause()
	m := p.save()
	p.skipWL()
	if p.Str(">:") {
		if !p.Type() {
			p.reset(m)
		}
	} else {
		p.reset(m)
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		m2 := p.save()
		p.skipWL()
		if !p.Str("<%") {
			p.reset(m2)
			return struct{}{}, false
		}
		if !p.Type() {
			p.reset(m2)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	m = p.save()
	p.skipWL()
	if p.Str("<:") {
		if !p.Type() {
			p.reset(m)
		}
	} else {
		p.reset(m)
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		m2 := p.save()
		p.skipWL()
		if !p.Ch(':') {
			p.reset(m2)
			return struct{}{}, false
		}
		if !p.Type() {
			p.reset(m2)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return true
}

// variance matches an optional `+`/`-` immediately preceding a type
// parameter name; it binds to that name alone.
func (p *Parser) variance() {
	m := p.save()
	p.skipWL()
	if p.AnyOf("+-") {
		if next := p.Peek(); IsLetter(next) || next == '_' {
			return
		}
	}
	p.reset(m)
}
