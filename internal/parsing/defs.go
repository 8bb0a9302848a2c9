package parsing

// This file implements C10, definitions and top-level structure:
//
//   CompilationUnit = PackageClause? Semi? TopStatSeq? EOI
//   TopStat         = Import | Modifier* TmplDef | PackageObject
//   TmplDef         = ('class' | 'trait' | 'object') Id
//                        TypeParamClause? ClassParams? Extends? TemplateBody?
//   Def             = PatDef | FunDef | TypeDef
//   Dcl             = ValDcl | VarDcl | FunDcl | TypeDcl   (body-less forms)
//   Import          = 'import' ImportExpr (',' ImportExpr)*

// Parse recognizes src as a complete compilation unit. It reports
// whether the whole input matched. On failure it returns either a
// *ParseError, when the deepest failed attempt got past the very next
// token following the stopping point (some construct was committed to
// and abandoned), or an *Incomplete, when nothing tried at the
// stopping point ever got past that first token: a well-formed prefix
// followed by unrecognized trailing input.
func Parse(src string) (bool, error) {
	return parse(NewParser(src))
}

// ParseTraced behaves like Parse but runs with instr attached, so the
// grammar's rule entries are recorded as it goes; instr.Report() then
// renders the trace afterward regardless of the outcome.
func ParseTraced(src string, instr *Instrument) (bool, error) {
	return parse(NewParser(src).WithInstrument(instr))
}

func parse(p *Parser) (bool, error) {
	p.CompilationUnit()
	if p.AtEOI() {
		return true, nil
	}
	probe := p.save()
	p.skipWL()
	nextToken := p.cursor
	p.reset(probe)
	if p.front.offset > nextToken {
		return false, p.buildError()
	}
	return false, &Incomplete{Offset: p.cursor}
}

// CompilationUnit = PackageClause? Semi* TopStatSeq? EOI
//
// Every part of the body is optional or best-effort (TopStatSeq stops,
// rather than fails, once it can't extend the statement chain further),
// so this rule itself never hard-fails: whether the whole input was
// consumed is Parse's concern, via EOI's frontier record, not this
// rule's return value.
func (p *Parser) CompilationUnit() bool {
	_, ok := Named(p, "CompilationUnit", func(p *Parser) (struct{}, bool) {
		p.sensitive = true
		p.optSemis()
		m := p.save()
		if p.packageClause() {
			m2 := p.save()
			p.skipWL()
			if p.Ch('{') {
				p.reset(m2)
				if !p.packageObjectBody() {
					p.reset(m)
				}
			} else {
				p.reset(m2)
				if !p.Semi() {
					p.reset(m2)
				}
			}
		} else {
			p.reset(m)
		}
		p.optSemis()
		p.topStatSeq()
		p.optSemis()
		p.EOI()
		return struct{}{}, true
	})
	return ok
}

// packageClause = 'package' StableId
func (p *Parser) packageClause() bool {
	m := p.save()
	if !p.Keyword("package") {
		return false
	}
	if !p.StableId() {
		p.reset(m)
		return false
	}
	return true
}

// packageObjectBody handles the `package foo { ... }` block form,
// which nests a whole TopStatSeq inside braces instead of terminating
// at the next Semi.
func (p *Parser) packageObjectBody() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('{') {
		p.reset(m)
		return false
	}
	p.optSemis()
	p.topStatSeq()
	p.optSemis()
	p.skipWL()
	if !p.Ch('}') {
		p.fail("}")
		p.reset(m)
		return false
	}
	return true
}

// topStatSeq = (TopStat (Semi TopStat)*)?
func (p *Parser) topStatSeq() {
	m := p.save()
	if !p.topStat() {
		p.reset(m)
		return
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		m2 := p.save()
		if !p.Semi() {
			p.reset(m2)
			return struct{}{}, false
		}
		if !p.topStat() {
			p.reset(m2)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
}

func (p *Parser) topStat() bool {
	m := p.save()
	if p.ImportStat() {
		return true
	}
	p.reset(m)
	if p.packageClause() {
		m2 := p.save()
		p.skipWL()
		if p.Ch('{') {
			p.reset(m2)
			if p.packageObjectBody() {
				return true
			}
		}
		p.reset(m)
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.Annotation() })
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.modifier() })
	if p.tmplDef() {
		return true
	}
	p.reset(m)
	return false
}

// ---- imports ----

// ImportStat = 'import' ImportExpr (',' ImportExpr)*
func (p *Parser) ImportStat() bool {
	_, ok := Named(p, "Import", func(p *Parser) (struct{}, bool) {
		m := p.save()
		if !p.Keyword("import") {
			return struct{}{}, false
		}
		if _, ok := SepBy(p, func(p *Parser) (struct{}, bool) {
			return struct{}{}, p.importExpr()
		}, func(p *Parser) (struct{}, bool) {
			p.skipWL()
			return struct{}{}, p.Ch(',')
		}); !ok {
			p.reset(m)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return ok
}

// importExpr = StableId ('.' (Id | '_' | ImportSelectors))?
func (p *Parser) importExpr() bool {
	m := p.save()
	if !p.StableId() {
		return false
	}
	m2 := p.save()
	p.skipWL()
	if p.Ch('.') {
		if p.importSelectors() {
			return true
		}
		p.skipWL()
		if p.Ch('_') {
			return true
		}
		if _, ok := p.Id(); ok {
			return true
		}
		p.reset(m2)
	} else {
		p.reset(m2)
	}
	_ = m
	return true
}

// importSelectors = '{' ImportSelector (',' ImportSelector)* '}'
func (p *Parser) importSelectors() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('{') {
		p.reset(m)
		return false
	}
	if _, ok := SepBy(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.importSelector()
	}, func(p *Parser) (struct{}, bool) {
		p.skipWL()
		return struct{}{}, p.Ch(',')
	}); !ok {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch('}') {
		p.fail("}")
		p.reset(m)
		return false
	}
	return true
}

func (p *Parser) importSelector() bool {
	m := p.save()
	p.skipWL()
	if p.Ch('_') {
		return true
	}
	p.reset(m)
	if _, ok := p.Id(); !ok {
		return false
	}
	m2 := p.save()
	p.skipWL()
	if p.Str("=>") {
		p.skipWL()
		if p.Ch('_') {
			return true
		}
		if _, ok := p.Id(); ok {
			return true
		}
	}
	p.reset(m2)
	return true
}

// ---- modifiers ----

var localModifiers = []string{"abstract", "final", "sealed", "implicit", "lazy"}
var accessModifiers = []string{"private", "protected"}
var otherModifiers = []string{"override"}

// modifier = LocalModifier | AccessModifier Qualifier? | 'override'
func (p *Parser) modifier() bool {
	m := p.save()
	p.skipWL()
	for _, kw := range localModifiers {
		if p.Keyword(kw) {
			return true
		}
	}
	for _, kw := range otherModifiers {
		if p.Keyword(kw) {
			return true
		}
	}
	for _, kw := range accessModifiers {
		if p.Keyword(kw) {
			m2 := p.save()
			p.skipWL()
			if p.Ch('[') {
				if p.Keyword("this") {
					// ok
				} else if _, ok := p.Id(); !ok {
					p.reset(m2)
					p.fail("access qualifier")
					p.reset(m)
					return false
				}
				p.skipWL()
				if !p.Ch(']') {
					p.fail("]")
					p.reset(m)
					return false
				}
			} else {
				p.reset(m2)
			}
			return true
		}
	}
	p.reset(m)
	return false
}

// ---- declarations / definitions ----

// Dcl = 'val' ValDcl | 'var' VarDcl | 'def' FunDcl | 'type' TypeDcl
func (p *Parser) Dcl() bool {
	_, ok := Named(p, "Dcl", func(p *Parser) (struct{}, bool) {
		m := p.save()
		if p.Keyword("val") || p.Keyword("var") {
			if p.valVarDclBody() {
				return struct{}{}, true
			}
			p.reset(m)
			return struct{}{}, false
		}
		if p.Keyword("def") {
			if p.funDclBody() {
				return struct{}{}, true
			}
			p.reset(m)
			return struct{}{}, false
		}
		if p.Keyword("type") {
			if p.typeDclBody() {
				return struct{}{}, true
			}
			p.reset(m)
			return struct{}{}, false
		}
		return struct{}{}, false
	})
	return ok
}

func (p *Parser) valVarDclBody() bool {
	m := p.save()
	if _, ok := SepBy(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.Id2()
	}, func(p *Parser) (struct{}, bool) {
		p.skipWL()
		return struct{}{}, p.Ch(',')
	}); !ok {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch(':') {
		p.reset(m)
		return false
	}
	if !p.Type() {
		p.reset(m)
		return false
	}
	return true
}

// Id2 matches a bare identifier wherever a single-identifier list
// element is expected; it exists only for readability in SepBy calls.
func (p *Parser) Id2() bool {
	_, ok := p.Id()
	return ok
}

func (p *Parser) funDclBody() bool {
	m := p.save()
	if _, ok := p.Id(); !ok {
		p.reset(m)
		return false
	}
	p.typeParamClause()
	p.paramClauses()
	m2 := p.save()
	p.skipWL()
	if p.Ch(':') {
		if !p.Type() {
			p.reset(m2)
		}
	} else {
		p.reset(m2)
	}
	return true
}

func (p *Parser) typeDclBody() bool {
	m := p.save()
	if _, ok := p.Id(); !ok {
		p.reset(m)
		return false
	}
	p.typeParamClause()
	p.TypeBounds()
	return true
}

// typeDef = 'type' Id TypeParamClause? '=' Type
func (p *Parser) typeDef() bool {
	m := p.save()
	if !p.Keyword("type") {
		return false
	}
	if _, ok := p.Id(); !ok {
		p.reset(m)
		return false
	}
	p.typeParamClause()
	p.skipWL()
	if !p.Ch('=') {
		p.reset(m)
		return false
	}
	if !p.Type() {
		p.reset(m)
		return false
	}
	return true
}

// defDef is an ordered choice over every concrete (body-bearing)
// definition form: patterns/vals, vars, defs, and type aliases.
func (p *Parser) defDef() bool {
	m := p.save()
	if p.patVarDef() {
		return true
	}
	p.reset(m)
	if p.funDef() {
		return true
	}
	p.reset(m)
	if p.typeDef() {
		return true
	}
	p.reset(m)
	return false
}

// patVarDef = ('val' | 'var') Pattern2 (',' Pattern2)* (':' Type)? '=' Expr
func (p *Parser) patVarDef() bool {
	m := p.save()
	if !(p.Keyword("val") || p.Keyword("var")) {
		return false
	}
	if _, ok := SepBy(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.pattern2()
	}, func(p *Parser) (struct{}, bool) {
		p.skipWL()
		return struct{}{}, p.Ch(',')
	}); !ok {
		p.reset(m)
		return false
	}
	m2 := p.save()
	p.skipWL()
	if p.Ch(':') {
		if !p.Type() {
			p.reset(m2)
		}
	} else {
		p.reset(m2)
	}
	p.skipWL()
	if !p.Ch('=') {
		p.reset(m)
		return false
	}
	if p.Keyword("_") {
		return true // `var x: T = _` uninitialized var
	}
	if !p.Expr() {
		p.reset(m)
		return false
	}
	return true
}

// funDef = 'def' Id TypeParamClause? ParamClauses (':' Type)? ('=' Expr | Block)
func (p *Parser) funDef() bool {
	m := p.save()
	if !p.Keyword("def") {
		return false
	}
	if ok := p.Keyword("this"); ok {
		// constructor definition, falls through to the same param/body shape
	} else if _, ok := p.Id(); !ok {
		p.reset(m)
		return false
	}
	p.typeParamClause()
	p.paramClauses()
	m2 := p.save()
	p.skipWL()
	if p.Ch(':') {
		if !p.Type() {
			p.reset(m2)
		}
	} else {
		p.reset(m2)
	}
	p.skipWL()
	if p.Ch('=') {
		if !p.Expr() {
			p.reset(m)
			return false
		}
		return true
	}
	if p.block() {
		return true
	}
	p.reset(m)
	return false
}

// paramClauses = ParamClause*, the last one may be marked 'implicit'.
func (p *Parser) paramClauses() {
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.paramClause()
	})
}

// paramClause = '(' 'implicit'? (Param (',' Param)*)? ')'
func (p *Parser) paramClause() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('(') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = false
	m2 := p.save()
	if !p.Keyword("implicit") {
		p.reset(m2)
	}
	Opt(p, func(p *Parser) ([]struct{}, bool) {
		return SepBy(p, func(p *Parser) (struct{}, bool) {
			return struct{}{}, p.param()
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

// param = Annotation* Modifier* ('val' | 'var')? Id ':' ParamType ('=' Expr)?
// (the modifier and val/var prefix of class parameters is accepted in
// every parameter clause).
func (p *Parser) param() bool {
	m := p.save()
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.Annotation() })
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.modifier() })
	mv := p.save()
	if !(p.Keyword("val") || p.Keyword("var")) {
		p.reset(mv)
	}
	if _, ok := p.Id(); !ok {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch(':') {
		p.reset(m)
		return false
	}
	if !p.paramType() {
		p.reset(m)
		return false
	}
	m2 := p.save()
	p.skipWL()
	if p.Ch('=') {
		if !p.Expr() {
			p.reset(m2)
		}
	} else {
		p.reset(m2)
	}
	return true
}

// ---- class/trait/object definitions ----

// tmplDef = ('case'? ('class' | 'object') | 'trait') Id
//             TypeParamClause? ClassParams? Extends? TemplateBody?
func (p *Parser) tmplDef() bool {
	_, ok := Named(p, "TmplDef", func(p *Parser) (struct{}, bool) {
		m := p.save()
		p.skipWL()
		m2 := p.save()
		if !p.Keyword("case") {
			p.reset(m2)
		}

		isTrait := false
		if p.Keyword("trait") {
			isTrait = true
		} else if !p.Keyword("class") && !p.Keyword("object") {
			p.reset(m)
			return struct{}{}, false
		}

		if _, ok := p.Id(); !ok {
			p.reset(m)
			return struct{}{}, false
		}
		p.typeParamClause()
		if !isTrait {
			ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
				return struct{}{}, p.paramClause()
			})
		}
		p.templateExtends()
		Opt(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.templateBody() })
		return struct{}{}, true
	})
	return ok
}

// templateExtends = ('extends' | '<:') AnnotType ArgumentExprs? ('with' AnnotType)*
func (p *Parser) templateExtends() bool {
	m := p.save()
	if !p.Keyword("extends") {
		p.reset(m)
		return false
	}
	if !p.annotType() {
		p.reset(m)
		return false
	}
	Opt(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.ArgumentExprs() })
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		m2 := p.save()
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
	return true
}

// selfType = (Id | 'this') (':' Type)? '=>', the optional self-type
// annotation a template body may open with, e.g. `self: X =>` or
// `this: X => `. Tried once, whole, before the member-statement loop;
// on any mismatch it consumes nothing, leaving templateStat to match
// the opening statement as usual.
func (p *Parser) selfType() bool {
	_, ok := Named(p, "SelfType", func(p *Parser) (struct{}, bool) {
		m := p.save()
		if !p.Keyword("this") {
			if _, idOK := p.Id(); !idOK {
				p.reset(m)
				return struct{}{}, false
			}
		}
		p.skipWL()
		if p.Ch(':') {
			if !p.Type() {
				p.reset(m)
				return struct{}{}, false
			}
			p.skipWL()
		}
		if !p.Str("=>") {
			p.reset(m)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return ok
}

// templateBody is the brace-delimited, sensitive-mode member list
// shared by class/trait/object definitions and `new` expressions.
func (p *Parser) templateBody() bool {
	_, ok := Named(p, "TemplateBody", func(p *Parser) (struct{}, bool) {
		m := p.save()
		p.skipWL()
		if !p.Ch('{') {
			p.reset(m)
			return struct{}{}, false
		}
		prevSensitive := p.sensitive
		p.sensitive = true
		p.selfType()
		p.optSemis()
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			if !p.templateStat() {
				return struct{}{}, false
			}
			if !p.Semi() {
				m2 := p.save()
				p.skipWL()
				if p.Peek() != '}' {
					p.reset(m2)
					return struct{}{}, false
				}
				p.reset(m2)
			}
			return struct{}{}, true
		})
		p.optSemis()
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

// templateStat = Import | Annotation* Modifier* (Def | Dcl) | Expr
func (p *Parser) templateStat() bool {
	m := p.save()
	if p.ImportStat() {
		return true
	}
	p.reset(m)

	ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.Annotation() })
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.modifier() })
	if p.tmplDef() {
		return true
	}
	if p.defDef() {
		return true
	}
	if p.Dcl() {
		return true
	}
	p.reset(m)

	if p.Expr() {
		return true
	}
	p.reset(m)
	return false
}
