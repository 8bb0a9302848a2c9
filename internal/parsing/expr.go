package parsing

// This file implements C9, the expression grammar and its semicolon
// inference sub-mode (§4.9):
//
//   MaybeOneNewline = OneNewlineMax (sensitive) / MATCH (insensitive)
//   MaybeNotNewline = NotNewline (sensitive) / MATCH (insensitive)
//
//   PostfixExpr = PrefixExpr InfixPart* PostfixPart?
//   InfixPart   = MaybeNotNewline Id TypeArgs? MaybeOneNewline PrefixExpr
//   PostfixPart = NotNewline Id Newline?
//   PrefixExpr  = ('-'|'+'|'~'|'!')? SimpleExpr
//   SimpleExpr  = SimpleExprStart SimpleExprPart* (MaybeNotNewline '_')?
//   Expr        = LambdaHead* ( If | While | Try | Do | For | Throw | Return | Assign | PostfixExpr ExprTrailer? )
//
// The recognizer never resolves operator precedence: InfixPart simply
// accepts a left-to-right chain of (operator, operand) pairs.

// notNewline requires, in sensitive mode, that no newline separates
// the current position from what follows (only whitespace/comments
// may); insensitive mode never cares.
func (p *Parser) notNewline() bool {
	if !p.sensitive {
		return true
	}
	m := p.save()
	p.skipWS()
	if IsNewlineStart(p.Peek()) {
		p.reset(m)
		return p.fail("no newline here")
	}
	return true
}

// Expr is the top-level entry point of the expression grammar.
func (p *Parser) Expr() bool {
	_, ok := Named(p, "Expr", func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.exprBody()
	})
	return ok
}

func (p *Parser) exprBody() bool {
	m := p.save()
	if p.lambdaHead() {
		if p.Expr() {
			return true
		}
		p.reset(m)
	}

	for _, form := range []func() bool{
		p.ifExpr, p.whileExpr, p.tryExpr, p.doExpr, p.forExpr,
		p.throwExpr, p.returnExpr,
	} {
		if form() {
			return true
		}
		p.reset(m)
	}

	if !p.sensitive && p.assignExpr() {
		return true
	}
	p.reset(m)

	if !p.PostfixExpr() {
		return false
	}
	p.exprTrailer()
	return true
}

// lambdaHead matches `Bindings '=>'` or `(Id | '_') '=>'`.
func (p *Parser) lambdaHead() bool {
	m := p.save()
	if p.bindings() || p.lambdaParam() {
		p.skipWL()
		if p.Str("=>") || p.Str("⇒") {
			return true
		}
	}
	p.reset(m)
	return false
}

func (p *Parser) lambdaParam() bool {
	m := p.save()
	if _, ok := p.Id(); ok {
		return true
	}
	p.reset(m)
	p.skipWL()
	return p.Ch('_')
}

// bindings = '(' (Binding (',' Binding)*)? ')'
func (p *Parser) bindings() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('(') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = false
	Opt(p, func(p *Parser) ([]struct{}, bool) {
		return SepBy(p, func(p *Parser) (struct{}, bool) {
			return struct{}{}, p.binding()
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

func (p *Parser) binding() bool {
	m := p.save()
	ok := false
	if _, idOk := p.Id(); idOk {
		ok = true
	} else if p.Ch('_') {
		ok = true
	}
	if !ok {
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
	return true
}

// ifExpr = 'if' '(' Expr ')' Expr ('else' Expr)?
func (p *Parser) ifExpr() bool {
	m := p.save()
	if !p.Keyword("if") {
		return false
	}
	p.skipWL()
	if !p.Ch('(') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = false
	condOK := p.Expr()
	p.sensitive = prevSensitive
	if !condOK {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch(')') {
		p.fail(")")
		p.reset(m)
		return false
	}
	p.skipOptSemiNewline()
	if !p.Expr() {
		p.reset(m)
		return false
	}
	m2 := p.save()
	p.skipOptSemiNewline()
	if p.Keyword("else") {
		p.skipOptSemiNewline()
		if !p.Expr() {
			p.reset(m2)
		}
	} else {
		p.reset(m2)
	}
	return true
}

// whileExpr = 'while' '(' Expr ')' Expr
func (p *Parser) whileExpr() bool {
	m := p.save()
	if !p.Keyword("while") {
		return false
	}
	p.skipWL()
	if !p.Ch('(') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = false
	condOK := p.Expr()
	p.sensitive = prevSensitive
	if !condOK {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch(')') {
		p.fail(")")
		p.reset(m)
		return false
	}
	p.skipOptSemiNewline()
	if !p.Expr() {
		p.reset(m)
		return false
	}
	return true
}

// doExpr = 'do' Expr Semi? 'while' '(' Expr ')'
func (p *Parser) doExpr() bool {
	m := p.save()
	if !p.Keyword("do") {
		return false
	}
	if !p.Expr() {
		p.reset(m)
		return false
	}
	m2 := p.save()
	if !p.Semi() {
		p.reset(m2)
	}
	if !p.Keyword("while") {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch('(') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = false
	condOK := p.Expr()
	p.sensitive = prevSensitive
	if !condOK {
		p.reset(m)
		return false
	}
	p.skipWL()
	if !p.Ch(')') {
		p.fail(")")
		p.reset(m)
		return false
	}
	return true
}

// forExpr = 'for' ('(' Enumerators ')' | '{' Enumerators '}') 'yield'? Expr
func (p *Parser) forExpr() bool {
	m := p.save()
	if !p.Keyword("for") {
		return false
	}
	p.skipWL()
	if p.Ch('(') {
		prevSensitive := p.sensitive
		p.sensitive = false
		ok := p.enumerators()
		p.sensitive = prevSensitive
		if !ok {
			p.reset(m)
			return false
		}
		p.skipWL()
		if !p.Ch(')') {
			p.fail(")")
			p.reset(m)
			return false
		}
	} else if p.Ch('{') {
		prevSensitive := p.sensitive
		p.sensitive = true
		ok := p.enumerators()
		p.sensitive = prevSensitive
		if !ok {
			p.reset(m)
			return false
		}
		p.skipWL()
		if !p.Ch('}') {
			p.fail("}")
			p.reset(m)
			return false
		}
	} else {
		p.reset(m)
		return false
	}
	p.skipOptSemiNewline()
	m2 := p.save()
	if !p.Keyword("yield") {
		p.reset(m2)
	}
	if !p.Expr() {
		p.reset(m)
		return false
	}
	return true
}

// enumerators = Generator (Semi Enumerator)*
func (p *Parser) enumerators() bool {
	if !p.generator() {
		return false
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		m := p.save()
		if !p.Semi() {
			p.reset(m)
			return struct{}{}, false
		}
		if !p.enumerator() {
			p.reset(m)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return true
}

func (p *Parser) enumerator() bool {
	m := p.save()
	if p.generator() {
		return true
	}
	p.reset(m)
	if p.Keyword("if") {
		if p.PostfixExpr() {
			return true
		}
		p.reset(m)
	}
	if p.valDefHead() {
		return true
	}
	p.reset(m)
	return false
}

// generator = Pattern1Binder '<-' Expr guard*
func (p *Parser) generator() bool {
	m := p.save()
	if !p.pattern1() {
		return false
	}
	p.skipWL()
	if !(p.Str("<-") || p.Str("←")) {
		p.reset(m)
		return false
	}
	if !p.Expr() {
		p.reset(m)
		return false
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		m2 := p.save()
		if !p.Keyword("if") {
			p.reset(m2)
			return struct{}{}, false
		}
		if !p.PostfixExpr() {
			p.reset(m2)
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return true
}

func (p *Parser) valDefHead() bool {
	m := p.save()
	if !p.pattern1() {
		return false
	}
	p.skipWL()
	if !p.Ch('=') {
		p.reset(m)
		return false
	}
	if !p.Expr() {
		p.reset(m)
		return false
	}
	return true
}

// tryExpr = 'try' Expr ('catch' Expr)? ('finally' Expr)?
func (p *Parser) tryExpr() bool {
	m := p.save()
	if !p.Keyword("try") {
		return false
	}
	if !p.Expr() {
		p.reset(m)
		return false
	}
	m2 := p.save()
	if p.Keyword("catch") {
		if !p.Expr() {
			p.reset(m2)
		}
	} else {
		p.reset(m2)
	}
	m2 = p.save()
	if p.Keyword("finally") {
		if !p.Expr() {
			p.reset(m2)
		}
	} else {
		p.reset(m2)
	}
	return true
}

func (p *Parser) throwExpr() bool {
	m := p.save()
	if !p.Keyword("throw") {
		return false
	}
	if !p.Expr() {
		p.reset(m)
		return false
	}
	return true
}

func (p *Parser) returnExpr() bool {
	if !p.Keyword("return") {
		return false
	}
	m := p.save()
	if !p.Expr() {
		p.reset(m)
	}
	return true
}

// assignExpr = SimpleExpr '=' Expr, only attempted in insensitive mode.
func (p *Parser) assignExpr() bool {
	m := p.save()
	if !p.SimpleExpr() {
		return false
	}
	p.skipWL()
	if !p.Ch('=') {
		p.reset(m)
		return false
	}
	if p.Peek() == '=' {
		// don't swallow `==`
		p.reset(m)
		return false
	}
	if !p.Expr() {
		p.reset(m)
		return false
	}
	return true
}

// exprTrailer recognizes the suffixes that can follow a PostfixExpr
// within Expr: a match block, an assignment `= Expr` on the same line,
// or a type ascription.
func (p *Parser) exprTrailer() {
	m := p.save()
	p.skipWL()
	if p.Keyword("match") {
		if p.caseBlock() {
			return
		}
	}
	p.reset(m)
	p.skipWS()
	if p.Ch('=') && p.Peek() != '=' && p.Peek() != '>' && p.Expr() {
		return
	}
	p.reset(m)
	m = p.save()
	p.skipWL()
	if p.Ch(':') {
		m2 := p.save()
		if p.Ch('_') {
			p.skipWL()
			if p.Str("*") {
				return
			}
			p.reset(m2)
		}
		if p.Type() {
			return
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.Annotation() })
		return
	}
	p.reset(m)
}

// PostfixExpr = PrefixExpr InfixPart* PostfixPart?
func (p *Parser) PostfixExpr() bool {
	_, ok := Named(p, "PostfixExpr", func(p *Parser) (struct{}, bool) {
		if !p.PrefixExpr() {
			return struct{}{}, false
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			return struct{}{}, p.infixPart()
		})
		m := p.save()
		if !p.postfixPart() {
			p.reset(m)
		}
		return struct{}{}, true
	})
	return ok
}

func (p *Parser) infixPart() bool {
	m := p.save()
	if !p.notNewline() {
		p.reset(m)
		return false
	}
	if _, ok := p.Id(); !ok {
		p.reset(m)
		return false
	}
	p.typeArgs()
	if !p.oneNewlineMax() {
		p.reset(m)
		return false
	}
	if !p.PrefixExpr() {
		p.reset(m)
		return false
	}
	return true
}

func (p *Parser) postfixPart() bool {
	m := p.save()
	if !p.notNewline() {
		p.reset(m)
		return false
	}
	if _, ok := p.Id(); !ok {
		p.reset(m)
		return false
	}
	m2 := p.save()
	if !p.Newline() {
		p.reset(m2)
	}
	return true
}

// PrefixExpr = ('-'|'+'|'~'|'!')? SimpleExpr, where the prefix
// operator must not itself be followed by another operator char (so
// `--x` isn't misread as the prefix op `-` applied to `-x`, it's the
// operator identifier `--` applied to `x`).
func (p *Parser) PrefixExpr() bool {
	_, ok := Named(p, "PrefixExpr", func(p *Parser) (struct{}, bool) {
		p.skipWL()
		m := p.save()
		if p.AnyOf("-+~!") {
			if IsOperatorChar(p.Peek()) {
				p.reset(m)
			}
		} else {
			p.reset(m)
		}
		return struct{}{}, p.SimpleExpr()
	})
	return ok
}

// SimpleExpr = SimpleExprStart SimpleExprPart* (MaybeNotNewline '_')?
func (p *Parser) SimpleExpr() bool {
	_, ok := Named(p, "SimpleExpr", func(p *Parser) (struct{}, bool) {
		if !p.simpleExprStart() {
			return struct{}{}, false
		}
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			return struct{}{}, p.simpleExprPart()
		})
		m := p.save()
		if p.notNewline() {
			p.skipWL()
			if p.Ch('_') {
				return struct{}{}, true
			}
		}
		p.reset(m)
		return struct{}{}, true
	})
	return ok
}

func (p *Parser) simpleExprStart() bool {
	m := p.save()
	if p.newExpr() {
		return true
	}
	p.reset(m)
	if p.block() {
		return true
	}
	p.reset(m)
	if p.caseBlock() {
		return true
	}
	p.reset(m)
	if p.parenExprOrTuple() {
		return true
	}
	p.reset(m)
	if p.Literal() {
		return true
	}
	p.reset(m)
	p.skipWL()
	if p.Ch('_') {
		if next := p.Peek(); !(IsLetter(next) || IsDigit(next)) {
			return true
		}
		p.reset(m)
	}
	if p.StableId() {
		return true
	}
	p.reset(m)
	return false
}

func (p *Parser) simpleExprPart() bool {
	m := p.save()
	p.skipWL()
	if p.Ch('.') {
		if _, ok := p.Id(); ok {
			return true
		}
		p.reset(m)
		return false
	}
	if p.typeArgs() {
		return true
	}
	p.reset(m)
	m = p.save()
	if p.notNewline() && p.ArgumentExprs() {
		return true
	}
	p.reset(m)
	return false
}

// newExpr = 'new' AnnotType (ArgumentExprs)? TemplateBody?
func (p *Parser) newExpr() bool {
	m := p.save()
	if !p.Keyword("new") {
		return false
	}
	if !p.annotType() {
		p.reset(m)
		return false
	}
	Opt(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.ArgumentExprs() })
	Opt(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.templateBody() })
	return true
}

// ArgumentExprs = '(' (Expr (',' Expr)*)? ')'
func (p *Parser) ArgumentExprs() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('(') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = false
	Opt(p, func(p *Parser) ([]struct{}, bool) {
		return SepBy(p, func(p *Parser) (struct{}, bool) {
			return struct{}{}, p.Expr()
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

// parenExprOrTuple = '(' (Expr (',' Expr)*)? ')'
func (p *Parser) parenExprOrTuple() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('(') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = false
	Opt(p, func(p *Parser) ([]struct{}, bool) {
		return SepBy(p, func(p *Parser) (struct{}, bool) {
			return struct{}{}, p.Expr()
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

// block = '{' BlockStatSeq? '}', sensitive mode.
func (p *Parser) block() bool {
	_, ok := Named(p, "Block", func(p *Parser) (struct{}, bool) {
		m := p.save()
		p.skipWL()
		if !p.Ch('{') {
			p.reset(m)
			return struct{}{}, false
		}
		prevSensitive := p.sensitive
		p.sensitive = true
		p.optSemis()
		ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
			if !p.blockStat() {
				return struct{}{}, false
			}
			if !p.blockEnd() {
				if !p.Semi() {
					return struct{}{}, false
				}
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

// blockEnd = optSemis &('}' | 'case')
func (p *Parser) blockEnd() bool {
	m := p.save()
	p.optSemis()
	ok := And(p, func(p *Parser) (struct{}, bool) {
		p.skipWL()
		if p.Peek() == '}' {
			return struct{}{}, true
		}
		return struct{}{}, p.Keyword("case")
	})
	p.reset(m)
	return ok
}

// blockStat = Import | Annotation* Modifier* Def | Expr
func (p *Parser) blockStat() bool {
	m := p.save()
	if p.ImportStat() {
		return true
	}
	p.reset(m)
	if p.localDef() {
		return true
	}
	p.reset(m)
	if p.Expr() {
		return true
	}
	p.reset(m)
	return false
}

func (p *Parser) localDef() bool {
	m := p.save()
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.Annotation() })
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) { return struct{}{}, p.modifier() })
	if p.tmplDef() {
		return true
	}
	if p.defDef() {
		return true
	}
	p.reset(m)
	return false
}

// caseBlock = '{' CaseClause+ '}'
func (p *Parser) caseBlock() bool {
	m := p.save()
	p.skipWL()
	if !p.Ch('{') {
		p.reset(m)
		return false
	}
	prevSensitive := p.sensitive
	p.sensitive = true
	p.optSemis()
	if _, ok := OneOrMore(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.caseClause()
	}); !ok {
		p.sensitive = prevSensitive
		p.reset(m)
		return false
	}
	p.sensitive = prevSensitive
	p.skipWL()
	if !p.Ch('}') {
		p.fail("}")
		p.reset(m)
		return false
	}
	return true
}

// caseClause = 'case' Pattern guard? '=>' Block
func (p *Parser) caseClause() bool {
	m := p.save()
	p.optSemis()
	if !p.Keyword("case") {
		p.reset(m)
		return false
	}
	if !p.Pattern() {
		p.reset(m)
		return false
	}
	m2 := p.save()
	if p.Keyword("if") {
		if !p.PostfixExpr() {
			p.reset(m2)
		}
	} else {
		p.reset(m2)
	}
	p.skipWL()
	if !(p.Str("=>") || p.Str("⇒")) {
		p.fail("=>")
		p.reset(m)
		return false
	}
	p.optSemis()
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		if And(p, func(p *Parser) (struct{}, bool) {
			p.skipWL()
			if p.Peek() == '}' {
				return struct{}{}, true
			}
			return struct{}{}, p.Keyword("case")
		}) {
			return struct{}{}, false
		}
		if !p.blockStat() {
			return struct{}{}, false
		}
		if !p.Semi() {
			return struct{}{}, false
		}
		return struct{}{}, true
	})
	return true
}

// skipOptSemiNewline skips at most one optional newline used between
// an `if`/`while`/`for` header and its body.
func (p *Parser) skipOptSemiNewline() {
	m := p.save()
	p.skipWS()
	if p.Newline() {
		return
	}
	p.reset(m)
}

// optSemis skips zero or more Semi separators and surrounding layout.
func (p *Parser) optSemis() {
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.Semi()
	})
}

// Semi = ';' | one inferred newline. In sensitive mode, a run of
// consecutive newlines (and interleaved whitespace/comments) counts
// as a single logical statement separator.
func (p *Parser) Semi() bool {
	m := p.save()
	p.skipWS()
	if p.Ch(';') {
		return true
	}
	p.reset(m)
	if !p.sensitive {
		return false
	}
	m = p.save()
	p.skipWS()
	if !p.Newline() {
		p.reset(m)
		return false
	}
	ZeroOrMore(p, func(p *Parser) (struct{}, bool) {
		p.skipWS()
		return struct{}{}, p.Newline()
	})
	return true
}
