package parser

import (
	"swiftfmt/internal/cst"
	"swiftfmt/internal/diag"
	"swiftfmt/internal/token"
)

func (p *parser) parseImport() *cst.Node {
	decl := cst.NewNode(cst.ImportDecl, p.bump())
	p.restOfLine(decl)
	p.eatTrailingSemicolon(decl)
	return decl
}

// parseVariable parses `let`/`var` with one or more comma-separated
// pattern bindings and an optional accessor block.
func (p *parser) parseVariable(prefix []*cst.Node) *cst.Node {
	decl := cst.NewNode(cst.VariableDecl, prefix...)
	decl.Append(p.bump()) // let | var

	for {
		decl.Append(p.parsePatternBinding())
		if comma := p.eat(token.Comma); comma != nil {
			decl.Append(comma)
			continue
		}
		break
	}

	// computed property / observers
	if p.at(token.LBrace) && !p.atLineStart() {
		decl.Append(p.parseCodeBlock())
	}
	p.eatTrailingSemicolon(decl)
	return decl
}

func (p *parser) parsePatternBinding() *cst.Node {
	binding := cst.NewNode(cst.PatternBinding)

	// паттерн: идентификатор или скобочный кортеж
	switch p.peek().Kind {
	case token.Ident, token.KwSelf:
		binding.Append(p.bump())
	case token.LParen:
		p.parseBalanced(binding)
	default:
		if !p.atStmtEnd() {
			binding.Append(p.bump())
		}
	}

	if colon := p.eat(token.Colon); colon != nil {
		ann := cst.NewNode(cst.TypeAnnotation, colon)
		p.parseTypeTokens(ann)
		binding.Append(ann)
	}

	if assign := p.eat(token.Assign); assign != nil {
		clause := cst.NewNode(cst.InitializerClause, assign)
		if value := p.parseSequenceExpr(exprOpts{allowTrailing: true}); value != nil {
			clause.Append(value)
		}
		binding.Append(clause)
	}
	return binding
}

// parseFunction parses func/init declarations.
func (p *parser) parseFunction(prefix []*cst.Node) *cst.Node {
	decl := cst.NewNode(cst.FunctionDecl, prefix...)
	decl.Append(p.bump()) // func | init

	// имя: идентификатор, ключевое слово-имя или операторная функция
	switch p.peek().Kind {
	case token.Ident:
		decl.Append(p.bump())
	case token.Operator, token.Assign, token.Lt, token.Gt, token.Bang, token.Question:
		decl.Append(p.bump())
	}

	if p.at(token.Lt) {
		decl.Append(p.parseGenericParams())
	}

	if p.at(token.LParen) {
		decl.Append(p.parseParameterClause())
	} else {
		p.rep.Report(diag.SynExpectToken, diag.SevError, p.peek().Span,
			"function declaration requires a parameter list")
	}

	if eff := p.eat(token.KwThrows); eff != nil {
		decl.Append(eff)
	} else if eff := p.eat(token.KwRethrows); eff != nil {
		decl.Append(eff)
	}

	if arrow := p.eat(token.Arrow); arrow != nil {
		ret := cst.NewNode(cst.ReturnClause, arrow)
		p.parseTypeTokens(ret)
		decl.Append(ret)
	}

	if p.at(token.KwWhere) {
		decl.Append(p.parseWhereClause())
	}

	if p.at(token.LBrace) {
		decl.Append(p.parseCodeBlock())
	}
	return decl
}

func (p *parser) parseParameterClause() *cst.Node {
	clause := cst.NewNode(cst.ParameterClause, p.bump()) // '('
	params := cst.NewNode(cst.ParameterList)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		param := cst.NewNode(cst.Parameter)
		depth := 0
		for !p.at(token.EOF) {
			k := p.peek().Kind
			if depth == 0 && (k == token.Comma || k == token.RParen) {
				break
			}
			switch k {
			case token.LParen, token.LBracket:
				depth++
			case token.RParen, token.RBracket:
				depth--
			}
			param.Append(p.bump())
		}
		if len(param.Children) > 0 {
			params.Append(param)
		}
		if comma := p.eat(token.Comma); comma != nil {
			params.Append(comma)
			continue
		}
		break
	}
	clause.Append(params)
	if rparen := p.expect(token.RParen, diag.SynUnclosedParen, "parameter list missing ')'"); rparen != nil {
		clause.Append(rparen)
	}
	return clause
}

// parseGenericParams parses `<T, U: Proto>`.
func (p *parser) parseGenericParams() *cst.Node {
	clause := cst.NewNode(cst.GenericParameterClause, p.bump()) // '<'
	params := cst.NewNode(cst.GenericParameterList)
	depth := 0
	var param *cst.Node
	for !p.at(token.EOF) {
		k := p.peek().Kind
		if depth == 0 && k == token.Gt {
			break
		}
		if k == token.Lt {
			depth++
		}
		if k == token.Gt {
			depth--
		}
		if depth == 0 && k == token.Comma {
			params.Append(p.bump())
			param = nil
			continue
		}
		if k == token.LBrace || k == token.RBrace {
			break // поломанный код: не утаскиваем тело
		}
		if param == nil {
			param = cst.NewNode(cst.Parameter)
			params.Append(param)
		}
		param.Append(p.bump())
	}
	clause.Append(params)
	if gt := p.eat(token.Gt); gt != nil {
		clause.Append(gt)
	}
	return clause
}

// parseWhereClause parses a generic constraint clause on a declaration.
func (p *parser) parseWhereClause() *cst.Node {
	clause := cst.NewNode(cst.WhereClause, p.bump()) // where
	reqs := cst.NewNode(cst.RequirementList)
	for {
		req := cst.NewNode(cst.Requirement)
		depth := 0
		for !p.at(token.EOF) {
			k := p.peek().Kind
			if depth == 0 {
				if k == token.Comma || k == token.LBrace || k == token.RBrace ||
					k == token.RParen || k == token.RBracket {
					break
				}
				if p.atStmtEnd() && len(req.Children) > 0 && !p.peek().IsOperatorLike() {
					break
				}
			}
			switch k {
			case token.LParen, token.LBracket:
				depth++
			case token.RParen, token.RBracket:
				depth--
			}
			req.Append(p.bump())
		}
		if len(req.Children) > 0 {
			reqs.Append(req)
		}
		if comma := p.eat(token.Comma); comma != nil {
			reqs.Append(comma)
			continue
		}
		break
	}
	clause.Append(reqs)
	return clause
}

// parseWhereClauseExpr parses a `where` filter on loops: keyword plus a
// boolean expression, no requirement list.
func (p *parser) parseWhereClauseExpr() *cst.Node {
	clause := cst.NewNode(cst.WhereClause, p.bump())
	if expr := p.parseSequenceExpr(exprOpts{}); expr != nil {
		reqs := cst.NewNode(cst.RequirementList, cst.NewNode(cst.Requirement, expr))
		clause.Append(reqs)
	}
	return clause
}

// parseTypeDecl parses struct/class/enum/extension/protocol declarations.
func (p *parser) parseTypeDecl(prefix []*cst.Node) *cst.Node {
	decl := cst.NewNode(cst.TypeDecl, prefix...)
	decl.Append(p.bump()) // introducer

	if p.at(token.Ident) || p.at(token.KwSelf) {
		decl.Append(p.bump())
		// составное имя расширения: extension Foo.Bar
		for p.at(token.Dot) {
			decl.Append(p.bump())
			if p.at(token.Ident) {
				decl.Append(p.bump())
			}
		}
	}

	if p.at(token.Lt) {
		decl.Append(p.parseGenericParams())
	}

	if colon := p.eat(token.Colon); colon != nil {
		inh := cst.NewNode(cst.InheritanceClause, colon)
		types := cst.NewNode(cst.InheritedTypeList)
		for {
			item := cst.NewNode(cst.Requirement)
			p.parseTypeTokens(item)
			if len(item.Children) > 0 {
				types.Append(item)
			}
			if comma := p.eat(token.Comma); comma != nil {
				types.Append(comma)
				continue
			}
			break
		}
		inh.Append(types)
		decl.Append(inh)
	}

	if p.at(token.KwWhere) {
		decl.Append(p.parseWhereClause())
	}

	if p.at(token.LBrace) {
		block := cst.NewNode(cst.MemberBlock, p.bump())
		members := cst.NewNode(cst.MemberList)
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			members.Append(p.parseStmt())
		}
		block.Append(members)
		if rbrace := p.expect(token.RBrace, diag.SynUnclosedBrace, "type body missing '}'"); rbrace != nil {
			block.Append(rbrace)
		}
		decl.Append(block)
	}
	return decl
}

// parseTypeTokens consumes a type reference: identifiers, dots, generic
// argument clauses, optional markers, bracket and paren groups, and
// `->`. The type may start on a continuation line, but once it has
// begun a fresh line ends it, so the next statement never gets absorbed
// into an annotation.
func (p *parser) parseTypeTokens(into *cst.Node) {
	p.parseTypeRun(into, false)
}

func (p *parser) parseTypeRun(into *cst.Node, multiline bool) {
	consumed := false
	for !p.at(token.EOF) {
		if !multiline && consumed && p.atLineStart() {
			return
		}
		switch p.peek().Kind {
		case token.Ident, token.KwSelf, token.Dot, token.Question, token.Bang,
			token.Arrow, token.KwThrows, token.KwRethrows:
			into.Append(p.bump())
		case token.Lt:
			into.Append(p.parseGenericArgs())
		case token.LParen, token.LBracket:
			p.parseBalanced(into)
		default:
			return
		}
		consumed = true
	}
}

// parseGenericArgs parses `<String, Int>` in type position. Arguments
// may span lines; a stray brace means the angle bracket never closes
// and we bail without eating the body.
func (p *parser) parseGenericArgs() *cst.Node {
	clause := cst.NewNode(cst.GenericArgumentClause, p.bump()) // '<'
	args := cst.NewNode(cst.GenericArgumentList)
	for !p.at(token.Gt) && !p.at(token.EOF) {
		if p.at(token.LBrace) || p.at(token.RBrace) {
			break
		}
		arg := cst.NewNode(cst.Requirement)
		p.parseTypeRun(arg, true)
		if len(arg.Children) > 0 {
			args.Append(arg)
		}
		if comma := p.eat(token.Comma); comma != nil {
			args.Append(comma)
			continue
		}
		if len(arg.Children) == 0 {
			break // токен вне типа: не зацикливаемся
		}
	}
	clause.Append(args)
	if gt := p.eat(token.Gt); gt != nil {
		clause.Append(gt)
	}
	return clause
}
