package parser

import (
	"swiftfmt/internal/cst"
	"swiftfmt/internal/diag"
	"swiftfmt/internal/token"
)

// parseStmt parses one statement or declaration. It always consumes at
// least one token.
func (p *parser) parseStmt() *cst.Node {
	switch p.peek().Kind {
	case token.KwImport:
		return p.parseImport()
	case token.KwLet, token.KwVar:
		return p.parseVariable(nil)
	case token.KwFunc, token.KwInit:
		return p.parseFunction(nil)
	case token.KwStruct, token.KwClass, token.KwEnum, token.KwExtension, token.KwProtocol:
		return p.parseTypeDecl(nil)
	case token.At:
		return p.parseAttributed()
	case token.KwIf:
		return p.parseIf()
	case token.KwGuard:
		return p.parseGuard()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwFor:
		return p.parseFor()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwRepeat:
		return p.parseRepeat()
	case token.KwReturn, token.KwThrow:
		return p.parseReturn()
	case token.KwDefer:
		return p.parseDefer()
	case token.KwBreak, token.KwContinue:
		stmt := cst.NewNode(cst.UnknownStmt, p.bump())
		if p.at(token.Ident) && !p.atLineStart() {
			stmt.Append(p.bump()) // label
		}
		p.eatTrailingSemicolon(stmt)
		return stmt
	case token.PoundIf:
		return p.parseIfConfig()
	case token.KwCase, token.KwTypealias:
		// enum-case и typealias читаются как сырые строки: для отступов
		// важна только их позиция в списке членов
		stmt := cst.NewNode(cst.UnknownStmt, p.bump())
		p.restOfLine(stmt)
		p.eatTrailingSemicolon(stmt)
		return stmt
	default:
		if token.IsModifier(p.peek().Kind) {
			return p.parseModified()
		}
		return p.parseExprStmt()
	}
}

// parseAttributed handles a leading @attribute list before a declaration.
func (p *parser) parseAttributed() *cst.Node {
	attrs := cst.NewNode(cst.AttributeList)
	for p.at(token.At) {
		attr := cst.NewNode(cst.Attribute, p.bump())
		if p.at(token.Ident) || token.IsModifier(p.peek().Kind) {
			attr.Append(p.bump())
		}
		if p.at(token.LParen) {
			p.parseBalanced(attr)
		}
		attrs.Append(attr)
	}
	prefix := []*cst.Node{attrs}
	for token.IsModifier(p.peek().Kind) {
		prefix = append(prefix, p.bump())
	}
	return p.parseDeclAfterPrefix(prefix)
}

// parseModified handles declaration modifiers (public, static, ...) before
// the introducer keyword.
func (p *parser) parseModified() *cst.Node {
	var prefix []*cst.Node
	for token.IsModifier(p.peek().Kind) {
		prefix = append(prefix, p.bump())
	}
	return p.parseDeclAfterPrefix(prefix)
}

func (p *parser) parseDeclAfterPrefix(prefix []*cst.Node) *cst.Node {
	switch p.peek().Kind {
	case token.KwLet, token.KwVar:
		return p.parseVariable(prefix)
	case token.KwFunc, token.KwInit:
		return p.parseFunction(prefix)
	case token.KwStruct, token.KwClass, token.KwEnum, token.KwExtension, token.KwProtocol:
		return p.parseTypeDecl(prefix)
	default:
		// модификатор без декларации — сырой хвост строки
		stmt := cst.NewNode(cst.UnknownStmt, prefix...)
		p.restOfLine(stmt)
		if len(stmt.Children) == len(prefix) {
			stmt.Append(p.bump()) // гарантия прогресса
		}
		p.eatTrailingSemicolon(stmt)
		return stmt
	}
}

func (p *parser) parseExprStmt() *cst.Node {
	expr := p.parseSequenceExpr(exprOpts{allowTrailing: true})
	if expr == nil {
		// ничего выражением не является: съесть токен, не зациклиться
		p.rep.Report(diag.SynUnexpectedToken, diag.SevWarning, p.peek().Span,
			"unexpected token "+p.peek().Kind.String())
		stmt := cst.NewNode(cst.UnknownStmt, p.bump())
		return stmt
	}
	stmt := cst.NewNode(cst.ExprStmt, expr)
	p.eatTrailingSemicolon(stmt)
	return stmt
}

func (p *parser) eatTrailingSemicolon(stmt *cst.Node) {
	if p.at(token.Semicolon) && !p.atLineStart() {
		stmt.Append(p.bump())
	}
}

// parseCodeBlock parses `{ statements }`.
func (p *parser) parseCodeBlock() *cst.Node {
	block := cst.NewNode(cst.CodeBlock)
	lbrace := p.expect(token.LBrace, diag.SynExpectToken, "expected '{'")
	if lbrace == nil {
		return block
	}
	block.Append(lbrace)
	block.Append(p.parseStmtListUntil(token.RBrace))
	if rbrace := p.expect(token.RBrace, diag.SynUnclosedBrace, "missing '}'"); rbrace != nil {
		block.Append(rbrace)
	}
	return block
}

// parseStmtListUntil collects statements until the closing kind (or a
// directive boundary, or EOF).
func (p *parser) parseStmtListUntil(closing token.Kind) *cst.Node {
	list := cst.NewNode(cst.StmtList)
	for {
		switch p.peek().Kind {
		case closing, token.EOF,
			token.PoundElseif, token.PoundElse, token.PoundEndif:
			return list
		case token.Semicolon:
			list.Append(p.bump()) // стрейный разделитель
			continue
		}
		list.Append(p.parseStmt())
	}
}

func (p *parser) parseIf() *cst.Node {
	stmt := cst.NewNode(cst.IfStmt, p.bump())
	stmt.Append(p.parseConditionList())
	stmt.Append(p.parseCodeBlock())
	if elseTok := p.eat(token.KwElse); elseTok != nil {
		stmt.Append(elseTok)
		if p.at(token.KwIf) {
			stmt.Append(p.parseIf())
		} else {
			stmt.Append(p.parseCodeBlock())
		}
	}
	return stmt
}

func (p *parser) parseGuard() *cst.Node {
	stmt := cst.NewNode(cst.GuardStmt, p.bump())
	stmt.Append(p.parseConditionList())
	if elseTok := p.expect(token.KwElse, diag.SynExpectToken, "guard requires 'else'"); elseTok != nil {
		stmt.Append(elseTok)
	}
	stmt.Append(p.parseCodeBlock())
	return stmt
}

// parseConditionList parses comma-separated conditions up to the opening
// brace of the body.
func (p *parser) parseConditionList() *cst.Node {
	list := cst.NewNode(cst.ConditionList)
	for {
		cond := cst.NewNode(cst.Condition)
		for p.at(token.KwLet) || p.at(token.KwVar) || p.at(token.KwCase) {
			cond.Append(p.bump())
		}
		if expr := p.parseSequenceExpr(exprOpts{}); expr != nil {
			cond.Append(expr)
		}
		if len(cond.Children) > 0 {
			list.Append(cond)
		}
		if comma := p.eat(token.Comma); comma != nil {
			list.Append(comma)
			continue
		}
		return list
	}
}

func (p *parser) parseSwitch() *cst.Node {
	stmt := cst.NewNode(cst.SwitchStmt, p.bump())
	if subject := p.parseSequenceExpr(exprOpts{}); subject != nil {
		stmt.Append(subject)
	}
	lbrace := p.expect(token.LBrace, diag.SynExpectToken, "switch requires '{'")
	if lbrace == nil {
		return stmt
	}
	stmt.Append(lbrace)

	cases := cst.NewNode(cst.SwitchCaseList)
	for {
		switch p.peek().Kind {
		case token.KwCase, token.KwDefault:
			cases.Append(p.parseSwitchCase())
			continue
		case token.PoundIf:
			cases.Append(p.parseIfConfig())
			continue
		}
		break
	}
	stmt.Append(cases)

	if rbrace := p.expect(token.RBrace, diag.SynUnclosedBrace, "switch missing '}'"); rbrace != nil {
		stmt.Append(rbrace)
	}
	return stmt
}

func (p *parser) parseSwitchCase() *cst.Node {
	label := cst.NewNode(cst.CaseLabel)
	if caseTok := p.eat(token.KwCase); caseTok != nil {
		label.Append(caseTok)
		items := cst.NewNode(cst.CaseItemList)
		for {
			item := cst.NewNode(cst.CaseItem)
			for p.at(token.KwLet) || p.at(token.KwVar) {
				item.Append(p.bump())
			}
			if expr := p.parseSequenceExpr(exprOpts{stopAtColon: true}); expr != nil {
				item.Append(expr)
			}
			if whereTok := p.eat(token.KwWhere); whereTok != nil {
				item.Append(whereTok)
				if expr := p.parseSequenceExpr(exprOpts{stopAtColon: true}); expr != nil {
					item.Append(expr)
				}
			}
			if len(item.Children) > 0 {
				items.Append(item)
			}
			if comma := p.eat(token.Comma); comma != nil {
				items.Append(comma)
				continue
			}
			break
		}
		label.Append(items)
	} else {
		label.Append(p.bump()) // default
	}
	if colon := p.expect(token.Colon, diag.SynExpectToken, "case label requires ':'"); colon != nil {
		label.Append(colon)
	}

	body := cst.NewNode(cst.StmtList)
	for {
		switch p.peek().Kind {
		case token.KwCase, token.KwDefault, token.RBrace, token.EOF,
			token.PoundElseif, token.PoundElse, token.PoundEndif:
			return cst.NewNode(cst.SwitchCase, label, body)
		}
		body.Append(p.parseStmt())
	}
}

func (p *parser) parseFor() *cst.Node {
	stmt := cst.NewNode(cst.ForStmt, p.bump())
	// паттерн до 'in'
	for !p.at(token.KwIn) && !p.at(token.LBrace) && !p.at(token.EOF) && !p.atLineStart() {
		stmt.Append(p.bump())
	}
	if inTok := p.eat(token.KwIn); inTok != nil {
		stmt.Append(inTok)
		if seq := p.parseSequenceExpr(exprOpts{}); seq != nil {
			stmt.Append(seq)
		}
	}
	if p.at(token.KwWhere) {
		stmt.Append(p.parseWhereClauseExpr())
	}
	stmt.Append(p.parseCodeBlock())
	return stmt
}

func (p *parser) parseWhile() *cst.Node {
	stmt := cst.NewNode(cst.WhileStmt, p.bump())
	stmt.Append(p.parseConditionList())
	stmt.Append(p.parseCodeBlock())
	return stmt
}

func (p *parser) parseRepeat() *cst.Node {
	stmt := cst.NewNode(cst.RepeatStmt, p.bump())
	stmt.Append(p.parseCodeBlock())
	if whileTok := p.expect(token.KwWhile, diag.SynExpectToken, "repeat requires 'while'"); whileTok != nil {
		stmt.Append(whileTok)
		if cond := p.parseSequenceExpr(exprOpts{allowTrailing: true}); cond != nil {
			stmt.Append(cond)
		}
	}
	return stmt
}

func (p *parser) parseReturn() *cst.Node {
	stmt := cst.NewNode(cst.ReturnStmt, p.bump())
	// операнд только на той же строке: перенос строки завершает return
	if !p.atStmtEnd() {
		if expr := p.parseSequenceExpr(exprOpts{allowTrailing: true}); expr != nil {
			stmt.Append(expr)
		}
	}
	p.eatTrailingSemicolon(stmt)
	return stmt
}

func (p *parser) parseDefer() *cst.Node {
	stmt := cst.NewNode(cst.DeferStmt, p.bump())
	stmt.Append(p.parseCodeBlock())
	return stmt
}

// parseIfConfig parses a #if/#elseif/#else/#endif region. The clause
// structure mirrors the directive layout: each clause owns its condition
// tokens and a statement list.
func (p *parser) parseIfConfig() *cst.Node {
	region := cst.NewNode(cst.IfConfigDecl)
	for {
		var pound *cst.Node
		switch p.peek().Kind {
		case token.PoundIf, token.PoundElseif, token.PoundElse:
			pound = p.bump()
		default:
			break
		}
		if pound == nil {
			break
		}
		clause := cst.NewNode(cst.IfConfigClause, pound)
		p.restOfLine(clause) // условие директивы до конца строки
		clause.Append(p.parseStmtListUntil(token.RBrace))
		region.Append(clause)

		if p.at(token.PoundElseif) || p.at(token.PoundElse) {
			continue
		}
		break
	}
	if endif := p.eat(token.PoundEndif); endif != nil {
		region.Append(endif)
	} else {
		p.rep.Report(diag.SynDanglingDirective, diag.SevError, p.peek().Span,
			"conditional region missing #endif")
	}
	return region
}

// parseBalanced consumes a bracketed group verbatim (used for attribute
// arguments and tuple patterns where inner structure does not matter).
func (p *parser) parseBalanced(into *cst.Node) {
	open := p.peek().Kind
	var closing token.Kind
	switch open {
	case token.LParen:
		closing = token.RParen
	case token.LBracket:
		closing = token.RBracket
	case token.LBrace:
		closing = token.RBrace
	default:
		into.Append(p.bump())
		return
	}
	into.Append(p.bump())
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.peek().Kind {
		case open:
			depth++
		case closing:
			depth--
		}
		into.Append(p.bump())
	}
}
