package parser

import (
	"swiftfmt/internal/cst"
	"swiftfmt/internal/diag"
	"swiftfmt/internal/token"
)

// exprOpts controls expression-level behaviour that depends on where the
// expression sits.
type exprOpts struct {
	// allowTrailing permits a trailing closure after a call. Off inside
	// conditions, where `{` opens the statement body instead.
	allowTrailing bool
	// stopAtColon ends the sequence at a top-level ':' (case items,
	// dictionary keys, ternary branches).
	stopAtColon bool
}

// parseSequenceExpr parses a flat run of operands separated by binary
// operators. Operators may begin a new line: that is the continuation
// signal. A non-operator token on a new line ends the sequence. Returns
// the single operand unwrapped when no operator follows, a SequenceExpr
// otherwise, or nil when no expression starts here.
func (p *parser) parseSequenceExpr(opts exprOpts) *cst.Node {
	var elems []*cst.Node

	for {
		operand := p.parseOperand(opts)
		if operand == nil {
			break
		}
		elems = append(elems, operand)

		tok := p.peek()
		if opts.stopAtColon && tok.Kind == token.Colon {
			break
		}
		// тернарный '?': всё накопленное становится условием
		if tok.Kind == token.Question {
			return p.parseTernaryTail(elems, opts)
		}
		if tok.Kind == token.Bang && !p.atLineStart() {
			// суффиксная форсировка: элемент последовательности
			elems = append(elems, p.bump())
			tok = p.peek()
		}
		if !tok.IsOperatorLike() {
			break
		}
		elems = append(elems, p.bump())
		if tok.Kind == token.KwAs {
			// `as?` / `as!` приклеиваются к оператору
			if p.at(token.Question) || p.at(token.Bang) {
				elems = append(elems, p.bump())
			}
		}
	}

	switch len(elems) {
	case 0:
		return nil
	case 1:
		return elems[0]
	default:
		return cst.NewNode(cst.SequenceExpr, elems...)
	}
}

// parseTernaryTail finishes `cond ? then : else` once the '?' is seen.
func (p *parser) parseTernaryTail(cond []*cst.Node, opts exprOpts) *cst.Node {
	var condNode *cst.Node
	if len(cond) == 1 {
		condNode = cond[0]
	} else {
		condNode = cst.NewNode(cst.SequenceExpr, cond...)
	}
	ternary := cst.NewNode(cst.TernaryExpr, condNode, p.bump())

	thenOpts := opts
	thenOpts.stopAtColon = true
	if then := p.parseSequenceExpr(thenOpts); then != nil {
		ternary.Append(then)
	}
	if colon := p.expect(token.Colon, diag.SynExpectToken, "ternary expression requires ':'"); colon != nil {
		ternary.Append(colon)
		if els := p.parseSequenceExpr(opts); els != nil {
			ternary.Append(els)
		}
	}
	return ternary
}

// parseOperand parses one sequence element: optional prefix tokens, a
// primary, and its postfix chain. Prefix operators stay flat inside the
// operand node so rendering order is preserved.
func (p *parser) parseOperand(opts exprOpts) *cst.Node {
	var prefix []*cst.Node
	for {
		k := p.peek().Kind
		if k == token.KwTry {
			prefix = append(prefix, p.bump())
			// try? / try!
			if p.at(token.Question) || p.at(token.Bang) {
				prefix = append(prefix, p.bump())
			}
			continue
		}
		if k == token.Operator || k == token.Bang || k == token.Lt {
			// префиксные -x, !flag, редкое <T>(...)
			prefix = append(prefix, p.bump())
			continue
		}
		break
	}

	expr := p.parsePostfix(opts)
	if expr == nil {
		if len(prefix) == 0 {
			return nil
		}
		// оператор без операнда: отдаём как есть, лексемы не теряем
		return cst.NewNode(cst.SequenceExpr, prefix...)
	}
	if len(prefix) == 0 {
		return expr
	}
	return cst.NewNode(cst.SequenceExpr, append(prefix, expr)...)
}

// parsePostfix parses a primary and folds member accesses, calls and
// subscripts onto it. A '.' may start a new line; that keeps multi-line
// method chains inside one expression tree.
func (p *parser) parsePostfix(opts exprOpts) *cst.Node {
	base := p.parsePrimary(opts)
	if base == nil {
		return nil
	}

	for {
		switch p.peek().Kind {
		case token.Question, token.Bang:
			// опциональная цепочка x?.y, форс x!.y: только перед постфиксом
			next := p.peekAhead(1).Kind
			if p.atLineStart() || (next != token.Dot && next != token.LParen && next != token.LBracket) {
				return base
			}
			mark := p.bump()
			base = p.parsePostfixTail(base, mark, opts)
		case token.Dot:
			base = p.parsePostfixTail(base, nil, opts)
		case token.LParen:
			if p.atLineStart() {
				return base
			}
			base = p.parseCall(base, nil, opts)
		case token.LBracket:
			if p.atLineStart() {
				return base
			}
			base = p.parseSubscript(base, nil)
		case token.LBrace:
			if !opts.allowTrailing || p.atLineStart() {
				return base
			}
			// трейлинг-замыкание без скобок вызова: foo { ... }
			base = cst.NewNode(cst.FunctionCallExpr, base, p.parseClosure())
		default:
			return base
		}
	}
}

// parsePostfixTail applies the postfix that follows an optional `?`/`!`
// mark: a member access, call or subscript.
func (p *parser) parsePostfixTail(base, mark *cst.Node, opts exprOpts) *cst.Node {
	switch p.peek().Kind {
	case token.Dot:
		access := cst.NewNode(cst.MemberAccessExpr, base)
		if mark != nil {
			access.Append(mark)
		}
		access.Append(p.bump()) // '.'
		switch p.peek().Kind {
		case token.Ident, token.KwSelf, token.KwInit, token.IntLit:
			access.Append(p.bump())
		default:
			p.rep.Report(diag.SynUnexpectedToken, diag.SevWarning, p.peek().Span,
				"expected member name after '.'")
		}
		return access
	case token.LParen:
		return p.parseCall(base, mark, opts)
	case token.LBracket:
		return p.parseSubscript(base, mark)
	default:
		if mark != nil {
			base = cst.NewNode(cst.SequenceExpr, base, mark)
		}
		return base
	}
}

// parseCall parses `callee(args)` plus an optional same-line trailing
// closure.
func (p *parser) parseCall(callee, mark *cst.Node, opts exprOpts) *cst.Node {
	call := cst.NewNode(cst.FunctionCallExpr, callee)
	if mark != nil {
		call.Append(mark)
	}
	call.Append(p.bump()) // '('
	call.Append(p.parseArgumentList())
	if rparen := p.expect(token.RParen, diag.SynUnclosedParen, "call missing ')'"); rparen != nil {
		call.Append(rparen)
	}
	if opts.allowTrailing && p.at(token.LBrace) && !p.atLineStart() {
		call.Append(p.parseClosure())
	}
	return call
}

func (p *parser) parseArgumentList() *cst.Node {
	args := cst.NewNode(cst.ArgumentList)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg := cst.NewNode(cst.Argument)
		// метка аргумента: `name:`
		if (p.at(token.Ident) || p.at(token.KwIn)) && p.peekAhead(1).Kind == token.Colon {
			arg.Append(p.bump())
			arg.Append(p.bump())
		}
		if expr := p.parseSequenceExpr(exprOpts{allowTrailing: true}); expr != nil {
			arg.Append(expr)
		}
		if len(arg.Children) > 0 {
			args.Append(arg)
		}
		if comma := p.eat(token.Comma); comma != nil {
			args.Append(comma)
			continue
		}
		break
	}
	return args
}

func (p *parser) parseSubscript(base, mark *cst.Node) *cst.Node {
	sub := cst.NewNode(cst.SubscriptExpr, base)
	if mark != nil {
		sub.Append(mark)
	}
	sub.Append(p.bump()) // '['
	sub.Append(p.parseElementList(token.RBracket))
	if rbracket := p.expect(token.RBracket, diag.SynUnclosedBracket, "subscript missing ']'"); rbracket != nil {
		sub.Append(rbracket)
	}
	return sub
}

// parsePrimary parses an atomic expression.
func (p *parser) parsePrimary(opts exprOpts) *cst.Node {
	if tok := p.peek(); tok.IsLiteral() || tok.Kind == token.Ident || tok.Kind == token.KwSelf {
		return p.bump()
	}
	switch p.peek().Kind {
	case token.LParen:
		return p.parseTuple()
	case token.LBracket:
		return p.parseCollection()
	case token.LBrace:
		return p.parseClosure()
	case token.Dot:
		// неявный член: .red, .some(x)
		access := cst.NewNode(cst.MemberAccessExpr, p.bump())
		if p.at(token.Ident) || p.at(token.KwSelf) || p.at(token.KwDefault) {
			access.Append(p.bump())
		}
		return access
	default:
		return nil
	}
}

// parseTuple parses `(...)`: grouping parens and tuples share one node.
func (p *parser) parseTuple() *cst.Node {
	tuple := cst.NewNode(cst.TupleExpr, p.bump()) // '('
	elems := cst.NewNode(cst.TupleElementList)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		elem := cst.NewNode(cst.TupleElement)
		if p.at(token.Ident) && p.peekAhead(1).Kind == token.Colon {
			elem.Append(p.bump())
			elem.Append(p.bump())
		}
		if expr := p.parseSequenceExpr(exprOpts{allowTrailing: true}); expr != nil {
			elem.Append(expr)
		}
		if len(elem.Children) > 0 {
			elems.Append(elem)
		}
		if comma := p.eat(token.Comma); comma != nil {
			elems.Append(comma)
			continue
		}
		break
	}
	tuple.Append(elems)
	if rparen := p.expect(token.RParen, diag.SynUnclosedParen, "missing ')'"); rparen != nil {
		tuple.Append(rparen)
	}
	return tuple
}

// parseCollection parses an array or dictionary literal. The shape is
// decided by whether a top-level ':' follows the first element.
func (p *parser) parseCollection() *cst.Node {
	lbracket := p.bump()

	// пустой словарь `[:]`
	if p.at(token.Colon) && p.peekAhead(1).Kind == token.RBracket {
		dict := cst.NewNode(cst.DictionaryExpr, lbracket, p.bump(), cst.NewNode(cst.ElementList))
		dict.Append(p.bump())
		return dict
	}

	elems := p.parseElementList(token.RBracket)
	kind := cst.ArrayExpr
	if first := elems.FindChild(cst.Element); first != nil && first.FindToken(token.Colon) != nil {
		kind = cst.DictionaryExpr
	}
	lit := cst.NewNode(kind, lbracket, elems)
	if rbracket := p.expect(token.RBracket, diag.SynUnclosedBracket, "missing ']'"); rbracket != nil {
		lit.Append(rbracket)
	}
	return lit
}

// parseElementList parses comma-separated elements up to the closing
// token. Dictionary entries keep key, colon and value in one Element.
func (p *parser) parseElementList(closing token.Kind) *cst.Node {
	elems := cst.NewNode(cst.ElementList)
	for !p.at(closing) && !p.at(token.EOF) {
		elem := cst.NewNode(cst.Element)
		if expr := p.parseSequenceExpr(exprOpts{allowTrailing: true, stopAtColon: true}); expr != nil {
			elem.Append(expr)
		}
		if colon := p.eat(token.Colon); colon != nil {
			elem.Append(colon)
			if value := p.parseSequenceExpr(exprOpts{allowTrailing: true, stopAtColon: true}); value != nil {
				elem.Append(value)
			}
		}
		if len(elem.Children) > 0 {
			elems.Append(elem)
		}
		if comma := p.eat(token.Comma); comma != nil {
			elems.Append(comma)
			continue
		}
		break
	}
	return elems
}

// parseClosure parses `{ ... }` with an optional `params in` signature.
// The signature is detected by a same-line `in` at bracket depth zero.
func (p *parser) parseClosure() *cst.Node {
	closure := cst.NewNode(cst.ClosureExpr, p.bump()) // '{'

	if p.hasClosureSignature() {
		sig := cst.NewNode(cst.ClosureSignature)
		for !p.at(token.KwIn) && !p.at(token.EOF) {
			if p.at(token.LParen) || p.at(token.LBracket) {
				p.parseBalanced(sig)
				continue
			}
			sig.Append(p.bump())
		}
		if inTok := p.eat(token.KwIn); inTok != nil {
			sig.Append(inTok)
		}
		closure.Append(sig)
	}

	closure.Append(p.parseStmtListUntil(token.RBrace))
	if rbrace := p.expect(token.RBrace, diag.SynUnclosedBrace, "closure missing '}'"); rbrace != nil {
		closure.Append(rbrace)
	}
	return closure
}

// hasClosureSignature looks ahead for `in` at depth zero before the line
// ends or a nested brace opens.
func (p *parser) hasClosureSignature() bool {
	depth := 0
	for i := 0; ; i++ {
		tok := p.peekAhead(i)
		if i > 0 && tok.StartsLine() {
			return false
		}
		switch tok.Kind {
		case token.KwIn:
			if depth == 0 {
				return true
			}
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			depth--
		case token.LBrace, token.RBrace, token.EOF:
			return false
		}
	}
}
