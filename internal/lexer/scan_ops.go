package lexer

import (
	"swiftfmt/internal/diag"
	"swiftfmt/internal/token"
)

// scanDirective consumes a #-directive (#if, #elseif, #else, #endif).
// Unknown #-spellings become Operator tokens so the stream stays lossless.
func (lx *Lexer) scanDirective() *token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Text(sp)
	kind := token.LookupDirective(text)
	if kind == token.Invalid {
		kind = token.Operator
	}
	return &token.Token{Kind: kind, Span: sp, Text: text}
}

// scanOperatorOrPunct consumes punctuation or an operator-character run.
// Структурная пунктуация и токены, значимые для отступов ('=', '?', ':',
// '.', '->', '<', '>'), получают собственные Kind; остальные слипаются в
// Operator.
func (lx *Lexer) scanOperatorOrPunct() *token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	mk := func(kind token.Kind) *token.Token {
		sp := lx.cursor.SpanFrom(start)
		return &token.Token{Kind: kind, Span: sp, Text: lx.cursor.Text(sp)}
	}

	switch b {
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case ',':
		return mk(token.Comma)
	case ':':
		return mk(token.Colon)
	case ';':
		return mk(token.Semicolon)
	case '.':
		return mk(token.Dot)
	case '@':
		return mk(token.At)
	}

	if isOperatorByte(b) {
		// '->' прежде всего: это структурный токен сигнатур
		if b == '-' && lx.cursor.Eat('>') {
			return mk(token.Arrow)
		}
		for !lx.cursor.EOF() && isOperatorByte(lx.cursor.Peek()) {
			// не съедать '-' если дальше '>': оставим '->' отдельным токеном
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '-' && b1 == '>' {
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		text := lx.cursor.Text(sp)
		kind := token.Operator
		switch text {
		case "=":
			kind = token.Assign
		case "?":
			kind = token.Question
		case "!":
			kind = token.Bang
		case "<":
			kind = token.Lt
		case ">":
			kind = token.Gt
		}
		return &token.Token{Kind: kind, Span: sp, Text: text}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return &token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(sp)}
}
