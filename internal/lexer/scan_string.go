package lexer

import (
	"swiftfmt/internal/diag"
	"swiftfmt/internal/token"
)

// scanString consumes a string literal: "..." with escapes and \(...)
// interpolation, or a multiline """...""" block. Interpolation contents are
// kept inside the literal token; the formatter treats the whole literal as
// opaque text.
func (lx *Lexer) scanString() *token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	// multiline """ ... """
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '"' && b1 == '"' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if lx.cursor.Eat('"') {
				if lx.cursor.Eat('"') && lx.cursor.Eat('"') {
					sp := lx.cursor.SpanFrom(start)
					return &token.Token{Kind: token.StringLit, Span: sp, Text: lx.cursor.Text(sp)}
				}
				continue
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated multiline string")
		return &token.Token{Kind: token.StringLit, Span: sp, Text: lx.cursor.Text(sp)}
	}

	depth := 0 // глубина \( ... ) интерполяции
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.Eat('(') {
				depth++
			} else {
				lx.cursor.Bump() // escaped char
			}
		case b == ')' && depth > 0:
			depth--
			lx.cursor.Bump()
		case b == '"' && depth == 0:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return &token.Token{Kind: token.StringLit, Span: sp, Text: lx.cursor.Text(sp)}
		case b == '\n' && depth == 0:
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return &token.Token{Kind: token.StringLit, Span: sp, Text: lx.cursor.Text(sp)}
		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return &token.Token{Kind: token.StringLit, Span: sp, Text: lx.cursor.Text(sp)}
}
