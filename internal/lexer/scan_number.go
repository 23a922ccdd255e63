package lexer

import (
	"swiftfmt/internal/token"
)

// scanNumber consumes an integer or floating-point literal. Underscore
// separators and hex/binary/octal prefixes are accepted; the formatter
// never interprets the value, so the scanner only needs the extent.
func (lx *Lexer) scanNumber() *token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'b' || b1 == 'o') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if isHex(b) || b == '_' {
				lx.cursor.Bump()
				continue
			}
			break
		}
		sp := lx.cursor.SpanFrom(start)
		return &token.Token{Kind: kind, Span: sp, Text: lx.cursor.Text(sp)}
	}

	digits := func() {
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if isDec(b) || b == '_' {
				lx.cursor.Bump()
				continue
			}
			break
		}
	}

	digits()

	// дробная часть: точка только если за ней цифра, иначе это member access
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		digits()
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			kind = token.FloatLit
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			digits()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return &token.Token{Kind: kind, Span: sp, Text: lx.cursor.Text(sp)}
}
