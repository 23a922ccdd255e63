package lexer

import (
	"unicode"
	"unicode/utf8"

	"swiftfmt/internal/token"
)

// scanIdentOrKeyword consumes an identifier and classifies keyword
// spellings. Non-ASCII identifier characters are accepted the way Swift
// accepts them: any letter rune continues an identifier.
func (lx *Lexer) scanIdentOrKeyword() *token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			r, size := utf8.DecodeRune(lx.cursor.File.Content[lx.cursor.Off:])
			if r == utf8.RuneError && size <= 1 {
				break
			}
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			for range size {
				lx.cursor.Bump()
			}
			continue
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Text(sp)
	return &token.Token{
		Kind: token.LookupKeyword(text),
		Span: sp,
		Text: text,
	}
}
