package token

import (
	"swiftfmt/internal/source"
)

// Token is a single source token with its location and attached annotations.
// Leading holds everything between the previous line's end and the token;
// Trailing holds same-line trivia after the token (never a line break).
// Concatenating Leading + Text + Trailing over all tokens of a file
// reproduces the input bytes exactly.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// StartsLine reports whether the token is the first thing on its physical
// line, i.e. its leading trivia contains a line break. The very first token
// of a file is handled by the caller (it has no preceding newline).
func (t *Token) StartsLine() bool {
	return HasNewline(t.Leading)
}

// IsLiteral reports whether the token is a literal.
func (t *Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwNil, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsOperatorLike reports whether the token can appear in binary-operator
// position inside an expression sequence.
func (t *Token) IsOperatorLike() bool {
	switch t.Kind {
	case Operator, Assign, Lt, Gt, KwAs, KwIs:
		return true
	default:
		return false
	}
}
