package token

import (
	"strings"

	"swiftfmt/internal/source"
)

// TriviaKind classifies one piece of whitespace or comment text attached to
// a token.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is a run of non-semantic text. Space runs and newline runs are each
// coalesced into a single piece; comments are one piece per comment.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the piece is a line or block comment.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment
}

// Newlines returns the number of line breaks inside the piece. Only newline
// pieces and block comments can contain them.
func (t Trivia) Newlines() int {
	if t.Kind == TriviaSpace || t.Kind == TriviaLineComment {
		return 0
	}
	return strings.Count(t.Text, "\n")
}

// SpacePiece builds a synthetic whitespace piece. Synthetic pieces carry an
// empty span: they do not correspond to any input bytes.
func SpacePiece(text string) Trivia {
	return Trivia{Kind: TriviaSpace, Text: text}
}

// HasNewline reports whether the trivia sequence contains a line break.
func HasNewline(pieces []Trivia) bool {
	for _, p := range pieces {
		if p.Newlines() > 0 {
			return true
		}
	}
	return false
}

// Render concatenates the literal text of the trivia sequence.
func Render(pieces []Trivia, sb *strings.Builder) {
	for _, p := range pieces {
		sb.WriteString(p.Text)
	}
}
