package indent

import (
	"swiftfmt/internal/token"
)

// rewriteToken rewrites a token's leading trivia so every line break it
// owns is followed by exactly level × unit of whitespace. Trailing
// trivia, token text and the line breaks themselves are never touched.
// Blank lines lose stray whitespace; with SkipCommentedOutLines, lines
// whose first content is a comment keep their original prefix.
func (e *engine) rewriteToken(tok *token.Token) {
	pieces := tok.Leading
	if len(pieces) == 0 {
		return
	}

	out := make([]token.Trivia, 0, len(pieces)+1)
	for i := 0; i < len(pieces); i++ {
		p := pieces[i]
		if p.Kind != token.TriviaNewline {
			out = append(out, p)
			continue
		}
		out = append(out, p)

		// существующий отступ после перевода строки
		var old *token.Trivia
		if i+1 < len(pieces) && pieces[i+1].Kind == token.TriviaSpace {
			old = &pieces[i+1]
			i++
		}
		var next *token.Trivia
		if i+1 < len(pieces) {
			next = &pieces[i+1]
		}

		switch {
		case next != nil && next.Kind == token.TriviaNewline:
			// пустая строка: хвостовые пробелы отбрасываем
		case next != nil && next.IsComment() && e.opts.SkipCommentedOutLines:
			if old != nil {
				out = append(out, *old)
			}
		default:
			if s := e.opts.Unit.Text(e.level); s != "" {
				out = append(out, token.SpacePiece(s))
			}
		}
	}
	tok.Leading = out
}
