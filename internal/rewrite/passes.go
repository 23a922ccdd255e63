package rewrite

import (
	"strings"

	"swiftfmt/internal/cst"
	"swiftfmt/internal/indent"
	"swiftfmt/internal/token"
)

// IndentPass wraps the indentation engine as a pipeline stage.
type IndentPass struct {
	Options indent.Options
}

func (IndentPass) Name() string { return "indent" }

func (p IndentPass) Rewrite(root *cst.Node) *cst.Node {
	return indent.Format(root, p.Options)
}

// TrailingWhitespacePass drops whitespace that ends a line: space runs
// sitting right before a line break, and the final space run of the last
// token on a line. Separator spaces between two tokens on one line are
// not line-ending and stay untouched.
type TrailingWhitespacePass struct{}

func (TrailingWhitespacePass) Name() string { return "trailing-whitespace" }

func (TrailingWhitespacePass) Rewrite(root *cst.Node) *cst.Node {
	out := root.Clone()
	toks := out.Tokens(nil)
	for i, tok := range toks {
		tok.Leading = stripBeforeNewline(tok.Leading)
		if endsLine(toks, i) {
			tok.Trailing = stripTrailingRun(tok.Trailing)
		}
	}
	return out
}

// endsLine reports whether nothing else follows the token on its
// physical line. Trailing trivia never holds a line break, so the next
// token's leading starts with one exactly when the line ends here.
func endsLine(toks []*token.Token, i int) bool {
	if i+1 >= len(toks) {
		return true
	}
	next := toks[i+1]
	if len(next.Leading) == 0 {
		return next.Kind == token.EOF
	}
	return next.Leading[0].Kind == token.TriviaNewline
}

func stripBeforeNewline(pieces []token.Trivia) []token.Trivia {
	out := pieces[:0]
	for i, p := range pieces {
		if p.Kind == token.TriviaSpace && i+1 < len(pieces) && pieces[i+1].Kind == token.TriviaNewline {
			continue
		}
		out = append(out, p)
	}
	return out
}

func stripTrailingRun(pieces []token.Trivia) []token.Trivia {
	for len(pieces) > 0 && pieces[len(pieces)-1].Kind == token.TriviaSpace {
		pieces = pieces[:len(pieces)-1]
	}
	return pieces
}

// CollapseBlankLinesPass caps runs of consecutive blank lines at Max.
// Zero Max means one blank line.
type CollapseBlankLinesPass struct {
	Max int
}

func (CollapseBlankLinesPass) Name() string { return "collapse-blank-lines" }

func (p CollapseBlankLinesPass) Rewrite(root *cst.Node) *cst.Node {
	maxBlank := p.Max
	if maxBlank <= 0 {
		maxBlank = 1
	}
	out := root.Clone()
	for _, tok := range out.Tokens(nil) {
		tok.Leading = capBlankRuns(tok.Leading, maxBlank)
	}
	return out
}

// capBlankRuns merges adjacent newline pieces and caps each merged run.
// A run of k line breaks holds k-1 blank lines.
func capBlankRuns(pieces []token.Trivia, maxBlank int) []token.Trivia {
	out := make([]token.Trivia, 0, len(pieces))
	for i := 0; i < len(pieces); i++ {
		p := pieces[i]
		if p.Kind != token.TriviaNewline {
			out = append(out, p)
			continue
		}
		breaks := strings.Count(p.Text, "\n")
		for i+1 < len(pieces) && pieces[i+1].Kind == token.TriviaNewline {
			i++
			breaks += strings.Count(pieces[i].Text, "\n")
		}
		if breaks > maxBlank+1 {
			breaks = maxBlank + 1
		}
		p.Text = strings.Repeat("\n", breaks)
		out = append(out, p)
	}
	return out
}
