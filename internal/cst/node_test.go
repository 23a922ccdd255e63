package cst

import (
	"testing"

	"swiftfmt/internal/source"
	"swiftfmt/internal/token"
)

func tok(kind token.Kind, text string) *Node {
	return NewToken(&token.Token{Kind: kind, Text: text})
}

func TestRender(t *testing.T) {
	lparen := &token.Token{Kind: token.LParen, Text: "("}
	arg := &token.Token{
		Kind:    token.Ident,
		Text:    "x",
		Leading: []token.Trivia{{Kind: token.TriviaNewline, Text: "\n"}, {Kind: token.TriviaSpace, Text: "    "}},
	}
	rparen := &token.Token{
		Kind:    token.RParen,
		Text:    ")",
		Leading: []token.Trivia{{Kind: token.TriviaNewline, Text: "\n"}},
	}
	call := NewNode(FunctionCallExpr,
		tok(token.Ident, "f"),
		NewToken(lparen),
		NewNode(ArgumentList, NewNode(Argument, NewToken(arg))),
		NewToken(rparen),
	)
	if got := call.Render(); got != "f(\n    x\n)" {
		t.Fatalf("render: %q", got)
	}
}

func TestFirstLastToken(t *testing.T) {
	n := NewNode(SequenceExpr,
		NewNode(StmtList), // empty composite must be skipped
		tok(token.IntLit, "1"),
		tok(token.Operator, "+"),
		tok(token.IntLit, "2"),
	)
	if first := n.FirstToken(); first == nil || first.Text != "1" {
		t.Fatalf("first: %+v", first)
	}
	if last := n.LastToken(); last == nil || last.Text != "2" {
		t.Fatalf("last: %+v", last)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewNode(ExprStmt, NewToken(&token.Token{
		Kind:    token.Ident,
		Text:    "x",
		Span:    source.Span{Start: 10, End: 11},
		Leading: []token.Trivia{{Kind: token.TriviaSpace, Text: "  "}},
	}))
	clone := orig.Clone()

	if !Equal(orig, clone) {
		t.Fatalf("clone must be structurally equal")
	}
	clone.Children[0].Tok.Leading[0].Text = "        "
	if orig.Children[0].Tok.Leading[0].Text != "  " {
		t.Fatalf("clone aliases the original trivia")
	}
	if clone.Children[0].Tok == orig.Children[0].Tok {
		t.Fatalf("clone aliases the original token")
	}
}

func TestFindHelpers(t *testing.T) {
	guard := NewNode(GuardStmt,
		tok(token.KwGuard, "guard"),
		NewNode(ConditionList),
		tok(token.KwElse, "else"),
		NewNode(CodeBlock),
	)
	if c := guard.FindChild(ConditionList); c == nil {
		t.Fatalf("FindChild failed")
	}
	if e := guard.FindToken(token.KwElse); e == nil || e.Tok.Text != "else" {
		t.Fatalf("FindToken failed")
	}
	if guard.FindToken(token.KwWhere) != nil {
		t.Fatalf("FindToken must return nil when absent")
	}
}
