package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"guard":  KwGuard,
		"where":  KwWhere,
		"let":    KwLet,
		"foobar": Ident,
		"Guard":  Ident,
	}
	for text, want := range cases {
		if got := LookupKeyword(text); got != want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestLookupDirective(t *testing.T) {
	if got := LookupDirective("#elseif"); got != PoundElseif {
		t.Fatalf("got %v", got)
	}
	if got := LookupDirective("#warning"); got != Invalid {
		t.Fatalf("got %v", got)
	}
}

func TestStartsLine(t *testing.T) {
	tok := &Token{Kind: Ident, Text: "x"}
	if tok.StartsLine() {
		t.Fatalf("no leading trivia must not start a line")
	}

	tok.Leading = []Trivia{{Kind: TriviaSpace, Text: "  "}}
	if tok.StartsLine() {
		t.Fatalf("space-only leading must not start a line")
	}

	tok.Leading = []Trivia{{Kind: TriviaNewline, Text: "\n"}, {Kind: TriviaSpace, Text: "    "}}
	if !tok.StartsLine() {
		t.Fatalf("newline in leading must start a line")
	}
}

func TestTriviaNewlines(t *testing.T) {
	if n := (Trivia{Kind: TriviaNewline, Text: "\n\n\n"}).Newlines(); n != 3 {
		t.Fatalf("got %d", n)
	}
	if n := (Trivia{Kind: TriviaBlockComment, Text: "/* a\nb */"}).Newlines(); n != 1 {
		t.Fatalf("got %d", n)
	}
	if n := (Trivia{Kind: TriviaLineComment, Text: "// x"}).Newlines(); n != 0 {
		t.Fatalf("got %d", n)
	}
}

func TestKindIsClosing(t *testing.T) {
	for _, k := range []Kind{RParen, RBrace, RBracket} {
		if !k.IsClosing() {
			t.Errorf("%v must be closing", k)
		}
	}
	for _, k := range []Kind{LBrace, Dot, Ident, PoundEndif} {
		if k.IsClosing() {
			t.Errorf("%v must not be closing", k)
		}
	}
}
