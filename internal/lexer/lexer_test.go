package lexer

import (
	"strings"
	"testing"

	"swiftfmt/internal/diag"
	"swiftfmt/internal/source"
	"swiftfmt/internal/token"
)

func scanAll(t *testing.T, src string) []*token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("lex.swift", []byte(src))
	return Scan(fs.Get(id), Options{})
}

func renderTokens(toks []*token.Token) string {
	var sb strings.Builder
	for _, tok := range toks {
		token.Render(tok.Leading, &sb)
		sb.WriteString(tok.Text)
		token.Render(tok.Trailing, &sb)
	}
	return sb.String()
}

func kindsOf(toks []*token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestScanKinds(t *testing.T) {
	toks := scanAll(t, "guard let x = f(a) else { return }\n")
	want := []token.Kind{
		token.KwGuard, token.KwLet, token.Ident, token.Assign, token.Ident,
		token.LParen, token.Ident, token.RParen, token.KwElse, token.LBrace,
		token.KwReturn, token.RBrace, token.EOF,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("token count: got %d want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestScanRoundTrip(t *testing.T) {
	samples := []string{
		"let x = 1\n",
		"// comment\nfunc f() {\n\treturn  // done\n}\n",
		"a\n.b()\n.c()\n",
		"/* block\n   comment */ let y = \"str \\(x + 1)\"\n",
		"#if DEBUG\nprint(1)\n#else\nprint(2)\n#endif\n",
		"let s = \"\"\"\nmulti\nline\n\"\"\"\n",
		"x += 0xFF_00 + 1_000.5e-2\n",
		"",
		"   \n\n  ",
	}
	for _, src := range samples {
		toks := scanAll(t, src)
		if got := renderTokens(toks); got != src {
			t.Errorf("round trip failed:\nsrc: %q\ngot: %q", src, got)
		}
	}
}

func TestTrailingAttachment(t *testing.T) {
	toks := scanAll(t, "let x = 1  // note\nreturn\n")
	// "1" должен держать " // note" как trailing, а return — newline в leading
	var one, ret *token.Token
	for _, tok := range toks {
		switch {
		case tok.Text == "1":
			one = tok
		case tok.Kind == token.KwReturn:
			ret = tok
		}
	}
	if one == nil || ret == nil {
		t.Fatalf("tokens not found")
	}
	if len(one.Trailing) != 2 || !one.Trailing[1].IsComment() {
		t.Fatalf("trailing of '1': %+v", one.Trailing)
	}
	if !ret.StartsLine() {
		t.Fatalf("'return' must start a line; leading: %+v", ret.Leading)
	}
	if token.HasNewline(one.Trailing) {
		t.Fatalf("trailing must never contain a newline")
	}
}

func TestScanDirectives(t *testing.T) {
	toks := scanAll(t, "#if os(macOS)\n#elseif DEBUG\n#else\n#endif\n")
	got := kindsOf(toks)
	want := []token.Kind{
		token.PoundIf, token.Ident, token.LParen, token.Ident, token.RParen,
		token.PoundElseif, token.Ident, token.PoundElse, token.PoundEndif, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestUnterminatedStringReported(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.swift", []byte("let s = \"oops\n"))
	bag := diag.NewBag(10)
	toks := Scan(fs.Get(id), Options{Reporter: &diag.BagReporter{Bag: bag}})
	if !bag.HasErrors() {
		t.Fatalf("expected a lex error")
	}
	if got := renderTokens(toks); got != "let s = \"oops\n" {
		t.Fatalf("lossless even on errors, got %q", got)
	}
}

func TestOperatorSplit(t *testing.T) {
	toks := scanAll(t, "a ?? b ?. c -> d == e\n")
	var kinds []token.Kind
	for _, tok := range toks {
		if tok.Kind != token.Ident && tok.Kind != token.EOF {
			kinds = append(kinds, tok.Kind)
		}
	}
	want := []token.Kind{token.Operator, token.Question, token.Dot, token.Arrow, token.Operator}
	if len(kinds) != len(want) {
		t.Fatalf("got %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("op %d: got %v want %v", i, kinds[i], want[i])
		}
	}
}
