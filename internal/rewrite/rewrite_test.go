package rewrite

import (
	"testing"

	"swiftfmt/internal/indent"
	"swiftfmt/internal/parser"
)

func run(t *testing.T, p *Pipeline, src string) string {
	t.Helper()
	root := parser.Parse("test.swift", []byte(src), parser.Options{})
	return p.Run(root).Render()
}

func TestPipelineOrder(t *testing.T) {
	p := NewPipeline(
		IndentPass{Options: indent.Default()},
		TrailingWhitespacePass{},
		CollapseBlankLinesPass{Max: 1},
	)
	want := []string{"indent", "trailing-whitespace", "collapse-blank-lines"}
	got := p.Names()
	if len(got) != len(want) {
		t.Fatalf("names: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pass %d: want %s, got %s", i, want[i], got[i])
		}
	}
}

func TestIndentPass(t *testing.T) {
	p := NewPipeline(IndentPass{Options: indent.Default()})
	if got := run(t, p, "if x {\na()\n}"); got != "if x {\n    a()\n}" {
		t.Fatalf("got %q", got)
	}
}

func TestTrailingWhitespace(t *testing.T) {
	p := NewPipeline(TrailingWhitespacePass{})
	if got := run(t, p, "a()   \nb()\n"); got != "a()\nb()\n" {
		t.Fatalf("got %q", got)
	}
}

// Пробелы-разделители внутри строки — не хвостовые; проход трогает
// только конец физической строки.
func TestTrailingWhitespaceKeepsSeparators(t *testing.T) {
	p := NewPipeline(TrailingWhitespacePass{})
	src := "if x {\n    a()\n}\n"
	if got := run(t, p, src); got != src {
		t.Fatalf("want %q, got %q", src, got)
	}
	if got := run(t, p, "func f() -> Int   \n"); got != "func f() -> Int\n" {
		t.Fatalf("got %q", got)
	}
}

func TestCollapseBlankLines(t *testing.T) {
	p := NewPipeline(CollapseBlankLinesPass{Max: 1})
	if got := run(t, p, "a()\n\n\n\n\nb()\n"); got != "a()\n\nb()\n" {
		t.Fatalf("got %q", got)
	}
	// одна пустая строка остаётся как есть
	if got := run(t, p, "a()\n\nb()\n"); got != "a()\n\nb()\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFullPipelineIdempotent(t *testing.T) {
	p := NewPipeline(
		IndentPass{Options: indent.Default()},
		TrailingWhitespacePass{},
		CollapseBlankLinesPass{Max: 1},
	)
	src := "func f() {   \nif x {\n\n\n\ng()\n}\n}\n"
	once := run(t, p, src)
	twice := run(t, p, once)
	if once != twice {
		t.Fatalf("not idempotent:\n once: %q\ntwice: %q", once, twice)
	}
}
