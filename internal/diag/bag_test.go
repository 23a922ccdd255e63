package diag

import (
	"strings"
	"testing"

	"swiftfmt/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevWarning}) {
		t.Fatalf("first add rejected")
	}
	if !b.Add(Diagnostic{Severity: SevError}) {
		t.Fatalf("second add rejected")
	}
	if b.Add(Diagnostic{Severity: SevError}) {
		t.Fatalf("add over limit accepted")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d", b.Len())
	}
	if !b.HasErrors() {
		t.Fatalf("expected errors")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Primary: source.Span{Start: 20}, Code: SynUnexpectedToken})
	b.Add(Diagnostic{Primary: source.Span{Start: 5}, Code: LexUnknownChar})
	b.Sort()
	if b.Items()[0].Primary.Start != 5 {
		t.Fatalf("not sorted by offset: %+v", b.Items())
	}
}

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.swift", []byte("let x == 1\n"))

	b := NewBag(10)
	b.Add(Diagnostic{
		Severity: SevError,
		Code:     SynUnexpectedToken,
		Primary:  source.Span{File: id, Start: 6, End: 8},
		Message:  "unexpected '=='",
	})

	var sb strings.Builder
	Pretty(&sb, b, fs, PrettyOpts{Context: true})
	out := sb.String()

	if !strings.Contains(out, "main.swift:1:7: ERROR SYN2001: unexpected '=='") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "let x == 1") {
		t.Fatalf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "      ^~") {
		t.Fatalf("caret missing:\n%s", out)
	}
}
