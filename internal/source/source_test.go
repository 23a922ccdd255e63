package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	in := []byte("a\r\nb\rc\r\n")
	out, changed := normalizeCRLF(in)
	if !changed {
		t.Fatalf("expected changes")
	}
	if string(out) != "a\nb\rc\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	in = []byte("plain\n")
	out, changed = normalizeCRLF(in)
	if changed {
		t.Fatalf("unexpected changes for %q", in)
	}
	if string(out) != "plain\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Fatalf("BOM not stripped: %q had=%v", out, had)
	}
	out, had = removeBOM([]byte("no bom"))
	if had || string(out) != "no bom" {
		t.Fatalf("unexpected strip: %q had=%v", out, had)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.swift", []byte("let x = 1\nlet y = 2\n"))

	start, end := fs.Resolve(Span{File: id, Start: 10, End: 13})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start: got %+v", start)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Fatalf("end: got %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.swift", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Fatalf("line 1: %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Fatalf("line 2: %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("line 3: %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("line 4: %q", got)
	}
}

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("crlf.swift", []byte("a\r\nb\r\n"))
	if got := string(fs.Get(id).Content); got != "a\nb\n" {
		t.Fatalf("content not normalized: %q", got)
	}
}
