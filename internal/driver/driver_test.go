package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"swiftfmt/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.swift", "")
	a := writeFile(t, dir, "sub/a.swift", "")
	writeFile(t, dir, "notes.txt", "")

	files, err := CollectFiles([]string{dir, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files: %v", files)
	}
	// сортировка и дедупликация
	if files[0] != b || files[1] != a {
		t.Fatalf("order: %v", files)
	}
}

func TestFormatSource(t *testing.T) {
	out, bag := FormatSource("test.swift", []byte("if x {\na()\n}\n"), config.Default(), 0)
	if want := "if x {\n    a()\n}\n"; string(out) != want {
		t.Fatalf("want %q, got %q", want, out)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestFormatPathsRewrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.swift", "func f() {\ng()\n}\n")

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{
		Config: config.Default(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || !results[0].Changed || results[0].Err != nil {
		t.Fatalf("results: %+v", results)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "func f() {\n    g()\n}\n"; string(got) != want {
		t.Fatalf("file content: %q", got)
	}
}

func TestFormatPathsCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	src := "func f() {\ng()\n}\n"
	path := writeFile(t, dir, "main.swift", src)

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Config: config.Default(),
		Check:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Changed {
		t.Fatalf("change not detected")
	}
	got, _ := os.ReadFile(path)
	if string(got) != src {
		t.Fatalf("--check must not rewrite files")
	}
}

func TestFormatPathsAlreadyFormatted(t *testing.T) {
	dir := t.TempDir()
	src := "func f() {\n    g()\n}\n"
	writeFile(t, dir, "main.swift", src)

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Config: config.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Fatalf("formatted file reported as changed")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	key := cacheKey([]byte("content"), config.Default().Fingerprint())
	var out CachePayload
	if hit, err := cache.Get(key, &out); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	in := &CachePayload{Schema: cacheSchemaVersion, Formatted: []byte("formatted")}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}
	if hit, err := cache.Get(key, &out); err != nil || !hit {
		t.Fatalf("put then get: hit=%v err=%v", hit, err)
	}
	if !bytes.Equal(out.Formatted, in.Formatted) {
		t.Fatalf("payload: %q", out.Formatted)
	}
}

func TestCacheKeyDependsOnConfig(t *testing.T) {
	content := []byte("let x = 1\n")
	a := cacheKey(content, config.Default().Fingerprint())

	cfg := config.Default()
	cfg.Indent.Width = 2
	b := cacheKey(content, cfg.Fingerprint())
	if a == b {
		t.Fatalf("config change must change the cache key")
	}
}

func TestFormatPathsUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.swift", "if x {\na()\n}\n")
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := FormatOptions{Config: config.Default(), Cache: cache, Check: true}

	first, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first[0].Formatted, second[0].Formatted) {
		t.Fatalf("cached result diverges")
	}
	// попадание в кеш не создаёт диагностик
	if second[0].Bag != nil {
		t.Fatalf("cache hit should skip the pipeline")
	}
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.swift", "let x = 1\n")
	toks, _, bag, err := TokenizeFile(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %+v", bag.Items())
	}
	if len(toks) != 5 { // let x = 1 EOF
		t.Fatalf("tokens: %d", len(toks))
	}
}

func TestParseTree(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.swift", "let x = 1\n")
	root, _, _, err := ParseTree(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if root.Render() != "let x = 1\n" {
		t.Fatalf("render: %q", root.Render())
	}
}
