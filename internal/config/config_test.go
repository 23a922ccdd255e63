package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	opts := cfg.IndentOptions()
	if opts.Unit.UseTabs || opts.Unit.Width != 4 {
		t.Fatalf("unit: %+v", opts.Unit)
	}
	if !opts.IndentConditionalRegions {
		t.Fatalf("conditional regions must indent by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	manifest := "[indent]\nstyle = \"tab\"\nswitch_cases = true\n"
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts := cfg.IndentOptions()
	if !opts.Unit.UseTabs {
		t.Fatalf("style = tab not applied")
	}
	if !opts.IndentSwitchCases {
		t.Fatalf("switch_cases not applied")
	}
	// незатронутые секции остаются на дефолтах
	if !cfg.Whitespace.StripTrailing {
		t.Fatalf("defaults lost on partial manifest")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("[indent]\ntabstop = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("unknown key must be rejected")
	}
}

func TestLoadRejectsBadStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("[indent]\nstyle = \"smart\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("invalid style must be rejected")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, FileName)
	if err := os.WriteFile(manifest, []byte("[indent]\nwidth = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, found, err := Discover(nested)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if found != manifest {
		t.Fatalf("found %q, want %q", found, manifest)
	}
	if cfg.Indent.Width != 2 {
		t.Fatalf("width: %d", cfg.Indent.Width)
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	cfg, found, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if found != "" {
		t.Fatalf("unexpected manifest %q", found)
	}
	if cfg != Default() {
		t.Fatalf("want defaults, got %+v", cfg)
	}
}

func TestFingerprintTracksSettings(t *testing.T) {
	a, b := Default(), Default()
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("equal configs must share a fingerprint")
	}
	b.Indent.Width = 2
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("differing configs must not share a fingerprint")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefault(dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("written manifest does not load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("written manifest diverges from Default(): %+v", cfg)
	}
	if _, err := WriteDefault(dir); err == nil {
		t.Fatalf("must refuse to clobber an existing manifest")
	}
}
