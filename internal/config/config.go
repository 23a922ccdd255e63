// Package config loads formatter settings from swiftfmt.toml. The file
// is discovered by walking up from the formatted path, so a repository
// root config governs every file beneath it.
package config

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"swiftfmt/internal/indent"
)

// FileName is the manifest the formatter looks for.
const FileName = "swiftfmt.toml"

// Config mirrors the [indent] and [whitespace] sections of swiftfmt.toml.
type Config struct {
	Indent     IndentConfig     `toml:"indent"`
	Whitespace WhitespaceConfig `toml:"whitespace"`
}

// IndentConfig configures the indentation engine.
type IndentConfig struct {
	// Style is "space" or "tab".
	Style string `toml:"style"`
	// Width is the spaces per level; ignored for tabs.
	Width int `toml:"width"`

	SwitchCases           bool `toml:"switch_cases"`
	ConditionalRegions    bool `toml:"conditional_regions"`
	SkipCommentedOutLines bool `toml:"skip_commented_out_lines"`
	EditorCompat          bool `toml:"editor_compat"`
}

// WhitespaceConfig configures the cleanup passes that run after
// indentation.
type WhitespaceConfig struct {
	StripTrailing  bool `toml:"strip_trailing"`
	MaxBlankLines  int  `toml:"max_blank_lines"`
	CollapseBlanks bool `toml:"collapse_blanks"`
}

// Default returns the stock configuration: four spaces, indented
// conditional regions, trailing whitespace stripped.
func Default() Config {
	return Config{
		Indent: IndentConfig{
			Style:              "space",
			Width:              4,
			ConditionalRegions: true,
		},
		Whitespace: WhitespaceConfig{
			StripTrailing:  true,
			CollapseBlanks: true,
			MaxBlankLines:  1,
		},
	}
}

// Load reads a config file, layering it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Indent.Style {
	case "space", "tab":
	default:
		return fmt.Errorf("invalid indent.style %q: want \"space\" or \"tab\"", c.Indent.Style)
	}
	if c.Indent.Style == "space" && c.Indent.Width <= 0 {
		return fmt.Errorf("invalid indent.width %d: must be positive", c.Indent.Width)
	}
	if c.Whitespace.MaxBlankLines < 0 {
		return fmt.Errorf("invalid whitespace.max_blank_lines %d", c.Whitespace.MaxBlankLines)
	}
	return nil
}

// Discover walks up from startDir looking for swiftfmt.toml. Returns the
// defaults when no manifest exists.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := findManifest(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func findManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// IndentOptions converts the config into engine options.
func (c Config) IndentOptions() indent.Options {
	unit := indent.Spaces(c.Indent.Width)
	if c.Indent.Style == "tab" {
		unit = indent.Tabs()
	}
	return indent.Options{
		Unit:                     unit,
		IndentSwitchCases:        c.Indent.SwitchCases,
		IndentConditionalRegions: c.Indent.ConditionalRegions,
		SkipCommentedOutLines:    c.Indent.SkipCommentedOutLines,
		EditorCompat:             c.Indent.EditorCompat,
	}
}

// Fingerprint returns a digest of every setting that affects output,
// used to key the result cache.
func (c Config) Fingerprint() [sha256.Size]byte {
	return sha256.Sum256([]byte(fmt.Sprintf("%+v", c)))
}

// DefaultManifest is the swiftfmt.toml written by `swiftfmt init`.
const DefaultManifest = `[indent]
style = "space"
width = 4
switch_cases = false
conditional_regions = true
skip_commented_out_lines = false
editor_compat = false

[whitespace]
strip_trailing = true
collapse_blanks = true
max_blank_lines = 1
`

// WriteDefault creates a default manifest at dir, refusing to clobber an
// existing one.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := os.WriteFile(path, []byte(DefaultManifest), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
