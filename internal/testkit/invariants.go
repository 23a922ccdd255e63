// Package testkit holds cross-package invariant checks shared by tests
// and the fuzzing harness.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"swiftfmt/internal/indent"
	"swiftfmt/internal/parser"
	"swiftfmt/internal/source"
	"swiftfmt/internal/token"
)

// CheckRoundTrip verifies the lossless-tree invariant: parsing and
// rendering reproduces the input byte for byte. The input must already
// be LF-normalized and BOM-free, matching what the file set loads.
func CheckRoundTrip(src []byte) error {
	root := parser.Parse("roundtrip.swift", src, parser.Options{})
	if got := root.Render(); got != string(src) {
		return fmt.Errorf("round trip diverged:\n input: %q\noutput: %q", src, got)
	}
	return nil
}

// CheckIndentIdempotent verifies that formatting a formatted tree is a
// no-op.
func CheckIndentIdempotent(src []byte, opts indent.Options) error {
	first := parser.Parse("idem.swift", src, parser.Options{})
	once := indent.Format(first, opts).Render()

	second := parser.Parse("idem.swift", []byte(once), parser.Options{})
	twice := indent.Format(second, opts).Render()

	if once != twice {
		return fmt.Errorf("indent not idempotent:\n once: %q\ntwice: %q", once, twice)
	}
	return nil
}

// CheckSpanInvariants runs span sanity checks over a token stream:
// spans stay inside the file, never overlap, and never run backwards.
func CheckSpanInvariants(toks []*token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("token %d span runs backwards: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d overlaps previous token: start=%d prevEnd=%d", i, sp.Start, prevEnd)
		}
		prevEnd = sp.End
	}
	return nil
}
