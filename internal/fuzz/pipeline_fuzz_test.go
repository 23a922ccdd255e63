package fuzztests

import (
	"testing"

	"swiftfmt/internal/indent"
	"swiftfmt/internal/parser"
	"swiftfmt/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func addCorpusSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("let x = 1\n"))
	f.Add([]byte("func greet(name: String) -> String {\nreturn name\n}\n"))
	f.Add([]byte("a\n.b {\n111\n}\n.c()"))
	f.Add([]byte("switch x {\ncase 1:\na()\ndefault:\nb()\n}"))
	f.Add([]byte("#if DEBUG\nlog()\n#else\nnoop()\n#endif\n"))
	f.Add([]byte("guard let x = y else { return }\n"))
	f.Add([]byte("let d = [\"a\": 1]\nlet t = (1, 2)\nlet e = [:]\n"))
	f.Add([]byte("\"unterminated\nlet x = /* unclosed"))
	f.Add([]byte("} ) ] = = = @ # $\n"))
	f.Add([]byte("func f() { { { { } } } }\n"))
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// FuzzRoundTrip checks the lossless-tree invariant on arbitrary bytes:
// every input, however broken, renders back exactly.
func FuzzRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)
		// парсер видит нормализованный текст; сравниваем после той же
		// нормализации
		root := parser.Parse("fuzz.swift", input, parser.Options{})
		reparsed := parser.Parse("fuzz.swift", []byte(root.Render()), parser.Options{})
		if root.Render() != reparsed.Render() {
			t.Fatalf("render not stable for %q", input)
		}
	})
}

// FuzzIndentIdempotent checks that formatting is a fixpoint after one
// application, for every configuration axis.
func FuzzIndentIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)
		for _, opts := range []indent.Options{
			indent.Default(),
			{Unit: indent.Tabs(), IndentConditionalRegions: true},
			{Unit: indent.Spaces(2), IndentSwitchCases: true},
			{Unit: indent.Spaces(4), SkipCommentedOutLines: true, EditorCompat: true},
		} {
			if err := testkit.CheckIndentIdempotent(input, opts); err != nil {
				t.Fatal(err)
			}
		}
	})
}
