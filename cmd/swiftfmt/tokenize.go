package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swiftfmt/internal/diag"
	"swiftfmt/internal/driver"
	"swiftfmt/internal/source"
	"swiftfmt/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.swift",
	Short: "Tokenize a Swift source file",
	Long:  `Tokenize dumps the token stream of one source file, trivia attached, for debugging the lexer`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	toks, fileSet, bag, err := driver.TokenizeFile(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if bag.HasErrors() {
		colored, colorErr := resolveColor(cmd, os.Stderr)
		if colorErr != nil {
			return colorErr
		}
		bag.Sort()
		diag.Pretty(os.Stderr, bag, fileSet, diag.PrettyOpts{Color: colored, Context: true})
	}

	switch format {
	case "pretty":
		return writeTokensPretty(toks, fileSet)
	case "json":
		return writeTokensJSON(toks, fileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeTokensPretty(toks []*token.Token, fs *source.FileSet) error {
	for _, tok := range toks {
		start, _ := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(os.Stdout, "%4d:%-3d %-14s %q\n", start.Line, start.Col, tok.Kind, tok.Text); err != nil {
			return err
		}
	}
	return nil
}

func writeTokensJSON(toks []*token.Token, fs *source.FileSet) error {
	type jsonToken struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
		Line uint32 `json:"line"`
		Col  uint32 `json:"col"`
	}
	payload := make([]jsonToken, 0, len(toks))
	for _, tok := range toks {
		start, _ := fs.Resolve(tok.Span)
		payload = append(payload, jsonToken{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: start.Line,
			Col:  start.Col,
		})
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
