package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swiftfmt/internal/cst"
	"swiftfmt/internal/diag"
	"swiftfmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.swift",
	Short: "Parse a Swift source file",
	Long:  `Parse dumps the lossless syntax tree of one source file, for debugging the parser and the indentation engine`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	root, fileSet, bag, err := driver.ParseTree(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if bag.HasErrors() {
		colored, colorErr := resolveColor(cmd, os.Stderr)
		if colorErr != nil {
			return colorErr
		}
		bag.Sort()
		diag.Pretty(os.Stderr, bag, fileSet, diag.PrettyOpts{Color: colored, Context: true})
	}

	cst.Dump(os.Stdout, root)
	return nil
}
