package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"swiftfmt/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a default swiftfmt.toml",
	Long: `Init writes a swiftfmt.toml with the stock settings into the given
directory (the current directory when omitted). The manifest governs
every .swift file beneath it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(_ *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	path, err := config.WriteDefault(target)
	if err != nil {
		return err
	}

	rel := path
	if wd, wdErr := os.Getwd(); wdErr == nil {
		if r, relErr := filepath.Rel(wd, path); relErr == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "created %s\n", rel)
	return nil
}
