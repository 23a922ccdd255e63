package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swiftfmt/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the swiftfmt result cache",
	Long:  "Remove every cached formatting result. The cache is rebuilt lazily on the next run.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache("swiftfmt")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stdout, "cache is already empty")
			return nil
		}
		return fmt.Errorf("failed to drop cache: %w", err)
	}
	fmt.Fprintln(os.Stdout, "cache removed")
	return nil
}
