package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type colorMode string

const (
	colorModeAuto colorMode = "auto"
	colorModeOn   colorMode = "on"
	colorModeOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on":
		return colorModeOn, nil
	case "off":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// useColorFor resolves the mode against a concrete stream: "auto" means
// color only when the stream is a terminal.
func useColorFor(mode colorMode, f *os.File) bool {
	switch mode {
	case colorModeOn:
		return true
	case colorModeOff:
		return false
	default:
		return isTerminal(f)
	}
}

// resolveColor reads the persistent --color flag and syncs the global
// fatih/color switch so version strings follow the same setting.
func resolveColor(cmd *cobra.Command, f *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	mode, err := readColorMode(value)
	if err != nil {
		return false, err
	}
	enabled := useColorFor(mode, f)
	color.NoColor = !enabled
	return enabled, nil
}
