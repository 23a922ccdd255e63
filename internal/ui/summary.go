// Package ui renders human-facing status lines and run summaries for
// the CLI. It only builds strings; writing them is the caller's job.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	plainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// RunStats accumulates per-file outcomes of a formatting run.
type RunStats struct {
	Total     int
	Changed   int
	Failed    int
	CacheHits int
}

// ResultLine renders one "  <status> <path>" row. The path is truncated
// to fit width columns.
func ResultLine(status, path string, width int, colored bool) string {
	nameWidth := width - 15
	if nameWidth < 20 {
		nameWidth = 20
	}
	label := fmt.Sprintf("%12s", status)
	if colored {
		label = styleStatus(status).Render(label)
	}
	return fmt.Sprintf("  %s %s", label, truncate(path, nameWidth))
}

// Summary renders the closing line of a run, e.g.
//
//	3 files, 1 reformatted, 1 error
func Summary(stats RunStats, colored bool) string {
	parts := []string{fmt.Sprintf("%d %s", stats.Total, plural(stats.Total, "file", "files"))}
	if stats.Changed > 0 {
		parts = append(parts, fmt.Sprintf("%d reformatted", stats.Changed))
	} else {
		parts = append(parts, "nothing to change")
	}
	if stats.Failed > 0 {
		s := fmt.Sprintf("%d %s", stats.Failed, plural(stats.Failed, "error", "errors"))
		if colored {
			s = errorStyle.Render(s)
		}
		parts = append(parts, s)
	}
	line := strings.Join(parts, ", ")
	if colored {
		line = boldStyle.Render(line)
	}
	return line
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "reformatted", "needs format":
		return changedStyle
	case "ok", "cached":
		return okStyle
	case "error":
		return errorStyle
	default:
		return plainStyle
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
