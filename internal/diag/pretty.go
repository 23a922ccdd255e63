package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"swiftfmt/internal/source"
)

// PrettyOpts controls human-readable rendering.
type PrettyOpts struct {
	Color   bool
	Context bool // печатать строку-контекст с подчёркиванием
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	posColor  = color.New(color.Bold)
)

// Pretty renders diagnostics as:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	<context line>
//	        ^~~~
//
// Callers are expected to bag.Sort() beforehand.
func Pretty(w io.Writer, bag *Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeOne(w, d, fs, opts)
	}
}

func writeOne(w io.Writer, d Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	pos := fmt.Sprintf("%s:%d:%d:", f.Path, start.Line, start.Col)
	sev := d.Severity.String()
	if opts.Color {
		pos = posColor.Sprint(pos)
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", pos, sev, d.Code, d.Message)

	if !opts.Context {
		return
	}
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "%s\n", line)

	// Caret column math uses display width, so tabs and wide runes in the
	// prefix keep the underline on target.
	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(expandTabs(prefix)))
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = severityColor(d.Severity).Sprint(marker)
	}
	fmt.Fprintf(w, "%s%s\n", pad, marker)
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return errColor
	case SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
