package indent

import "strings"

// Unit is the whitespace block multiplied by nesting depth to form a
// line's leading indentation.
type Unit struct {
	UseTabs bool
	Width   int
}

// Spaces returns a unit of n spaces per level.
func Spaces(n int) Unit {
	return Unit{Width: n}
}

// Tabs returns a unit of one tab per level.
func Tabs() Unit {
	return Unit{UseTabs: true, Width: 1}
}

// Text renders the indentation for a nesting level.
func (u Unit) Text(level int) string {
	if level <= 0 {
		return ""
	}
	if u.UseTabs {
		return strings.Repeat("\t", level)
	}
	return strings.Repeat(" ", u.Width*level)
}

// Options configures one engine run. The zero value is not useful; start
// from Default.
type Options struct {
	Unit Unit

	// IndentSwitchCases adds a level for case labels inside a switch, so
	// case bodies end up two levels in.
	IndentSwitchCases bool

	// IndentConditionalRegions indents the contents of #if regions. When
	// off, region contents align with the surrounding code.
	IndentConditionalRegions bool

	// SkipCommentedOutLines preserves the original leading whitespace of
	// lines that start with a comment marker.
	SkipCommentedOutLines bool

	// EditorCompat mirrors the editor convention: a line-starting closing
	// parenthesis of a parameter list and a line-starting trailing-closure
	// brace keep the inner level instead of the outer one.
	EditorCompat bool
}

// Default returns the stock configuration: four-space unit, indented
// conditional regions, case labels flush with the switch keyword.
func Default() Options {
	return Options{
		Unit:                     Spaces(4),
		IndentConditionalRegions: true,
	}
}
