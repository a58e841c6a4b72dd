package ui

import (
	"strings"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
)

// Title renders a report heading.
func Title(s string) string {
	return BoldCyan(s)
}

// Rule returns a horizontal rule of n stars.
func Rule(n int) string {
	return Cyan(strings.Repeat("*", n))
}

// Mark returns a pass/fail icon for check output.
func Mark(ok bool) string {
	if ok {
		return Green("✓")
	}
	return Red("✗")
}
