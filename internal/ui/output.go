package ui

import "fmt"

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
	SymbolWarning = "⚠"
	SymbolArrow   = "→"
)

// Success returns a message prefixed with a checkmark.
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Successf is Success with formatting.
func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Warning returns a message prefixed with the warning symbol.
func Warning(msg string) string {
	return fmt.Sprintf("%s %s", SymbolWarning, msg)
}

// Warningf is Warning with formatting.
func Warningf(format string, args ...interface{}) string {
	return Warning(fmt.Sprintf(format, args...))
}

// Header returns a styled section header
func Header(msg string) string {
	return Bold.Render(msg)
}

// Date returns an accent-styled resolved date.
func Date(s string) string {
	return Accent.Render(s)
}

// Hint returns muted hint text
func Hint(msg string) string {
	return Muted.Render(msg)
}

// Resolved renders "phrase → date" for batch output. Unrecognized phrases
// are shown muted with no arrow.
func Resolved(phrase, result string, recognized bool) string {
	if !recognized {
		return Hint(phrase)
	}
	return fmt.Sprintf("%s %s %s", phrase, Muted.Render(SymbolArrow), Date(result))
}

// Count returns a count badge such as "(3 records)".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("(%d %s)", n, singular)
	}
	return fmt.Sprintf("(%d %s)", n, plural)
}
