package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 100

// maxMarkdownWidth keeps the calendar grid readable on very wide terminals.
const maxMarkdownWidth = 120

// DisplayContext holds terminal parameters for rendering.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext detects stdout's terminal width and TTY status.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	ctx := &DisplayContext{TermWidth: DefaultTermWidth, IsTTY: term.IsTerminal(fd)}
	if ctx.IsTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			ctx.TermWidth = w
		}
	}
	return ctx
}

// NewDisplayContextWithWidth creates a TTY DisplayContext with a fixed width (for testing).
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{TermWidth: width, IsTTY: true}
}

// MarkdownWidth returns the word-wrap width for rendered markdown.
func (d *DisplayContext) MarkdownWidth() int {
	w := d.TermWidth - MarkdownRenderMargin*2
	if w > maxMarkdownWidth {
		w = maxMarkdownWidth
	}
	if w <= 0 {
		return DefaultTermWidth
	}
	return w
}
