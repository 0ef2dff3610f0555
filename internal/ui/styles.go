// Package ui holds terminal styling and rendering helpers for the CLI.
package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "#A78BFA"

// Color palette
// - Default: primary text
// - Accent (soft purple unless configured): dates, headers
// - Muted (gray): passthrough phrases, hints
// Success/warning use unicode symbols rather than colors.
var (
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	Bold = lipgloss.NewStyle().Bold(true)

	accentColor = defaultAccent
)

// ConfigureTheme applies a user accent color. An empty value restores the
// default accent; invalid or disabling values ("none", "off", "default")
// render accents without color.
func ConfigureTheme(accent string) {
	if strings.TrimSpace(accent) == "" {
		accent = defaultAccent
	}
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle()
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

func normalizeAccentColor(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return "", false
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", false
		}
		return "#" + hex, true
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return strconv.Itoa(n), true
}
