// Package styles provides shared lipgloss styles for terminal output.
//
// Styling is opt-in: the command layer calls [SetEnabled] after checking
// whether stdout is a terminal, so piped output stays plain text.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used for status rendering.
var (
	// Success is used for installed/healthy states (green).
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for failure states (red).
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Warn is used for attention states (yellow).
	Warn lipgloss.TerminalColor = lipgloss.Color("214")

	// Muted is used for absent/inactive entries (gray).
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(Success)
	errorStyle   = lipgloss.NewStyle().Foreground(Error)
	warnStyle    = lipgloss.NewStyle().Foreground(Warn)
	mutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// enabled tracks whether styled rendering is active.
var enabled bool

// SetEnabled turns styled rendering on or off.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether styled rendering is active.
func Enabled() bool {
	return enabled
}

func render(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}

// Pass renders s in the success color.
func Pass(s string) string { return render(successStyle, s) }

// Fail renders s in the error color.
func Fail(s string) string { return render(errorStyle, s) }

// Attention renders s in the warn color.
func Attention(s string) string { return render(warnStyle, s) }

// Dim renders s in the muted color.
func Dim(s string) string { return render(mutedStyle, s) }

// Bold renders s bold.
func Bold(s string) string { return render(boldStyle, s) }
