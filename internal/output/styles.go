package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: app names, module names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (app names, module names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (file descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// stdoutIsTerminal is resolved once; styling is disabled when stdout is a
// pipe or file so generated summaries stay grep-clean.
var stdoutIsTerminal = term.IsTerminal(int(os.Stdout.Fd()))

// Styled applies style to s only when stdout is a terminal.
func Styled(style lipgloss.Style, s string) string {
	if !stdoutIsTerminal {
		return s
	}
	return style.Render(s)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := Styled(lipgloss.NewStyle().Foreground(ColorGreenCheck), "✔")
	return check + " " + msg
}
