package output

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// styled renders s with style when color is on. The result bypasses the
// report's escaping, so s must not come from a process.
func styled(style lipgloss.Style, s string, colorEnabled bool) ansiString {
	if !colorEnabled {
		return ansiString(s)
	}
	return ansiString(style.Render(s))
}
