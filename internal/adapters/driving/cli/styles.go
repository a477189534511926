package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 80

// theme is the colour palette for human-readable output.
var theme = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Muted:     lipgloss.Color("#6C7086"), // Medium gray
	Warning:   lipgloss.Color("#F9E2AF"), // Yellow
}

// Styles used by the search and catalog commands.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	urlStyle    = lipgloss.NewStyle().Foreground(theme.Secondary)
	mutedStyle  = lipgloss.NewStyle().Foreground(theme.Muted)
	noticeStyle = lipgloss.NewStyle().Foreground(theme.Warning)
	indentStyle = lipgloss.NewStyle().PaddingLeft(6)
)

// terminalWidth returns the width of stdout, or defaultWidth when it is not
// a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
