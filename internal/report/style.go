package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	styleDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleFatal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true)
)

// styleLevelCell colours an already padded level cell by severity.
// Unrecognised levels are left plain.
func styleLevelCell(level, cell string) string {
	switch strings.ToUpper(level) {
	case "DEBUG", "TRACE":
		return styleDebug.Render(cell)
	case "INFO":
		return styleInfo.Render(cell)
	case "WARN", "WARNING":
		return styleWarn.Render(cell)
	case "ERROR", "ERR":
		return styleError.Render(cell)
	case "FATAL", "CRITICAL", "CRIT":
		return styleFatal.Render(cell)
	default:
		return cell
	}
}

// forceColorProfile enables ANSI colours even when stdout is not a terminal.
func forceColorProfile() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}
