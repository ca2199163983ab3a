package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for headings
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorPrimary  = "33"  // Blue for primary actions
	ColorStatusBg = "62"
	ColorStatusFg = "230"
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	// Navigation buttons of the walkthrough footer
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorPrimary)).
			Padding(0, 1)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim)).
				Background(lipgloss.Color(ColorSelected)).
				Padding(0, 1)

	FinishButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorSuccess)).
				Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)
)

// GetTabStyle returns the style of a category tab
func GetTabStyle(isActive bool) lipgloss.Style {
	if isActive {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive)).
			Padding(0, 2)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInactive)).
		Padding(0, 2)
}

// renderHeading renders a pane heading followed by a row of colons
// spanning the pane
func renderHeading(heading string, width int) string {
	colonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInactive))
	remaining := width - lipgloss.Width(heading) - 5
	if remaining < 0 {
		remaining = 0
	}
	return HeaderStyle.Render(heading) + " " + colonStyle.Render(repeatStr(":", remaining))
}
