package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle renders the white-on-black title block used at the top of a
// view
type ViewTitle struct {
	text string
}

// NewViewTitle creates a new view title with the given text
func NewViewTitle(text string) *ViewTitle {
	return &ViewTitle{text: text}
}

// View renders the title
func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1)

	return titleStyle.Render("\n" + v.text + "\n")
}

// ViewWithAlignment renders the title left-aligned in a padded row
func (v *ViewTitle) ViewWithAlignment(width int) string {
	if v.text == "" {
		return ""
	}

	alignStyle := lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		PaddingRight(2)

	return alignStyle.Render(v.View())
}

// ViewTitleHeight returns the height of view titles
func ViewTitleHeight() int {
	return 3 // text plus one line above and below
}
