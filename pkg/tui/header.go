package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `▌ ▌▛▀▘▛▖▌▀▛▘▜▘▞▀▖
▚▗▘▙▄ ▌▝▌ ▌ ▐ ▌ ▌
 ▘ ▙▄▖▘ ▘ ▘ ▀▘▝▀▚`

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoRendered := logoStyle.Render(logo)
	logoLines := strings.Split(logo, "\n")
	contentWidth := width - 2

	// Too narrow for the logo: title only
	if contentWidth < lipgloss.Width(logoLines[0])+lipgloss.Width(title)+1 {
		return headerPadding.Render(titleStyle.Render(title))
	}

	if title == "" {
		rightAlign := lipgloss.NewStyle().
			Width(contentWidth).
			Align(lipgloss.Right)
		return headerPadding.Render(rightAlign.Render(logoRendered))
	}

	// Align the title with the last logo line
	titleRendered := titleStyle.Render(strings.Repeat("\n", len(logoLines)-1) + title)
	gap := contentWidth - lipgloss.Width(title) - lipgloss.Width(logoLines[0])

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	)
	return headerPadding.Render(headerContent)
}

// headerHeight is the number of lines renderHeader produces
func headerHeight() int {
	return strings.Count(logo, "\n") + 1
}

func repeatStr(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}
