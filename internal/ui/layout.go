package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, status banner, the radar/charts body,
// and the bottom status bar.
func ComposeLayout(menuBar, banner, radarPanel, chartsPanel, statusBar string) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, radarPanel, chartsPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, banner, body, statusBar)
}

// RenderPanel wraps content with the standard rounded border.
func RenderPanel(width, height int, content string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
