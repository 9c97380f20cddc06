package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with live stats.
func RenderStatusBar(width, samples, particles int, sweepDeg, windSpeed float64, rain string) string {
	info := fmt.Sprintf(" Samples: %d  Particles: %d  Wind: %.1f m/s  Rain: %s  Sweep: %ddeg",
		samples, particles, windSpeed, rain, int(sweepDeg))

	content := StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - StyleStatusBar.GetHorizontalPadding() - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
