package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, source string, demo bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	mode := "LIVE"
	if demo {
		mode = "DEMO"
	}
	right := StyleMenuLabel.Render(fmt.Sprintf("%s  Source: %s ", mode, source))

	left := StyleMenuKey.Render(title) + menu

	// The bar style pads horizontally inside its width; fill only what the
	// padding leaves, or the line wraps.
	gap := width - StyleMenuBar.GetHorizontalPadding() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
