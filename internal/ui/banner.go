package ui

import (
	"github.com/lbenitezpreving/f1-weather-radar/internal/session"
)

// RenderBanner renders the connection status banner spanning the window.
func RenderBanner(width int, state session.State) string {
	var text string
	var style = StyleBannerOffline

	switch state {
	case session.Connected:
		text = "SYSTEM ONLINE - RECEIVING TELEMETRY"
		style = StyleBannerOnline
	case session.Connecting:
		text = "CONNECTING TO TRACK SERVERS..."
		style = StyleBannerConnecting
	default:
		text = "OFFLINE - WAITING FOR SESSION"
	}

	pad := (width - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	line := ""
	for i := 0; i < pad; i++ {
		line += " "
	}
	return style.Width(width).Render(line + text)
}
