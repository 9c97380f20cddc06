package ui

import "github.com/charmbracelet/lipgloss"

// Palette: radar keeps the classic phosphor green, charts and status use
// the dashboard colors of the telemetry suite.
var (
	ColorBright   = lipgloss.Color("#00FF41")
	ColorGreen    = lipgloss.Color("#00CC33")
	ColorMidGreen = lipgloss.Color("#008F11")
	ColorDimGreen = lipgloss.Color("#004A0A")

	ColorRainLight    = lipgloss.Color("#00FF00")
	ColorRainModerate = lipgloss.Color("#FFFF00")
	ColorWind         = lipgloss.Color("#4ECDC4")

	ColorTrackTemp = lipgloss.Color("#FF6B6B")
	ColorAirTemp   = lipgloss.Color("#4ECDC4")
	ColorHumidity  = lipgloss.Color("#3498DB")

	ColorOnline     = lipgloss.Color("#238636")
	ColorConnecting = lipgloss.Color("#9E6A03")
	ColorOffline    = lipgloss.Color("#DA3633")

	ColorText    = lipgloss.Color("#C9D1D9")
	ColorTextDim = lipgloss.Color("#8B949E")
)

var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleBannerOnline = lipgloss.NewStyle().
				Background(ColorOnline).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	StyleBannerConnecting = lipgloss.NewStyle().
				Background(ColorConnecting).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	StyleBannerOffline = lipgloss.NewStyle().
				Background(ColorOffline).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#00AA22"))

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleRadarCenter = lipgloss.NewStyle().Foreground(ColorBright).Bold(true)
	StyleRadarRing   = lipgloss.NewStyle().Foreground(ColorMidGreen)
	StyleRadarDot    = lipgloss.NewStyle().Foreground(ColorDimGreen)
	StyleRadarLabel  = lipgloss.NewStyle().Foreground(ColorTextDim)

	StyleRainLight    = lipgloss.NewStyle().Foreground(ColorRainLight)
	StyleRainModerate = lipgloss.NewStyle().Foreground(ColorRainModerate)
	StyleWindArrow    = lipgloss.NewStyle().Foreground(ColorWind).Bold(true)

	StyleStatText    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	StyleStatDim     = lipgloss.NewStyle().Foreground(ColorTextDim)
	StyleRainOn      = lipgloss.NewStyle().Foreground(ColorHumidity).Bold(true)
	StyleRainOff     = lipgloss.NewStyle().Foreground(ColorTextDim).Bold(true)

	StyleChartTitle  = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleChartAxis   = lipgloss.NewStyle().Foreground(ColorTextDim)
	StyleChartTrack  = lipgloss.NewStyle().Foreground(ColorTrackTemp)
	StyleChartAir    = lipgloss.NewStyle().Foreground(ColorAirTemp)
	StyleChartHumid  = lipgloss.NewStyle().Foreground(ColorHumidity)
	StyleChartFill   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A2D2D"))
	StyleChartFillHm = lipgloss.NewStyle().Foreground(lipgloss.Color("#1C3D56"))
	StylePlaceholder = lipgloss.NewStyle().Foreground(lipgloss.Color("#30363D")).Bold(true)
)
