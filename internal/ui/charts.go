package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lbenitezpreving/f1-weather-radar/internal/history"
	"gonum.org/v1/gonum/floats"
)

type chartSeries struct {
	pts   []history.Point
	style lipgloss.Style
	fill  lipgloss.Style
	label string
	area  bool // fill under the curve down to the chart floor
}

// RenderTrendCharts renders the temperature and humidity history charts
// stacked vertically, redrawn on every sample arrival. The temperature
// fill is anchored at the observed series minimum, humidity at zero.
func RenderTrendCharts(log *history.Log, width, height int) string {
	topH := height / 2
	bottomH := height - topH

	tempFloor := math.Inf(1)
	if v, ok := log.Min(history.TrackTemp); ok && v < tempFloor {
		tempFloor = v
	}
	if v, ok := log.Min(history.AirTemp); ok && v < tempFloor {
		tempFloor = v
	}

	temp := renderChart("TEMPERATURE EVOLUTION", width, topH, tempFloor, []chartSeries{
		{pts: log.Series(history.TrackTemp), style: StyleChartTrack, fill: StyleChartFill, label: "Track", area: true},
		{pts: log.Series(history.AirTemp), style: StyleChartAir, label: "Air"},
	})
	humid := renderChart("HUMIDITY EVOLUTION", width, bottomH, 0, []chartSeries{
		{pts: log.Series(history.Humidity), style: StyleChartHumid, fill: StyleChartFillHm, label: "Humidity", area: true},
	})

	return lipgloss.JoinVertical(lipgloss.Left, temp, humid)
}

func renderChart(title string, width, height int, floor float64, series []chartSeries) string {
	if width < 16 || height < 4 {
		return ""
	}

	legend := ""
	for _, s := range series {
		legend += "  " + s.style.Render(s.label)
	}
	titleLine := StyleChartTitle.Render(" "+title) + legend

	var all []float64
	var times []float64
	for _, s := range series {
		for _, p := range s.pts {
			all = append(all, p.V)
			times = append(times, p.T)
		}
	}
	if len(all) == 0 {
		return placeholder(width, height, titleLine)
	}

	const axisW = 7
	plotW := width - axisW
	plotH := height - 1
	if plotW < 4 || plotH < 2 {
		return placeholder(width, height, titleLine)
	}

	vMin, vMax := floor, floats.Max(all)
	if math.IsInf(vMin, 1) {
		vMin = floats.Min(all)
	}
	if vMax-vMin < 1e-9 {
		vMin, vMax = vMin-1, vMax+1
	}
	tMin, tMax := floats.Min(times), floats.Max(times)
	tSpan := tMax - tMin
	if tSpan < 1e-9 {
		tSpan = 1
	}

	// Styled cell grid, fills drawn before curves so curves stay on top.
	grid := make([][]string, plotH)
	for r := range grid {
		grid[r] = make([]string, plotW)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	rowFor := func(v float64) int {
		r := int(math.Round((vMax - v) / (vMax - vMin) * float64(plotH-1)))
		if r < 0 {
			r = 0
		}
		if r >= plotH {
			r = plotH - 1
		}
		return r
	}
	colFor := func(t float64) int {
		c := int(math.Round((t - tMin) / tSpan * float64(plotW-1)))
		if c < 0 {
			c = 0
		}
		if c >= plotW {
			c = plotW - 1
		}
		return c
	}

	for _, s := range series {
		if !s.area {
			continue
		}
		for _, p := range s.pts {
			col := colFor(p.T)
			for r := rowFor(p.V) + 1; r < plotH; r++ {
				grid[r][col] = s.fill.Render("░")
			}
		}
	}
	for _, s := range series {
		for _, p := range s.pts {
			grid[rowFor(p.V)][colFor(p.T)] = s.style.Render("•")
		}
	}

	lines := make([]string, 0, height)
	lines = append(lines, titleLine)
	for r := 0; r < plotH; r++ {
		axis := strings.Repeat(" ", axisW-1)
		switch r {
		case 0:
			axis = fmt.Sprintf("%6.1f", vMax)
		case plotH - 1:
			axis = fmt.Sprintf("%6.1f", vMin)
		}
		lines = append(lines, StyleChartAxis.Render(axis)+" "+strings.Join(grid[r], ""))
	}

	return strings.Join(lines, "\n")
}

func placeholder(width, height int, titleLine string) string {
	msg := "AWAITING TELEMETRY DATA"
	pad := (width - len(msg)) / 2
	if pad < 0 {
		pad = 0
	}

	lines := make([]string, 0, height)
	lines = append(lines, titleLine)
	for r := 1; r < height; r++ {
		if r == height/2 {
			lines = append(lines, strings.Repeat(" ", pad)+StylePlaceholder.Render(msg))
		} else {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}
