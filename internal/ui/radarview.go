package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
	"github.com/lbenitezpreving/f1-weather-radar/internal/radar"
)

// RadarGeometry returns the center cell and radius (in column units) for a
// radar drawn into a width x height cell grid.
func RadarGeometry(width, height int) (cx, cy int, radius float64) {
	cx = width / 2
	cy = height / 2
	r := math.Min(float64(cx-1), float64(cy-1)/config.AspectRatio)
	if r < 3 {
		r = 3
	}
	return cx, cy, r
}

type labelCell struct {
	ch    byte
	style lipgloss.Style
}

// RenderRadar draws the complete radar display: range rings, crosshair,
// sweep with trailing glow, rain blobs, wind arrow, and stat overlays.
func RenderRadar(width, height int, frame radar.Frame, sweep *radar.Sweep) string {
	if width < 10 || height < 5 {
		return ""
	}

	cx, cy, radius := RadarGeometry(width, height)

	ringRadii := make([]float64, config.RingCount)
	for i := range ringRadii {
		ringRadii[i] = radius * float64(i+1) / float64(config.RingCount)
	}

	labels := buildOverlay(width, height, cx, cy, radius, frame)
	arrow := buildWindArrow(width, cx, cy, frame)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			key := row*width + col
			if lc, ok := labels[key]; ok {
				sb.WriteString(lc.style.Render(string(lc.ch)))
				continue
			}
			sb.WriteString(renderCell(col, row, width, cx, cy, radius, ringRadii, frame, sweep, arrow))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// buildOverlay places the stat lines and ring distance labels.
func buildOverlay(width, height, cx, cy int, radius float64, frame radar.Frame) map[int]labelCell {
	labels := make(map[int]labelCell)

	put := func(row, col int, text string, style lipgloss.Style) {
		if row < 0 || row >= height {
			return
		}
		for i := 0; i < len(text); i++ {
			c := col + i
			if c < 0 || c >= width {
				continue
			}
			labels[row*width+c] = labelCell{ch: text[i], style: style}
		}
	}

	put(0, 1, fmt.Sprintf("WIND: %.1f m/s", frame.WindSpeed), StyleStatText)
	put(1, 1, fmt.Sprintf("DIR: %.0f deg", frame.WindDirection), StyleStatDim)

	rainStyle := StyleRainOff
	rainText := "RAIN: DRY"
	if frame.Raining {
		rainStyle = StyleRainOn
		rainText = "RAIN: RAINING"
	}
	put(height-1, 1, rainText, rainStyle)

	// Ring distance labels, as on the source radar: 15/30/45 km.
	for i := 1; i < config.RingCount; i++ {
		frac := float64(i) / float64(config.RingCount)
		col := cx + int(radius*frac) + 1
		put(cy-1, col, fmt.Sprintf("%d km", i*config.RingStepKM), StyleRadarLabel)
	}

	return labels
}

// buildWindArrow rasterizes the wind vector into arrow cells.
func buildWindArrow(width, cx, cy int, frame radar.Frame) map[int]byte {
	arrow := make(map[int]byte)
	if !frame.HasWind {
		return arrow
	}

	dx := frame.WindX - float64(cx)
	dy := frame.WindY - float64(cy)
	length := math.Hypot(dx, dy)
	if length < 1 {
		return arrow
	}

	bearing := math.Atan2(dx, -dy) // 0=north, clockwise
	shaft := lineChar(bearing)

	steps := int(length*2) + 1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := float64(cx) + t*dx
		y := float64(cy) + t*dy
		col := int(math.Round(x))
		row := cy + int(math.Round((y-float64(cy))*config.AspectRatio))
		arrow[row*width+col] = shaft
	}

	tipCol := int(math.Round(frame.WindX))
	tipRow := cy + int(math.Round((frame.WindY-float64(cy))*config.AspectRatio))
	arrow[tipRow*width+tipCol] = arrowHead(bearing)

	return arrow
}

// lineChar picks a shaft character by line bearing (radians, 0=north).
func lineChar(bearing float64) byte {
	sector := int(math.Round(radar.NormalizeAngle(bearing)/(math.Pi/4))) % 8
	switch sector {
	case 0, 4:
		return '|'
	case 1, 5:
		return '\\'
	case 2, 6:
		return '-'
	default:
		return '/'
	}
}

// arrowHead picks a tip character by bearing quadrant.
func arrowHead(bearing float64) byte {
	sector := int(math.Round(radar.NormalizeAngle(bearing)/(math.Pi/2))) % 4
	switch sector {
	case 0:
		return '^'
	case 1:
		return '>'
	case 2:
		return 'v'
	default:
		return '<'
	}
}

func renderCell(col, row, width, cx, cy int, radius float64, ringRadii []float64, frame radar.Frame, sweep *radar.Sweep, arrow map[int]byte) string {
	dist := radar.CellDistance(col, row, cx, cy)
	angle := radar.CellAngle(col, row, cx, cy)

	if col == cx && row == cy {
		return StyleRadarCenter.Render("+")
	}

	if dist > radius+0.5 {
		return " "
	}

	// Wind arrow overlays everything inside the circle except the center.
	if ch, ok := arrow[row*width+col]; ok {
		return StyleWindArrow.Render(string(ch))
	}

	// Rain blobs
	x := float64(col)
	y := float64(cy) + float64(row-cy)/config.AspectRatio
	for _, p := range frame.Particles {
		ddx := x - p.X
		ddy := y - p.Y
		if ddx*ddx+ddy*ddy <= p.Size*p.Size {
			return renderBlobCell(p)
		}
	}

	// Sweep ray
	if angleDiff(angle, sweep.Radians()) < 0.05 {
		return lipgloss.NewStyle().Foreground(ColorBright).Render(string(lineChar(sweep.Radians())))
	}

	// Crosshairs
	if col == cx {
		return renderSweepChar('|', sweep, angle)
	}
	if row == cy {
		return renderSweepChar('-', sweep, angle)
	}

	// Range rings
	for _, ringR := range ringRadii {
		if math.Abs(dist-ringR) < 0.8 {
			return renderSweepChar(byte(radar.RingChar(angle)), sweep, angle)
		}
	}

	return renderInteriorCell(sweep, angle)
}

func renderBlobCell(p radar.ProjectedParticle) string {
	ch := "▒"
	style := StyleRainLight
	if p.Class == radar.IntensityModerate {
		ch = "▓"
		style = StyleRainModerate
	}
	if p.Life < 0.25 {
		ch = "░"
	}
	return style.Render(ch)
}

func renderSweepChar(ch byte, sweep *radar.Sweep, angle float64) string {
	intensity := sweep.Intensity(angle)
	color := sweepColor(intensity)
	if color == "" {
		return StyleRadarRing.Render(string(ch))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(ch))
}

func renderInteriorCell(sweep *radar.Sweep, angle float64) string {
	intensity := sweep.Intensity(angle)
	color := sweepColor(intensity)
	if color == "" {
		return StyleRadarDot.Render(".")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(".")
}

func sweepColor(intensity float64) string {
	if intensity <= 0 {
		return ""
	}
	if intensity > 0.8 {
		return "#00FF41"
	}
	if intensity > 0.5 {
		return "#00CC33"
	}
	if intensity > 0.3 {
		return "#00AA22"
	}
	return "#005511"
}

func angleDiff(a, b float64) float64 {
	d := math.Abs(radar.NormalizeAngle(a) - radar.NormalizeAngle(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
