package radar

import (
	"math"
	"math/rand"

	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
)

// IntensityClass is the rendered precipitation intensity of a particle.
// The classification is cosmetic texture drawn fresh on every render, not
// a physical quantity.
type IntensityClass int

const (
	IntensityLight IntensityClass = iota
	IntensityModerate
)

// ClassifyIntensity draws an intensity class (~70% light, 30% moderate).
func ClassifyIntensity(rng *rand.Rand) IntensityClass {
	if rng.Float64() < config.LightRainShare {
		return IntensityLight
	}
	return IntensityModerate
}

// screenRad converts a compass bearing in degrees (0=north, clockwise) to
// the math angle used for screen projection, where y grows downward.
func screenRad(deg float64) float64 {
	return (deg - 90) * math.Pi / 180
}

// ProjectParticle converts a particle's polar position into screen
// coordinates around (cx, cy) for the given radius.
func ProjectParticle(p Particle, cx, cy, radius float64) (x, y float64) {
	rad := screenRad(p.Angle)
	x = cx + p.Dist*radius*math.Cos(rad)
	y = cy + p.Dist*radius*math.Sin(rad)
	return x, y
}

// ProjectWindVector computes the wind arrow endpoint. Length scales
// linearly with speed (full scale at WindFullScale) and clamps at
// WindMaxFraction of the radius. The direction is inverted (+180°) so the
// arrow points toward where the wind blows from, per meteorological
// convention.
func ProjectWindVector(speed, directionDeg, cx, cy, radius float64) (x, y float64) {
	length := math.Min(radius*config.WindMaxFraction, radius*speed/config.WindFullScale)
	rad := screenRad(directionDeg) + math.Pi
	x = cx + length*math.Cos(rad)
	y = cy + length*math.Sin(rad)
	return x, y
}

// ProjectSweepRay computes the endpoint of the sweep ray from center at the
// full radius.
func ProjectSweepRay(sweepDeg, cx, cy, radius float64) (x, y float64) {
	rad := screenRad(sweepDeg)
	x = cx + radius*math.Cos(rad)
	y = cy + radius*math.Sin(rad)
	return x, y
}

// cellOffset is the aspect-corrected offset from the radar center to a
// terminal cell, in circle space where a column and a row step are equal.
func cellOffset(col, row, centerX, centerY int) (dx, dy float64) {
	dx = float64(col - centerX)
	dy = float64(row-centerY) / config.AspectRatio
	return dx, dy
}

// CellDistance is the circle-space distance from the radar center to a cell.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx, dy := cellOffset(col, row, centerX, centerY)
	return math.Hypot(dx, dy)
}

// CellAngle is the bearing from the radar center to a cell, radians in
// [0, 2π), 0 = north, clockwise.
func CellAngle(col, row, centerX, centerY int) float64 {
	dx, dy := cellOffset(col, row, centerX, centerY)
	return NormalizeAngle(math.Atan2(dx, -dy))
}

// RingChar picks the ring character that follows the circle's curvature at
// a given bearing.
func RingChar(angle float64) rune {
	switch int(math.Round(NormalizeAngle(angle)/(math.Pi/4))) % 8 {
	case 0, 4: // north, south
		return '-'
	case 1, 5: // NE, SW
		return '/'
	case 2, 6: // east, west
		return '|'
	default: // SE, NW
		return '\\'
	}
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// NormalizeDeg wraps an angle in degrees to [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
