package radar

import (
	"math"

	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
)

// Sweep is the rotating scan-line state. The angle advances by a fixed
// step per animation tick rather than by wall-clock time, so tick jitter
// never accumulates into drift.
type Sweep struct {
	angle float64 // degrees [0, 360), 0=north, clockwise
}

// NewSweep creates a sweep starting at 0 degrees (north).
func NewSweep() *Sweep {
	return &Sweep{}
}

// Advance rotates the sweep by one tick's step, wrapping at 360.
func (s *Sweep) Advance() {
	s.angle = math.Mod(s.angle+config.SweepStepDeg, 360)
}

// Degrees returns the current sweep angle in degrees.
func (s *Sweep) Degrees() float64 {
	return s.angle
}

// Radians returns the current sweep angle in radians, 0=north, clockwise.
func (s *Sweep) Radians() float64 {
	return s.angle * math.Pi / 180
}

// Intensity returns the glow intensity [0, 1] for a cell angle (radians,
// 0=north, clockwise). The sweep has a trailing glow of SweepTrailDeg
// degrees with linear falloff; cells outside the trail get 0.
func (s *Sweep) Intensity(cellAngle float64) float64 {
	diff := NormalizeAngle(s.Radians() - cellAngle)

	trailRad := config.SweepTrailDeg * math.Pi / 180
	if diff > trailRad {
		return 0
	}
	return 1 - diff/trailRad
}
