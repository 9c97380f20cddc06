package radar

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectWindVectorCalibration(t *testing.T) {
	// Full-scale wind clamps at 80% of the radius.
	x, y := ProjectWindVector(20, 0, 0, 0, 100)
	assert.InDelta(t, 80.0, math.Hypot(x, y), 1e-9)

	// Half scale is linear, under the clamp: 100 * 10/20 = 50.
	x, y = ProjectWindVector(10, 0, 0, 0, 100)
	assert.InDelta(t, 50.0, math.Hypot(x, y), 1e-9)

	// Extreme wind still clamps at 80%.
	x, y = ProjectWindVector(100, 0, 0, 0, 100)
	assert.InDelta(t, 80.0, math.Hypot(x, y), 1e-9)
}

func TestProjectWindVectorPointsUpwind(t *testing.T) {
	// Wind from the north (0 deg) draws the arrow toward the south,
	// i.e. positive y in screen coordinates.
	x, y := ProjectWindVector(10, 0, 0, 0, 100)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)

	// Wind from the east draws toward the west.
	x, y = ProjectWindVector(10, 90, 0, 0, 100)
	assert.InDelta(t, -50.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
}

func TestProjectSweepRayNorthReference(t *testing.T) {
	// Sweep angle 0 points north: straight up in screen coordinates.
	x, y := ProjectSweepRay(0, 0, 0, 100)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, -100.0, y, 1e-9)

	// 90 degrees points east.
	x, y = ProjectSweepRay(90, 0, 0, 100)
	assert.InDelta(t, 100.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
}

func TestProjectParticle(t *testing.T) {
	p := Particle{Angle: 90, Dist: 0.5, Size: 0.2, Life: 1}
	x, y := ProjectParticle(p, 0, 0, 100)
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	p.Angle = 180 // south
	x, y = ProjectParticle(p, 0, 0, 100)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)
}

func TestClassifyIntensityDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	light := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if ClassifyIntensity(rng) == IntensityLight {
			light++
		}
	}

	// ~70% light with a generous tolerance for the fixed seed.
	assert.Greater(t, light, 6600)
	assert.Less(t, light, 7400)
}

func TestCellGeometry(t *testing.T) {
	// Rows count double: a cell 2 rows up sits 4 units north in circle space.
	assert.InDelta(t, 0.0, CellAngle(10, 8, 10, 10), 1e-9)
	assert.InDelta(t, 4.0, CellDistance(10, 8, 10, 10), 1e-9)

	// 5 columns east, no aspect correction needed.
	assert.InDelta(t, math.Pi/2, CellAngle(15, 10, 10, 10), 1e-9)
	assert.InDelta(t, 5.0, CellDistance(15, 10, 10, 10), 1e-9)

	// 3 columns and 2 rows make a 3-4-5 triangle.
	assert.InDelta(t, 5.0, CellDistance(13, 12, 10, 10), 1e-9)
}

func TestRingCharFollowsCurvature(t *testing.T) {
	assert.Equal(t, '-', RingChar(0))
	assert.Equal(t, '/', RingChar(math.Pi/4))
	assert.Equal(t, '|', RingChar(math.Pi/2))
	assert.Equal(t, '\\', RingChar(3*math.Pi/4))
	assert.Equal(t, '-', RingChar(math.Pi))
}

func TestNormalizeDeg(t *testing.T) {
	assert.InDelta(t, 10.0, NormalizeDeg(370), 1e-9)
	assert.InDelta(t, 270.0, NormalizeDeg(-90), 1e-9)
	assert.InDelta(t, 0.0, NormalizeDeg(720), 1e-9)
}
