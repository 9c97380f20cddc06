package radar

import (
	"math/rand"
	"testing"

	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
	"github.com/lbenitezpreving/f1-weather-radar/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGate struct {
	open bool
}

func (g *stubGate) MaySpawn() bool { return g.open }

func rainingSample() telemetry.Sample {
	return telemetry.Sample{Rain: telemetry.RainRaining, WindSpeed: 5, WindDirection: 90}
}

func drySample() telemetry.Sample {
	return telemetry.Sample{Rain: telemetry.RainDry, WindSpeed: 5, WindDirection: 90}
}

func newTestField(gate *stubGate) *Field {
	return NewField(rand.New(rand.NewSource(42)), gate)
}

func TestPopulationNeverExceedsCap(t *testing.T) {
	f := newTestField(&stubGate{open: true})
	f.SetWeather(rainingSample())

	for i := 0; i < 500; i++ {
		f.Tick()
		require.LessOrEqual(t, f.Population(), config.ParticleCap, "tick %d", i)
	}
}

func TestPopulationConvergesToCapWhileRaining(t *testing.T) {
	f := newTestField(&stubGate{open: true})
	f.SetWeather(rainingSample())

	for i := 0; i < config.ParticleCap; i++ {
		f.Tick()
	}
	require.Equal(t, config.ParticleCap, f.Population())

	// Expiry and replacement keep the field saturated.
	for i := 0; i < 200; i++ {
		f.Tick()
		require.Equal(t, config.ParticleCap, f.Population())
	}
}

func TestDryFieldDrainsToZero(t *testing.T) {
	f := newTestField(&stubGate{open: true})
	f.SetWeather(rainingSample())
	for i := 0; i < 10; i++ {
		f.Tick()
	}
	require.Equal(t, 10, f.Population())

	f.SetWeather(drySample())

	prev := f.Population()
	for i := 0; i < 101; i++ {
		f.Tick()
		require.LessOrEqual(t, f.Population(), prev)
		prev = f.Population()
	}
	require.Zero(t, f.Population())

	// And it stays empty.
	f.Tick()
	require.Zero(t, f.Population())
}

func TestLifeStrictlyDecreasesUntilExpiry(t *testing.T) {
	f := newTestField(&stubGate{open: true})
	f.SetWeather(rainingSample())
	f.Tick()
	require.Equal(t, 1, f.Population())
	f.SetWeather(drySample())

	prev := f.Particles()[0].Life
	require.Equal(t, 1.0, prev)

	for i := 0; i < 99; i++ {
		f.Tick()
		require.Equal(t, 1, f.Population(), "particle expired early at tick %d", i)
		life := f.Particles()[0].Life
		require.Less(t, life, prev)
		prev = life
	}

	// Life is now within one decay step of zero; expiry follows promptly.
	require.InDelta(t, config.ParticleDecay, prev, config.ParticleDecay)
	f.Tick()
	f.Tick()
	require.Zero(t, f.Population())
}

func TestSetWeatherBetweenTicksAffectsOnlyNextSpawn(t *testing.T) {
	f := newTestField(&stubGate{open: true})

	// Repeated updates between ticks never spawn on their own.
	for i := 0; i < 5; i++ {
		f.SetWeather(rainingSample())
	}
	require.Zero(t, f.Population())

	f.Tick()
	require.Equal(t, 1, f.Population())
}

func TestGateBlocksSpawnButNotDecay(t *testing.T) {
	gate := &stubGate{open: true}
	f := newTestField(gate)
	f.SetWeather(rainingSample())

	for i := 0; i < 5; i++ {
		f.Tick()
	}
	require.Equal(t, 5, f.Population())
	before := f.Particles()

	gate.open = false
	f.Tick()

	// No spawn while gated, but existing particles keep decaying.
	after := f.Particles()
	require.Len(t, after, 5)
	for i := range after {
		assert.Less(t, after[i].Life, before[i].Life)
	}
}

func TestSpawnedParticlesStayInRange(t *testing.T) {
	f := newTestField(&stubGate{open: true})
	f.SetWeather(rainingSample())

	f.Tick()
	p := f.Particles()[0]
	assert.GreaterOrEqual(t, p.Angle, 0.0)
	assert.Less(t, p.Angle, 360.0)
	assert.GreaterOrEqual(t, p.Dist, config.SpawnDistMin)
	assert.LessOrEqual(t, p.Dist, config.SpawnDistMax)
	assert.GreaterOrEqual(t, p.Size, config.SpawnSizeMin)
	assert.LessOrEqual(t, p.Size, config.SpawnSizeMax)
	assert.Equal(t, 1.0, p.Life)
}

func TestWindDoesNotDisplaceParticles(t *testing.T) {
	f := newTestField(&stubGate{open: true})
	f.SetWeather(rainingSample())
	f.Tick()
	p0 := f.Particles()[0]

	s := rainingSample()
	s.WindSpeed = 20
	s.WindDirection = 270
	f.SetWeather(s)
	f.Tick()

	p1 := f.Particles()[0]
	assert.Equal(t, p0.Angle, p1.Angle)
	assert.Equal(t, p0.Dist, p1.Dist)
	assert.Equal(t, p0.Size, p1.Size)
}
