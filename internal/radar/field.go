package radar

import (
	"math/rand"

	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
	"github.com/lbenitezpreving/f1-weather-radar/internal/telemetry"
)

// Particle is one transient rain blob in polar coordinates. Particles are
// owned exclusively by the Field; callers only ever see copies.
type Particle struct {
	Angle float64 // degrees [0, 360)
	Dist  float64 // normalized [0, 1], fraction of radar radius
	Size  float64 // normalized radius
	Life  float64 // [0, 1], strictly decreasing per tick
}

// SpawnGate reports whether new particles may spawn. The session machine
// implements it; spawning stops while the stream is disconnected.
type SpawnGate interface {
	MaySpawn() bool
}

// Field simulates the bounded rain particle population. All mutation
// happens on the app's single goroutine: Tick on the animation clock,
// SetWeather on sample arrival, in whatever interleaving the host delivers.
type Field struct {
	particles []Particle

	raining bool
	windSpd float64
	windDir float64

	rng  *rand.Rand
	gate SpawnGate
}

// NewField creates an empty field. The rand source is injected so tests
// can assert exact spawn positions.
func NewField(rng *rand.Rand, gate SpawnGate) *Field {
	return &Field{rng: rng, gate: gate}
}

// SetWeather updates the field's rain and wind inputs from the latest
// sample. It has no immediate effect on existing particles; the new state
// is only consulted by the next Tick's spawn decision.
func (f *Field) SetWeather(s telemetry.Sample) {
	f.raining = s.Rain == telemetry.RainRaining
	f.windSpd = s.WindSpeed
	f.windDir = s.WindDirection
}

// Tick advances the simulation one step: every particle loses a fixed
// amount of life, expired particles are removed, and at most one new
// particle spawns when it is raining, the population is below the cap, and
// the gate allows it. Wind does not displace existing particles.
func (f *Field) Tick() {
	live := f.particles[:0]
	for _, p := range f.particles {
		p.Life -= config.ParticleDecay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	f.particles = live

	if f.raining && len(f.particles) < config.ParticleCap && f.gate.MaySpawn() {
		f.particles = append(f.particles, Particle{
			Angle: f.rng.Float64() * 360,
			Dist:  config.SpawnDistMin + f.rng.Float64()*(config.SpawnDistMax-config.SpawnDistMin),
			Size:  config.SpawnSizeMin + f.rng.Float64()*(config.SpawnSizeMax-config.SpawnSizeMin),
			Life:  1.0,
		})
	}
}

// Particles returns a copy of the live particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Population returns the number of live particles.
func (f *Field) Population() int {
	return len(f.particles)
}

// Raining reports the current rain input.
func (f *Field) Raining() bool {
	return f.raining
}

// Wind returns the current wind speed and direction inputs.
func (f *Field) Wind() (speed, direction float64) {
	return f.windSpd, f.windDir
}
