package config

import "time"

const (
	// Animation clock
	TickInterval = 50 * time.Millisecond // 20 simulation ticks per second
	TargetFPS    = 30                    // Bubble Tea render cap

	// Rain particle field
	ParticleCap   = 20   // Maximum live particles
	ParticleDecay = 0.01 // Life lost per tick (~5s lifespan at 20 t/s)
	SpawnDistMin  = 0.1  // Normalized spawn distance range
	SpawnDistMax  = 0.9
	SpawnSizeMin  = 0.1 // Normalized spawn size range
	SpawnSizeMax  = 0.3

	// Radar display
	RingCount     = 4    // Concentric range rings
	RingStepKM    = 15   // Range per ring for the distance labels
	AspectRatio   = 0.5  // Terminal char aspect correction (chars are ~2:1 tall)
	SweepStepDeg  = 5.0  // Sweep advance per tick
	SweepTrailDeg = 60.0 // Sweep trailing glow angle

	// Wind vector calibration: a 20 m/s wind reaches 80% of the radius.
	WindFullScale   = 20.0
	WindMaxFraction = 0.8

	// Intensity classing: share of particles rendered as light rain.
	LightRainShare = 0.7

	// Telemetry stream
	DefaultStreamAddr   = "127.0.0.1:8765"
	DialTimeout         = 3 * time.Second
	ReconnectBackoffMin = 200 * time.Millisecond
	ReconnectBackoffMax = 5 * time.Second

	// App
	AppName    = "WEATHER-RADAR"
	AppVersion = "1.0"
)
