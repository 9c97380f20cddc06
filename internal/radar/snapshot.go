package radar

// ProjectedParticle is a render-ready particle: screen position, screen
// size, and an intensity class.
type ProjectedParticle struct {
	X, Y  float64
	Size  float64
	Life  float64
	Class IntensityClass
}

// Frame is the per-render snapshot handed to the drawing layer. Everything
// in it is derived, read-only data; the drawing layer performs no logic.
type Frame struct {
	Particles []ProjectedParticle

	SweepDeg       float64
	SweepX, SweepY float64

	HasWind        bool
	WindX, WindY   float64
	WindSpeed      float64
	WindDirection  float64

	Raining bool
}

// Snapshot projects the current field and sweep state into a Frame for a
// radar of the given center and radius. Intensity classes are drawn fresh
// each call, so a particle's color may flicker between renders.
func (f *Field) Snapshot(sweep *Sweep, cx, cy, radius float64) Frame {
	frame := Frame{
		SweepDeg:      sweep.Degrees(),
		WindSpeed:     f.windSpd,
		WindDirection: f.windDir,
		Raining:       f.raining,
	}

	frame.SweepX, frame.SweepY = ProjectSweepRay(sweep.Degrees(), cx, cy, radius)

	if f.windSpd > 0 {
		frame.HasWind = true
		frame.WindX, frame.WindY = ProjectWindVector(f.windSpd, f.windDir, cx, cy, radius)
	}

	frame.Particles = make([]ProjectedParticle, 0, len(f.particles))
	for _, p := range f.particles {
		x, y := ProjectParticle(p, cx, cy, radius)
		frame.Particles = append(frame.Particles, ProjectedParticle{
			X:     x,
			Y:     y,
			Size:  p.Size * radius,
			Life:  p.Life,
			Class: ClassifyIntensity(f.rng),
		})
	}

	return frame
}
