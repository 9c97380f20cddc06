package telemetry

import "github.com/lbenitezpreving/f1-weather-radar/internal/session"

// SampleMsg delivers a validated weather sample to the app.
type SampleMsg struct {
	Sample Sample
}

// ConnStateMsg reports a connection lifecycle event from a feed.
type ConnStateMsg struct {
	State session.State
}

// StreamErrorMsg reports a non-fatal stream error.
type StreamErrorMsg struct {
	Err error
}
