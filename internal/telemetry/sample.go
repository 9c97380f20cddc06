// Package telemetry defines the weather payload contract of the race-replay
// telemetry stream and the clients that deliver it into the application.
package telemetry

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// RainState is the precipitation flag carried by the stream.
type RainState int

const (
	RainDry RainState = iota
	RainRaining
)

func (r RainState) String() string {
	if r == RainRaining {
		return "RAINING"
	}
	return "DRY"
}

// ParseRainState maps the wire value onto a RainState. Unknown values
// coerce to DRY; the coercion is logged because it usually means an
// upstream data problem rather than dry weather.
func ParseRainState(raw string, logger *zap.SugaredLogger) RainState {
	switch raw {
	case "DRY", "":
		return RainDry
	case "RAINING":
		return RainRaining
	default:
		if logger != nil {
			logger.Warnw("unknown rain_state, coercing to DRY", "value", raw)
		}
		return RainDry
	}
}

// Envelope is one NDJSON line from the stream. Lines without a weather
// payload are valid and are skipped by the client.
type Envelope struct {
	Frame *Frame `json:"frame"`
}

// Frame carries the session time and the optional weather payload.
type Frame struct {
	T       float64  `json:"t"`
	Weather *Weather `json:"weather"`
}

// Weather is the raw wire payload. Temperatures and humidity may be absent;
// absence must survive decoding as nil, never as zero. Wind fields are
// required by the contract, hence the pointer + Validate split.
type Weather struct {
	TrackTemp     *float64 `json:"track_temp,omitempty"`
	AirTemp       *float64 `json:"air_temp,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection *float64 `json:"wind_direction"`
	RainState     string   `json:"rain_state"`
}

// Validate checks the structural contract: wind keys present, finite, and
// speed non-negative. A violation is a caller error, not something to mask.
func (w *Weather) Validate() error {
	if w.WindSpeed == nil {
		return fmt.Errorf("weather payload missing wind_speed")
	}
	if w.WindDirection == nil {
		return fmt.Errorf("weather payload missing wind_direction")
	}
	if math.IsNaN(*w.WindSpeed) || math.IsInf(*w.WindSpeed, 0) {
		return fmt.Errorf("wind_speed is not finite")
	}
	if math.IsNaN(*w.WindDirection) || math.IsInf(*w.WindDirection, 0) {
		return fmt.Errorf("wind_direction is not finite")
	}
	if *w.WindSpeed < 0 {
		return fmt.Errorf("wind_speed %v is negative", *w.WindSpeed)
	}
	for _, f := range []*float64{w.TrackTemp, w.AirTemp, w.Humidity} {
		if f != nil && (math.IsNaN(*f) || math.IsInf(*f, 0)) {
			return fmt.Errorf("non-finite optional field in weather payload")
		}
	}
	return nil
}

// Sample is one validated weather observation, immutable once recorded.
type Sample struct {
	Time          float64 // session time
	TrackTemp     *float64
	AirTemp       *float64
	Humidity      *float64
	WindSpeed     float64
	WindDirection float64 // degrees, [0, 360)
	Rain          RainState
}

// NewSample validates a frame's weather payload and converts it into a
// Sample. The wind direction is normalized into [0, 360).
func NewSample(f *Frame, logger *zap.SugaredLogger) (Sample, error) {
	if f == nil || f.Weather == nil {
		return Sample{}, fmt.Errorf("frame has no weather payload")
	}
	w := f.Weather
	if err := w.Validate(); err != nil {
		return Sample{}, err
	}

	dir := math.Mod(*w.WindDirection, 360)
	if dir < 0 {
		dir += 360
	}

	return Sample{
		Time:          f.T,
		TrackTemp:     w.TrackTemp,
		AirTemp:       w.AirTemp,
		Humidity:      w.Humidity,
		WindSpeed:     *w.WindSpeed,
		WindDirection: dir,
		Rain:          ParseRainState(w.RainState, logger),
	}, nil
}
