// Package history keeps the session's weather samples for trend charting.
// The log is append-only and session-scoped: it grows for the duration of
// the session and is never reordered or mutated in place.
package history

import (
	"github.com/lbenitezpreving/f1-weather-radar/internal/telemetry"
	"gonum.org/v1/gonum/floats"
)

// Point is one charted (session time, value) pair.
type Point struct {
	T float64
	V float64
}

// Field selects one scalar series from a sample. The bool reports presence;
// absent fields are excluded from series, never treated as zero.
type Field func(s telemetry.Sample) (float64, bool)

// Field selectors for the charted series.
var (
	TrackTemp Field = func(s telemetry.Sample) (float64, bool) { return deref(s.TrackTemp) }
	AirTemp   Field = func(s telemetry.Sample) (float64, bool) { return deref(s.AirTemp) }
	Humidity  Field = func(s telemetry.Sample) (float64, bool) { return deref(s.Humidity) }
	WindSpeed Field = func(s telemetry.Sample) (float64, bool) { return s.WindSpeed, true }
)

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Log is the append-only sample log. Single-owner: only the app model
// appends; everything else reads through the accessors.
type Log struct {
	samples []telemetry.Sample
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append records a sample. Samples arrive in session-time order; duplicate
// timestamps are permitted.
func (l *Log) Append(s telemetry.Sample) {
	l.samples = append(l.samples, s)
}

// Len returns the number of recorded samples.
func (l *Log) Len() int {
	return len(l.samples)
}

// Last returns the most recent sample, if any.
func (l *Log) Last() (telemetry.Sample, bool) {
	if len(l.samples) == 0 {
		return telemetry.Sample{}, false
	}
	return l.samples[len(l.samples)-1], true
}

// Series returns the filtered (time, value) sequence for a field, in
// arrival order. Each call rebuilds from the log, so callers can iterate
// independently.
func (l *Log) Series(f Field) []Point {
	pts := make([]Point, 0, len(l.samples))
	for _, s := range l.samples {
		if v, ok := f(s); ok {
			pts = append(pts, Point{T: s.Time, V: v})
		}
	}
	return pts
}

// Min returns the minimum present value of a field. ok is false when the
// filtered series is empty; the temperature chart anchors its fill
// baseline on it.
func (l *Log) Min(f Field) (float64, bool) {
	var vals []float64
	for _, s := range l.samples {
		if v, ok := f(s); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0, false
	}
	return floats.Min(vals), true
}
