package history

import (
	"testing"

	"github.com/lbenitezpreving/f1-weather-radar/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func sample(t float64, humidity *float64) telemetry.Sample {
	return telemetry.Sample{
		Time:      t,
		TrackTemp: fp(40 + t),
		AirTemp:   fp(25 + t),
		Humidity:  humidity,
		WindSpeed: 5,
	}
}

func TestSeriesExcludesAbsentValues(t *testing.T) {
	l := NewLog()
	l.Append(sample(1, fp(50)))
	l.Append(sample(2, fp(51)))
	l.Append(sample(3, nil)) // humidity missing
	l.Append(sample(4, fp(49)))
	l.Append(sample(5, fp(52)))

	pts := l.Series(Humidity)
	require.Len(t, pts, 4)
	for _, p := range pts {
		assert.NotEqual(t, 3.0, p.T, "absent sample leaked into the series")
	}

	// Other fields are unaffected by the gap.
	require.Len(t, l.Series(TrackTemp), 5)
	require.Len(t, l.Series(WindSpeed), 5)
}

func TestSeriesIsRestartable(t *testing.T) {
	l := NewLog()
	l.Append(sample(1, fp(50)))
	l.Append(sample(2, fp(60)))

	first := l.Series(Humidity)
	second := l.Series(Humidity)
	require.Equal(t, first, second)

	// Mutating one result must not affect the next call.
	first[0].V = -999
	assert.Equal(t, 50.0, l.Series(Humidity)[0].V)
}

func TestMin(t *testing.T) {
	l := NewLog()

	_, ok := l.Min(Humidity)
	assert.False(t, ok, "empty log has no minimum")

	l.Append(sample(1, fp(55)))
	l.Append(sample(2, nil))
	l.Append(sample(3, fp(48)))

	v, ok := l.Min(Humidity)
	require.True(t, ok)
	assert.Equal(t, 48.0, v)

	// The absent sample contributes nothing, not a zero.
	assert.NotEqual(t, 0.0, v)
}

func TestAppendIsNeverLossy(t *testing.T) {
	l := NewLog()
	const k = 1000
	for i := 0; i < k; i++ {
		l.Append(sample(float64(i), fp(float64(i))))
	}
	require.Equal(t, k, l.Len())

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, float64(k-1), last.Time)
}

func TestDuplicateTimestampsPermitted(t *testing.T) {
	l := NewLog()
	l.Append(sample(5, fp(1)))
	l.Append(sample(5, fp(2)))
	require.Equal(t, 2, l.Len())

	pts := l.Series(Humidity)
	require.Len(t, pts, 2)
	assert.Equal(t, 1.0, pts[0].V)
	assert.Equal(t, 2.0, pts[1].V)
}
