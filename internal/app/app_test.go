package app

import (
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lbenitezpreving/f1-weather-radar/internal/session"
	"github.com/lbenitezpreving/f1-weather-radar/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeed struct {
	started bool
	stopped bool
}

func (f *stubFeed) Start(telemetry.Dispatcher) error { f.started = true; return nil }
func (f *stubFeed) Stop()                            { f.stopped = true }

func newTestModel(feed Feed) Model {
	return New(feed, false, "127.0.0.1:8765", rand.New(rand.NewSource(7)), zap.NewNop().Sugar())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func rainingSample(ts float64) telemetry.Sample {
	track, air, hum := 41.0, 27.0, 55.0
	return telemetry.Sample{
		Time:          ts,
		TrackTemp:     &track,
		AirTemp:       &air,
		Humidity:      &hum,
		WindSpeed:     8,
		WindDirection: 180,
		Rain:          telemetry.RainRaining,
	}
}

func TestSampleFeedsHistoryAndField(t *testing.T) {
	m := newTestModel(&stubFeed{})

	m = update(t, m, telemetry.ConnStateMsg{State: session.Connecting})
	m = update(t, m, telemetry.ConnStateMsg{State: session.Connected})
	m = update(t, m, telemetry.SampleMsg{Sample: rainingSample(1)})

	assert.Equal(t, 1, m.shared.history.Len())
	assert.True(t, m.shared.field.Raining())

	speed, dir := m.shared.field.Wind()
	assert.Equal(t, 8.0, speed)
	assert.Equal(t, 180.0, dir)
}

func TestTicksSpawnWhileConnectedAndRaining(t *testing.T) {
	m := newTestModel(&stubFeed{})

	m = update(t, m, telemetry.ConnStateMsg{State: session.Connecting})
	m = update(t, m, telemetry.ConnStateMsg{State: session.Connected})
	m = update(t, m, telemetry.SampleMsg{Sample: rainingSample(1)})

	m = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 1, m.shared.field.Population(), "one spawn per tick")

	for i := 0; i < 60; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	assert.Greater(t, m.shared.field.Population(), 1)
}

func TestDisconnectStopsSpawningButNotDecay(t *testing.T) {
	m := newTestModel(&stubFeed{})

	m = update(t, m, telemetry.ConnStateMsg{State: session.Connecting})
	m = update(t, m, telemetry.ConnStateMsg{State: session.Connected})
	m = update(t, m, telemetry.SampleMsg{Sample: rainingSample(1)})
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	require.Equal(t, 10, m.shared.field.Population())

	m = update(t, m, telemetry.ConnStateMsg{State: session.Disconnected})

	pop := m.shared.field.Population()
	for i := 0; i < 150; i++ {
		m = update(t, m, TickMsg(time.Now()))
		assert.LessOrEqual(t, m.shared.field.Population(), pop)
		pop = m.shared.field.Population()
	}
	assert.Equal(t, 0, m.shared.field.Population(), "field drains after disconnect")
}

func TestTickAdvancesSweep(t *testing.T) {
	m := newTestModel(&stubFeed{})
	require.Equal(t, 0.0, m.shared.sweep.Degrees())

	m = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 5.0, m.shared.sweep.Degrees())

	_, cmd := m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick must schedule the next tick")
}

func TestQuitStopsFeed(t *testing.T) {
	feed := &stubFeed{}
	m := newTestModel(feed)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, feed.stopped)
}

func TestStreamErrorKeepsLastGoodState(t *testing.T) {
	m := newTestModel(&stubFeed{})
	m = update(t, m, telemetry.ConnStateMsg{State: session.Connecting})
	m = update(t, m, telemetry.ConnStateMsg{State: session.Connected})
	m = update(t, m, telemetry.SampleMsg{Sample: rainingSample(1)})

	m = update(t, m, telemetry.StreamErrorMsg{Err: assert.AnError})

	assert.Equal(t, session.Connected, m.shared.session.State())
	assert.True(t, m.shared.field.Raining())
	assert.Equal(t, 1, m.shared.history.Len())
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(&stubFeed{})
	assert.Contains(t, m.View(), "Initializing")
}

func TestViewRendersAllSections(t *testing.T) {
	m := newTestModel(&stubFeed{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, telemetry.ConnStateMsg{State: session.Connecting})
	m = update(t, m, telemetry.ConnStateMsg{State: session.Connected})
	m = update(t, m, telemetry.SampleMsg{Sample: rainingSample(1)})
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}

	out := m.View()
	assert.Contains(t, out, "Samples:")
	assert.Contains(t, out, "RECEIVING TELEMETRY")
	assert.NotContains(t, out, "Initializing")
}
