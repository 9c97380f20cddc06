package app

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
	"github.com/lbenitezpreving/f1-weather-radar/internal/history"
	"github.com/lbenitezpreving/f1-weather-radar/internal/radar"
	"github.com/lbenitezpreving/f1-weather-radar/internal/session"
	"github.com/lbenitezpreving/f1-weather-radar/internal/telemetry"
	"github.com/lbenitezpreving/f1-weather-radar/internal/ui"
	"go.uber.org/zap"
)

// Feed is a telemetry source pushing messages into the program: the live
// stream client or the demo generator.
type Feed interface {
	Start(telemetry.Dispatcher) error
	Stop()
}

// shared holds state shared between the Bubble Tea model copies and main.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data. All mutation happens on the program's
// single update goroutine, which keeps the simulator and history
// single-writer no matter how the feed interleaves with ticks.
type shared struct {
	field   *radar.Field
	sweep   *radar.Sweep
	session *session.Machine
	history *history.Log
	feed    Feed
	logger  *zap.SugaredLogger
}

// Model is the root Bubble Tea model for the weather radar viewer.
type Model struct {
	width  int
	height int

	demo   bool
	source string

	shared *shared
}

// New creates the root model. The rand source feeds particle spawning and
// intensity classing; tests pass a seeded source for determinism.
func New(feed Feed, demo bool, source string, rng *rand.Rand, logger *zap.SugaredLogger) Model {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sess := session.NewMachine(logger)
	return Model{
		demo:   demo,
		source: source,
		shared: &shared{
			field:   radar.NewField(rng, sess),
			sweep:   radar.NewSweep(),
			session: sess,
			history: history.NewLog(),
			feed:    feed,
			logger:  logger,
		},
	}
}

// StartFeed connects the telemetry feed to the running program. Must be
// called before p.Run().
func (m *Model) StartFeed(p *tea.Program) error {
	return m.shared.feed.Start(p)
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c":
			m.shared.feed.Stop()
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		m.shared.sweep.Advance()
		m.shared.field.Tick()
		return m, tickCmd()

	case telemetry.SampleMsg:
		m.shared.history.Append(msg.Sample)
		m.shared.field.SetWeather(msg.Sample)
		return m, nil

	case telemetry.ConnStateMsg:
		m.shared.session.Apply(msg.State)
		return m, nil

	case telemetry.StreamErrorMsg:
		// Already logged by the client; keep the last good state on screen.
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing weather radar..."
	}

	menuH := 1
	bannerH := 1
	statusH := 1
	bodyH := m.height - menuH - bannerH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	radarW := m.width / 2
	if radarW < 30 {
		radarW = 30
	}
	chartsW := m.width - radarW
	if chartsW < 20 {
		chartsW = 20
		radarW = m.width - chartsW
	}

	sh := m.shared

	menuBar := ui.RenderMenuBar(m.width, m.source, m.demo)
	banner := ui.RenderBanner(m.width, sh.session.State())

	innerW := radarW - 4
	innerH := bodyH - 2
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 5 {
		innerH = 5
	}
	cx, cy, radius := ui.RadarGeometry(innerW, innerH)
	frame := sh.field.Snapshot(sh.sweep, float64(cx), float64(cy), radius)
	radarPanel := ui.RenderPanel(radarW, bodyH, ui.RenderRadar(innerW, innerH, frame, sh.sweep))

	chartsPanel := ui.RenderPanel(chartsW, bodyH, ui.RenderTrendCharts(sh.history, chartsW-4, bodyH-2))

	windSpeed, _ := sh.field.Wind()
	rain := "DRY"
	if sh.field.Raining() {
		rain = "RAINING"
	}
	statusBar := ui.RenderStatusBar(m.width, sh.history.Len(), sh.field.Population(),
		sh.sweep.Degrees(), windSpeed, rain)

	return ui.ComposeLayout(menuBar, banner, radarPanel, chartsPanel, statusBar)
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
