package telemetry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lbenitezpreving/f1-weather-radar/internal/session"
	"go.uber.org/zap"
)

const demoInterval = 500 * time.Millisecond

// DemoFeed generates synthetic weather samples so the viewer can run
// without a race-replay process. Temperatures and humidity drift
// sinusoidally, the wind wanders, and rain arrives in episodes.
type DemoFeed struct {
	logger *zap.SugaredLogger
	clock  clockwork.Clock
	rng    *rand.Rand

	dispatch Dispatcher
	cancel   context.CancelFunc

	// generator state
	t         float64
	windSpeed float64
	windDir   float64
	raining   bool
}

// NewDemoFeed creates a demo feed. The rand source is injected so tests
// can make the feed deterministic.
func NewDemoFeed(logger *zap.SugaredLogger, clock clockwork.Clock, rng *rand.Rand) *DemoFeed {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DemoFeed{
		logger:    logger,
		clock:     clock,
		rng:       rng,
		windSpeed: 4 + rng.Float64()*6,
		windDir:   rng.Float64() * 360,
	}
}

// Start begins emitting samples. All sends happen on the feed's own
// goroutine: Program.Send blocks until the program is running, and Start
// is called before p.Run().
func (f *DemoFeed) Start(d Dispatcher) error {
	f.dispatch = d

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel

	go f.loop(ctx)
	return nil
}

// Stop halts the feed. It does not wait for the goroutine: the loop may be
// parked in a Send that only unblocks once the program drains its queue,
// and Stop is called from inside Update.
func (f *DemoFeed) Stop() {
	if f.cancel != nil {
		f.cancel()
	}
}

func (f *DemoFeed) loop(ctx context.Context) {
	f.dispatch.Send(ConnStateMsg{State: session.Connecting})
	f.dispatch.Send(ConnStateMsg{State: session.Connected})

	ticker := f.clock.NewTicker(demoInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.dispatch.Send(ConnStateMsg{State: session.Disconnected})
			return
		case <-ticker.Chan():
			f.dispatch.Send(SampleMsg{Sample: f.next()})
		}
	}
}

// next advances the generator by one step and returns the sample.
func (f *DemoFeed) next() Sample {
	f.t += demoInterval.Seconds()

	// Rain episodes: rare toggles so DRY and RAINING stretches both occur.
	if f.rng.Float64() < 0.02 {
		f.raining = !f.raining
		f.logger.Debugw("demo rain toggled", "raining", f.raining)
	}

	// Wind wanders around its current value.
	f.windSpeed += (f.rng.Float64() - 0.5) * 0.8
	if f.windSpeed < 0 {
		f.windSpeed = 0
	}
	if f.windSpeed > 25 {
		f.windSpeed = 25
	}
	f.windDir = math.Mod(f.windDir+(f.rng.Float64()-0.5)*10+360, 360)

	track := 42 + 4*math.Sin(f.t/60) + (f.rng.Float64()-0.5)*0.4
	air := 28 + 2*math.Sin(f.t/90+1) + (f.rng.Float64()-0.5)*0.3
	humidity := 45 + 15*math.Sin(f.t/120+2) + (f.rng.Float64()-0.5)*2

	sample := Sample{
		Time:          f.t,
		TrackTemp:     &track,
		AirTemp:       &air,
		Humidity:      &humidity,
		WindSpeed:     f.windSpeed,
		WindDirection: f.windDir,
		Rain:          RainDry,
	}
	if f.raining {
		sample.Rain = RainRaining
	}

	// Occasionally drop humidity so the absent-field path gets exercised.
	if f.rng.Float64() < 0.05 {
		sample.Humidity = nil
	}

	return sample
}
