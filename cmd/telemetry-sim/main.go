// telemetry-sim serves synthetic race weather frames as newline-delimited
// JSON, standing in for the race-replay process so the viewer can be
// exercised end to end without a session.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lbenitezpreving/f1-weather-radar/internal/log"
	"github.com/lbenitezpreving/f1-weather-radar/internal/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagListen   string
	flagInterval time.Duration
	flagSeed     int64
	flagDebug    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "telemetry-sim",
		Short: "Synthetic race telemetry server for the weather radar viewer",
		RunE:  run,
	}

	rootCmd.Flags().StringVar(&flagListen, "listen", "127.0.0.1:8765", "Address to serve telemetry on")
	rootCmd.Flags().DurationVar(&flagInterval, "interval", 500*time.Millisecond, "Frame emission interval")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := log.Init("stderr", flagDebug); err != nil {
		return err
	}
	defer log.Sync()
	logger := log.GetSugaredLogger()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ln, err := net.Listen("tcp", flagListen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", flagListen, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	logger.Infow("telemetry simulator listening", "addr", flagListen, "seed", seed)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Warnw("accept failed", "error", err)
			continue
		}
		logger.Infow("viewer connected", "remote", conn.RemoteAddr())
		go serve(ctx, conn, rand.New(rand.NewSource(seed)), logger)
	}
}

// serve streams frames to one client until it disconnects.
func serve(ctx context.Context, conn net.Conn, rng *rand.Rand, logger *zap.SugaredLogger) {
	defer conn.Close()

	gen := newGenerator(rng)
	enc := json.NewEncoder(conn)

	ticker := time.NewTicker(flagInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := enc.Encode(gen.nextEnvelope()); err != nil {
				logger.Infow("viewer disconnected", "remote", conn.RemoteAddr(), "error", err)
				return
			}
		}
	}
}

// generator produces a plausible session: drifting temperatures, wandering
// wind, rain episodes, and the occasional gap in optional fields.
type generator struct {
	rng       *rand.Rand
	t         float64
	windSpeed float64
	windDir   float64
	raining   bool
}

func newGenerator(rng *rand.Rand) *generator {
	return &generator{
		rng:       rng,
		windSpeed: 4 + rng.Float64()*6,
		windDir:   rng.Float64() * 360,
	}
}

func (g *generator) nextEnvelope() telemetry.Envelope {
	g.t += flagInterval.Seconds()

	// A slice of frames carry no weather payload at all, like the real
	// stream where weather is one payload among many.
	if g.rng.Float64() < 0.1 {
		return telemetry.Envelope{Frame: &telemetry.Frame{T: g.t}}
	}

	if g.rng.Float64() < 0.02 {
		g.raining = !g.raining
	}

	g.windSpeed += (g.rng.Float64() - 0.5) * 0.8
	if g.windSpeed < 0 {
		g.windSpeed = 0
	}
	if g.windSpeed > 25 {
		g.windSpeed = 25
	}
	g.windDir = math.Mod(g.windDir+(g.rng.Float64()-0.5)*10+360, 360)

	track := 42 + 4*math.Sin(g.t/60) + (g.rng.Float64()-0.5)*0.4
	air := 28 + 2*math.Sin(g.t/90+1) + (g.rng.Float64()-0.5)*0.3
	humidity := 45 + 15*math.Sin(g.t/120+2) + (g.rng.Float64()-0.5)*2

	w := &telemetry.Weather{
		TrackTemp:     &track,
		AirTemp:       &air,
		Humidity:      &humidity,
		WindSpeed:     &g.windSpeed,
		WindDirection: &g.windDir,
		RainState:     "DRY",
	}
	if g.raining {
		w.RainState = "RAINING"
	}
	if g.rng.Float64() < 0.05 {
		w.Humidity = nil
	}

	return telemetry.Envelope{Frame: &telemetry.Frame{T: g.t, Weather: w}}
}
