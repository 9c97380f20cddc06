package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/lbenitezpreving/f1-weather-radar/internal/app"
	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
	"github.com/lbenitezpreving/f1-weather-radar/internal/log"
	"github.com/lbenitezpreving/f1-weather-radar/internal/telemetry"
	"github.com/spf13/cobra"
)

var (
	flagAddr    string
	flagDemo    bool
	flagDebug   bool
	flagLogFile string
	flagSeed    int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weather-radar",
		Short: "Terminal weather radar for race telemetry streams",
		Long: `Weather Radar consumes a race-replay telemetry stream and renders the
session's weather as an animated radar overlay with trend charts:
simulated rain cells, wind vector, radar sweep, and temperature/humidity
evolution.

Point it at a replay process's telemetry port, or use --demo to run
against a built-in synthetic session.`,
		RunE: run,
	}

	// .env can override the default stream address (TELEMETRY_ADDR).
	_ = godotenv.Load()
	defaultAddr := config.DefaultStreamAddr
	if v := os.Getenv("TELEMETRY_ADDR"); v != "" {
		defaultAddr = v
	}

	rootCmd.Flags().StringVar(&flagAddr, "addr", defaultAddr, "Telemetry stream address (host:port)")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run against a synthetic weather session (no stream required)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "weather-radar.log", "Log file path (the TUI owns the terminal)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed for the simulation (0 = time-based)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := log.Init(flagLogFile, flagDebug); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer log.Sync()
	logger := log.GetSugaredLogger()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	simRng := rand.New(rand.NewSource(seed))

	var feed app.Feed
	source := flagAddr
	if flagDemo {
		// Separate source: the feed runs on its own goroutine.
		feed = telemetry.NewDemoFeed(logger, nil, rand.New(rand.NewSource(seed+1)))
		source = "synthetic"
	} else {
		feed = telemetry.NewStreamClient(flagAddr, logger, nil)
	}

	model := app.New(feed, flagDemo, source, simRng, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	if err := model.StartFeed(p); err != nil {
		return fmt.Errorf("starting telemetry feed: %w", err)
	}

	logger.Infow("weather radar started", "source", source, "seed", seed)
	_, err := p.Run()
	return err
}
