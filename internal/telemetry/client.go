package telemetry

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/lbenitezpreving/f1-weather-radar/internal/config"
	"github.com/lbenitezpreving/f1-weather-radar/internal/session"
	"go.uber.org/zap"
)

// Dispatcher is the sink for feed messages. *tea.Program satisfies it, and
// tests substitute a recorder.
type Dispatcher interface {
	Send(tea.Msg)
}

// StreamClient consumes newline-delimited JSON frames from the replay
// process's telemetry port. It reconnects with capped exponential backoff
// and reports every lifecycle change so the session machine stays accurate.
type StreamClient struct {
	addr   string
	logger *zap.SugaredLogger
	clock  clockwork.Clock

	dispatch Dispatcher
	cancel   context.CancelFunc
}

// NewStreamClient creates a client for the given address.
func NewStreamClient(addr string, logger *zap.SugaredLogger, clock clockwork.Clock) *StreamClient {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &StreamClient{
		addr:   addr,
		logger: logger,
		clock:  clock,
	}
}

// Start begins the connect/consume loop. Must be called before the program
// runs so messages have somewhere to land.
func (c *StreamClient) Start(d Dispatcher) error {
	c.dispatch = d

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go c.run(ctx)
	return nil
}

// Stop halts the client. It does not wait for the loop: the loop may be
// parked in a Send that only unblocks once the program drains its queue,
// and Stop is called from inside Update.
func (c *StreamClient) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *StreamClient) run(ctx context.Context) {
	backoff := config.ReconnectBackoffMin
	for {
		if ctx.Err() != nil {
			return
		}

		c.dispatch.Send(ConnStateMsg{State: session.Connecting})

		dialer := net.Dialer{Timeout: config.DialTimeout}
		conn, err := dialer.DialContext(ctx, "tcp", c.addr)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warnw("telemetry connect failed", "addr", c.addr, "error", err)
			c.dispatch.Send(ConnStateMsg{State: session.Disconnected})
			if !c.sleep(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff)
			continue
		}

		c.logger.Infow("telemetry stream connected", "addr", c.addr)
		c.dispatch.Send(ConnStateMsg{State: session.Connected})
		backoff = config.ReconnectBackoffMin

		c.consume(ctx, conn)

		c.logger.Infow("telemetry stream ended", "addr", c.addr)
		c.dispatch.Send(ConnStateMsg{State: session.Disconnected})
		if !c.sleep(ctx, backoff) {
			return
		}
		backoff = nextBackoff(backoff)
	}
}

// consume reads frames until the stream ends or the context is cancelled.
func (c *StreamClient) consume(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	// Unblock the scanner when the context is cancelled.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var env Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			c.logger.Warnw("undecodable telemetry line", "error", err)
			continue
		}
		if env.Frame == nil || env.Frame.Weather == nil {
			// Frames without weather are valid traffic for other viewers.
			continue
		}

		sample, err := NewSample(env.Frame, c.logger)
		if err != nil {
			c.logger.Warnw("rejected weather payload", "error", err)
			c.dispatch.Send(StreamErrorMsg{Err: err})
			continue
		}
		c.dispatch.Send(SampleMsg{Sample: sample})
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		c.logger.Warnw("telemetry stream read error", "error", err)
	}
}

func (c *StreamClient) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-c.clock.After(d):
		return true
	}
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > config.ReconnectBackoffMax {
		return config.ReconnectBackoffMax
	}
	return next
}
