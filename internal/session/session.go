// Package session models the connectivity of the telemetry stream as an
// explicit three-state machine. The machine is driven only by events from
// the stream client; it never self-transitions on a timer.
package session

import "go.uber.org/zap"

// State is the connectivity of the telemetry session.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "Connecting"
	case Connected:
		return "Connected"
	default:
		return "Disconnected"
	}
}

// Machine holds the current session state and enforces legal transitions:
//
//	Disconnected -> Connecting
//	Connecting   -> Connected
//	Connecting   -> Disconnected
//	Connected    -> Disconnected
//
// Anything else is rejected. There is no separate error state; any stream
// failure degrades to Disconnected.
type Machine struct {
	state  State
	logger *zap.SugaredLogger
}

// NewMachine creates a machine in the Disconnected state.
func NewMachine(logger *zap.SugaredLogger) *Machine {
	return &Machine{state: Disconnected, logger: logger}
}

// Apply attempts a transition to next. Returns false if the transition is
// not legal, in which case the state is unchanged.
func (m *Machine) Apply(next State) bool {
	if !legal(m.state, next) {
		if m.logger != nil {
			m.logger.Warnw("rejected session transition", "from", m.state, "to", next)
		}
		return false
	}
	m.state = next
	return true
}

func legal(from, to State) bool {
	switch from {
	case Disconnected:
		return to == Connecting
	case Connecting:
		return to == Connected || to == Disconnected
	case Connected:
		return to == Disconnected
	}
	return false
}

// State returns the current session state.
func (m *Machine) State() State {
	return m.state
}

// MaySpawn reports whether the particle field may spawn new particles.
// Spawning stops while Disconnected; existing particles keep decaying.
func (m *Machine) MaySpawn() bool {
	return m.state != Disconnected
}
