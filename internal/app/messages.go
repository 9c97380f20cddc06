package app

import "time"

// TickMsg is the fixed-period animation clock driving the simulation.
type TickMsg time.Time
