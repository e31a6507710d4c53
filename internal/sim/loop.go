// Package sim provides the decision-cycle loop that drives each polity's
// treasury allocation.
package sim

import (
	"log/slog"
	"time"
)

// Loop drives the simulation forward one decision cycle at a time.
type Loop struct {
	Cycle    uint64        // Current cycle counter (monotonic, never resets)
	Interval time.Duration // Base cycle interval
	Running  bool

	// MaxCycles stops the loop after this many cycles (0 = run until Stop).
	MaxCycles uint64

	// OnCycle runs every decision cycle.
	OnCycle func(cycle uint64)
}

// NewLoop creates a cycle loop with default settings.
func NewLoop() *Loop {
	return &Loop{
		Interval: time.Second,
	}
}

// Run starts the cycle loop. Blocks until Stop() is called or MaxCycles is
// reached.
func (l *Loop) Run() {
	l.Running = true
	slog.Info("simulation loop started", "cycle", l.Cycle)

	for l.Running {
		start := time.Now()

		l.step()

		if l.MaxCycles > 0 && l.Cycle >= l.MaxCycles {
			break
		}

		// Sleep for the remainder of the cycle interval.
		elapsed := time.Since(start)
		if elapsed < l.Interval {
			time.Sleep(l.Interval - elapsed)
		}
	}

	l.Running = false
	slog.Info("simulation loop stopped", "cycle", l.Cycle)
}

// Stop halts the cycle loop.
func (l *Loop) Stop() {
	l.Running = false
}

// step advances the simulation by one decision cycle.
func (l *Loop) step() {
	l.Cycle++
	if l.OnCycle != nil {
		l.OnCycle(l.Cycle)
	}
}
