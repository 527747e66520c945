// Package idle gates activity simulation on real user activity, so the
// loop does not fight the person sitting at the machine.
package idle

import (
	"time"

	lidle "github.com/lextoumbourou/idle"
	"go.uber.org/zap"
)

// activeLogInterval rate-limits the "user is active" log line.
const activeLogInterval = 2 * time.Minute

// Gate skips simulation while the system idle time is below a threshold.
// It is consulted from the single engine loop and needs no locking.
type Gate struct {
	threshold     time.Duration
	log           *zap.Logger
	idleTime      func() (time.Duration, error)
	lastActiveLog time.Time
	wasActive     bool
}

// NewGate builds a gate reading the system idle time.
func NewGate(threshold time.Duration, log *zap.Logger) *Gate {
	return &Gate{threshold: threshold, log: log, idleTime: lidle.Get}
}

// ShouldSimulate reports whether the user has been idle long enough for a
// cycle's moves to run. If idle time cannot be read, simulation proceeds.
func (g *Gate) ShouldSimulate() bool {
	idle, err := g.idleTime()
	if err != nil {
		return true
	}

	now := time.Now()
	if idle < g.threshold {
		g.wasActive = true
		if g.lastActiveLog.IsZero() || now.Sub(g.lastActiveLog) > activeLogInterval {
			g.lastActiveLog = now
			g.log.Info("user is active; skipping moves this cycle", zap.Duration("idle", idle))
		}
		return false
	}

	if g.wasActive {
		g.wasActive = false
		g.lastActiveLog = time.Time{}
		g.log.Info("user became idle; resuming simulation", zap.Duration("idle", idle))
	}
	return true
}
