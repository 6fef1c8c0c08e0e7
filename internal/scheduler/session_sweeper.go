package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/session"
)

const (
	// DefaultIdleTTL is how long an untouched session is kept.
	DefaultIdleTTL = 24 * time.Hour
	// DefaultSweepInterval is how often idle sessions are looked for.
	DefaultSweepInterval = 10 * time.Minute
)

// SessionSweeper periodically drops idle sessions from the registry so the
// map does not grow with every cookieless visitor.
type SessionSweeper struct {
	registry *session.Registry
	logger   logger.Logger
	interval time.Duration
	idleTTL  time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

func NewSessionSweeper(
	reg *session.Registry,
	log logger.Logger,
	interval time.Duration,
	idleTTL time.Duration,
) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &SessionSweeper{
		registry: reg,
		logger:   log,
		interval: interval,
		idleTTL:  idleTTL,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Start runs Sweep every interval until Stop is called or ctx ends.
func (s *SessionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *SessionSweeper) Stop() {
	close(s.stopCh)
}

// Sweep removes sessions idle for longer than the TTL.
func (s *SessionSweeper) Sweep() int {
	removed := s.registry.Sweep(s.now(), s.idleTTL)
	if removed > 0 {
		s.logger.Info("swept idle sessions",
			logger.Int("removed", removed),
			logger.Int("remaining", s.registry.Count()))
	} else {
		s.logger.Debug("no idle sessions to sweep")
	}
	return removed
}
