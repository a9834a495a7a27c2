// Package refresh drives periodic snapshot rebuilds. One scheduler loop
// per process; overlapping manual refreshes are coalesced downstream by the
// service's single-flight group, so the scheduler never needs to care who
// else is refreshing.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/pundit/pkg/logger"
)

// Default scheduler configuration constants.
const (
	defaultInterval        = 15 * time.Minute
	schedulerStopTimeout   = 30 * time.Second
	initialRefreshDeadline = 2 * time.Minute
)

// Refresher rebuilds the serving datasets.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

// Scheduler runs a Refresher on a fixed interval.
type Scheduler struct {
	interval  time.Duration
	refresher Refresher

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewScheduler creates a Scheduler with configuration options.
func NewScheduler(refresher Refresher, opts ...Option) *Scheduler {
	s := &Scheduler{
		interval:  defaultInterval,
		refresher: refresher,
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("refresh")
	}
	return s
}

// Start launches the scheduler loop. An immediate refresh runs first so
// the service does not serve only the baseline until the first tick.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	initialCtx, cancel := context.WithTimeout(ctx, initialRefreshDeadline)
	if err := s.refresher.RefreshAll(initialCtx); err != nil {
		s.logger.Warn(ctx, "initial refresh failed; serving baseline until next tick", logger.Error(err))
	}
	cancel()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.shutdown:
			return
		case <-ticker.C:
			if err := s.refresher.RefreshAll(ctx); err != nil {
				s.logger.Error(ctx, "scheduled refresh failed; previous snapshot kept", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the scheduler, waiting for an in-flight
// refresh to settle.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	close(s.shutdown)

	timeout := time.NewTimer(schedulerStopTimeout)
	defer timeout.Stop()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler shutdown interrupted: %w", ctx.Err())
	case <-timeout.C:
		return fmt.Errorf("scheduler did not stop within %s", schedulerStopTimeout)
	}
}
