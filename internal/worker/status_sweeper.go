package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lunchmicro/lunchsvc/internal/clock"
)

// SweepFacade exposes the subset of application functionality required by the sweeper.
type SweepFacade interface {
	CompleteDueOrders(ctx context.Context) (int, error)
}

// StatusSweeper guarantees that every PAID order for the current day is
// eventually transitioned to COMPLETED without client interaction. Two
// overlapping triggers provide the guarantee: a timer that fires once at
// the configured time of day, and a short-interval poll that catches a
// missed daily firing inside a narrow window. Both run the same
// idempotent sweep pass, so no coordination between them is needed.
type StatusSweeper struct {
	facade       SweepFacade
	clock        clock.Clock
	sweepAt      time.Duration
	window       time.Duration
	pollInterval time.Duration
	logger       *slog.Logger

	// lastProcessed is the date already handled by the polling trigger.
	// Zero means never processed. It only avoids redundant scans within
	// one day; correctness comes from sweep idempotence.
	lastProcessed time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStatusSweeper constructs the sweeper.
func NewStatusSweeper(facade SweepFacade, clk clock.Clock, sweepAt, window, pollInterval time.Duration, logger *slog.Logger) *StatusSweeper {
	if window <= 0 {
		window = 5 * time.Minute
	}
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	return &StatusSweeper{
		facade:       facade,
		clock:        clk,
		sweepAt:      sweepAt,
		window:       window,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Start launches both triggers in the background.
func (s *StatusSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(2)
	go s.runDaily(runCtx)
	go s.runPoll(runCtx)
}

// Stop waits for both triggers to finish.
func (s *StatusSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *StatusSweeper) runDaily(ctx context.Context) {
	defer s.wg.Done()

	for {
		timer := time.NewTimer(untilNext(s.clock.Now(), s.sweepAt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.sweep(ctx, "daily")
		}
	}
}

func (s *StatusSweeper) runPoll(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

// pollOnce runs the sweep when the current time falls inside the sweep
// window and today has not been handled by this trigger yet.
func (s *StatusSweeper) pollOnce(ctx context.Context) {
	now := s.clock.Now()
	tod := sinceMidnight(now)
	if tod < s.sweepAt || tod >= s.sweepAt+s.window {
		return
	}

	today := dateOf(now)
	s.mu.Lock()
	done := s.lastProcessed.Equal(today)
	s.mu.Unlock()
	if done {
		return
	}

	if !s.sweep(ctx, "poll") {
		return
	}

	s.mu.Lock()
	s.lastProcessed = today
	s.mu.Unlock()
}

func (s *StatusSweeper) sweep(ctx context.Context, trigger string) bool {
	count, err := s.facade.CompleteDueOrders(ctx)
	if err != nil {
		s.logger.Error("status sweep failed",
			slog.String("trigger", trigger),
			slog.String("error", err.Error()),
		)
		return false
	}

	s.logger.Info("status sweep finished",
		slog.String("trigger", trigger),
		slog.Int("completed", count),
	)
	return true
}

// untilNext computes the wait until the next occurrence of the given
// time of day, always in the future.
func untilNext(now time.Time, at time.Duration) time.Duration {
	next := dateOf(now).Add(at)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}

func sinceMidnight(t time.Time) time.Duration {
	return t.Sub(dateOf(t))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
