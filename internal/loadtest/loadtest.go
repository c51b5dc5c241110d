// Package loadtest races many booking attempts against one seat to check
// that exactly one of them wins.
package loadtest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/srgjo27/concert_booking/internal/core/services"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// ErrTimeout means the workers did not all finish in time. It says nothing
// about the state of any booking or seat.
var ErrTimeout = errors.New("load test timed out")

type Target struct {
	UserID    uuid.UUID
	ConcertID uuid.UUID
	SeatID    uuid.UUID
}

type Options struct {
	Workers int
	Timeout time.Duration
}

type Report struct {
	Strategy    string
	Attempts    int
	Successes   int64
	Unavailable int64
	Failed      int64
	Duration    time.Duration
	TimedOut    bool
}

type counters struct {
	successes   atomic.Int64
	unavailable atomic.Int64
	failed      atomic.Int64
}

// Run starts opts.Workers goroutines, releases them together and has each
// try to book the target seat once.
func Run(ctx context.Context, engine services.BookingEngine, target Target, opts Options, logger logrus.FieldLogger) (Report, error) {
	if opts.Workers <= 0 {
		return Report{}, fmt.Errorf("%w: workers must be positive", domain.ErrInvalidArgument)
	}
	if opts.Timeout <= 0 {
		return Report{}, fmt.Errorf("%w: timeout must be positive", domain.ErrInvalidArgument)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithFields(logrus.Fields{
		"strategy": engine.Strategy(),
		"seat_id":  target.SeatID,
	})

	runCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	var c counters
	start := make(chan struct{})
	g, workerCtx := errgroup.WithContext(runCtx)

	for i := 0; i < opts.Workers; i++ {
		worker := i
		g.Go(func() error {
			<-start
			attempt(workerCtx, engine, target, logger.WithField("worker", worker), &c)
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	began := time.Now()
	close(start)

	var timedOut bool
	select {
	case <-done:
	case <-runCtx.Done():
		timedOut = true
	}

	report := Report{
		Strategy:    engine.Strategy(),
		Attempts:    opts.Workers,
		Successes:   c.successes.Load(),
		Unavailable: c.unavailable.Load(),
		Failed:      c.failed.Load(),
		Duration:    time.Since(began),
		TimedOut:    timedOut,
	}

	if timedOut {
		return report, fmt.Errorf("%w after %s", ErrTimeout, opts.Timeout)
	}

	return report, nil
}

func attempt(ctx context.Context, engine services.BookingEngine, target Target, logger logrus.FieldLogger, c *counters) {
	logger.Debug("attempting to book seat")

	booking, err := engine.BookSeats(ctx, target.UserID, target.ConcertID, []uuid.UUID{target.SeatID})
	switch {
	case err == nil:
		c.successes.Inc()
		logger.WithField("booking_id", booking.ID).Debug("booked successfully")
	case errors.Is(err, domain.ErrSeatUnavailable):
		c.unavailable.Inc()
		logger.WithError(err).Debug("failed to book")
	default:
		c.failed.Inc()
		logger.WithError(err).Warn("booking attempt errored")
	}
}
