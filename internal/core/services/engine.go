package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/srgjo27/concert_booking/internal/core/ports"
)

const (
	StrategyLockFree = "lockfree"
	StrategyMutex    = "mutex"
)

// BookingEngine acquires seats for bookings and releases them on cancel.
// Implementations differ only in how they keep two buyers off one seat.
type BookingEngine interface {
	// BookSeats either books every requested seat or none of them. Errors
	// match domain.ErrSeatUnavailable or domain.ErrInvalidArgument.
	BookSeats(ctx context.Context, userID, concertID uuid.UUID, seatIDs []uuid.UUID) (*domain.Booking, error)
	// CancelBooking reports whether a live booking was cancelled by this call.
	CancelBooking(ctx context.Context, bookingID uuid.UUID) bool
	Strategy() string
}

type Option func(*engineDeps)

func WithSeatCache(cache ports.SeatCache) Option {
	return func(d *engineDeps) { d.cache = cache }
}

func WithEventPublisher(events ports.EventPublisher) Option {
	return func(d *engineDeps) { d.events = events }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(d *engineDeps) { d.logger = logger }
}

// NewEngine builds the engine for the named strategy.
func NewEngine(strategy string, concertRepo ports.ConcertRepository, bookingRepo ports.BookingRepository, userRepo ports.UserRepository, opts ...Option) (BookingEngine, error) {
	switch strategy {
	case StrategyLockFree:
		return NewLockFreeEngine(concertRepo, bookingRepo, userRepo, opts...), nil
	case StrategyMutex:
		return NewMutexEngine(concertRepo, bookingRepo, userRepo, opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown booking strategy %q", domain.ErrInvalidArgument, strategy)
	}
}

type engineDeps struct {
	concertRepo ports.ConcertRepository
	bookingRepo ports.BookingRepository
	userRepo    ports.UserRepository
	cache       ports.SeatCache
	events      ports.EventPublisher
	logger      logrus.FieldLogger
}

func newEngineDeps(strategy string, concertRepo ports.ConcertRepository, bookingRepo ports.BookingRepository, userRepo ports.UserRepository, opts []Option) engineDeps {
	deps := engineDeps{
		concertRepo: concertRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	deps.logger = deps.logger.WithField("strategy", strategy)

	return deps
}

// resolve validates a request and maps seat ids to the concert's seats
// without changing any state.
func (d *engineDeps) resolve(userID, concertID uuid.UUID, seatIDs []uuid.UUID) (*domain.Concert, []*domain.Seat, error) {
	if userID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: user id is empty", domain.ErrInvalidArgument)
	}
	if d.userRepo != nil {
		if _, ok := d.userRepo.FindByID(userID); !ok {
			return nil, nil, fmt.Errorf("%w: user %s not found", domain.ErrInvalidArgument, userID)
		}
	}

	if concertID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: concert id is empty", domain.ErrInvalidArgument)
	}
	concert, ok := d.concertRepo.FindByID(concertID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: concert %s not found", domain.ErrInvalidArgument, concertID)
	}

	if len(seatIDs) == 0 {
		return nil, nil, fmt.Errorf("%w: no seats selected", domain.ErrInvalidArgument)
	}

	seen := make(map[uuid.UUID]struct{}, len(seatIDs))
	seats := make([]*domain.Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		if id == uuid.Nil {
			return nil, nil, fmt.Errorf("%w: seat id is empty", domain.ErrInvalidArgument)
		}
		if _, dup := seen[id]; dup {
			return nil, nil, fmt.Errorf("%w: seat %s requested twice", domain.ErrInvalidArgument, id)
		}
		seen[id] = struct{}{}

		seat, ok := concert.Seat(id)
		if !ok {
			return nil, nil, &domain.SeatUnavailableError{SeatID: id, Reason: "not found on concert"}
		}
		seats = append(seats, seat)
	}

	return concert, seats, nil
}

// freeSeat returns a booked seat to available. Nothing else may move a seat
// out of booked, so a failure means the seat state is corrupt.
func (d *engineDeps) freeSeat(seat *domain.Seat) {
	if seat.Free() {
		return
	}

	d.logger.WithFields(logrus.Fields{
		"seat_id":    seat.ID,
		"seat_label": seat.Label,
		"status":     seat.Status(),
	}).Error("seat state inconsistency")
}

func (d *engineDeps) bookingLogger(booking *domain.Booking) logrus.FieldLogger {
	fields := logrus.Fields{
		"booking_id": booking.ID,
		"user_id":    booking.UserID,
	}
	if booking.Concert != nil {
		fields["concert_id"] = booking.Concert.ID
	}

	return d.logger.WithFields(fields)
}

// afterBooked runs the side effects of a committed booking. Their failures
// are logged and never undo the booking.
func (d *engineDeps) afterBooked(ctx context.Context, booking *domain.Booking) {
	logger := d.bookingLogger(booking)
	logger.WithField("total_price", booking.TotalPrice).Debug("booking confirmed")

	d.invalidate(ctx, booking, logger)

	if d.events != nil {
		if err := d.events.BookingConfirmed(ctx, booking); err != nil {
			logger.WithError(err).Warn("failed to publish booking confirmed event")
		}
	}
}

func (d *engineDeps) afterCancelled(ctx context.Context, booking *domain.Booking) {
	logger := d.bookingLogger(booking)
	logger.Debug("booking cancelled")

	d.invalidate(ctx, booking, logger)

	if d.events != nil {
		if err := d.events.BookingCancelled(ctx, booking); err != nil {
			logger.WithError(err).Warn("failed to publish booking cancelled event")
		}
	}
}

func (d *engineDeps) invalidate(ctx context.Context, booking *domain.Booking, logger logrus.FieldLogger) {
	if d.cache == nil || booking.Concert == nil {
		return
	}

	if err := d.cache.Invalidate(ctx, booking.Concert.ID); err != nil {
		logger.WithError(err).Warn("failed to invalidate seat cache")
	}
}
