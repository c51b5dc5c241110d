package services

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/srgjo27/concert_booking/internal/core/ports"
)

// LockFreeEngine books seats with per-seat compare-and-swap only. A request
// that loses any seat hands back the seats it already took.
type LockFreeEngine struct {
	engineDeps
}

func NewLockFreeEngine(concertRepo ports.ConcertRepository, bookingRepo ports.BookingRepository, userRepo ports.UserRepository, opts ...Option) *LockFreeEngine {
	return &LockFreeEngine{
		engineDeps: newEngineDeps(StrategyLockFree, concertRepo, bookingRepo, userRepo, opts),
	}
}

func (e *LockFreeEngine) Strategy() string {
	return StrategyLockFree
}

func (e *LockFreeEngine) BookSeats(ctx context.Context, userID, concertID uuid.UUID, seatIDs []uuid.UUID) (*domain.Booking, error) {
	concert, seats, err := e.resolve(userID, concertID, seatIDs)
	if err != nil {
		return nil, err
	}

	// Ascending id order keeps contention between overlapping requests
	// deterministic.
	ordered := slices.Clone(seats)
	slices.SortFunc(ordered, func(a, b *domain.Seat) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	acquired := make([]*domain.Seat, 0, len(ordered))
	for _, seat := range ordered {
		if !seat.Book() {
			e.rollback(acquired)
			return nil, &domain.SeatUnavailableError{
				SeatID: seat.ID,
				Label:  seat.Label,
				Reason: "already taken",
			}
		}
		acquired = append(acquired, seat)
	}

	booking := domain.NewBooking(userID, concert, seats)
	booking.Confirm()

	if err := e.bookingRepo.AddBooking(booking); err != nil {
		e.rollback(acquired)
		return nil, fmt.Errorf("storing booking: %w", err)
	}

	e.afterBooked(ctx, booking)

	return booking, nil
}

func (e *LockFreeEngine) rollback(acquired []*domain.Seat) {
	for _, seat := range acquired {
		e.freeSeat(seat)
	}
}

// CancelBooking frees the booking's seats only if this call is the one that
// moved the booking to cancelled.
func (e *LockFreeEngine) CancelBooking(ctx context.Context, bookingID uuid.UUID) bool {
	booking, ok := e.bookingRepo.FindByID(bookingID)
	if !ok {
		return false
	}

	if !booking.Cancel() {
		return false
	}

	for _, seat := range booking.Seats() {
		e.freeSeat(seat)
	}

	e.afterCancelled(ctx, booking)

	return true
}
