package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/srgjo27/concert_booking/internal/core/ports"
)

// MutexEngine runs every book and cancel inside one system-wide critical
// section. Reads do not take the lock.
type MutexEngine struct {
	engineDeps
	mu sync.Mutex
}

func NewMutexEngine(concertRepo ports.ConcertRepository, bookingRepo ports.BookingRepository, userRepo ports.UserRepository, opts ...Option) *MutexEngine {
	return &MutexEngine{
		engineDeps: newEngineDeps(StrategyMutex, concertRepo, bookingRepo, userRepo, opts),
	}
}

func (e *MutexEngine) Strategy() string {
	return StrategyMutex
}

func (e *MutexEngine) BookSeats(ctx context.Context, userID, concertID uuid.UUID, seatIDs []uuid.UUID) (*domain.Booking, error) {
	booking, err := e.book(userID, concertID, seatIDs)
	if err != nil {
		return nil, err
	}

	e.afterBooked(ctx, booking)

	return booking, nil
}

func (e *MutexEngine) book(userID, concertID uuid.UUID, seatIDs []uuid.UUID) (*domain.Booking, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	concert, seats, err := e.resolve(userID, concertID, seatIDs)
	if err != nil {
		return nil, err
	}

	for _, seat := range seats {
		if !seat.IsAvailable() {
			return nil, &domain.SeatUnavailableError{
				SeatID: seat.ID,
				Label:  seat.Label,
				Reason: "status is " + seat.Status().String(),
			}
		}
	}

	acquired := make([]*domain.Seat, 0, len(seats))
	for _, seat := range seats {
		if !seat.Book() {
			// Only possible if something outside this engine mutated the seat.
			e.release(acquired)
			return nil, &domain.SeatUnavailableError{SeatID: seat.ID, Label: seat.Label, Reason: "changed concurrently"}
		}
		acquired = append(acquired, seat)
	}

	booking := domain.NewBooking(userID, concert, seats)
	booking.Confirm()

	if err := e.bookingRepo.AddBooking(booking); err != nil {
		e.release(acquired)
		return nil, fmt.Errorf("storing booking: %w", err)
	}

	return booking, nil
}

func (e *MutexEngine) release(seats []*domain.Seat) {
	for _, seat := range seats {
		e.freeSeat(seat)
	}
}

func (e *MutexEngine) CancelBooking(ctx context.Context, bookingID uuid.UUID) bool {
	booking, ok := e.cancel(bookingID)
	if !ok {
		return false
	}

	e.afterCancelled(ctx, booking)

	return true
}

func (e *MutexEngine) cancel(bookingID uuid.UUID) (*domain.Booking, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	booking, ok := e.bookingRepo.FindByID(bookingID)
	if !ok || !booking.Cancel() {
		return nil, false
	}

	e.release(booking.Seats())

	return booking, true
}
