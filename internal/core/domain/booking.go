package domain

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

type BookingStatus int32

const (
	BookingPending BookingStatus = iota
	BookingConfirmed
	BookingCancelled
)

func (s BookingStatus) String() string {
	switch s {
	case BookingPending:
		return "PENDING"
	case BookingConfirmed:
		return "CONFIRMED"
	case BookingCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Booking references seats it does not own. Price and seat set are fixed at
// creation; only the status changes afterwards. The zero status is
// BookingPending.
type Booking struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Concert    *Concert
	TotalPrice float64
	CreatedAt  time.Time
	seats      []*Seat
	status     atomic.Int32
}

// NewBooking creates a pending booking whose total is the sum of the seat
// prices at this moment.
func NewBooking(userID uuid.UUID, concert *Concert, seats []*Seat) *Booking {
	held := make([]*Seat, len(seats))
	copy(held, seats)

	var total float64
	for _, seat := range held {
		total += seat.Price
	}

	return &Booking{
		ID:         uuid.New(),
		UserID:     userID,
		Concert:    concert,
		TotalPrice: total,
		CreatedAt:  time.Now(),
		seats:      held,
	}
}

func (b *Booking) Status() BookingStatus {
	return BookingStatus(b.status.Load())
}

func (b *Booking) Seats() []*Seat {
	out := make([]*Seat, len(b.seats))
	copy(out, b.seats)
	return out
}

func (b *Booking) SeatIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.seats))
	for _, seat := range b.seats {
		ids = append(ids, seat.ID)
	}
	return ids
}

// Confirm succeeds only from pending.
func (b *Booking) Confirm() bool {
	return b.status.CompareAndSwap(int32(BookingPending), int32(BookingConfirmed))
}

// Cancel flips the booking to cancelled and reports whether it changed
// anything. Cancelled is absorbing, so a second call returns false.
func (b *Booking) Cancel() bool {
	for {
		current := b.status.Load()
		if BookingStatus(current) == BookingCancelled {
			return false
		}
		if b.status.CompareAndSwap(current, int32(BookingCancelled)) {
			return true
		}
	}
}
