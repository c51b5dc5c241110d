package memory

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/core/domain"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[uuid.UUID]*domain.Booking)}
}

func (r *BookingRepository) AddBooking(booking *domain.Booking) error {
	if booking == nil {
		return fmt.Errorf("%w: booking is nil", domain.ErrInvalidArgument)
	}
	if booking.ID == uuid.Nil {
		return fmt.Errorf("%w: booking id is empty", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return fmt.Errorf("%w: booking %s already exists", domain.ErrInvalidArgument, booking.ID)
	}

	r.bookings[booking.ID] = booking

	return nil
}

func (r *BookingRepository) FindByID(id uuid.UUID) (*domain.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	return booking, ok
}

func (r *BookingRepository) FindAll() []*domain.Booking {
	return r.filter(func(*domain.Booking) bool { return true })
}

func (r *BookingRepository) FindByUserID(userID uuid.UUID) ([]*domain.Booking, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is empty", domain.ErrInvalidArgument)
	}

	return r.filter(func(b *domain.Booking) bool { return b.UserID == userID }), nil
}

func (r *BookingRepository) DeleteBooking(id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: booking id is empty", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("%w: booking %s does not exist", domain.ErrInvalidArgument, id)
	}

	delete(r.bookings, id)

	return nil
}

// filter returns matching bookings oldest first.
func (r *BookingRepository) filter(keep func(*domain.Booking) bool) []*domain.Booking {
	r.mu.RLock()
	bookings := make([]*domain.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		if keep(booking) {
			bookings = append(bookings, booking)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(bookings, func(a, b *domain.Booking) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return bookings
}
