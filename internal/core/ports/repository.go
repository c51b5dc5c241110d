package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/core/domain"
)

// ConcertRepository lookups that find nothing return (nil, false), not an error.
type ConcertRepository interface {
	AddConcert(concert *domain.Concert) error
	FindByID(id uuid.UUID) (*domain.Concert, bool)
	FindAll() []*domain.Concert
	SearchByArtist(artist string) []*domain.Concert
	SearchByVenue(venue string) []*domain.Concert
}

type BookingRepository interface {
	AddBooking(booking *domain.Booking) error
	FindByID(id uuid.UUID) (*domain.Booking, bool)
	FindAll() []*domain.Booking
	FindByUserID(userID uuid.UUID) ([]*domain.Booking, error)
	DeleteBooking(id uuid.UUID) error
}

type UserRepository interface {
	AddUser(user *domain.User) error
	FindByID(id uuid.UUID) (*domain.User, bool)
}

// SeatCache keeps availability snapshots per concert.
type SeatCache interface {
	Get(ctx context.Context, concertID uuid.UUID) ([]domain.SeatView, bool, error)
	Set(ctx context.Context, concertID uuid.UUID, seats []domain.SeatView) error
	Invalidate(ctx context.Context, concertID uuid.UUID) error
}

type EventPublisher interface {
	BookingConfirmed(ctx context.Context, booking *domain.Booking) error
	BookingCancelled(ctx context.Context, booking *domain.Booking) error
}
