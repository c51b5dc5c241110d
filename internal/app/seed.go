package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/core/domain"
)

// Demo holds the seeded records.
type Demo struct {
	Alice   *domain.User
	Bob     *domain.User
	BandX   *domain.Concert
	SingerY *domain.Concert
}

func (s *System) Seed(now time.Time) (*Demo, error) {
	alice := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	bob := &domain.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}
	for _, user := range []*domain.User{alice, bob} {
		if err := s.Users.AddUser(user); err != nil {
			return nil, fmt.Errorf("seeding user %s: %w", user.Name, err)
		}
	}

	bandX, err := domain.NewConcert(uuid.New(), "Band X", "Venue A", now.AddDate(0, 0, 7), []*domain.Seat{
		domain.NewSeat(uuid.New(), "A1", domain.SeatRegular, 50),
		domain.NewSeat(uuid.New(), "A2", domain.SeatRegular, 50),
		domain.NewSeat(uuid.New(), "B1", domain.SeatPremium, 80),
		domain.NewSeat(uuid.New(), "C1", domain.SeatVIP, 120),
	})
	if err != nil {
		return nil, err
	}

	singerY, err := domain.NewConcert(uuid.New(), "Singer Y", "Venue B", now.AddDate(0, 0, 14), []*domain.Seat{
		domain.NewSeat(uuid.New(), "D1", domain.SeatRegular, 40),
		domain.NewSeat(uuid.New(), "D2", domain.SeatRegular, 40),
	})
	if err != nil {
		return nil, err
	}

	for _, concert := range []*domain.Concert{bandX, singerY} {
		if err := s.Concerts.AddConcert(concert); err != nil {
			return nil, fmt.Errorf("seeding concert %s: %w", concert.Artist, err)
		}
	}

	return &Demo{Alice: alice, Bob: bob, BandX: bandX, SingerY: singerY}, nil
}
