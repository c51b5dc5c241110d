package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Concert struct {
	ID       uuid.UUID
	Artist   string
	Venue    string
	StartsAt time.Time
	seats    []*Seat
	index    map[uuid.UUID]*Seat
}

// NewConcert builds a concert owning the given seats. Seat ids must be
// unique within the concert.
func NewConcert(id uuid.UUID, artist, venue string, startsAt time.Time, seats []*Seat) (*Concert, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: concert id is empty", ErrInvalidArgument)
	}

	owned := make([]*Seat, 0, len(seats))
	index := make(map[uuid.UUID]*Seat, len(seats))
	for _, seat := range seats {
		if seat == nil || seat.ID == uuid.Nil {
			return nil, fmt.Errorf("%w: concert %s has a seat without id", ErrInvalidArgument, id)
		}
		if _, ok := index[seat.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate seat %s on concert %s", ErrInvalidArgument, seat.ID, id)
		}
		index[seat.ID] = seat
		owned = append(owned, seat)
	}

	return &Concert{
		ID:       id,
		Artist:   artist,
		Venue:    venue,
		StartsAt: startsAt,
		seats:    owned,
		index:    index,
	}, nil
}

// Seats returns the seats in their original order. The slice is a copy; the
// seats are shared.
func (c *Concert) Seats() []*Seat {
	out := make([]*Seat, len(c.seats))
	copy(out, c.seats)
	return out
}

func (c *Concert) Seat(id uuid.UUID) (*Seat, bool) {
	seat, ok := c.index[id]
	return seat, ok
}

func (c *Concert) SeatByLabel(label string) (*Seat, bool) {
	for _, seat := range c.seats {
		if seat.Label == label {
			return seat, true
		}
	}
	return nil, false
}

func (c *Concert) SeatViews() []SeatView {
	views := make([]SeatView, 0, len(c.seats))
	for _, seat := range c.seats {
		views = append(views, seat.View())
	}
	return views
}
