package domain

import (
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

type SeatStatus int32

const (
	SeatAvailable SeatStatus = iota
	SeatReserved
	SeatBooked
)

func (s SeatStatus) String() string {
	switch s {
	case SeatAvailable:
		return "AVAILABLE"
	case SeatReserved:
		return "RESERVED"
	case SeatBooked:
		return "BOOKED"
	default:
		return "UNKNOWN"
	}
}

type SeatType string

const (
	SeatRegular SeatType = "REGULAR"
	SeatPremium SeatType = "PREMIUM"
	SeatVIP     SeatType = "VIP"
)

// Seat is a single sellable place of a concert. Only its status is mutable,
// and only through the transition methods below. The zero status is
// SeatAvailable.
type Seat struct {
	ID     uuid.UUID
	Label  string
	Tier   SeatType
	Price  float64
	status atomic.Int32
}

func NewSeat(id uuid.UUID, label string, tier SeatType, price float64) *Seat {
	return &Seat{
		ID:    id,
		Label: label,
		Tier:  tier,
		Price: price,
	}
}

func (s *Seat) Status() SeatStatus {
	return SeatStatus(s.status.Load())
}

func (s *Seat) IsAvailable() bool {
	return s.Status() == SeatAvailable
}

// transition moves the seat from one status to another only if the seat is
// currently in the source status. It never blocks.
func (s *Seat) transition(from, to SeatStatus) bool {
	return s.status.CompareAndSwap(int32(from), int32(to))
}

// Book moves an available seat to booked.
func (s *Seat) Book() bool {
	return s.transition(SeatAvailable, SeatBooked)
}

// Reserve puts a temporary hold on an available seat.
func (s *Seat) Reserve() bool {
	return s.transition(SeatAvailable, SeatReserved)
}

// Unreserve drops a hold.
func (s *Seat) Unreserve() bool {
	return s.transition(SeatReserved, SeatAvailable)
}

// Release turns a booked seat back into a held one.
func (s *Seat) Release() bool {
	return s.transition(SeatBooked, SeatReserved)
}

// Free returns a booked seat straight to available. Cancellation and
// rollback of a partial acquisition use it.
func (s *Seat) Free() bool {
	return s.transition(SeatBooked, SeatAvailable)
}

// View returns a point-in-time copy of the seat.
func (s *Seat) View() SeatView {
	return SeatView{
		ID:     s.ID.String(),
		Label:  s.Label,
		Tier:   string(s.Tier),
		Price:  s.Price,
		Status: s.Status().String(),
	}
}

type SeatView struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Tier   string  `json:"tier"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}
