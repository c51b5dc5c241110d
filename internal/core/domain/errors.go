package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrSeatUnavailable = errors.New("seat unavailable")
	ErrInvalidArgument = errors.New("invalid argument")
)

// SeatUnavailableError names the seat that stopped a booking.
type SeatUnavailableError struct {
	SeatID uuid.UUID
	Label  string
	Reason string
}

func (e *SeatUnavailableError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("seat %s (%s) is not available: %s", e.Label, e.SeatID, e.Reason)
	}
	return fmt.Sprintf("seat %s is not available: %s", e.SeatID, e.Reason)
}

func (e *SeatUnavailableError) Is(target error) bool {
	return target == ErrSeatUnavailable
}
