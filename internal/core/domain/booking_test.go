package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking_TotalIsSumOfSeatPrices(t *testing.T) {
	a1 := domain.NewSeat(uuid.New(), "A1", domain.SeatRegular, 50)
	b1 := domain.NewSeat(uuid.New(), "B1", domain.SeatPremium, 80)
	concert, err := domain.NewConcert(uuid.New(), "Band X", "Venue A", time.Now(), []*domain.Seat{a1, b1})
	require.NoError(t, err)

	booking := domain.NewBooking(uuid.New(), concert, []*domain.Seat{a1, b1})

	assert.Equal(t, 130.0, booking.TotalPrice)
	assert.Equal(t, domain.BookingPending, booking.Status())
	assert.Equal(t, []uuid.UUID{a1.ID, b1.ID}, booking.SeatIDs())
}

func TestBooking_Lifecycle(t *testing.T) {
	booking := domain.NewBooking(uuid.New(), nil, nil)

	assert.True(t, booking.Confirm())
	assert.False(t, booking.Confirm(), "confirm is only valid from pending")
	assert.Equal(t, domain.BookingConfirmed, booking.Status())

	assert.True(t, booking.Cancel())
	assert.False(t, booking.Cancel())
	assert.Equal(t, domain.BookingCancelled, booking.Status())
	assert.False(t, booking.Confirm())
}

func TestBooking_CancelFromPending(t *testing.T) {
	booking := domain.NewBooking(uuid.New(), nil, nil)

	assert.True(t, booking.Cancel())
	assert.Equal(t, domain.BookingCancelled, booking.Status())
}

func TestNewConcert_RejectsDuplicateSeats(t *testing.T) {
	id := uuid.New()
	seats := []*domain.Seat{
		domain.NewSeat(id, "A1", domain.SeatRegular, 50),
		domain.NewSeat(id, "A2", domain.SeatRegular, 50),
	}

	_, err := domain.NewConcert(uuid.New(), "Band X", "Venue A", time.Now(), seats)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestConcert_SeatLookup(t *testing.T) {
	a1 := domain.NewSeat(uuid.New(), "A1", domain.SeatRegular, 50)
	concert, err := domain.NewConcert(uuid.New(), "Band X", "Venue A", time.Now(), []*domain.Seat{a1})
	require.NoError(t, err)

	seat, ok := concert.Seat(a1.ID)
	assert.True(t, ok)
	assert.Same(t, a1, seat)

	_, ok = concert.Seat(uuid.New())
	assert.False(t, ok)

	seat, ok = concert.SeatByLabel("A1")
	assert.True(t, ok)
	assert.Same(t, a1, seat)
}

func TestSeatUnavailableError_MatchesSentinel(t *testing.T) {
	var err error = &domain.SeatUnavailableError{SeatID: uuid.New(), Label: "A1", Reason: "already booked"}

	assert.True(t, errors.Is(err, domain.ErrSeatUnavailable))
	assert.False(t, errors.Is(err, domain.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "A1")
}

func TestBooking_ZeroValueIsPending(t *testing.T) {
	booking := &domain.Booking{ID: uuid.New()}

	assert.Equal(t, domain.BookingPending, booking.Status())
	assert.Empty(t, booking.SeatIDs())
	assert.True(t, booking.Confirm())
	assert.True(t, booking.Cancel())
}
