package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/srgjo27/concert_booking/internal/core/domain"
)

const (
	TopicBookingConfirmed = "BookingConfirmed"
	TopicBookingCancelled = "BookingCancelled"
)

type Header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewHeader() Header {
	return Header{
		ID:          watermill.NewUUID(),
		PublishedAt: time.Now().UTC(),
	}
}

type BookingConfirmed struct {
	Header     Header   `json:"header"`
	BookingID  string   `json:"booking_id"`
	UserID     string   `json:"user_id"`
	ConcertID  string   `json:"concert_id"`
	SeatIDs    []string `json:"seat_ids"`
	TotalPrice float64  `json:"total_price"`
}

type BookingCancelled struct {
	Header    Header   `json:"header"`
	BookingID string   `json:"booking_id"`
	UserID    string   `json:"user_id"`
	ConcertID string   `json:"concert_id"`
	SeatIDs   []string `json:"seat_ids"`
}

func NewBookingConfirmed(booking *domain.Booking) BookingConfirmed {
	return BookingConfirmed{
		Header:     NewHeader(),
		BookingID:  booking.ID.String(),
		UserID:     booking.UserID.String(),
		ConcertID:  concertID(booking),
		SeatIDs:    seatIDs(booking),
		TotalPrice: booking.TotalPrice,
	}
}

func NewBookingCancelled(booking *domain.Booking) BookingCancelled {
	return BookingCancelled{
		Header:    NewHeader(),
		BookingID: booking.ID.String(),
		UserID:    booking.UserID.String(),
		ConcertID: concertID(booking),
		SeatIDs:   seatIDs(booking),
	}
}

func concertID(booking *domain.Booking) string {
	if booking.Concert == nil {
		return ""
	}
	return booking.Concert.ID.String()
}

func seatIDs(booking *domain.Booking) []string {
	ids := make([]string, 0)
	for _, id := range booking.SeatIDs() {
		ids = append(ids, id.String())
	}
	return ids
}
