package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/srgjo27/concert_booking/internal/core/services"
)

type CreateBookingRequest struct {
	UserID    string   `json:"user_id"`
	ConcertID string   `json:"concert_id"`
	SeatIDs   []string `json:"seat_ids"`
}

type BookingResponse struct {
	BookingID  string   `json:"booking_id"`
	UserID     string   `json:"user_id"`
	ConcertID  string   `json:"concert_id"`
	SeatIDs    []string `json:"seat_ids"`
	TotalPrice float64  `json:"total_price"`
	Status     string   `json:"status"`
}

type ConcertResponse struct {
	ID       string `json:"id"`
	Artist   string `json:"artist"`
	Venue    string `json:"venue"`
	StartsAt string `json:"starts_at"`
}

type BookingHandler struct {
	engine   services.BookingEngine
	catalog  *services.CatalogService
	bookings BookingFinder
}

// BookingFinder is the read side of the booking store the handler needs.
type BookingFinder interface {
	FindAll() []*domain.Booking
	FindByUserID(userID uuid.UUID) ([]*domain.Booking, error)
}

func NewBookingHandler(engine services.BookingEngine, catalog *services.CatalogService, bookings BookingFinder) *BookingHandler {
	return &BookingHandler{engine: engine, catalog: catalog, bookings: bookings}
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json body")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	concertID, err := uuid.Parse(req.ConcertID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid concert id")
	}

	seatIDs := make([]uuid.UUID, 0, len(req.SeatIDs))
	for _, raw := range req.SeatIDs {
		seatID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid seat id %q", raw))
		}
		seatIDs = append(seatIDs, seatID)
	}

	booking, err := h.engine.BookSeats(c.Request().Context(), userID, concertID, seatIDs)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, newBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	if !h.engine.CancelBooking(c.Request().Context(), bookingID) {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found or already cancelled")
	}

	return c.JSON(http.StatusOK, map[string]bool{"cancelled": true})
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	var bookings []*domain.Booking

	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
		}

		bookings, err = h.bookings.FindByUserID(userID)
		if err != nil {
			return mapError(err)
		}
	} else {
		bookings = h.bookings.FindAll()
	}

	resp := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, newBookingResponse(booking))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListConcerts(c echo.Context) error {
	var concerts []*domain.Concert

	switch {
	case c.QueryParam("artist") != "":
		concerts = h.catalog.SearchByArtist(c.QueryParam("artist"))
	case c.QueryParam("venue") != "":
		concerts = h.catalog.SearchByVenue(c.QueryParam("venue"))
	default:
		concerts = h.catalog.ListConcerts()
	}

	resp := make([]ConcertResponse, 0, len(concerts))
	for _, concert := range concerts {
		resp = append(resp, ConcertResponse{
			ID:       concert.ID.String(),
			Artist:   concert.Artist,
			Venue:    concert.Venue,
			StartsAt: concert.StartsAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetSeats(c echo.Context) error {
	concertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid concert id")
	}

	seats, err := h.catalog.AvailableSeats(c.Request().Context(), concertID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return mapError(err)
	}

	return c.JSON(http.StatusOK, seats)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSeatUnavailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}
}

func newBookingResponse(booking *domain.Booking) BookingResponse {
	seatIDs := make([]string, 0)
	for _, id := range booking.SeatIDs() {
		seatIDs = append(seatIDs, id.String())
	}

	resp := BookingResponse{
		BookingID:  booking.ID.String(),
		UserID:     booking.UserID.String(),
		SeatIDs:    seatIDs,
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status().String(),
	}
	if booking.Concert != nil {
		resp.ConcertID = booking.Concert.ID.String()
	}

	return resp
}
