package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func NewRouter(h *BookingHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/concerts", h.ListConcerts)
	e.GET("/concerts/:id/seats", h.GetSeats)
	e.POST("/bookings", h.CreateBooking)
	e.GET("/bookings", h.ListBookings)
	e.DELETE("/bookings/:id", h.CancelBooking)

	return e
}
