package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/srgjo27/concert_booking/internal/adapter/handler"
	"github.com/srgjo27/concert_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/srgjo27/concert_booking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router  *echo.Echo
	concert *domain.Concert
	a1      *domain.Seat
	b1      *domain.Seat
	user    uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	concerts := memory.NewConcertRepository()
	bookings := memory.NewBookingRepository()
	users := memory.NewUserRepository()

	user := &domain.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, users.AddUser(user))

	a1 := domain.NewSeat(uuid.New(), "A1", domain.SeatRegular, 50)
	b1 := domain.NewSeat(uuid.New(), "B1", domain.SeatPremium, 80)
	concert, err := domain.NewConcert(uuid.New(), "Band X", "Venue A", time.Now(), []*domain.Seat{a1, b1})
	require.NoError(t, err)
	require.NoError(t, concerts.AddConcert(concert))

	engine := services.NewLockFreeEngine(concerts, bookings, users)
	catalog := services.NewCatalogService(concerts, nil, nil)

	return &testServer{
		router:  handler.NewRouter(handler.NewBookingHandler(engine, catalog, bookings)),
		concert: concert,
		a1:      a1,
		b1:      b1,
		user:    user.ID,
	}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) bookingBody(seats ...*domain.Seat) string {
	ids := make([]string, 0, len(seats))
	for _, seat := range seats {
		ids = append(ids, fmt.Sprintf("%q", seat.ID))
	}
	return fmt.Sprintf(`{"user_id":%q,"concert_id":%q,"seat_ids":[%s]}`, s.user, s.concert.ID, strings.Join(ids, ","))
}

func TestCreateBooking_Success(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/bookings", s.bookingBody(s.a1, s.b1))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 130.0, resp.TotalPrice)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, s.concert.ID.String(), resp.ConcertID)
}

func TestCreateBooking_Conflict(t *testing.T) {
	s := newTestServer(t)
	require.True(t, s.b1.Book())

	rec := s.do(http.MethodPost, "/bookings", s.bookingBody(s.a1, s.b1))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "B1")
	assert.Equal(t, domain.SeatAvailable, s.a1.Status())
}

func TestCreateBooking_BadRequest(t *testing.T) {
	s := newTestServer(t)

	testCases := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"user_id":`},
		{name: "invalid user", body: fmt.Sprintf(`{"user_id":"nope","concert_id":%q,"seat_ids":[%q]}`, s.concert.ID, s.a1.ID)},
		{name: "invalid seat", body: fmt.Sprintf(`{"user_id":%q,"concert_id":%q,"seat_ids":["x"]}`, s.user, s.concert.ID)},
		{name: "no seats", body: fmt.Sprintf(`{"user_id":%q,"concert_id":%q,"seat_ids":[]}`, s.user, s.concert.ID)},
		{name: "unknown concert", body: fmt.Sprintf(`{"user_id":%q,"concert_id":%q,"seat_ids":[%q]}`, s.user, uuid.New(), s.a1.ID)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/bookings", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCancelBooking(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/bookings", s.bookingBody(s.a1))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = s.do(http.MethodDelete, "/bookings/"+resp.BookingID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SeatAvailable, s.a1.Status())

	rec = s.do(http.MethodDelete, "/bookings/"+resp.BookingID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/bookings/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBookings(t *testing.T) {
	s := newTestServer(t)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/bookings", s.bookingBody(s.a1)).Code)

	rec := s.do(http.MethodGet, "/bookings?user_id="+s.user.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []handler.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)

	rec = s.do(http.MethodGet, "/bookings?user_id="+uuid.NewString(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestListConcertsAndSeats(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/concerts?artist=Band+X", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var concerts []handler.ConcertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &concerts))
	require.Len(t, concerts, 1)
	assert.Equal(t, "Venue A", concerts[0].Venue)

	rec = s.do(http.MethodGet, "/concerts?venue=Venue+Z", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &concerts))
	assert.Empty(t, concerts)

	require.True(t, s.a1.Book())
	rec = s.do(http.MethodGet, "/concerts/"+s.concert.ID.String()+"/seats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var seats []domain.SeatView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &seats))
	require.Len(t, seats, 1)
	assert.Equal(t, "B1", seats[0].Label)

	rec = s.do(http.MethodGet, "/concerts/"+uuid.NewString()+"/seats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
