package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
)

func newTestServer(t *testing.T) (*Server, *booking.Store) {
	t.Helper()

	store := booking.NewStore(filepath.Join(t.TempDir(), "bookings.json"))
	cat := catalog.FromRooms([]catalog.Room{
		{Code: "SUNSET_TWIN", Name: "Sunset Twin Room", ShortType: "Twin", Price: 190, Floor: catalog.FloorLow, RoomNumber: "101"},
		{Code: "CORAL_SUITE", Name: "Coral Family Suite", ShortType: "Suite", Price: 260, Floor: catalog.FloorHigh, RoomNumber: "501"},
	})

	srv := New(0, store, cat)
	srv.sseClients = make(map[chan string]struct{})
	return srv, store
}

func seedBooking(t *testing.T, store *booking.Store) string {
	t.Helper()

	code, err := store.Create(context.Background(), booking.Draft{
		FirstName: "Mia", LastName: "Tanaka",
		Email: "mia@example.com", Phone: "81234567",
		Adults: 2, Children: 0,
		RoomType: "Suite", RoomName: "Coral Family Suite", RoomNumber: "501",
		CheckIn: "2026-09-10", CheckOut: "2026-09-12", Nights: 2,
		TotalPrice: 572.0, PaymentLast4: "4242",
	})
	assert.NoError(t, err)
	return code
}

func TestGetBookings(t *testing.T) {
	srv, store := newTestServer(t)
	code := seedBooking(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp BookingsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Confirmed)
	assert.Equal(t, 0, resp.Cancelled)
	assert.Equal(t, 1, len(resp.Bookings))
	assert.Equal(t, code, resp.Bookings[0].ConfirmationCode)
}

func TestGetBookingsStatusFilter(t *testing.T) {
	srv, store := newTestServer(t)
	code := seedBooking(t, store)

	_, err := store.Cancel(context.Background(), "Tanaka", code)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=Confirmed", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var resp BookingsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, len(resp.Bookings))
	assert.Equal(t, 1, resp.Cancelled)
}

func TestGetRooms(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp RoomsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]int{"Twin": 1, "Suite": 1}, resp.Capacity)
	assert.False(t, resp.Fallback)
}

func TestGetAvailability(t *testing.T) {
	srv, store := newTestServer(t)
	seedBooking(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/availability?check_in=2026-09-11&check_out=2026-09-13", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"501"}, resp.Unavailable)
}

func TestGetAvailabilityRequiresDates(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
