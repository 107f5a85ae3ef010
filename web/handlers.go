package web

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/tvxk/coralbay/catalog"
)

// BookingsResponse is the JSON response for the bookings endpoint.
type BookingsResponse struct {
	Bookings  []BookingSummary `json:"bookings"`
	Confirmed int              `json:"confirmed"`
	Cancelled int              `json:"cancelled"`
}

// BookingSummary is a booking as exposed over the API. Guest contact details
// and payment data stay out of the viewer.
type BookingSummary struct {
	ConfirmationCode string  `json:"confirmation_code"`
	LastName         string  `json:"last_name"`
	RoomType         string  `json:"room_type"`
	RoomName         string  `json:"room_name"`
	RoomNumber       string  `json:"room_number,omitempty"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	Nights           int     `json:"nights"`
	TotalPrice       float64 `json:"total_price"`
	Status           string  `json:"status"`
}

// handleGetBookings handles GET /api/bookings.
//
// Query parameters:
//   - status: "Confirmed" or "Cancelled" to filter; omitted returns all.
func (s *Server) handleGetBookings(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")

	resp := BookingsResponse{Bookings: []BookingSummary{}}
	for _, rec := range s.store.LoadAll() {
		if rec.IsCancelled() {
			resp.Cancelled++
		} else {
			resp.Confirmed++
		}

		if statusFilter != "" && rec.Status != statusFilter {
			continue
		}

		resp.Bookings = append(resp.Bookings, BookingSummary{
			ConfirmationCode: rec.ConfirmationCode,
			LastName:         rec.LastName,
			RoomType:         rec.RoomType,
			RoomName:         rec.RoomName,
			RoomNumber:       rec.RoomNumber,
			CheckIn:          rec.CheckIn,
			CheckOut:         rec.CheckOut,
			Nights:           rec.Nights,
			TotalPrice:       rec.TotalPrice,
			Status:           rec.Status,
		})
	}

	writeJSON(w, resp)
}

// RoomsResponse is the JSON response for the rooms endpoint.
type RoomsResponse struct {
	Rooms    []catalog.Room `json:"rooms"`
	Capacity map[string]int `json:"capacity"`
	Fallback bool           `json:"fallback"`
}

// handleGetRooms handles GET /api/rooms.
func (s *Server) handleGetRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, RoomsResponse{
		Rooms:    s.catalog.Rooms(),
		Capacity: s.catalog.CapacityByType(),
		Fallback: s.catalog.IsFallback(),
	})
}

// AvailabilityResponse is the JSON response for the availability endpoint.
type AvailabilityResponse struct {
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	Unavailable []string `json:"unavailable_room_numbers"`
}

// handleGetAvailability handles GET /api/availability.
//
// Query parameters (both required, YYYY-MM-DD):
//   - check_in
//   - check_out
func (s *Server) handleGetAvailability(w http.ResponseWriter, r *http.Request) {
	checkIn := r.URL.Query().Get("check_in")
	checkOut := r.URL.Query().Get("check_out")
	if checkIn == "" || checkOut == "" {
		http.Error(w, "check_in and check_out are required", http.StatusBadRequest)
		return
	}

	blocked := s.store.UnavailableRoomNumbers(checkIn, checkOut)
	numbers := make([]string, 0, len(blocked))
	for n := range blocked {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)

	writeJSON(w, AvailabilityResponse{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Unavailable: numbers,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
