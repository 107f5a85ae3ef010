package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
	"github.com/tvxk/coralbay/pricing"
)

func testCatalog() *catalog.Catalog {
	return catalog.FromRooms([]catalog.Room{
		{Code: "SUNSET_TWIN", Name: "Sunset Twin Room", ShortType: "Twin", Price: 190, Floor: catalog.FloorLow, BreakfastAvailable: true, RoomNumber: "101"},
		{Code: "SEAVIEW_TWIN", Name: "Seaview Twin Room", ShortType: "Twin", Price: 210, Floor: catalog.FloorHigh, RoomNumber: "201"},
		{Code: "CLASSIC_DOUBLE", Name: "Classic King Room", ShortType: "Double", Price: 230, Floor: catalog.FloorLow, RoomNumber: "102"},
		{Code: "CORAL_SUITE", Name: "Coral Family Suite", ShortType: "Suite", Price: 260, Floor: catalog.FloorHigh, PetFriendly: true, BreakfastAvailable: true, ShuttleAvailable: true, RoomNumber: "501"},
	})
}

func newEngine(t *testing.T) (*Engine, *booking.Store) {
	t.Helper()
	store := booking.NewStore(filepath.Join(t.TempDir(), "bookings.json"))
	return NewEngine(store, testCatalog()), store
}

func mustStay(t *testing.T, checkIn, checkOut string) Stay {
	t.Helper()
	stay, err := StayBetween(checkIn, checkOut)
	assert.NoError(t, err)
	return stay
}

func codes(rooms []catalog.Room) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Code)
	}
	return out
}

func TestStayBetween(t *testing.T) {
	stay, err := StayBetween("2026-09-10", "2026-09-13")
	assert.NoError(t, err)
	assert.Equal(t, 3, stay.Nights)

	_, err = StayBetween("2026-09-10", "2026-09-10")
	assert.Error(t, err)

	_, err = StayBetween("2026-09-13", "2026-09-10")
	assert.Error(t, err)

	_, err = StayBetween("whenever", "2026-09-10")
	assert.Error(t, err)
}

func TestSearchNoCriteriaKeepsCatalogOrder(t *testing.T) {
	engine, _ := newEngine(t)

	rooms := engine.Search(context.Background(), Criteria{}, mustStay(t, "2026-09-10", "2026-09-12"))

	assert.Equal(t, []string{"SUNSET_TWIN", "SEAVIEW_TWIN", "CLASSIC_DOUBLE", "CORAL_SUITE"}, codes(rooms))
}

func TestSearchAnnotatesRoomNumbers(t *testing.T) {
	engine, _ := newEngine(t)

	rooms := engine.Search(context.Background(), Criteria{Types: []string{"Suite"}}, mustStay(t, "2026-09-10", "2026-09-12"))

	assert.Equal(t, 1, len(rooms))
	assert.Equal(t, "Coral Family Suite (501)", rooms[0].Name)
}

func TestSearchPetFilterExcludesNonPetRooms(t *testing.T) {
	engine, _ := newEngine(t)

	rooms := engine.Search(context.Background(), Criteria{Pet: true}, mustStay(t, "2026-09-10", "2026-09-12"))

	assert.Equal(t, []string{"CORAL_SUITE"}, codes(rooms))
}

func TestSearchAndedCriteriaCanEmpty(t *testing.T) {
	engine, _ := newEngine(t)

	// Pet-friendly AND smoking matches nothing in this catalog.
	rooms := engine.Search(context.Background(), Criteria{Pet: true, Smoking: true}, mustStay(t, "2026-09-10", "2026-09-12"))

	assert.Equal(t, 0, len(rooms))
}

func TestSearchPriceBoundsInclusive(t *testing.T) {
	engine, _ := newEngine(t)
	stay := mustStay(t, "2026-09-10", "2026-09-12")

	rooms := engine.Search(context.Background(), Criteria{MinPrice: "210", MaxPrice: "230"}, stay)
	assert.Equal(t, []string{"SEAVIEW_TWIN", "CLASSIC_DOUBLE"}, codes(rooms))

	// Unparseable bounds mean no bound.
	rooms = engine.Search(context.Background(), Criteria{MinPrice: "cheap", MaxPrice: "expensive"}, stay)
	assert.Equal(t, 4, len(rooms))
}

func TestSearchFloorAndTypeFilters(t *testing.T) {
	engine, _ := newEngine(t)
	stay := mustStay(t, "2026-09-10", "2026-09-12")

	rooms := engine.Search(context.Background(), Criteria{Types: []string{"Twin"}, Floor: catalog.FloorHigh}, stay)
	assert.Equal(t, []string{"SEAVIEW_TWIN"}, codes(rooms))

	rooms = engine.Search(context.Background(), Criteria{Breakfast: true, Shuttle: true}, stay)
	assert.Equal(t, []string{"CORAL_SUITE"}, codes(rooms))
}

func TestSearchExcludesBookedRoomNumbers(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	_, err := store.Create(ctx, booking.Draft{
		FirstName: "Lena", LastName: "Okafor",
		Email: "lena@example.com", Phone: "91234567",
		Adults: 2, Children: 0,
		RoomType: "Twin", RoomName: "Sunset Twin Room", RoomNumber: "101",
		CheckIn: "2026-09-10", CheckOut: "2026-09-12", Nights: 2,
		TotalPrice: 418.0, PaymentLast4: "1111",
	})
	assert.NoError(t, err)

	// Overlapping stay loses room 101.
	rooms := engine.Search(ctx, Criteria{}, mustStay(t, "2026-09-11", "2026-09-13"))
	assert.Equal(t, []string{"SEAVIEW_TWIN", "CLASSIC_DOUBLE", "CORAL_SUITE"}, codes(rooms))

	// Back-to-back stay does not.
	rooms = engine.Search(ctx, Criteria{}, mustStay(t, "2026-09-12", "2026-09-14"))
	assert.Equal(t, 4, len(rooms))
}

func TestSearchCapacityFallbackWithoutRoomNumbers(t *testing.T) {
	// One representative row per type, no physical numbers: Twin capacity 1.
	cat := catalog.FromRooms([]catalog.Room{
		{Code: "TWIN", Name: "Twin Room", ShortType: "Twin", Price: 190, Floor: catalog.FloorLow},
		{Code: "SUITE", Name: "Suite", ShortType: "Suite", Price: 260, Floor: catalog.FloorHigh},
	})
	store := booking.NewStore(filepath.Join(t.TempDir(), "bookings.json"))
	engine := NewEngine(store, cat)
	ctx := context.Background()

	_, err := store.Create(ctx, booking.Draft{
		FirstName: "Lena", LastName: "Okafor",
		Email: "lena@example.com", Phone: "91234567",
		Adults: 1, Children: 0,
		RoomType: "Twin", RoomName: "Twin Room",
		CheckIn: "2026-09-10", CheckOut: "2026-09-12", Nights: 2,
		TotalPrice: 418.0, PaymentLast4: "1111",
	})
	assert.NoError(t, err)

	rooms := engine.Search(ctx, Criteria{}, mustStay(t, "2026-10-01", "2026-10-03"))
	assert.Equal(t, []string{"SUITE"}, codes(rooms))
}

func TestBookThenOverlappingSearchExcludesRoom(t *testing.T) {
	// End-to-end: price a Double at 220/night for 2 nights with both
	// add-ons, persist it, then verify the room disappears from an
	// overlapping search.
	cat := catalog.FromRooms([]catalog.Room{
		{Code: "CLASSIC_DOUBLE", Name: "Classic King Room", ShortType: "Double", Price: 220, Floor: catalog.FloorLow, BreakfastAvailable: true, ShuttleAvailable: true, RoomNumber: "102"},
	})
	store := booking.NewStore(filepath.Join(t.TempDir(), "bookings.json"))
	engine := NewEngine(store, cat)
	ctx := context.Background()

	quote := pricing.DefaultRates().ComputeFloat(220, 2, true, true)
	assert.Equal(t, "440", quote.RoomTotal.String())
	assert.Equal(t, "505", quote.Subtotal.String())
	assert.Equal(t, "50.5", quote.Tax.String())
	assert.Equal(t, "555.5", quote.Total.String())

	total, _ := quote.Total.Float64()
	code, err := store.Create(ctx, booking.Draft{
		FirstName: "Mia", LastName: "Tanaka",
		Email: "mia@example.com", Phone: "81234567",
		Adults: 2, Children: 0,
		RoomType: "Double", RoomName: "Classic King Room", RoomNumber: "102",
		CheckIn: "2026-09-10", CheckOut: "2026-09-12", Nights: 2,
		Breakfast: true, Shuttle: true,
		TotalPrice: total, PaymentLast4: "4242",
	})
	assert.NoError(t, err)
	assert.NotZero(t, code)

	rec, found := store.Find("Tanaka", code)
	assert.True(t, found)
	assert.Equal(t, booking.StatusConfirmed, rec.Status)
	assert.Equal(t, 555.5, rec.TotalPrice)

	// Recomputing from persisted fields reproduces the stored total.
	again := pricing.DefaultRates().ComputeFloat(220, rec.Nights, rec.Breakfast, rec.Shuttle)
	recomputed, _ := again.Total.Float64()
	assert.Equal(t, rec.TotalPrice, recomputed)

	rooms := engine.Search(ctx, Criteria{}, mustStay(t, "2026-09-11", "2026-09-13"))
	assert.Equal(t, 0, len(rooms))
}
