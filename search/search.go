// Package search combines the room catalog with the booking store to answer
// the question every booking flow starts with: which rooms match the guest's
// preferences and are actually free for the requested stay.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
	"github.com/tvxk/coralbay/telemetry"
)

// Criteria are the guest's room preferences. Every present filter is ANDed;
// zero values pass everything. Price bounds are decimal strings so form
// input flows through unchanged; an unparseable bound means "no bound".
type Criteria struct {
	Types     []string
	Floor     string
	Pet       bool
	Smoking   bool
	Shuttle   bool
	Breakfast bool
	MinPrice  string
	MaxPrice  string
}

// Stay is the half-open date interval [CheckIn, CheckOut) the guest wants.
type Stay struct {
	CheckIn  string
	CheckOut string
	Nights   int
}

// StayBetween builds a Stay from two dates, deriving the night count.
func StayBetween(checkIn, checkOut string) (Stay, error) {
	in, err := time.Parse(booking.DateLayout, checkIn)
	if err != nil {
		return Stay{}, fmt.Errorf("invalid check-in date %q", checkIn)
	}
	out, err := time.Parse(booking.DateLayout, checkOut)
	if err != nil {
		return Stay{}, fmt.Errorf("invalid check-out date %q", checkOut)
	}

	nights := int(out.Sub(in).Hours() / 24)
	if nights <= 0 {
		return Stay{}, fmt.Errorf("check-out %s must be after check-in %s", checkOut, checkIn)
	}

	return Stay{CheckIn: checkIn, CheckOut: checkOut, Nights: nights}, nil
}

// Engine answers availability-aware room searches.
type Engine struct {
	store   *booking.Store
	catalog *catalog.Catalog
}

// NewEngine creates an engine over the given store and catalog.
func NewEngine(store *booking.Store, cat *catalog.Catalog) *Engine {
	return &Engine{store: store, catalog: cat}
}

// Search returns the catalog rooms that satisfy every criterion and are free
// during the stay, preserving catalog order.
//
// Rooms with a physical number are checked against the exact set of numbers
// occupied during the stay. Rooms without a number fall back to a per-type
// capacity check (confirmed bookings of the type versus physical rooms of
// the type). Returned rooms with a number get it appended to the display
// name so guests can tell apart several units of the same type.
func (e *Engine) Search(ctx context.Context, c Criteria, stay Stay) []catalog.Room {
	timer := telemetry.StartTimer(ctx, "search.rooms")
	defer timer.End()

	blocked := e.store.UnavailableRoomNumbers(stay.CheckIn, stay.CheckOut)
	minPrice := parsePrice(c.MinPrice)
	maxPrice := parsePrice(c.MaxPrice)

	capacity := e.catalog.CapacityByType()
	confirmed := make(map[string]int)

	var results []catalog.Room
	for _, room := range e.catalog.Rooms() {
		if room.RoomNumber != "" {
			if _, taken := blocked[room.RoomNumber]; taken {
				continue
			}
		} else if e.typeFull(room.ShortType, capacity, confirmed) {
			continue
		}

		if !matches(room, c, minPrice, maxPrice) {
			continue
		}

		if room.RoomNumber != "" {
			room.Name = fmt.Sprintf("%s (%s)", room.Name, room.RoomNumber)
		}
		results = append(results, room)
	}

	return results
}

// typeFull reports whether a room type has no spare capacity, caching the
// confirmed-booking counts per type. Unknown types get a generous default so
// they are never blocked by the fallback path.
func (e *Engine) typeFull(shortType string, capacity, confirmed map[string]int) bool {
	count, counted := confirmed[shortType]
	if !counted {
		count = e.store.CountConfirmedByType(shortType)
		confirmed[shortType] = count
	}

	limit, known := capacity[shortType]
	if !known {
		limit = 100
	}

	return count >= limit
}

func matches(room catalog.Room, c Criteria, minPrice, maxPrice *decimal.Decimal) bool {
	if len(c.Types) > 0 && !contains(c.Types, room.ShortType) {
		return false
	}
	if c.Floor != "" && room.Floor != c.Floor {
		return false
	}
	if c.Pet && !room.PetFriendly {
		return false
	}
	if c.Smoking && !room.Smoking {
		return false
	}
	if c.Shuttle && !room.ShuttleAvailable {
		return false
	}
	if c.Breakfast && !room.BreakfastAvailable {
		return false
	}

	price := decimal.NewFromFloat(room.Price)
	if minPrice != nil && price.LessThan(*minPrice) {
		return false
	}
	if maxPrice != nil && price.GreaterThan(*maxPrice) {
		return false
	}

	return true
}

func parsePrice(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
