// Package catalog exposes the set of bookable room definitions. Rooms are
// static reference data loaded once at startup from a JSON file; when the
// file is missing or corrupt the catalog degrades to a small built-in list so
// a search never comes back empty because of a missing config file.
//
// A catalog may carry one row per physical room (each with a room number) or
// one representative row per type. Both forms are supported; capacity per
// type is derived from the physical rows when present.
package catalog

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Floor values used by room definitions and search criteria.
const (
	FloorLow  = "Low"
	FloorHigh = "High"
)

// Room describes a single bookable room definition. Multiple physical rooms
// may share a ShortType; RoomNumber identifies the physical unit when the
// catalog tracks per-unit granularity.
type Room struct {
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	ShortType          string  `json:"short_type"`
	Price              float64 `json:"price"`
	Floor              string  `json:"floor"`
	PetFriendly        bool    `json:"pet_friendly"`
	Smoking            bool    `json:"smoking"`
	BreakfastAvailable bool    `json:"breakfast_available"`
	ShuttleAvailable   bool    `json:"shuttle_available"`
	RoomNumber         string  `json:"room_number,omitempty"`
}

// Catalog holds the loaded room definitions. Read-only after construction.
type Catalog struct {
	rooms    []Room
	capacity map[string]int
	fallback bool
}

// Load reads room definitions from the given JSON file. A missing, unreadable
// or malformed file falls back to the built-in rooms rather than failing.
func Load(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		return builtin()
	}

	var rooms []Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return builtin()
	}

	rooms = dropUntyped(rooms)
	if len(rooms) == 0 {
		return builtin()
	}

	return &Catalog{rooms: rooms, capacity: buildCapacity(rooms)}
}

// FromRooms builds a catalog directly from room definitions.
func FromRooms(rooms []Room) *Catalog {
	rooms = dropUntyped(rooms)
	return &Catalog{rooms: rooms, capacity: buildCapacity(rooms)}
}

// builtin returns the hard-coded safety-net catalog with fixed capacities.
func builtin() *Catalog {
	rooms := []Room{
		{
			Code:               "SUNSET_TWIN",
			Name:               "Sunset Twin Room",
			ShortType:          "Twin",
			Price:              190.0,
			Floor:              FloorLow,
			BreakfastAvailable: true,
			RoomNumber:         "101",
		},
		{
			Code:       "SEAVIEW_TWIN",
			Name:       "Seaview Twin Room",
			ShortType:  "Twin",
			Price:      210.0,
			Floor:      FloorHigh,
			RoomNumber: "201",
		},
		{
			Code:       "CLASSIC_DOUBLE",
			Name:       "Classic King Room",
			ShortType:  "Double",
			Price:      230.0,
			Floor:      FloorLow,
			RoomNumber: "102",
		},
		{
			Code:               "CORAL_SUITE",
			Name:               "Coral Family Suite",
			ShortType:          "Suite",
			Price:              260.0,
			Floor:              FloorHigh,
			PetFriendly:        true,
			BreakfastAvailable: true,
			ShuttleAvailable:   true,
			RoomNumber:         "501",
		},
	}

	return &Catalog{
		rooms: rooms,
		capacity: map[string]int{
			"Twin":   5,
			"Double": 4,
			"Suite":  3,
		},
		fallback: true,
	}
}

// dropUntyped removes records without a short type; they cannot be matched
// against bookings or capacity.
func dropUntyped(rooms []Room) []Room {
	kept := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if r.ShortType == "" {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func buildCapacity(rooms []Room) map[string]int {
	capacity := make(map[string]int)
	for _, r := range rooms {
		capacity[r.ShortType]++
	}
	return capacity
}

// Rooms returns all room definitions in file order.
func (c *Catalog) Rooms() []Room {
	return c.rooms
}

// IsFallback reports whether the catalog is the built-in safety net instead
// of data loaded from disk.
func (c *Catalog) IsFallback() bool {
	return c.fallback
}

// CapacityByType returns the number of physical rooms per short type.
func (c *Catalog) CapacityByType() map[string]int {
	out := make(map[string]int, len(c.capacity))
	maps.Copy(out, c.capacity)
	return out
}

// Types returns the known short types in sorted order.
func (c *Catalog) Types() []string {
	types := maps.Keys(c.capacity)
	sort.Strings(types)
	return types
}

// NightlyRate returns the nightly price for a short type, matching the first
// room of that type case-insensitively. The second return is false when the
// type is unknown.
func (c *Catalog) NightlyRate(shortType string) (float64, bool) {
	for _, r := range c.rooms {
		if strings.EqualFold(r.ShortType, shortType) {
			return r.Price, true
		}
	}
	return 0, false
}

// FindByCode returns the room definition with the given code,
// case-insensitively.
func (c *Catalog) FindByCode(code string) (Room, bool) {
	for _, r := range c.rooms {
		if strings.EqualFold(r.Code, code) {
			return r, true
		}
	}
	return Room{}, false
}
