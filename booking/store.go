package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tvxk/coralbay/telemetry"
)

// Store persists bookings to a single JSON array file.
//
// Reads fail soft: a missing, unreadable or malformed file behaves like an
// empty store, so a corrupt file degrades to "no bookings found" instead of
// crashing the tool. Writes are loud: a failed save propagates so the caller
// can tell the guest the booking was not recorded rather than hand out a
// confirmation code that was never persisted.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path. The file is not
// created until the first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LoadAll reads every booking from the backing file. It always returns a
// usable slice; any read or decode problem yields an empty one.
func (s *Store) LoadAll() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Record{}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return []Record{}
	}

	return records
}

// SaveAll overwrites the backing file with the full serialized list.
func (s *Store) SaveAll(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}

// Create validates the draft, assigns a fresh confirmation code, appends the
// booking and persists the list. It returns the code on success.
func (s *Store) Create(ctx context.Context, draft Draft) (string, error) {
	timer := telemetry.StartTimer(ctx, "store.create")
	defer timer.End()

	if err := draft.Validate(); err != nil {
		return "", err
	}

	records := s.LoadAll()
	code := NewConfirmationCode()
	records = append(records, draft.record(code, time.Now()))

	if err := s.SaveAll(records); err != nil {
		return "", err
	}

	return code, nil
}

// Find looks a booking up by last name and confirmation code. Both matches
// are case-insensitive. Returns the first match.
func (s *Store) Find(lastName, code string) (Record, bool) {
	for _, r := range s.LoadAll() {
		if matchesIdentity(r, lastName, code) {
			return r, true
		}
	}
	return Record{}, false
}

// Update merges the given changes into every booking matching the identity
// and persists the list when at least one matched. It reports whether any
// booking was updated. In practice an identity matches at most one record,
// but the scan deliberately covers duplicates the same way.
func (s *Store) Update(ctx context.Context, lastName, code string, changes Changes) (bool, error) {
	timer := telemetry.StartTimer(ctx, "store.update")
	defer timer.End()

	records := s.LoadAll()
	updated := false

	for i := range records {
		if matchesIdentity(records[i], lastName, code) {
			changes.apply(&records[i])
			updated = true
		}
	}

	if !updated {
		return false, nil
	}

	if err := s.SaveAll(records); err != nil {
		return false, err
	}

	return true, nil
}

// Cancel flips a booking's status to Cancelled. The record is kept; nothing
// is ever removed from the file.
func (s *Store) Cancel(ctx context.Context, lastName, code string) (bool, error) {
	status := StatusCancelled
	return s.Update(ctx, lastName, code, Changes{Status: &status})
}

// CountConfirmedByType counts non-cancelled bookings for an exact room type.
func (s *Store) CountConfirmedByType(roomType string) int {
	count := 0
	for _, r := range s.LoadAll() {
		if r.RoomType == roomType && !r.IsCancelled() {
			count++
		}
	}
	return count
}

// UnavailableRoomNumbers returns the physical room numbers occupied at any
// point during the requested stay. Occupancy uses half-open intervals: a
// booking blocks [check_in, check_out), so back-to-back stays on the same
// room do not conflict.
//
// Records without a room number or with unparseable dates are skipped; an
// unparseable requested range blocks nothing.
func (s *Store) UnavailableRoomNumbers(checkIn, checkOut string) map[string]struct{} {
	unavailable := make(map[string]struct{})

	reqIn, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return unavailable
	}
	reqOut, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return unavailable
	}

	for _, r := range s.LoadAll() {
		if r.IsCancelled() || r.RoomNumber == "" {
			continue
		}

		bIn, bOut, err := r.StayDates()
		if err != nil {
			continue
		}

		if reqIn.Before(bOut) && reqOut.After(bIn) {
			unavailable[r.RoomNumber] = struct{}{}
		}
	}

	return unavailable
}

// NewConfirmationCode generates a short uppercase booking code: the first
// hyphen-delimited segment of a random UUID. Collisions are vanishingly
// unlikely at this tool's scale and are not checked further.
func NewConfirmationCode() string {
	raw := uuid.New().String()
	segment, _, _ := strings.Cut(raw, "-")
	return strings.ToUpper(segment)
}

func matchesIdentity(r Record, lastName, code string) bool {
	return strings.EqualFold(r.LastName, lastName) &&
		strings.EqualFold(r.ConfirmationCode, code)
}
