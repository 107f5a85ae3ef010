// Package booking owns the collection of booking records and their durable
// persistence as a single JSON array file. It is the sole writer of that
// file; every mutation reads the full list and rewrites it whole. That keeps
// the format trivially inspectable and is fine for a single-user, single
// process tool (concurrent access would need a file lock or an embedded
// database, which is out of scope).
package booking

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for all persisted dates.
const DateLayout = "2006-01-02"

// Booking lifecycle states.
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Validation errors returned by Draft.Validate.
var (
	ErrNoAdults     = errors.New("at least one adult is required")
	ErrPartySize    = errors.New("children must be fewer than adults and the party no larger than six")
	ErrInvalidStay  = errors.New("check-out must be after check-in")
	ErrMissingGuest = errors.New("guest first and last name are required")
	ErrMissingRoom  = errors.New("a room type is required")
)

// Record is a single persisted booking. The JSON field names are the
// authoritative file format; the full card number is never stored, only the
// last four digits. A record keeps its confirmation code for its entire
// lifetime — only status, contact details, party size and add-ons may change
// after creation.
type Record struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	RoomType         string  `json:"room_type"`
	RoomName         string  `json:"room_name"`
	RoomNumber       string  `json:"room_number,omitempty"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	Nights           int     `json:"nights"`
	Breakfast        bool    `json:"breakfast"`
	Shuttle          bool    `json:"shuttle"`
	TotalPrice       float64 `json:"total_price"`
	PaymentLast4     string  `json:"payment_last4"`
	Status           string  `json:"status"`
	ConfirmationCode string  `json:"confirmation_code"`
	CreatedAt        string  `json:"created_at"`
}

// IsCancelled reports whether the booking has been cancelled. A missing
// status counts as confirmed.
func (r Record) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// StayDates parses the record's check-in and check-out dates.
func (r Record) StayDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(DateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(DateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

// Draft is a booking in progress: everything a Record holds except the
// generated fields (confirmation code, status, creation date). The booking
// flow builds a draft up step by step and validates it before it is
// persisted.
type Draft struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Adults       int
	Children     int
	RoomType     string
	RoomName     string
	RoomNumber   string
	CheckIn      string
	CheckOut     string
	Nights       int
	Breakfast    bool
	Shuttle      bool
	TotalPrice   float64
	PaymentLast4 string
}

// Validate checks the party-size and stay invariants.
func (d Draft) Validate() error {
	if d.FirstName == "" || d.LastName == "" {
		return ErrMissingGuest
	}
	if d.RoomType == "" {
		return ErrMissingRoom
	}
	if d.Adults < 1 {
		return ErrNoAdults
	}
	if d.Children < 0 || d.Children >= d.Adults || d.Adults+d.Children > 6 {
		return ErrPartySize
	}

	checkIn, err := time.Parse(DateLayout, d.CheckIn)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q: %w", d.CheckIn, err)
	}
	checkOut, err := time.Parse(DateLayout, d.CheckOut)
	if err != nil {
		return fmt.Errorf("invalid check-out date %q: %w", d.CheckOut, err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 || d.Nights != nights {
		return ErrInvalidStay
	}

	return nil
}

// record materializes the draft with the generated lifecycle fields.
func (d Draft) record(code string, createdAt time.Time) Record {
	return Record{
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		Phone:            d.Phone,
		Adults:           d.Adults,
		Children:         d.Children,
		RoomType:         d.RoomType,
		RoomName:         d.RoomName,
		RoomNumber:       d.RoomNumber,
		CheckIn:          d.CheckIn,
		CheckOut:         d.CheckOut,
		Nights:           d.Nights,
		Breakfast:        d.Breakfast,
		Shuttle:          d.Shuttle,
		TotalPrice:       d.TotalPrice,
		PaymentLast4:     d.PaymentLast4,
		Status:           StatusConfirmed,
		ConfirmationCode: code,
		CreatedAt:        createdAt.Format(DateLayout),
	}
}

// Changes holds the mutable subset of a record for Update. Nil fields are
// left untouched. Room, dates and the nightly rate are deliberately absent:
// changing those means cancelling and rebooking.
type Changes struct {
	FirstName  *string
	Email      *string
	Phone      *string
	Adults     *int
	Children   *int
	Breakfast  *bool
	Shuttle    *bool
	TotalPrice *float64
	Status     *string
}

func (c Changes) apply(r *Record) {
	if c.FirstName != nil {
		r.FirstName = *c.FirstName
	}
	if c.Email != nil {
		r.Email = *c.Email
	}
	if c.Phone != nil {
		r.Phone = *c.Phone
	}
	if c.Adults != nil {
		r.Adults = *c.Adults
	}
	if c.Children != nil {
		r.Children = *c.Children
	}
	if c.Breakfast != nil {
		r.Breakfast = *c.Breakfast
	}
	if c.Shuttle != nil {
		r.Shuttle = *c.Shuttle
	}
	if c.TotalPrice != nil {
		r.TotalPrice = *c.TotalPrice
	}
	if c.Status != nil {
		r.Status = *c.Status
	}
}
