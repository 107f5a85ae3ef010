package pricing

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
)

func TestQuoteFromRecord(t *testing.T) {
	cat := catalog.FromRooms([]catalog.Room{
		{Code: "CLASSIC_DOUBLE", Name: "Classic King Room", ShortType: "Double", Price: 220},
	})

	rec := booking.Record{
		RoomType:  "Double",
		Nights:    2,
		Breakfast: true,
		Shuttle:   true,
	}

	quote, ok := QuoteFromRecord(rec, cat, DefaultRates())
	assert.True(t, ok)
	assert.Equal(t, "440", quote.RoomTotal.String())
	assert.Equal(t, "505", quote.Subtotal.String())
	assert.Equal(t, "50.5", quote.Tax.String())
	assert.Equal(t, "555.5", quote.Total.String())
}

func TestQuoteFromRecordUnknownType(t *testing.T) {
	cat := catalog.FromRooms([]catalog.Room{
		{Code: "SUNSET_TWIN", Name: "Sunset Twin Room", ShortType: "Twin", Price: 190},
	})

	_, ok := QuoteFromRecord(booking.Record{RoomType: "Penthouse", Nights: 1}, cat, DefaultRates())
	assert.False(t, ok)
}
