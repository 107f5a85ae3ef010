package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
	"github.com/tvxk/coralbay/pricing"
)

func TestRenderQuote(t *testing.T) {
	quote := pricing.DefaultRates().ComputeFloat(220, 2, true, true)

	var buf bytes.Buffer
	renderQuote(&buf, quote)

	out := buf.String()
	assert.True(t, strings.Contains(out, "Room charge"))
	assert.True(t, strings.Contains(out, "$440.00"))
	assert.True(t, strings.Contains(out, "Breakfast"))
	assert.True(t, strings.Contains(out, "$40.00"))
	assert.True(t, strings.Contains(out, "Airport shuttle"))
	assert.True(t, strings.Contains(out, "$25.00"))
	assert.True(t, strings.Contains(out, "Tax (10%)"))
	assert.True(t, strings.Contains(out, "$50.50"))
	assert.True(t, strings.Contains(out, "$555.50"))
}

func TestRenderQuoteSkipsUnselectedAddOns(t *testing.T) {
	quote := pricing.DefaultRates().ComputeFloat(100, 3, false, false)

	var buf bytes.Buffer
	renderQuote(&buf, quote)

	out := buf.String()
	assert.False(t, strings.Contains(out, "Breakfast"))
	assert.False(t, strings.Contains(out, "Airport shuttle"))
	assert.True(t, strings.Contains(out, "$330.00"))
}

func TestRenderRooms(t *testing.T) {
	rooms := []catalog.Room{
		{Code: "SUNSET_TWIN", Name: "Sunset Twin Room (101)", ShortType: "Twin", Price: 190, Floor: "Low"},
	}

	var buf bytes.Buffer
	renderRooms(&buf, rooms, 2)

	out := buf.String()
	assert.True(t, strings.Contains(out, "SUNSET_TWIN"))
	assert.True(t, strings.Contains(out, "Sunset Twin Room (101)"))
	assert.True(t, strings.Contains(out, "$190.00"))
	assert.True(t, strings.Contains(out, "$380.00"))
}

func TestRenderRecord(t *testing.T) {
	rec := booking.Record{
		FirstName:        "Mia",
		LastName:         "Tanaka",
		Email:            "mia@example.com",
		Phone:            "0612345678",
		Adults:           2,
		Children:         1,
		RoomType:         "Suite",
		RoomName:         "Coral Family Suite",
		RoomNumber:       "501",
		CheckIn:          "2026-09-10",
		CheckOut:         "2026-09-12",
		Nights:           2,
		Breakfast:        true,
		TotalPrice:       616,
		PaymentLast4:     "4242",
		Status:           booking.StatusConfirmed,
		ConfirmationCode: "A1B2C3D4",
		CreatedAt:        "2026-08-31",
	}

	var buf bytes.Buffer
	renderRecord(&buf, rec)

	out := buf.String()
	assert.True(t, strings.Contains(out, "A1B2C3D4"))
	assert.True(t, strings.Contains(out, "Mia Tanaka"))
	assert.True(t, strings.Contains(out, "Coral Family Suite (501), Suite"))
	assert.True(t, strings.Contains(out, "2026-09-10 to 2026-09-12 (2 nights)"))
	assert.True(t, strings.Contains(out, "•••• 4242"))
	assert.True(t, strings.Contains(out, "$616.00"))
}
