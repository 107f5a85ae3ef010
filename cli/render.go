package cli

import (
	"fmt"
	"io"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
	"github.com/tvxk/coralbay/output"
	"github.com/tvxk/coralbay/pricing"
)

func renderRooms(w io.Writer, rooms []catalog.Room, nights int) {
	table := output.NewTable("CODE", "ROOM", "TYPE", "FLOOR", "NIGHTLY", "STAY TOTAL")
	for _, room := range rooms {
		table.AddRow(
			room.Code,
			room.Name,
			room.ShortType,
			room.Floor,
			fmt.Sprintf("$%.2f", room.Price),
			fmt.Sprintf("$%.2f", room.Price*float64(nights)),
		)
	}
	table.Render(w)
}

func renderCatalog(w io.Writer, cat *catalog.Catalog) {
	table := output.NewTable("CODE", "ROOM", "TYPE", "FLOOR", "NIGHTLY", "PET", "SMOKING", "BREAKFAST", "SHUTTLE")
	for _, room := range cat.Rooms() {
		table.AddRow(
			room.Code,
			room.Name,
			room.ShortType,
			room.Floor,
			fmt.Sprintf("$%.2f", room.Price),
			yesNo(room.PetFriendly),
			yesNo(room.Smoking),
			yesNo(room.BreakfastAvailable),
			yesNo(room.ShuttleAvailable),
		)
	}
	table.Render(w)
}

func renderQuote(w io.Writer, q pricing.Quote) {
	styles := output.NewStyles(w)

	table := output.NewTable("CHARGE", "AMOUNT")
	table.AddRow("Room charge", dollars(q.RoomTotal.InexactFloat64()))
	if !q.BreakfastFee.IsZero() {
		table.AddRow("Breakfast", dollars(q.BreakfastFee.InexactFloat64()))
	}
	if !q.ShuttleFee.IsZero() {
		table.AddRow("Airport shuttle", dollars(q.ShuttleFee.InexactFloat64()))
	}
	table.AddRow("Tax (10%)", dollars(q.Tax.InexactFloat64()))
	table.AddRow("TOTAL DUE", styles.Price(dollars(q.Total.InexactFloat64())))
	table.Render(w)
}

func renderRecord(w io.Writer, rec booking.Record) {
	styles := output.NewStyles(w)

	rows := [][2]string{
		{"Confirmation", styles.Keyword(rec.ConfirmationCode)},
		{"Status", rec.Status},
		{"Guest", fmt.Sprintf("%s %s", rec.FirstName, rec.LastName)},
		{"Email", rec.Email},
		{"Phone", rec.Phone},
		{"Party", fmt.Sprintf("%d adults, %d children", rec.Adults, rec.Children)},
		{"Room", roomLabel(rec)},
		{"Stay", fmt.Sprintf("%s to %s (%d nights)", rec.CheckIn, rec.CheckOut, rec.Nights)},
		{"Breakfast", yesNo(rec.Breakfast)},
		{"Shuttle", yesNo(rec.Shuttle)},
		{"Total paid", styles.Price(dollars(rec.TotalPrice))},
		{"Card", "•••• " + rec.PaymentLast4},
		{"Booked on", rec.CreatedAt},
	}

	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%-14s %s\n", row[0], row[1])
	}
}

func roomLabel(rec booking.Record) string {
	if rec.RoomNumber != "" {
		return fmt.Sprintf("%s (%s), %s", rec.RoomName, rec.RoomNumber, rec.RoomType)
	}
	return fmt.Sprintf("%s, %s", rec.RoomName, rec.RoomType)
}

func dollars(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
