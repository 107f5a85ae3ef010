// Package pricing computes the total due for a stay. The calculation is a
// pure function of the nightly rate, the number of nights and the add-on
// flags, so a stored booking's breakdown can be re-derived at any later time
// from its persisted fields alone.
//
// All arithmetic uses decimal values to avoid floating point drift; callers
// convert to float64 only at the JSON boundary.
package pricing

import "github.com/shopspring/decimal"

// Rates holds the configurable fees and the tax rate applied to every stay.
// Breakfast and shuttle are flat per-stay surcharges; tax applies to the
// subtotal including add-ons.
type Rates struct {
	BreakfastFee decimal.Decimal
	ShuttleFee   decimal.Decimal
	TaxRate      decimal.Decimal
}

// DefaultRates returns the hotel's standard rates: a flat 40.00 breakfast
// fee, a flat 25.00 airport shuttle fee, and 10% tax.
func DefaultRates() Rates {
	return Rates{
		BreakfastFee: decimal.NewFromInt(40),
		ShuttleFee:   decimal.NewFromInt(25),
		TaxRate:      decimal.NewFromFloat(0.10),
	}
}

// Quote is the full price breakdown for a prospective or confirmed booking.
type Quote struct {
	RoomTotal    decimal.Decimal
	BreakfastFee decimal.Decimal
	ShuttleFee   decimal.Decimal
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

// Compute calculates the breakdown for a stay of the given number of nights
// at the given nightly rate. Fees are included only when their flag is set.
func (r Rates) Compute(nightly decimal.Decimal, nights int, breakfast, shuttle bool) Quote {
	q := Quote{
		RoomTotal:    nightly.Mul(decimal.NewFromInt(int64(nights))),
		BreakfastFee: decimal.Zero,
		ShuttleFee:   decimal.Zero,
	}

	if breakfast {
		q.BreakfastFee = r.BreakfastFee
	}
	if shuttle {
		q.ShuttleFee = r.ShuttleFee
	}

	q.Subtotal = q.RoomTotal.Add(q.BreakfastFee).Add(q.ShuttleFee)
	q.Tax = q.Subtotal.Mul(r.TaxRate).Round(2)
	q.Total = q.Subtotal.Add(q.Tax)

	return q
}

// ComputeFloat is a convenience wrapper for callers holding the nightly rate
// as a float64 (the room catalog's wire format).
func (r Rates) ComputeFloat(nightly float64, nights int, breakfast, shuttle bool) Quote {
	return r.Compute(decimal.NewFromFloat(nightly), nights, breakfast, shuttle)
}
