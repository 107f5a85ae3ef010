package pricing

import (
	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
)

// QuoteFromRecord re-derives a stored booking's price breakdown from its
// persisted fields and the current catalog rate for its room type. The second
// return is false when the room type is no longer in the catalog.
func QuoteFromRecord(rec booking.Record, cat *catalog.Catalog, rates Rates) (Quote, bool) {
	nightly, ok := cat.NightlyRate(rec.RoomType)
	if !ok {
		return Quote{}, false
	}
	return rates.ComputeFloat(nightly, rec.Nights, rec.Breakfast, rec.Shuttle), true
}
