package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/pricing"
)

type ModifyCmd struct {
	LastName string `help:"Guest last name." arg:""`
	Code     string `help:"Confirmation code." arg:""`

	FirstName *string `help:"New first name."`
	Email     *string `help:"New contact email."`
	Phone     *string `help:"New contact phone number."`
	Adults    *int    `help:"New number of adults."`
	Children  *int    `help:"New number of children."`
	Breakfast *bool   `help:"Add (--breakfast) or remove (--breakfast=false) daily breakfast."`
	Shuttle   *bool   `help:"Add (--shuttle) or remove (--shuttle=false) the airport shuttle."`
}

func (cmd *ModifyCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.withTelemetry(ctx, "modify")
	defer report()

	store := globals.openStore()

	rec, found := store.Find(cmd.LastName, cmd.Code)
	if !found {
		printError(ctx.Stderr, fmt.Sprintf("No booking found for %s with code %s", cmd.LastName, cmd.Code))
		return NewCommandError(1)
	}

	if rec.IsCancelled() {
		printError(ctx.Stderr, fmt.Sprintf("Booking %s is cancelled and can no longer be changed", rec.ConfirmationCode))
		return NewCommandError(1)
	}

	changes, err := cmd.changes(rec, globals)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}
	if changes == (booking.Changes{}) {
		printInfof(ctx.Stdout, "Nothing to change for booking %s", rec.ConfirmationCode)
		return nil
	}

	ok, err := store.Update(runCtx, cmd.LastName, cmd.Code, changes)
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("Failed to update: %v", err))
		return NewCommandError(1)
	}
	if !ok {
		printError(ctx.Stderr, "Booking disappeared during update")
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Booking %s updated", codeStyle.Render(rec.ConfirmationCode)))
	_, _ = fmt.Fprintln(ctx.Stdout)

	if updated, found := store.Find(cmd.LastName, cmd.Code); found {
		renderRecord(ctx.Stdout, updated)
	}

	return nil
}

// changes validates the requested edits against the stored booking and builds
// the change set. Toggling an add-on recomputes the total from the current
// catalog rate; the room, dates and party invariants stay intact.
func (cmd *ModifyCmd) changes(rec booking.Record, globals *Globals) (booking.Changes, error) {
	var changes booking.Changes

	if cmd.FirstName != nil {
		if err := validateGuestName("first name", *cmd.FirstName); err != nil {
			return booking.Changes{}, err
		}
		changes.FirstName = cmd.FirstName
	}
	if cmd.Email != nil {
		if err := validateEmail(*cmd.Email); err != nil {
			return booking.Changes{}, err
		}
		changes.Email = cmd.Email
	}
	if cmd.Phone != nil {
		if err := validatePhone(*cmd.Phone); err != nil {
			return booking.Changes{}, err
		}
		changes.Phone = cmd.Phone
	}

	if cmd.Adults != nil || cmd.Children != nil {
		adults, children := rec.Adults, rec.Children
		if cmd.Adults != nil {
			adults = *cmd.Adults
		}
		if cmd.Children != nil {
			children = *cmd.Children
		}
		if err := validateParty(adults, children); err != nil {
			return booking.Changes{}, err
		}
		changes.Adults = cmd.Adults
		changes.Children = cmd.Children
	}

	breakfast, shuttle := rec.Breakfast, rec.Shuttle
	if cmd.Breakfast != nil {
		breakfast = *cmd.Breakfast
		changes.Breakfast = cmd.Breakfast
	}
	if cmd.Shuttle != nil {
		shuttle = *cmd.Shuttle
		changes.Shuttle = cmd.Shuttle
	}

	if breakfast != rec.Breakfast || shuttle != rec.Shuttle {
		repriced := rec
		repriced.Breakfast, repriced.Shuttle = breakfast, shuttle

		quote, ok := pricing.QuoteFromRecord(repriced, globals.openCatalog(), globals.rates())
		if !ok {
			return booking.Changes{}, fmt.Errorf("room type %q is no longer in the catalog, cannot reprice", rec.RoomType)
		}
		total := quote.Total.InexactFloat64()
		changes.TotalPrice = &total
	}

	return changes, nil
}
