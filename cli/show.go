package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/tvxk/coralbay/pricing"
)

type ShowCmd struct {
	LastName string `help:"Guest last name." arg:""`
	Code     string `help:"Confirmation code." arg:""`
}

func (cmd *ShowCmd) Run(ctx *kong.Context, globals *Globals) error {
	store := globals.openStore()

	rec, found := store.Find(cmd.LastName, cmd.Code)
	if !found {
		printError(ctx.Stderr, fmt.Sprintf("No booking found for %s with code %s", cmd.LastName, cmd.Code))
		return NewCommandError(1)
	}

	renderRecord(ctx.Stdout, rec)

	// The breakdown is re-derived from the persisted fields; the nightly
	// rate comes from the current catalog.
	if quote, ok := pricing.QuoteFromRecord(rec, globals.openCatalog(), globals.rates()); ok {
		_, _ = fmt.Fprintln(ctx.Stdout)
		renderQuote(ctx.Stdout, quote)
	}

	return nil
}
