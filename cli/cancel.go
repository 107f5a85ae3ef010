package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type CancelCmd struct {
	LastName string `help:"Guest last name." arg:""`
	Code     string `help:"Confirmation code." arg:""`
	Yes      bool   `help:"Cancel without the confirmation prompt." short:"y"`
}

func (cmd *CancelCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.withTelemetry(ctx, "cancel")
	defer report()

	store := globals.openStore()

	rec, found := store.Find(cmd.LastName, cmd.Code)
	if !found {
		printError(ctx.Stderr, fmt.Sprintf("No booking found for %s with code %s", cmd.LastName, cmd.Code))
		return NewCommandError(1)
	}

	if rec.IsCancelled() {
		printInfof(ctx.Stdout, "Booking %s is already cancelled", rec.ConfirmationCode)
		return nil
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo(fmt.Sprintf("Cancel booking %s (%s, %s to %s)?",
			rec.ConfirmationCode, rec.RoomName, rec.CheckIn, rec.CheckOut))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Booking kept")
			return nil
		}
	}

	ok, err := store.Cancel(runCtx, cmd.LastName, cmd.Code)
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("Failed to cancel: %v", err))
		return NewCommandError(1)
	}
	if !ok {
		printError(ctx.Stderr, "Booking disappeared during cancellation")
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Booking %s cancelled", codeStyle.Render(rec.ConfirmationCode)))

	return nil
}
