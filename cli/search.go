package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/tvxk/coralbay/search"
)

type SearchCmd struct {
	CheckIn  string `help:"Check-in date (YYYY-MM-DD)." required:""`
	CheckOut string `help:"Check-out date (YYYY-MM-DD)." required:""`

	Type      []string `help:"Room types to include (e.g. Twin, Double, Suite). Repeatable."`
	Floor     string   `help:"Floor preference: Low or High." enum:"Low,High," default:""`
	Pet       bool     `help:"Only pet-friendly rooms."`
	Smoking   bool     `help:"Only smoking rooms."`
	Breakfast bool     `help:"Only rooms with breakfast available."`
	Shuttle   bool     `help:"Only rooms with airport shuttle."`
	MinPrice  string   `help:"Minimum nightly price (inclusive)."`
	MaxPrice  string   `help:"Maximum nightly price (inclusive)."`
}

func (cmd *SearchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.withTelemetry(ctx, "search")
	defer report()

	stay, err := search.StayBetween(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	engine := search.NewEngine(globals.openStore(), globals.openCatalog())
	rooms := engine.Search(runCtx, cmd.criteria(), stay)

	if len(rooms) == 0 {
		printInfof(ctx.Stdout, "No rooms match for %s to %s", stay.CheckIn, stay.CheckOut)
		return nil
	}

	printInfof(ctx.Stdout, "%d room(s) available for %d night(s) starting %s", len(rooms), stay.Nights, stay.CheckIn)
	_, _ = fmt.Fprintln(ctx.Stdout)
	renderRooms(ctx.Stdout, rooms, stay.Nights)

	return nil
}

func (cmd *SearchCmd) criteria() search.Criteria {
	return search.Criteria{
		Types:     cmd.Type,
		Floor:     cmd.Floor,
		Pet:       cmd.Pet,
		Smoking:   cmd.Smoking,
		Breakfast: cmd.Breakfast,
		Shuttle:   cmd.Shuttle,
		MinPrice:  cmd.MinPrice,
		MaxPrice:  cmd.MaxPrice,
	}
}
