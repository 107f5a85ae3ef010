package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type RoomsCmd struct{}

func (cmd *RoomsCmd) Run(ctx *kong.Context, globals *Globals) error {
	cat := globals.openCatalog()

	if cat.IsFallback() {
		printInfof(ctx.Stdout, "Room file %s not usable, showing the built-in catalog", globals.Rooms)
	}

	renderCatalog(ctx.Stdout, cat)

	_, _ = fmt.Fprintln(ctx.Stdout)
	capacity := cat.CapacityByType()
	for _, shortType := range cat.Types() {
		printInfof(ctx.Stdout, "%s: %d room(s)", shortType, capacity[shortType])
	}

	return nil
}
