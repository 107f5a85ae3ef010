package cli

import (
	"github.com/alecthomas/kong"

	"github.com/tvxk/coralbay/web"
)

type WebCmd struct {
	Port  int  `help:"Port to listen on." default:"8080"`
	Watch bool `help:"Watch the bookings file and push reload events." short:"w"`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.withTelemetry(ctx, "web")
	defer report()

	server := web.New(cmd.Port, globals.openStore(), globals.openCatalog())
	server.Version = Version
	server.WatchEnabled = cmd.Watch

	printInfof(ctx.Stdout, "Starting viewer on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Serving bookings from %s", globals.Data)
	if cmd.Watch {
		printInfof(ctx.Stdout, "Watching for file changes")
	}

	return server.Start(runCtx)
}
