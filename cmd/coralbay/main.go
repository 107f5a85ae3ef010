package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tvxk/coralbay/cli"
)

var app struct {
	Version kong.VersionFlag `help:"Show version information"`
	cli.Commands
}

func main() {
	ctx := kong.Parse(&app,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("coralbay"),
		kong.Description("Coral Bay Hotel booking desk: search rooms, book stays and manage reservations."),
		kong.UsageOnError(),
		kong.Bind(&app.Globals),
	)

	err := ctx.Run()

	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.ExitCode())
	}

	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if cli.Version == "" {
		cli.Version = "dev"
	}
	if cli.CommitSHA == "" {
		return cli.Version
	}
	return fmt.Sprintf("%s (%s)", cli.Version, cli.CommitSHA)
}
