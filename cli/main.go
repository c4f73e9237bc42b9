package main

import (
	"fmt"
	"os"

	"github.com/kitabu/kitabu/internal/signals"
	"github.com/kitabu/kitabu/internal/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "kitabu"
	app.Usage = "Manage your school library from the command line"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		analyticsCommand,
		bookCommand,
		borrowCommand,
		classCommand,
		configCommand,
		healthCommand,
		historyCommand,
		loginCommand,
		logoutCommand,
		logsCommand,
		returnCommand,
		staffCommand,
		streamCommand,
		studentCommand,
		whitelistCommand,
		whoamiCommand,
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
