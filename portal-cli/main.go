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
	app.Name = "kitabu-portal"
	app.Usage = "Your school, from the command line"
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
		dashboardCommand,
		ledgerCommand,
		loginCommand,
		logoutCommand,
		meCommand,
		onboardCommand,
		resultsCommand,
		subjectsCommand,
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
