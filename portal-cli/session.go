package main

import (
	"fmt"
	"os"

	"github.com/kitabu/kitabu/portal"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// cliNavigator is the command line's stand-in for an application shell: a
// navigation to the login destination becomes an instruction printed to
// stderr.
type cliNavigator struct{}

func (c *cliNavigator) Navigate(target string) {
	if target == portal.LoginPath {
		fmt.Fprintln(
			os.Stderr,
			"Please use `kitabu-portal login` to continue.",
		)
	}
}

func getSession(c *cli.Context) (*portal.Session, error) {
	config, err := getConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "error retrieving configuration")
	}
	return sessionFor(c, config.APIAddress)
}

func sessionFor(c *cli.Context, apiAddress string) (*portal.Session, error) {
	portalHome, err := portal.PortalHome()
	if err != nil {
		return nil, errors.Wrapf(err, "error finding portal home")
	}
	return portal.NewSession(
		portal.NewClient(apiAddress, c.Bool(flagInsecure)),
		portal.NewFileTokenStore(portalHome),
		portal.NewFileMessageStore(portalHome),
		&cliNavigator{},
	), nil
}
