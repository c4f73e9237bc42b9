package main

import (
	"fmt"

	"github.com/kitabu/kitabu"
	"github.com/urfave/cli/v2"
)

var whoamiCommand = &cli.Command{
	Name:   "whoami",
	Usage:  "Show the identity you are logged in as and what it can access",
	Action: whoami,
}

func whoami(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}

	session.cache.Resolve(c.Context)
	role := session.cache.Role()

	if user, ok := session.cache.User(); ok {
		fmt.Printf("Logged in as %s (%s).\n", user.Email, role)
	} else {
		fmt.Printf(
			"Logged in as %s, but no system user record was found; role is "+
				"%q.\n",
			session.config.Email,
			role,
		)
	}

	links := kitabu.VisibleLinks(role)
	if len(links) == 0 {
		fmt.Println("No dashboard sections are available to this role.")
		return nil
	}
	fmt.Println("Available sections:")
	for _, page := range links {
		fmt.Printf("  %s\n", page)
	}
	return nil
}
