package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/kitabu/kitabu"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var configCommand = &cli.Command{
	Name:  "config",
	Usage: "Manage registration policy",
	Subcommands: []*cli.Command{
		{
			Name:  "get",
			Usage: "Retrieve the current registration policy flags",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: configGet,
		},
		{
			Name:  "set",
			Usage: "Toggle registration policy flags on",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name: flagSet,
					Usage: "Turn the specified flag on; supported flags: " +
						"allow-public-signup, require-whitelist",
				},
				&cli.StringSliceFlag{
					Name:  flagUnset,
					Usage: "Turn the specified flag off",
				},
			},
			Action: configSet,
		},
	},
}

var whitelistCommand = &cli.Command{
	Name:  "whitelist",
	Usage: "Manage the signup whitelist",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "Retrieve all whitelisted email addresses",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: whitelistList,
		},
		{
			Name:  "add",
			Usage: "Whitelist an email address for signup",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagEmail,
					Usage:    "Email address to whitelist (required)",
					Required: true,
				},
			},
			Action: whitelistAdd,
		},
		{
			Name:  "remove",
			Usage: "Remove an email address from the whitelist",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagEmail,
					Usage:    "Email address to remove (required)",
					Required: true,
				},
			},
			Action: whitelistRemove,
		},
	},
}

var staffCommand = &cli.Command{
	Name:  "staff",
	Usage: "Manage staff accounts",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "Retrieve the staff roster",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: staffList,
		},
		{
			Name:  "set-role",
			Usage: "Assign a role to a staff account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "ID of the staff account (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name: flagRole,
					Usage: "Role to assign; supported roles: admin, librarian, " +
						"teacher, none (required)",
					Required: true,
				},
			},
			Action: staffSetRole,
		},
	},
}

func configGet(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageSettings); err != nil {
		return err
	}

	config, err := session.client.Config().Get(c.Context, session.token())
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ALLOW PUBLIC SIGNUP", "REQUIRE WHITELIST")
		table.AddRow(config.AllowPublicSignup, config.RequireWhitelist)
		fmt.Println(table)
	default:
		return printStructured(output, config)
	}
	return nil
}

func configSet(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageSettings); err != nil {
		return err
	}

	update := kitabu.SystemConfigUpdate{}
	boolPtr := func(b bool) *bool { return &b }
	apply := func(flags []string, value bool) error {
		for _, flag := range flags {
			switch flag {
			case "allow-public-signup":
				update.AllowPublicSignup = boolPtr(value)
			case "require-whitelist":
				update.RequireWhitelist = boolPtr(value)
			default:
				return errors.Errorf("unrecognized policy flag %q", flag)
			}
		}
		return nil
	}
	if err := apply(c.StringSlice(flagSet), true); err != nil {
		return err
	}
	if err := apply(c.StringSlice(flagUnset), false); err != nil {
		return err
	}
	if update.AllowPublicSignup == nil && update.RequireWhitelist == nil {
		return errors.New("nothing to change; use --set and/or --unset")
	}

	config, err :=
		session.client.Config().Update(c.Context, session.token(), update)
	if err != nil {
		return err
	}
	fmt.Printf(
		"Registration policy updated: allow public signup %t, require "+
			"whitelist %t.\n",
		config.AllowPublicSignup,
		config.RequireWhitelist,
	)
	return nil
}

func whitelistList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageSettings); err != nil {
		return err
	}

	entries, err :=
		session.client.Config().Whitelist(c.Context, session.token())
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("The whitelist is empty.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("EMAIL", "ADDED BY")
		for _, entry := range entries {
			table.AddRow(entry.Email, entry.AddedBy)
		}
		fmt.Println(table)
	default:
		return printStructured(output, entries)
	}
	return nil
}

func whitelistAdd(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageSettings); err != nil {
		return err
	}

	entry, err := session.client.Config().AddToWhitelist(
		c.Context,
		session.token(),
		c.String(flagEmail),
	)
	if err != nil {
		return err
	}
	fmt.Printf("Whitelisted %q for signup.\n", entry.Email)
	return nil
}

func whitelistRemove(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageSettings); err != nil {
		return err
	}

	email := c.String(flagEmail)
	if err := session.client.Config().RemoveFromWhitelist(
		c.Context,
		session.token(),
		email,
	); err != nil {
		return err
	}
	fmt.Printf("Removed %q from the whitelist.\n", email)
	return nil
}

func staffList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStaff); err != nil {
		return err
	}

	staff, err := session.client.Users().ListStaff(c.Context, session.token())
	if err != nil {
		return err
	}

	if len(staff) == 0 {
		fmt.Println("No staff accounts found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "EMAIL", "NAME", "ROLE")
		for _, user := range staff {
			table.AddRow(user.ID, user.Email, user.FullName, user.Role)
		}
		fmt.Println(table)
	default:
		return printStructured(output, staff)
	}
	return nil
}

func staffSetRole(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStaff); err != nil {
		return err
	}

	role := kitabu.Role(c.String(flagRole))
	switch role {
	case kitabu.RoleAdmin, kitabu.RoleLibrarian, kitabu.RoleTeacher,
		kitabu.RoleNone:
	default:
		return errors.Errorf("unrecognized role %q", role)
	}

	user, err := session.client.Users().UpdateRole(
		c.Context,
		session.token(),
		c.String(flagID),
		role,
	)
	if err != nil {
		return err
	}
	fmt.Printf("Assigned role %q to %q.\n", user.Role, user.Email)
	return nil
}
