package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in to the student portal",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage: "Log into the portal API server at the specified address " +
				"(required)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     flagAdmission,
			Aliases:  []string{"a"},
			Usage:    "Admission number (required)",
			Required: true,
		},
	},
	Action: login,
}

var onboardCommand = &cli.Command{
	Name:  "onboard",
	Usage: "Activate your portal account and choose a first password",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage: "Activate against the portal API server at the specified " +
				"address (required)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     flagAdmission,
			Aliases:  []string{"a"},
			Usage:    "Admission number (required)",
			Required: true,
		},
	},
	Action: onboard,
}

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out of the student portal",
	Action: logout,
}

func login(c *cli.Context) error {
	address := c.String(flagServer)
	admissionNumber := c.String(flagAdmission)

	session, err := sessionFor(c, address)
	if err != nil {
		return err
	}

	if message := session.ConsumeLoginMessage(); message != "" {
		fmt.Println(message)
	}

	var password string
	prompt := &survey.Password{
		Message: "Password",
	}
	if err := survey.AskOne(prompt, &password); err != nil {
		return err
	}

	if err :=
		session.Login(c.Context, admissionNumber, password); err != nil {
		return err
	}
	if err := saveConfig(&config{APIAddress: address}); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	fmt.Println("\nYou are logged in.")
	return nil
}

func onboard(c *cli.Context) error {
	address := c.String(flagServer)
	admissionNumber := c.String(flagAdmission)

	session, err := sessionFor(c, address)
	if err != nil {
		return err
	}

	ident, err := session.VerifyOnboarding(c.Context, admissionNumber)
	if err != nil {
		return err
	}

	confirmed := false
	confirm := &survey.Confirm{
		Message: fmt.Sprintf(
			"Admission number %s belongs to %s. Is that you?",
			admissionNumber,
			ident.FullName,
		),
	}
	if err := survey.AskOne(confirm, &confirmed); err != nil {
		return err
	}
	if !confirmed {
		return errors.New(
			"activation canceled; please check your admission number",
		)
	}

	var password string
	prompt := &survey.Password{
		Message: "Choose a password",
	}
	if err := survey.AskOne(prompt, &password); err != nil {
		return err
	}

	if err := session.ActivateOnboarding(
		c.Context,
		admissionNumber,
		password,
	); err != nil {
		return err
	}
	if err := saveConfig(&config{APIAddress: address}); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	fmt.Printf("\nWelcome, %s. You are logged in.\n", ident.FullName)
	return nil
}

func logout(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.Logout(); err != nil {
		return errors.Wrap(err, "error deleting stored credential")
	}
	fmt.Println("You are logged out.")
	return nil
}
