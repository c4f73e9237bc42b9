package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kitabu/kitabu/identity"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/urfave/cli/v2"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in to Kitabu",
	Description: "Initiates authentication using OpenID Connect against the " +
		"configured identity provider.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage: "Log into the API server at the specified address " +
				"(required)",
			Required: true,
		},
		&cli.BoolFlag{
			Name:    flagBrowse,
			Aliases: []string{"b"},
			Usage: "Use the system's default web browser to complete " +
				"authentication",
		},
	},
	Action: login,
}

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out of Kitabu",
	Action: logout,
}

func login(c *cli.Context) error {
	address := c.String(flagServer)
	browseToAuthURL := c.Bool(flagBrowse)

	provider, err := identity.GetProviderFromEnvironment(c.Context)
	if err != nil {
		return errors.Wrap(err, "error configuring identity provider")
	}

	authURL := provider.AuthCodeURL(uuid.NewV4().String())
	if browseToAuthURL {
		if err := openInBrowser(authURL); err != nil {
			return errors.Wrapf(
				err,
				"Error opening authentication URL using the system's default web "+
					"browser.\n\nPlease visit  %s  to complete authentication.\n",
				authURL,
			)
		}
	} else {
		fmt.Printf("Please visit  %s  to complete authentication.\n", authURL)
	}

	var code string
	prompt := &survey.Input{
		Message: "Authorization code",
	}
	if err := survey.AskOne(prompt, &code); err != nil {
		return err
	}
	if err := provider.Exchange(c.Context, code); err != nil {
		return err
	}

	token, err := provider.AccessToken(c.Context)
	if err != nil {
		return err
	}
	var email string
	if ident, err := provider.CurrentIdentity(c.Context); err == nil &&
		ident != nil {
		email = ident.Email
	}

	if err := saveConfig(
		&config{
			APIAddress: address,
			APIToken:   token,
			Email:      email,
		},
	); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	fmt.Println("\nYou are logged in.")
	return nil
}

func logout(c *cli.Context) error {
	if err := deleteConfig(); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}
	fmt.Println("You are logged out.")
	return nil
}

func openInBrowser(url string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command(
			"rundll32",
			"url.dll,FileProtocolHandler",
			url,
		).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		return errors.New("unsupported OS")
	}
}
