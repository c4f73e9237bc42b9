package main

import "github.com/urfave/cli/v2"

const (
	flagAuthor   = "author"
	flagBook     = "book"
	flagBrowse   = "browse"
	flagCategory = "category"
	flagClass    = "class"
	flagCopies   = "copies"
	flagEmail    = "email"
	flagFilter   = "filter"
	flagID       = "id"
	flagInsecure = "insecure"
	flagLimit    = "limit"
	flagName     = "name"
	flagOutput   = "output"
	flagRole     = "role"
	flagSearch   = "search"
	flagServer   = "server"
	flagSet      = "set"
	flagSkip     = "skip"
	flagStream   = "stream"
	flagStudent  = "student"
	flagSubject  = "subject"
	flagTitle    = "title"
	flagUnset    = "unset"
	flagWatch    = "watch"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in the specified format; supported formats: table, " +
			"yaml, json",
		Value: "table",
	}
)
