package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/kitabu/kitabu"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var bookCommand = &cli.Command{
	Name:  "book",
	Usage: "Manage library books",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "Retrieve many books",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  flagSkip,
					Usage: "Skip the specified number of books",
				},
				&cli.IntFlag{
					Name:  flagLimit,
					Usage: "Retrieve at most the specified number of books",
					Value: 100,
				},
				&cli.StringFlag{
					Name:  flagSearch,
					Usage: "Narrow results with a title/author search",
				},
				cliFlagOutput,
			},
			Action: bookList,
		},
		{
			Name:  "create",
			Usage: "Add a book to the inventory",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagTitle,
					Usage:    "Title of the book (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagAuthor,
					Usage:    "Author of the book (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagCategory,
					Usage: "Category of the book",
				},
				&cli.StringFlag{
					Name:  flagSubject,
					Usage: "Subject the book belongs to",
				},
				&cli.IntFlag{
					Name:  flagCopies,
					Usage: "Number of copies held",
					Value: 1,
				},
			},
			Action: bookCreate,
		},
		{
			Name:  "update",
			Usage: "Update a book",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Update the specified book (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagTitle,
					Usage: "New title",
				},
				&cli.StringFlag{
					Name:  flagAuthor,
					Usage: "New author",
				},
				&cli.IntFlag{
					Name:  flagCopies,
					Usage: "New number of copies",
					Value: -1,
				},
			},
			Action: bookUpdate,
		},
		{
			Name:  "delete",
			Usage: "Remove a book from the inventory",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Delete the specified book (required)",
					Required: true,
				},
			},
			Action: bookDelete,
		},
	},
}

func bookList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageInventory); err != nil {
		return err
	}

	bookList, err := session.client.Books().List(
		c.Context,
		session.token(),
		c.Int(flagSkip),
		c.Int(flagLimit),
		c.String(flagSearch),
	)
	if err != nil {
		return err
	}

	if len(bookList.Items) == 0 {
		fmt.Println("No books found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "TITLE", "AUTHOR", "CATEGORY", "AVAILABLE")
		for _, book := range bookList.Items {
			table.AddRow(
				book.ID,
				book.Title,
				book.Author,
				book.Category,
				fmt.Sprintf(
					"%d / %d",
					book.TotalCopies-book.BorrowedCopies,
					book.TotalCopies,
				),
			)
		}
		fmt.Println(table)
	default:
		return printStructured(output, bookList)
	}
	return nil
}

func bookCreate(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageInventory); err != nil {
		return err
	}

	book, err := session.client.Books().Create(
		c.Context,
		session.token(),
		kitabu.Book{
			Title:       c.String(flagTitle),
			Author:      c.String(flagAuthor),
			Category:    c.String(flagCategory),
			Subject:     c.String(flagSubject),
			TotalCopies: c.Int(flagCopies),
		},
	)
	if err != nil {
		return err
	}
	fmt.Printf("Created book %q.\n", book.ID)
	return nil
}

func bookUpdate(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageInventory); err != nil {
		return err
	}

	update := kitabu.BookUpdate{}
	if title := c.String(flagTitle); title != "" {
		update.Title = &title
	}
	if author := c.String(flagAuthor); author != "" {
		update.Author = &author
	}
	if copies := c.Int(flagCopies); copies >= 0 {
		update.TotalCopies = &copies
	}

	book, err := session.client.Books().Update(
		c.Context,
		session.token(),
		c.String(flagID),
		update,
	)
	if err != nil {
		return err
	}
	fmt.Printf("Updated book %q.\n", book.ID)
	return nil
}

func bookDelete(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageInventory); err != nil {
		return err
	}

	id := c.String(flagID)
	if err :=
		session.client.Books().Delete(c.Context, session.token(), id); err != nil {
		return errors.Wrapf(err, "error deleting book %q", id)
	}
	fmt.Printf("Deleted book %q.\n", id)
	return nil
}
