package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gosuri/uitable"
	"github.com/kitabu/kitabu"
	"github.com/kitabu/kitabu/internal/debounce"
	"github.com/urfave/cli/v2"
)

// searchDebounceDelay matches the pause the log search waits for after the
// last keystroke before issuing a request.
const searchDebounceDelay = 500 * time.Millisecond

var analyticsCommand = &cli.Command{
	Name:  "analytics",
	Usage: "Retrieve the library analytics rollup",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: analyticsGet,
}

var logsCommand = &cli.Command{
	Name:  "logs",
	Usage: "Retrieve system audit logs",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  flagFilter,
			Usage: "Only entries with the specified level (INFO, WARNING, ERROR)",
		},
		&cli.StringFlag{
			Name:  flagSearch,
			Usage: "Narrow results with an action/user search",
		},
		&cli.BoolFlag{
			Name: flagWatch,
			Usage: "Stay open and re-query as search terms are typed, one per " +
				"line",
		},
		cliFlagOutput,
	},
	Action: logsList,
}

var healthCommand = &cli.Command{
	Name:   "health",
	Usage:  "Check whether the API server is reachable and healthy",
	Action: healthCheck,
}

func analyticsGet(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageReports); err != nil {
		return err
	}

	analytics, err :=
		session.client.Analytics().Get(c.Context, session.token())
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("BOOKS", "STUDENTS", "ACTIVE BORROWS", "OVERDUE")
		table.AddRow(
			analytics.TotalBooks,
			analytics.TotalStudents,
			analytics.ActiveBorrows,
			analytics.OverdueCount,
		)
		fmt.Println(table)
		if len(analytics.CategoryDistribution) > 0 {
			fmt.Println()
			catTable := uitable.New()
			catTable.AddRow("CATEGORY", "COUNT")
			for _, cat := range analytics.CategoryDistribution {
				catTable.AddRow(cat.Category, cat.Count)
			}
			fmt.Println(catTable)
		}
	default:
		return printStructured(output, analytics)
	}
	return nil
}

func logsList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageLogs); err != nil {
		return err
	}

	if !c.Bool(flagWatch) {
		page, err := session.client.Logs().List(
			c.Context,
			session.token(),
			c.String(flagFilter),
			c.String(flagSearch),
		)
		if err != nil {
			return err
		}
		return printLogPage(output, page)
	}

	return watchLogs(c, session, output)
}

// watchLogs re-queries the log endpoint as the user types search terms, one
// per line. Requests are debounced so rapid input produces a single query for
// the final term.
func watchLogs(c *cli.Context, session *staffSession, output string) error {
	var mu sync.Mutex
	search := c.String(flagSearch)

	query := func() {
		mu.Lock()
		term := search
		mu.Unlock()
		page, err := session.client.Logs().List(
			c.Context,
			session.token(),
			c.String(flagFilter),
			term,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error retrieving logs: %s\n", err)
			return
		}
		if err := printLogPage(output, page); err != nil {
			fmt.Fprintf(os.Stderr, "error printing logs: %s\n", err)
		}
		fmt.Print("search> ")
	}

	query()

	debouncedQuery := debounce.New(searchDebounceDelay, query)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		mu.Lock()
		search = strings.TrimSpace(scanner.Text())
		mu.Unlock()
		debouncedQuery()
	}
	return scanner.Err()
}

func printLogPage(output string, page kitabu.LogPage) error {
	switch strings.ToLower(output) {
	case "table":
		fmt.Printf(
			"%d events, %d security alerts, %d critical failures\n\n",
			page.Stats.TotalEvents,
			page.Stats.SecurityAlerts,
			page.Stats.CriticalFailures,
		)
		if len(page.Items) == 0 {
			fmt.Println("No log entries found.")
			return nil
		}
		table := uitable.New()
		table.AddRow("TIMESTAMP", "LEVEL", "ACTION", "USER", "DETAILS")
		for _, entry := range page.Items {
			table.AddRow(
				entry.Timestamp.Format(time.RFC3339),
				entry.Level,
				entry.Action,
				entry.UserEmail,
				entry.Details,
			)
		}
		fmt.Println(table)
	default:
		return printStructured(output, page)
	}
	return nil
}

func healthCheck(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}

	health, err := session.client.Users().Health(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("API server reports status %q.\n", health.Status)
	return nil
}
