package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v2"
)

var meCommand = &cli.Command{
	Name:   "me",
	Usage:  "Show your portal profile",
	Action: me,
}

var dashboardCommand = &cli.Command{
	Name:  "dashboard",
	Usage: "Show your dashboard summary",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: dashboard,
}

var ledgerCommand = &cli.Command{
	Name:  "ledger",
	Usage: "Show your fee balance and payment history",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: ledger,
}

var resultsCommand = &cli.Command{
	Name:  "results",
	Usage: "Show your exam results",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: results,
}

var subjectsCommand = &cli.Command{
	Name:      "subjects",
	Usage:     "Show your subjects, or one subject's materials",
	ArgsUsage: "[SUBJECT_ID]",
	Flags: []cli.Flag{
		cliFlagOutput,
	},
	Action: subject,
}

func me(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}

	profile, err := session.Me(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", profile.FullName, profile.AdmissionNumber)
	if profile.ClassName != "" {
		class := profile.ClassName
		if profile.Stream != "" {
			class = fmt.Sprintf("%s %s", class, profile.Stream)
		}
		fmt.Printf("Class: %s\n", class)
	}
	if profile.Email != "" {
		fmt.Printf("Email: %s\n", profile.Email)
	}
	return nil
}

func dashboard(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}

	dashboard, err := session.Dashboard(c.Context)
	if err != nil {
		return err
	}

	if strings.ToLower(output) != "table" {
		return printStructured(output, dashboard)
	}

	fmt.Printf("Hello, %s.\n\n", dashboard.StudentName)
	fmt.Printf("Attendance: %.1f%%\n", dashboard.AttendancePercentage)
	fmt.Printf("Fee balance: %.2f\n", dashboard.FeeBalance)

	if len(dashboard.Announcements) > 0 {
		fmt.Println("\nAnnouncements:")
		for _, announcement := range dashboard.Announcements {
			fmt.Printf("  %s  %s\n", announcement.Date, announcement.Title)
		}
	}

	if len(dashboard.UpcomingAssignments) > 0 {
		fmt.Println("\nUpcoming assignments:")
		table := uitable.New()
		table.AddRow("  TITLE", "SUBJECT", "DUE")
		for _, assignment := range dashboard.UpcomingAssignments {
			table.AddRow(
				"  "+assignment.Title,
				assignment.Subject,
				assignment.DueDate,
			)
		}
		fmt.Println(table)
	}

	if len(dashboard.OverdueAssignments) > 0 {
		fmt.Println("\nOverdue assignments:")
		table := uitable.New()
		table.AddRow("  TITLE", "SUBJECT", "DUE")
		for _, assignment := range dashboard.OverdueAssignments {
			table.AddRow(
				"  "+assignment.Title,
				assignment.Subject,
				assignment.DueDate,
			)
		}
		fmt.Println(table)
	}

	if len(dashboard.TimetableToday) > 0 {
		fmt.Println("\nToday's timetable:")
		table := uitable.New()
		table.AddRow("  START", "END", "TYPE", "SUBJECT", "TEACHER")
		for _, slot := range dashboard.TimetableToday {
			table.AddRow(
				"  "+slot.StartTime,
				slot.EndTime,
				slot.Type,
				slot.Subject,
				slot.Teacher,
			)
		}
		fmt.Println(table)
	}

	return nil
}

func ledger(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}

	ledger, err := session.Ledger(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		fmt.Printf("Balance: %.2f\n\n", ledger.Balance)
		if len(ledger.History) == 0 {
			fmt.Println("No transactions found.")
			return nil
		}
		table := uitable.New()
		table.AddRow("DATE", "DESCRIPTION", "TYPE", "AMOUNT")
		for _, entry := range ledger.History {
			table.AddRow(
				entry.Date,
				entry.Description,
				entry.Type,
				fmt.Sprintf("%.2f", entry.Amount),
			)
		}
		fmt.Println(table)
	default:
		return printStructured(output, ledger)
	}
	return nil
}

func results(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}

	results, err := session.Results(c.Context)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("SUBJECT", "EXAM", "TERM", "YEAR", "MARKS", "GRADE")
		for _, result := range results {
			table.AddRow(
				result.Subject,
				result.ExamType,
				result.Term,
				result.Year,
				result.Marks,
				result.Grade,
			)
		}
		fmt.Println(table)
	default:
		return printStructured(output, results)
	}
	return nil
}

func subject(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}

	if id := c.Args().First(); id != "" {
		detail, err := session.Subject(c.Context, id)
		if err != nil {
			return err
		}
		if strings.ToLower(output) != "table" {
			return printStructured(output, detail)
		}
		fmt.Printf("%s", detail.Name)
		if detail.Teacher != "" {
			fmt.Printf(" (taught by %s)", detail.Teacher)
		}
		fmt.Println()
		if len(detail.Materials) == 0 {
			fmt.Println("No materials available.")
			return nil
		}
		table := uitable.New()
		table.AddRow("TITLE", "TYPE", "URL")
		for _, material := range detail.Materials {
			table.AddRow(material.Title, material.FileType, material.FileURL)
		}
		fmt.Println(table)
		return nil
	}

	subjects, err := session.Subjects(c.Context)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		fmt.Println("No subjects found.")
		return nil
	}
	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "SUBJECT", "TEACHER")
		for _, subject := range subjects {
			table.AddRow(subject.ID, subject.Name, subject.Teacher)
		}
		fmt.Println(table)
	default:
		return printStructured(output, subjects)
	}
	return nil
}
