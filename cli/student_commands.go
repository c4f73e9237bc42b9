package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/kitabu/kitabu"
	"github.com/urfave/cli/v2"
)

var studentCommand = &cli.Command{
	Name:  "student",
	Usage: "Manage students",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "Retrieve many students",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  flagSkip,
					Usage: "Skip the specified number of students",
				},
				&cli.IntFlag{
					Name:  flagLimit,
					Usage: "Retrieve at most the specified number of students",
					Value: 100,
				},
				&cli.StringFlag{
					Name:  flagSearch,
					Usage: "Narrow results with a name/admission-number search",
				},
				&cli.StringFlag{
					Name:  flagClass,
					Usage: "Only students in the specified class",
				},
				&cli.StringFlag{
					Name:  flagStream,
					Usage: "Only students in the specified stream",
				},
				cliFlagOutput,
			},
			Action: studentList,
		},
		{
			Name:  "create",
			Usage: "Enroll a student",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "admission-number",
					Usage:    "Admission number (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagName,
					Usage:    "Full name (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagClass,
					Usage: "Class the student joins",
				},
				&cli.StringFlag{
					Name:  flagStream,
					Usage: "Stream the student joins",
				},
			},
			Action: studentCreate,
		},
		{
			Name:  "update",
			Usage: "Update an existing student",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Update the specified student (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagName,
					Usage: "New full name",
				},
				&cli.StringFlag{
					Name:  flagClass,
					Usage: "Move the student to the specified class",
				},
				&cli.StringFlag{
					Name:  flagStream,
					Usage: "Move the student to the specified stream",
				},
			},
			Action: studentUpdate,
		},
		{
			Name:  "delete",
			Usage: "Remove a student",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Delete the specified student (required)",
					Required: true,
				},
			},
			Action: studentDelete,
		},
	},
}

var classCommand = &cli.Command{
	Name:  "class",
	Usage: "Manage classes and streams",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "Retrieve all classes and their streams",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: classList,
		},
		{
			Name:  "create",
			Usage: "Create a class",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagName,
					Usage:    "Name of the class (required)",
					Required: true,
				},
			},
			Action: classCreate,
		},
	},
}

var streamCommand = &cli.Command{
	Name:  "stream",
	Usage: "Manage streams within classes",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "Retrieve streams, optionally for one class",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagClass,
					Usage: "Only streams in the specified class",
				},
				cliFlagOutput,
			},
			Action: streamList,
		},
		{
			Name:  "create",
			Usage: "Create a stream within a class",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagName,
					Usage:    "Name of the stream (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagClass,
					Usage:    "Class the stream belongs to (required)",
					Required: true,
				},
			},
			Action: streamCreate,
		},
		{
			Name:  "update",
			Usage: "Rename a stream",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Update the specified stream (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagName,
					Usage:    "New name (required)",
					Required: true,
				},
			},
			Action: streamUpdate,
		},
		{
			Name:  "delete",
			Usage: "Remove a stream",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Delete the specified stream (required)",
					Required: true,
				},
			},
			Action: streamDelete,
		},
	},
}

func studentList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	studentList, err := session.client.Students().List(
		c.Context,
		session.token(),
		kitabu.StudentListOptions{
			Skip:     c.Int(flagSkip),
			Limit:    c.Int(flagLimit),
			Search:   c.String(flagSearch),
			ClassID:  c.String(flagClass),
			StreamID: c.String(flagStream),
		},
	)
	if err != nil {
		return err
	}

	if len(studentList.Items) == 0 {
		fmt.Println("No students found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "ADMISSION", "NAME", "CLASS", "CLEARED?")
		for _, student := range studentList.Items {
			table.AddRow(
				student.ID,
				student.AdmissionNumber,
				student.FullName,
				student.FullClass,
				student.IsCleared,
			)
		}
		fmt.Println(table)
	default:
		return printStructured(output, studentList)
	}
	return nil
}

func studentCreate(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	student, err := session.client.Students().Create(
		c.Context,
		session.token(),
		kitabu.Student{
			AdmissionNumber: c.String("admission-number"),
			FullName:        c.String(flagName),
			ClassID:         c.String(flagClass),
			Stream:          c.String(flagStream),
		},
	)
	if err != nil {
		return err
	}
	fmt.Printf(
		"Enrolled student %q with admission number %q.\n",
		student.FullName,
		student.AdmissionNumber,
	)
	return nil
}

func studentUpdate(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	update := kitabu.StudentUpdate{}
	if c.IsSet(flagName) {
		name := c.String(flagName)
		update.FullName = &name
	}
	if c.IsSet(flagClass) {
		classID := c.String(flagClass)
		update.ClassID = &classID
	}
	if c.IsSet(flagStream) {
		streamID := c.String(flagStream)
		update.StreamID = &streamID
	}

	student, err := session.client.Students().Update(
		c.Context,
		session.token(),
		c.String(flagID),
		update,
	)
	if err != nil {
		return err
	}
	fmt.Printf("Updated student %q.\n", student.FullName)
	return nil
}

func studentDelete(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	id := c.String(flagID)
	if err := session.client.Students().Delete(
		c.Context,
		session.token(),
		id,
	); err != nil {
		return err
	}
	fmt.Printf("Deleted student %q.\n", id)
	return nil
}

func classList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	classes, err :=
		session.client.Classes().List(c.Context, session.token())
	if err != nil {
		return err
	}
	streams, err :=
		session.client.Classes().ListStreams(c.Context, session.token(), "")
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "CLASS", "STREAMS")
		for _, class := range classes {
			var names []string
			for _, stream := range streams {
				if stream.ClassID == class.ID {
					names = append(names, stream.Name)
				}
			}
			table.AddRow(class.ID, class.Name, strings.Join(names, ", "))
		}
		fmt.Println(table)
	default:
		return printStructured(output, classes)
	}
	return nil
}

func classCreate(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	class, err := session.client.Classes().Create(
		c.Context,
		session.token(),
		c.String(flagName),
	)
	if err != nil {
		return err
	}
	fmt.Printf("Created class %q.\n", class.Name)
	return nil
}

func streamList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	streams, err := session.client.Classes().ListStreams(
		c.Context,
		session.token(),
		c.String(flagClass),
	)
	if err != nil {
		return err
	}

	if len(streams) == 0 {
		fmt.Println("No streams found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "STREAM", "CLASS")
		for _, stream := range streams {
			table.AddRow(stream.ID, stream.Name, stream.ClassID)
		}
		fmt.Println(table)
	default:
		return printStructured(output, streams)
	}
	return nil
}

func streamCreate(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	stream, err := session.client.Classes().CreateStream(
		c.Context,
		session.token(),
		kitabu.Stream{
			Name:    c.String(flagName),
			ClassID: c.String(flagClass),
		},
	)
	if err != nil {
		return err
	}
	fmt.Printf("Created stream %q.\n", stream.Name)
	return nil
}

func streamUpdate(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	stream, err := session.client.Classes().UpdateStream(
		c.Context,
		session.token(),
		c.String(flagID),
		c.String(flagName),
	)
	if err != nil {
		return err
	}
	fmt.Printf("Renamed stream to %q.\n", stream.Name)
	return nil
}

func streamDelete(c *cli.Context) error {
	session, err := getSession(c)
	if err != nil {
		return err
	}
	if err := session.requirePage(c.Context, kitabu.PageStudents); err != nil {
		return err
	}

	id := c.String(flagID)
	if err := session.client.Classes().DeleteStream(
		c.Context,
		session.token(),
		id,
	); err != nil {
		return err
	}
	fmt.Printf("Deleted stream %q.\n", id)
	return nil
}
