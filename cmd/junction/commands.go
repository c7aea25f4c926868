//go:build windows

package main

import (
	"fmt"

	cli "github.com/urfave/cli/v2"

	"github.com/Microsoft/go-junction"
	"github.com/Microsoft/go-junction/internal/appargs"
)

var createCommand = &cli.Command{
	Name:      "create",
	Usage:     "Create a junction that resolves to target",
	ArgsUsage: "<target> <junction>",
	Before:    appargs.Validate(appargs.RequiredNonEmpty, appargs.RequiredNonEmpty),
	Action: func(c *cli.Context) error {
		return junction.Create(c.Context, c.Args().Get(0), c.Args().Get(1))
	},
}

var deleteCommand = &cli.Command{
	Name:      "delete",
	Aliases:   []string{"rm"},
	Usage:     "Remove the reparse data from a junction, leaving an empty directory",
	ArgsUsage: "<junction>",
	Before:    appargs.Validate(appargs.RequiredNonEmpty),
	Action: func(c *cli.Context) error {
		return junction.Delete(c.Context, c.Args().First())
	},
}

var existsCommand = &cli.Command{
	Name:      "exists",
	Usage:     "Print whether a path is a junction",
	ArgsUsage: "<junction>",
	Before:    appargs.Validate(appargs.RequiredNonEmpty),
	Action: func(c *cli.Context) error {
		ok, err := junction.Exists(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, ok)
		return err
	},
}

var targetCommand = &cli.Command{
	Name:      "target",
	Usage:     "Print the target of a junction",
	ArgsUsage: "<junction>",
	Before:    appargs.Validate(appargs.RequiredNonEmpty),
	Action: func(c *cli.Context) error {
		t, err := junction.GetTarget(c.Context, c.Args().First())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, t)
		return err
	},
}
