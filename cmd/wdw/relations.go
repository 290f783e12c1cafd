package main

import (
	"errors"
	"os"

	"github.com/revelaction/whodidwhat/filter"
	"github.com/revelaction/whodidwhat/relation"

	"github.com/urfave/cli/v2"
)

func relationsCommand() *cli.Command {
	flags := []cli.Flag{
		dbFlag(),
		&cli.IntFlag{Name: "doc", Value: -1, Usage: "show only relations of this doc id"},
	}
	flags = append(flags, outputFlags()...)

	return &cli.Command{
		Name:      "relations",
		Usage:     "Show stored relations, optionally filtered",
		ArgsUsage: "[filter expression]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.String("db") == "" {
				return errors.New("relations database must be specified via --db or WDW_DB_PATH")
			}

			p := &pool{}
			defer p.close()

			repo, err := newRelationRepository(p, c.String("db"))
			if err != nil {
				return err
			}

			var table relation.Table
			if id := c.Int("doc"); id >= 0 {
				table, err = repo.Relations(id)
			} else {
				table, err = repo.AllRelations()
			}
			if err != nil {
				return err
			}

			if c.Args().Len() > 0 {
				expr, err := filter.Parse(c.Args().Slice())
				if err != nil {
					return err
				}

				table = filter.Apply(table, expr)
			}

			return newRenderer(c, os.Stdout).Render(table)
		},
	}
}
