package main

import (
	"errors"

	"github.com/revelaction/whodidwhat/query"
	"github.com/revelaction/whodidwhat/render"

	"github.com/urfave/cli/v2"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Interactively filter stored relations",
		Flags: []cli.Flag{
			dbFlag(),
			&cli.BoolFlag{Name: "no-color", Usage: "disable colors"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "disable row prefixes"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: render.Defaultformat, Usage: "row format: rel, trace"},
		},
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

			table, err := repo.AllRelations()
			if err != nil {
				return err
			}

			r := render.NewRenderer()
			r.HasColor = !c.Bool("no-color")
			r.HasPrefix = !c.Bool("no-prefix")
			r.Format = c.String("format")

			// present the REPL over the loaded table
			h := query.NewHandler(table, r)
			return h.Run()
		},
	}
}
