package main

import (
	"errors"
	"fmt"

	"github.com/revelaction/whodidwhat/relation"
	"github.com/revelaction/whodidwhat/stat"

	"github.com/urfave/cli/v2"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "Summarize stored relations: distinct nodes per role with valence",
		Flags: []cli.Flag{
			dbFlag(),
			valenceFlag(),
			&cli.IntFlag{Name: "doc", Value: -1, Usage: "summarize only this doc id"},
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

			var table relation.Table
			if id := c.Int("doc"); id >= 0 {
				table, err = repo.Relations(id)
			} else {
				table, err = repo.AllRelations()
			}
			if err != nil {
				return err
			}

			scorer, err := newScorer(c.String("valence"))
			if err != nil {
				return err
			}

			hdl := stat.NewHandler(scorer)
			hdl.Aggregate(table)
			summary := hdl.Get()

			fmt.Printf("Rows %d (syntactic %d, semantic %d)\n",
				summary.NumRows, summary.NumSyntactic, summary.NumSemantic)

			sections := []struct {
				name    string
				entries []stat.Entry
			}{
				{"Who", summary.Subjects},
				{"Did", summary.Verbs},
				{"What", summary.Objects},
			}

			for _, s := range sections {
				fmt.Printf("\n%s (%d)\n", s.name, len(s.entries))
				for _, e := range s.entries {
					fmt.Printf("  %+6.2f %s\n", e.Valence, e.Node)
				}
			}

			return nil
		},
	}
}
