package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

func extractCommand() *cli.Command {
	flags := []cli.Flag{
		docPathFlag(),
		synonymsFlag(),
		dbFlag(),
		&cli.IntFlag{Name: "doc", Value: -1, Usage: "extract only this doc id"},
		&cli.BoolFlag{Name: "dedup", Usage: "remove duplicate phrases per action token"},
		&cli.BoolFlag{Name: "store", Usage: "store the tables in the relations database instead of printing"},
	}
	flags = append(flags, outputFlags()...)

	return &cli.Command{
		Name:  "extract",
		Usage: "Extract relation tables from parsed documents",
		Flags: flags,
		Action: func(c *cli.Context) error {
			if c.String("doc-path") == "" {
				return errors.New("doc path must be specified via -d or WDW_DOC_PATH")
			}

			p := &pool{}
			defer p.close()

			repo, err := newDocRepository(p, c.String("doc-path"))
			if err != nil {
				return err
			}

			ex, err := newExtractor(c)
			if err != nil {
				return err
			}

			docs, err := repo.List()
			if err != nil {
				return err
			}

			if id := c.Int("doc"); id >= 0 {
				found := false
				for _, d := range docs {
					if d.Id == id {
						docs = docs[:0]
						docs = append(docs, d)
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("doc not found: %d", id)
				}
			}

			if c.Bool("store") {
				if c.String("db") == "" {
					return errors.New("--store needs a relations database via --db or WDW_DB_PATH")
				}

				relRepo, err := newRelationRepository(p, c.String("db"))
				if err != nil {
					return err
				}

				uiprogress.Start()
				bar := uiprogress.AddBar(len(docs))
				bar.AppendCompleted()
				bar.PrependElapsed()

				for _, meta := range docs {
					doc, err := repo.Read(meta.Id)
					if err != nil {
						uiprogress.Stop()
						return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
					}

					table, err := ex.Document(doc)
					if err != nil {
						uiprogress.Stop()
						return fmt.Errorf("failed to extract doc %s: %w", meta.Title, err)
					}

					if err := relRepo.WriteRelations(meta.Id, table); err != nil {
						uiprogress.Stop()
						return fmt.Errorf("failed to store relations of %s: %w", meta.Title, err)
					}

					bar.Incr()
				}
				uiprogress.Stop()

				fmt.Printf("Stored relations of %d docs in %s\n", len(docs), c.String("db"))
				return nil
			}

			r := newRenderer(c, os.Stdout)
			for _, meta := range docs {
				doc, err := repo.Read(meta.Id)
				if err != nil {
					return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
				}

				table, err := ex.Document(doc)
				if err != nil {
					return fmt.Errorf("failed to extract doc %s: %w", meta.Title, err)
				}

				if err := r.Render(table); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
