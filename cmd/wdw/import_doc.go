package main

import (
	"errors"
	"fmt"

	"github.com/revelaction/whodidwhat/storage/filesystem"
	"github.com/revelaction/whodidwhat/storage/sqlite/zombiezen"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

func importDocCommand() *cli.Command {
	return &cli.Command{
		Name:  "import-doc",
		Usage: "Import JSON docs from a directory into a SQLite database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "docs directory"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "SQLite file"},
		},
		Action: func(c *cli.Context) error {
			src, err := filesystem.NewDocStore(c.String("from"))
			if err != nil {
				return err
			}

			pool, err := zombiezen.NewPool(c.String("to"))
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := zombiezen.CreateDocTables(pool); err != nil {
				return fmt.Errorf("failed to create docs table: %w", err)
			}

			dst := zombiezen.NewDocStore(pool)

			docs, err := src.List()
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				return errors.New("no JSON docs found in " + c.String("from"))
			}

			fmt.Printf("Reading docs from %s...\n", c.String("from"))

			uiprogress.Start()
			bar := uiprogress.AddBar(len(docs))
			bar.AppendCompleted()
			bar.PrependElapsed()

			count := 0
			for _, meta := range docs {
				doc, err := src.Read(meta.Id)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
				}

				if err := dst.Write(doc); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
				}
				count++
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Printf("Successfully imported %d docs from %s to %s\n", count, c.String("from"), c.String("to"))
			return nil
		},
	}
}
