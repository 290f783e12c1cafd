package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/revelaction/whodidwhat/render"

	"github.com/urfave/cli/v2"
)

func docCommand() *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "List documents, or show the sentences of one document",
		ArgsUsage: "[docId]",
		Flags: []cli.Flag{
			docPathFlag(),
			&cli.IntFlag{Name: "start", Value: 0, Usage: "index of the first sentence to show"},
			&cli.IntFlag{Name: "n", Value: -1, Usage: "number of sentences to show (-1 for all)"},
		},
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

			if c.Args().Len() == 0 {
				docs, err := repo.List()
				if err != nil {
					return err
				}

				for _, d := range docs {
					fmt.Printf("📖 %d %s \n", d.Id, d.Title)
				}

				return nil
			}

			docId, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid docId: %v", err)
			}

			doc, err := repo.Read(docId)
			if err != nil {
				return err
			}

			r := render.NewRenderer()
			r.HasColor = false

			count := 0
			for i, sentence := range doc.Sentences {
				if i < c.Int("start") {
					continue
				}

				if n := c.Int("n"); n >= 0 && count >= n {
					break
				}

				prefix := fmt.Sprintf("✍  %d-%d ", docId, i)
				r.Sentence(sentence.Tokens, prefix)
				count++
			}

			return nil
		},
	}
}
