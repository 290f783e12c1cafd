package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/revelaction/whodidwhat/render"

	"github.com/urfave/cli/v2"
)

func sentenceCommand() *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "Show the tokens and the raw extraction of one sentence",
		ArgsUsage: "<docId> <sentenceId>",
		Flags: []cli.Flag{
			docPathFlag(),
			synonymsFlag(),
			&cli.BoolFlag{Name: "dedup", Usage: "remove duplicate phrases per action token"},
		},
		Action: func(c *cli.Context) error {
			if c.String("doc-path") == "" {
				return errors.New("doc path must be specified via -d or WDW_DOC_PATH")
			}

			if c.Args().Len() != 2 {
				return errors.New("sentence command needs exactly two arguments: <docId> <sentenceId>")
			}

			docId, err := strconv.Atoi(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid docId: %v", err)
			}

			sentId, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid sentenceId: %v", err)
			}

			p := &pool{}
			defer p.close()

			repo, err := newDocRepository(p, c.String("doc-path"))
			if err != nil {
				return err
			}

			doc, err := repo.Read(docId)
			if err != nil {
				return err
			}

			if sentId < 0 || sentId >= len(doc.Sentences) {
				return fmt.Errorf("sentence id out of range: %d", sentId)
			}

			s := doc.Sentences[sentId]

			r := render.NewRenderer()
			r.HasColor = false
			prefix := fmt.Sprintf("✍  %d-%d ", docId, sentId)
			r.Sentence(s.Tokens, prefix)
			fmt.Println()

			for _, token := range s.Tokens {
				fmt.Printf("%20q %15q %8s %6d %6d %8s %8s %s\n",
					token.Text, token.Lemma, token.Pos, token.Index, token.Head, token.Dep, token.Tag, token.Morph)
			}
			fmt.Println()

			ex, err := newExtractor(c)
			if err != nil {
				return err
			}

			for _, svo := range ex.Sentence(s) {
				fmt.Printf("🔖 %s\n", svo.Trace())
			}

			return nil
		},
	}
}
