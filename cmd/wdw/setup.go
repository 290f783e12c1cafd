package main

import (
	"fmt"
	"io"
	"os"

	"github.com/revelaction/whodidwhat/relation"
	"github.com/revelaction/whodidwhat/render"
	"github.com/revelaction/whodidwhat/storage"
	"github.com/revelaction/whodidwhat/storage/filesystem"
	"github.com/revelaction/whodidwhat/storage/sqlite/zombiezen"
	"github.com/revelaction/whodidwhat/synonym"
	"github.com/revelaction/whodidwhat/valence"

	"github.com/urfave/cli/v2"
	"zombiezen.com/go/sqlite/sqlitex"
)

// pool shares one sqlite connection pool between the doc and relation
// repositories of a command invocation.
type pool struct {
	p *sqlitex.Pool
}

func (p *pool) open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	sp, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p = sp
	return p.p, nil
}

func (p *pool) close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}

// newDocRepository picks the doc storage backend from the path: a directory
// is a filesystem store of JSON docs, a file a SQLite database.
func newDocRepository(p *pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("doc repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	sp, err := p.open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(sp), nil
}

// newRelationRepository opens (creating if needed) the SQLite relation store.
func newRelationRepository(p *pool, path string) (storage.RelationRepository, error) {
	sp, err := p.open(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateRelationTables(sp); err != nil {
		return nil, fmt.Errorf("failed to create relations table: %w", err)
	}

	return zombiezen.NewRelationStore(sp), nil
}

// newOracle loads the sense lexicon, or disables the semantic pass when no
// lexicon is configured.
func newOracle(path string) (synonym.Oracle, error) {
	if path == "" {
		return synonym.None(), nil
	}

	return synonym.LoadLexicon(path)
}

func newScorer(path string) (valence.Scorer, error) {
	if path == "" {
		return valence.Neutral(), nil
	}

	return valence.Load(path)
}

// newRenderer builds the table renderer from the shared output flags.
func newRenderer(c *cli.Context, w io.Writer) render.TableRenderer {
	switch {
	case c.Bool("json"):
		return render.NewJSONRenderer(w)
	case c.Bool("csv"):
		return render.NewCSVRenderer(w)
	}

	r := render.NewRenderer()
	r.W = w
	r.HasColor = !c.Bool("no-color")
	r.HasPrefix = !c.Bool("no-prefix")
	r.Format = c.String("format")
	return r
}

func newExtractor(c *cli.Context) (*relation.Extractor, error) {
	oracle, err := newOracle(c.String("synonyms"))
	if err != nil {
		return nil, err
	}

	cfg := relation.DefaultConfig()
	cfg.Dedup = c.Bool("dedup")

	return relation.NewWithConfig(cfg, oracle), nil
}

// shared flag constructors

func docPathFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "doc-path",
		Aliases: []string{"d"},
		Usage:   "path to the docs directory or SQLite file",
		EnvVars: []string{"WDW_DOC_PATH"},
	}
}

func dbFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "db",
		Usage:   "path to the relations SQLite file",
		EnvVars: []string{"WDW_DB_PATH"},
	}
}

func synonymsFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "synonyms",
		Usage:   "path to the sense lexicon JSON (empty disables the semantic pass)",
		EnvVars: []string{"WDW_SYNONYMS"},
	}
}

func valenceFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "valence",
		Usage:   "path to the valence lexicon JSON",
		EnvVars: []string{"WDW_VALENCE"},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "json", Usage: "render as JSON"},
		&cli.BoolFlag{Name: "csv", Usage: "render as CSV"},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colors"},
		&cli.BoolFlag{Name: "no-prefix", Usage: "disable row prefixes"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: render.Defaultformat, Usage: "row format: rel, trace"},
	}
}
