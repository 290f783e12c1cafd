package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// set at build time
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func main() {
	app := &cli.App{
		Name:    "wdw",
		Usage:   "extract who-did-what relation tables from parsed documents",
		Version: fmt.Sprintf("%s (commit: %s)", BuildTag, BuildCommit),
		Commands: []*cli.Command{
			extractCommand(),
			docCommand(),
			sentenceCommand(),
			relationsCommand(),
			statCommand(),
			queryCommand(),
			importDocCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wdw: %v\n", err)
		os.Exit(1)
	}
}
