// Package main provides gen-tsv-reader, which writes the tsv-reader TSV
// fixture: a header row followed by shape rows.
package main

import (
	"os"
	"strings"

	"github.com/calvinalkan/tsv-fixtures/internal/cli"
	"github.com/calvinalkan/tsv-fixtures/internal/fixture"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	os.Exit(cli.RunGenerator(fixture.NameTSVReader, os.Stdout, os.Stderr, os.Args, env))
}
