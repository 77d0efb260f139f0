// Package main provides gen-no-std, which writes the no-std TSV fixture:
// seven rows of one to three fields.
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

	os.Exit(cli.RunGenerator(fixture.NameNoStd, os.Stdout, os.Stderr, os.Args, env))
}
