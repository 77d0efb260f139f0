// Package main provides tsvfixture, which writes any of the registered TSV
// fixtures and lists them.
package main

import (
	"os"
	"strings"

	"github.com/calvinalkan/tsv-fixtures/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	exitCode := cli.Run(os.Stdout, os.Stderr, os.Args, env)

	os.Exit(exitCode)
}
