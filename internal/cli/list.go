package cli

import (
	"context"

	"github.com/calvinalkan/tsv-fixtures/internal/fixture"

	flag "github.com/spf13/pflag"
)

// ListCmd returns the list command.
func ListCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("list", flag.ContinueOnError),
		Prog:  progName,
		Usage: "list",
		Short: "List available fixtures",
		Long:  "List available fixtures with their row count, sorted by name.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return newUsageError(errTooManyArgs)
			}

			for _, fx := range fixture.List() {
				io.Printf("%-12s %d rows  %s\n", fx.Name, len(fx.Rows), fx.Description)
			}

			return nil
		},
	}
}
