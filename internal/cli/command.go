package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// errUsage marks errors caused by how the command was invoked. The command
// help is printed to stderr after the error.
var errUsage = errors.New("usage")

// usageError makes errors.Is(err, errUsage) hold while the printed
// message stays that of the wrapped error.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() []error {
	return []error{e.err, errUsage}
}

func newUsageError(err error) error {
	return usageError{err: err}
}

// Command defines a CLI command with unified help generation.
type Command struct {
	// Flags defines command-specific flags.
	// The FlagSet name is not used - command identity comes from Usage.
	Flags *flag.FlagSet

	// Prog is the program name shown before Usage in help.
	Prog string

	// Usage is the freeform usage string shown after Prog in help.
	// Includes the command name and arguments/flags.
	// Examples: "write <name> <path>", "list"
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	// Long is the full description shown in command help.
	// If empty, Short is used instead.
	Long string

	// Exec runs the command after flags are parsed.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-22s %s", c.Usage, c.Short)
}

// Help returns the full help text for "<prog> <cmd> --help".
func (c *Command) Help() string {
	var buf strings.Builder

	usage := strings.TrimSpace(c.Prog + " " + c.Usage)
	fmt.Fprintf(&buf, "Usage: %s\n\n", usage)

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	buf.WriteString(desc)
	buf.WriteString("\n")

	if c.Flags != nil && c.Flags.HasFlags() {
		buf.WriteString("\nFlags:\n")
		buf.WriteString(c.Flags.FlagUsages())
	}

	return buf.String()
}

// Run parses flags and executes the command. Returns exit code.
// Handles error printing internally for consistent output ordering.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag output

	err := c.Flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			o.Printf("%s", c.Help())
			return 0
		}
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		o.ErrPrintf("%s", c.Help())
		return 1
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)

		if errors.Is(err, errUsage) {
			o.ErrPrintln()
			o.ErrPrintf("%s", c.Help())
		}

		return 1
	}

	return 0
}
