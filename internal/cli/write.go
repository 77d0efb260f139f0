package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/calvinalkan/tsv-fixtures/internal/config"
	"github.com/calvinalkan/tsv-fixtures/internal/fixture"
	"github.com/calvinalkan/tsv-fixtures/internal/fs"

	flag "github.com/spf13/pflag"
)

// stdoutPath makes a generator write the fixture to stdout instead of a file.
const stdoutPath = "-"

var (
	errPathRequired = errors.New("output path is required")
	errNameRequired = errors.New("fixture name is required")
	errTooManyArgs  = errors.New("too many arguments")
)

// GeneratorCmd returns the command behind a standalone generator binary:
// "<prog> [flags] <path>" writes fx to path.
func GeneratorCmd(prog string, fx fixture.Fixture, fsys fs.FS, env map[string]string) *Command {
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flags.StringP("config", "c", "", "Use specified config `file`")
	addWriteFlags(flags)

	return &Command{
		Flags: flags,
		Prog:  prog,
		Usage: "[flags] <path>",
		Short: fmt.Sprintf("Write the %s fixture to <path> (use - for stdout)", fx.Name),
		Long: fmt.Sprintf("Write the %s fixture to <path>, replacing any existing file.\n"+
			"Contents: %s.\n"+
			"Use - as <path> to write to stdout; use ./- for a file named -.\n"+
			"Relative paths resolve against the working directory (or --cwd).", fx.Name, fx.Description),
		Exec: func(_ context.Context, o *IO, args []string) error {
			path, err := onePath(args)
			if err != nil {
				return err
			}

			cwd, _ := flags.GetString("cwd")
			configPath, _ := flags.GetString("config")
			mkdir, _ := flags.GetBool("mkdir")

			cfg, err := config.Load(config.LoadInput{
				FS:              fsys,
				WorkDirOverride: cwd,
				ConfigPath:      configPath,
				CreateDirs:      mkdir,
				Env:             env,
			})
			if err != nil {
				return newUsageError(err)
			}

			verbose, _ := flags.GetBool("verbose")

			return writeFixture(o, fsys, cfg, fx, path, verbose)
		},
	}
}

// WriteCmd returns the write command of the umbrella tool.
func WriteCmd(cfg *config.Config, fsys fs.FS) *Command {
	flags := flag.NewFlagSet("write", flag.ContinueOnError)
	addWriteFlags(flags)

	return &Command{
		Flags: flags,
		Prog:  progName,
		Usage: "write <name> <path>",
		Short: "Write fixture <name> to <path>",
		Long: "Write fixture <name> to <path>, replacing any existing file.\n" +
			"Use - as <path> to write to stdout; use ./- for a file named -.\n" +
			"See 'list' for fixture names.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return newUsageError(errNameRequired)
			}

			fx, err := fixture.Get(args[0])
			if err != nil {
				return newUsageError(err)
			}

			path, err := onePath(args[1:])
			if err != nil {
				return err
			}

			resolved := *cfg
			if mkdir, _ := flags.GetBool("mkdir"); mkdir {
				resolved.CreateDirs = true
			}

			verbose, _ := flags.GetBool("verbose")

			return writeFixture(o, fsys, resolved, fx, path, verbose)
		},
	}
}

func addWriteFlags(flags *flag.FlagSet) {
	flags.BoolP("mkdir", "p", false, "Create missing parent directories")
	flags.BoolP("verbose", "v", false, "Print what was written")
}

func onePath(args []string) (string, error) {
	switch {
	case len(args) == 0 || args[0] == "":
		return "", newUsageError(errPathRequired)
	case len(args) > 1:
		return "", newUsageError(fmt.Errorf("%w: %v", errTooManyArgs, args[1:]))
	}

	return args[0], nil
}

func writeFixture(o *IO, fsys fs.FS, cfg config.Config, fx fixture.Fixture, path string, verbose bool) error {
	if path == stdoutPath {
		data, err := fx.Encode()
		if err != nil {
			return err
		}

		if err := o.Write(data); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}

		return nil
	}

	res, err := fixture.Generate(fsys, fx, cfg.ResolvePath(path), fixture.GenerateOptions{CreateDirs: cfg.CreateDirs})
	if err != nil {
		return err
	}

	if verbose {
		o.Printf("wrote %s (%d rows, %d bytes)\n", res.Path, res.Rows, res.Bytes)
	}

	return nil
}
