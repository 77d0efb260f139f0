package cli

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/tsv-fixtures/internal/config"
	"github.com/calvinalkan/tsv-fixtures/internal/fixture"
	"github.com/calvinalkan/tsv-fixtures/internal/fs"

	flag "github.com/spf13/pflag"
)

const progName = "tsvfixture"

// Run is the entry point of the tsvfixture tool. Returns exit code.
func Run(out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	return run(fs.NewReal(), out, errOut, args, env)
}

// RunGenerator is the entry point of a standalone generator that writes the
// fixture registered under name. args[0] is the program name. Returns exit
// code.
func RunGenerator(name string, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	return runGenerator(name, fs.NewReal(), out, errOut, args, env)
}

func runGenerator(name string, fsys fs.FS, out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	fx, err := fixture.Get(name)
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	prog := "gen-" + name
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	return GeneratorCmd(prog, fx, fsys, env).Run(context.Background(), o, args)
}

func run(fsys fs.FS, out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	globals := flag.NewFlagSet(progName, flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(&strings.Builder{}) // discard pflag output

	workDir := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified config `file`")

	if len(args) > 0 {
		args = args[1:]
	}

	cfg := &config.Config{}
	commands := []*Command{
		WriteCmd(cfg, fsys),
		ListCmd(),
		PrintConfigCmd(cfg),
	}

	err := globals.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(out, globals, commands)

			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printUsage(errOut, globals, commands)

		return 1
	}

	rest := globals.Args()
	if len(rest) == 0 {
		printUsage(out, globals, commands)

		return 0
	}

	loaded, err := config.Load(config.LoadInput{
		FS:              fsys,
		WorkDirOverride: *workDir,
		ConfigPath:      *configPath,
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printUsage(errOut, globals, commands)

		return 1
	}

	*cfg = loaded

	name := rest[0]
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(context.Background(), o, rest[1:])
		}
	}

	o.ErrPrintln("error: unknown command:", name)
	o.ErrPrintln()
	printUsage(errOut, globals, commands)

	return 1
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	o := NewIO(w, w)

	o.Println(progName + " - write TSV fixture files")
	o.Println()
	o.Println("Usage: " + progName + " [flags] <command> [args]")
	o.Println()
	o.Println("Global flags:")
	o.Printf("%s", globals.FlagUsages())
	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}

	o.Println()
	o.Println("Run '" + progName + " <command> --help' for command flags.")
}
