package cli_test

import (
	"bytes"
	"testing"

	"github.com/calvinalkan/tsv-fixtures/internal/cli"
)

func Test_Bare_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	// Call Run directly without test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(&stdout, &stderr, []string{"tsvfixture"}, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stderr.String(), ""; got != want {
		t.Errorf("stderr=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stdout.String(), "tsvfixture - write TSV fixture files")
	cli.AssertContains(t, stdout.String(), "--cwd")
	cli.AssertContains(t, stdout.String(), "write <name> <path>")
	cli.AssertContains(t, stdout.String(), "print-config")
}

func Test_Main_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		args []string
	}{
		{name: "long flag", args: []string{"--help"}},
		{name: "short flag", args: []string{"-h"}},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout, stderr, exitCode := c.Run(tt.args...)

			if got, want := exitCode, 0; got != want {
				t.Errorf("exitCode=%d, want=%d", got, want)
			}

			if got, want := stderr, ""; got != want {
				t.Errorf("stderr=%q, want=%q", got, want)
			}

			cli.AssertContains(t, stdout, "Usage: tsvfixture [flags] <command> [args]")
			cli.AssertContains(t, stdout, "Global flags:")
			cli.AssertContains(t, stdout, "list")
		})
	}
}

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--invalid-flag", "list")

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")
	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--config")
}

func Test_Unknown_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("generate")

	cli.AssertContains(t, stderr, "unknown command: generate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_List_Shows_All_Fixtures(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("list")

	cli.AssertContains(t, stdout, "no-std       7 rows")
	cli.AssertContains(t, stdout, "tsv-reader   4 rows")
}

func Test_List_Rejects_Arguments(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("list", "extra")

	cli.AssertContains(t, stderr, "too many arguments")
	cli.AssertContains(t, stderr, "Usage: tsvfixture list")
}

func Test_Write_Named_Fixture(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("write", "tsv-reader", "shapes.tsv")

	want := "1\tExample Title\tFFFFFF\n" +
		"000000\tfalse\tLine\t0\t0\t500\t500\n" +
		"550055\ttrue\tCircle\t200\t300\t20\n" +
		"FF0055\tfalse\tRectangle\t100\t100\t200\t200\n"

	if got := c.ReadFile("shapes.tsv"); got != want {
		t.Fatalf("content=%q, want=%q", got, want)
	}
}

func Test_Write_Matches_Standalone_Generator(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("write", "no-std", "umbrella.tsv")

	if _, stderr, code := c.RunGenerator("no-std", "standalone.tsv"); code != 0 {
		t.Fatalf("generator failed: %s", stderr)
	}

	if got, want := c.ReadFile("umbrella.tsv"), c.ReadFile("standalone.tsv"); got != want {
		t.Fatalf("umbrella=%q, want=%q", got, want)
	}
}

func Test_Write_Mkdir_Flag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustFail("write", "no-std", "deep/out.tsv")
	c.AssertNoFile("deep/out.tsv")

	c.MustRun("write", "-p", "no-std", "deep/out.tsv")
	cli.AssertContains(t, c.ReadFile("deep/out.tsv"), "Cat\nDog\n")
}

func Test_Write_Usage_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no name", args: []string{"write"}, wantErr: "fixture name is required"},
		{name: "no path", args: []string{"write", "no-std"}, wantErr: "output path is required"},
		{name: "unknown fixture", args: []string{"write", "shapes", "out.tsv"}, wantErr: "unknown fixture: shapes"},
		{name: "extra args", args: []string{"write", "no-std", "a.tsv", "b.tsv"}, wantErr: "too many arguments"},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stderr := c.MustFail(tt.args...)

			cli.AssertContains(t, stderr, tt.wantErr)
			cli.AssertContains(t, stderr, "Usage: tsvfixture write <name> <path>")
		})
	}
}

func Test_Print_Config_Defaults(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "effective_cwd="+c.Dir)
	cli.AssertContains(t, stdout, "create_dirs=false")
	cli.AssertContains(t, stdout, "(defaults only)")
}

func Test_Print_Config_Explicit_File(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("ci.json", `{/* ci only */ "create_dirs": true}`)

	stdout := c.MustRun("--config", "ci.json", "print-config")

	cli.AssertNotContains(t, stdout, "output_dir")
	cli.AssertContains(t, stdout, "create_dirs=true")
	cli.AssertContains(t, stdout, "project_config="+c.Path("ci.json"))
}

func Test_Missing_Explicit_Config_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--config", "nope.json", "list")

	cli.AssertContains(t, stderr, "config file not found")
}

func Test_Print_Config_Lists_Ignored_Config(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".tsvfixture.json", `{broken`)

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "(defaults only)")
	cli.AssertContains(t, stdout, "ignored_config=invalid config file "+c.Path(".tsvfixture.json"))
}
