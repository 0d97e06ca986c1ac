package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/lrgest/internal/enumerate"
)

// CLI represents the command-line interface.
type CLI struct {
	version    string
	stdout     io.Writer
	stderr     io.Writer
	enumerator enumerate.Enumerator
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version, stdout: os.Stdout, stderr: os.Stderr}
}

// WithOutput returns a copy of c writing results to stdout and diagnostics to stderr.
func (c CLI) WithOutput(stdout, stderr io.Writer) CLI {
	c.stdout, c.stderr = stdout, stderr

	return c
}

// WithEnumerator returns a copy of c measuring directories with e
// instead of choosing an enumerator from the flags.
func (c CLI) WithEnumerator(e enumerate.Enumerator) CLI {
	c.enumerator = e

	return c
}

// Command builds the root command.
//
// Cobra's flag parsing is disabled: the options package parses flags with
// its own pflag set, so a lone '-' is dropped and unknown flags are reported
// as invalid options.
func (c CLI) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lrgest [flags] <directory> [count|head-tail]",
		Short: "List the largest entries under a directory",
		Long: heredoc.Doc(`
			lrgest lists the largest directories (or files) under a directory, ranked by size.

			Positional Arguments:
			  directory              Directory to analyze.
			  count                  Show ranks 1 through count (default 10).
			  head-tail              Show ranks head through tail inclusive, e.g. 3-8.

			Flags:
			  -a, --all              Include individual files, not only directories.
			      --du               Measure with 'du -b | sort -n | tac | sed' instead of walking in-process.
			      --json             Output JSON instead of a table.
			      --debug            Enable debug output.
			  -h, --help             Show this help and exit.
			      --version          Show version and exit.

			Short flags may be grouped and appear anywhere; '--' ends flag parsing.
			Sizes are apparent sizes in bytes, scaled by 1024.
		`),
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args)
		},
	}

	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)
	cmd.SetHelpTemplate("{{.Long}}\n")

	return cmd
}

// Execute runs the CLI with the provided arguments (without the program name).
// It is cancelled by an interrupt.
func (c CLI) Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := c.Command()
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}
