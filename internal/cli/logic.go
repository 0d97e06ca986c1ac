package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/lrgest/internal/enumerate"
	"github.com/idelchi/lrgest/internal/logger"
	"github.com/idelchi/lrgest/internal/lrgest"
	"github.com/idelchi/lrgest/internal/options"
	"github.com/idelchi/lrgest/internal/volume"
)

//nolint:cyclop,funlen // Linear pipeline of validation steps.
func (c CLI) run(cmd *cobra.Command, args []string) error {
	flags, positional, err := options.Parse(args)
	if err != nil {
		return err
	}

	if flags.Has(options.Help) {
		return cmd.Help()
	}

	if flags.Has(options.Version) {
		_, err := fmt.Fprintln(c.stdout, c.version)

		return err
	}

	log := logger.New(c.stderr, flags.Has(options.Debug))
	log.Printf("flags: %s", flags)

	if len(positional) == 0 {
		return ErrNoDirectory
	}

	if len(positional) > 2 { //nolint:mnd // directory and range
		return fmt.Errorf("unexpected argument %q", positional[2])
	}

	dir := positional[0]

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' %w", dir, ErrNotDirectory)
	}

	var token string
	if len(positional) == 2 { //nolint:mnd // directory and range
		token = positional[1]
	}

	policy, err := lrgest.ParsePolicy(token, len(positional) == 2) //nolint:mnd // directory and range
	if err != nil {
		return err
	}

	window := policy.Window()
	log.Printf("policy: %s, requesting lines %d-%d", policy, window.First, window.Last)

	enableProgress := !flags.Has(options.JSON) &&
		!flags.Has(options.Debug) &&
		isTerminal(c.stderr)

	enumerator := c.enumerator
	if enumerator == nil {
		enumerator = c.newEnumerator(flags, log, enableProgress)
	}

	text, err := enumerator.Enumerate(cmd.Context(), enumerate.Request{
		Dir:     dir,
		Options: flags,
		Window:  window,
	})

	// Clear the status line
	if enableProgress {
		fmt.Fprint(c.stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	ranked, err := lrgest.Select(lrgest.SplitLines(text), policy)
	if err != nil {
		return err
	}

	log.Printf("selected %d entries", len(ranked))

	var status *volume.Status

	if flags.Has(options.JSON) || log.Enabled() {
		status, err = volume.Usage(cmd.Context(), dir)
		if err != nil {
			log.Printf("%v", err)
		} else {
			log.Printf("volume %s", status)
		}
	}

	if flags.Has(options.JSON) {
		return PrintJSON(NewReport(dir, policy, ranked, status), c.stdout)
	}

	return PrintTable(ranked, c.stdout, NewPalette(lipgloss.NewRenderer(c.stdout)))
}

// newEnumerator picks the enumerator selected by the flags.
func (c CLI) newEnumerator(flags options.Set, log logger.Logger, progress bool) enumerate.Enumerator {
	if flags.Has(options.External) {
		log.Printf("enumerator: du pipeline")

		return enumerate.Exec{Log: log}
	}

	log.Printf("enumerator: in-process walk")

	walker := enumerate.Walker{Log: log}

	if progress {
		// Simple progress callback that prints directly to stderr
		walker.Progress = func(entries int64, bytes uint64) {
			msg := fmt.Sprintf("Scanning… %s entries, %s", humanize.Comma(entries), humanize.IBytes(bytes))
			fmt.Fprintf(c.stderr, "\r\033[2K%s\r", msg)
		}
	}

	return walker
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
