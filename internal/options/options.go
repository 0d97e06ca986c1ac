// Package options parses lrgest's command-line flags.
//
// Flags are a closed set parsed with pflag. Short flags may be grouped behind
// a single '-' (e.g. "-a"); long flags are spelled out behind "--". Flag
// arguments may appear anywhere and are removed, leaving positional
// arguments in order.
package options

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Set is a bitmask of recognized flags.
type Set uint8

const (
	// IncludeAllFiles lists individual files, not only directories.
	IncludeAllFiles Set = 1 << iota
	// External uses the du/sort/tac/sed process pipeline.
	External
	// JSON emits JSON instead of a table.
	JSON
	// Debug enables debug logging.
	Debug
	// Help prints usage.
	Help
	// Version prints the version.
	Version
)

// None is the empty flag set.
const None Set = 0

//nolint:gochecknoglobals // Fixed option table
var table = []struct {
	flag      Set
	name      string
	shorthand string
	usage     string
}{
	{IncludeAllFiles, "all", "a", "Include individual files, not only directories"},
	{External, "du", "", "Measure with du, sort, tac and sed"},
	{JSON, "json", "", "Output JSON instead of a table"},
	{Debug, "debug", "", "Enable debug output"},
	{Help, "help", "", "Show help and exit"},
	{Version, "version", "", "Show version and exit"},
}

// InvalidOptionError reports an unrecognized flag.
type InvalidOptionError struct {
	// Option is the offending flag character or long name including "--".
	Option string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option '%s'", e.Option)
}

// Has reports whether every flag in f is set.
func (s Set) Has(f Set) bool {
	return s&f == f
}

// String lists the long names of the set flags.
func (s Set) String() string {
	if s == None {
		return "none"
	}

	var set []string

	for _, o := range table {
		if s.Has(o.flag) {
			set = append(set, o.name)
		}
	}

	return strings.Join(set, ",")
}

// Parse extracts flags from args and returns them with the remaining
// positional arguments.
//
// Flags may appear anywhere. Short flags may be grouped behind a single '-',
// so "-5" is the flag '5'. A lone "-" is dropped and "--" ends flag parsing.
// Unrecognized flags fail with *InvalidOptionError; "-h" requests help.
func Parse(args []string) (Set, []string, error) {
	values := make([]bool, len(table))

	fs := pflag.NewFlagSet("lrgest", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetInterspersed(true)

	for i, o := range table {
		fs.BoolVarP(&values[i], o.name, o.shorthand, false, o.usage)
	}

	if err := fs.Parse(dropLoneDashes(args)); err != nil {
		var notExist *pflag.NotExistError

		switch {
		case errors.Is(err, pflag.ErrHelp):
			return Help, nil, nil
		case errors.As(err, &notExist):
			if notExist.GetSpecifiedShortnames() != "" {
				return None, nil, &InvalidOptionError{Option: notExist.GetSpecifiedName()}
			}

			return None, nil, &InvalidOptionError{Option: "--" + notExist.GetSpecifiedName()}
		default:
			return None, nil, fmt.Errorf("parsing flags: %w", err)
		}
	}

	flags := None

	for i, o := range table {
		if values[i] {
			flags |= o.flag
		}
	}

	return flags, fs.Args(), nil
}

// dropLoneDashes removes "-" arguments appearing before "--".
func dropLoneDashes(args []string) []string {
	kept := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			return append(kept, args[i:]...)
		}

		if arg != "-" {
			kept = append(kept, arg)
		}
	}

	return kept
}
