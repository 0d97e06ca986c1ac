// Command lrgest lists the largest entries under a directory.
package main

import (
	"os"

	"github.com/idelchi/lrgest/internal/cli"
)

// version is set at build time via ldflags.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(os.Args[1:]); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
