package enumerate

import (
	"context"
	"fmt"
	"strings"

	"github.com/idelchi/lrgest/internal/lrgest"
	"github.com/idelchi/lrgest/internal/options"
)

// Request describes what to enumerate.
type Request struct {
	// Dir is the directory to measure.
	Dir string
	// Options carries the parsed flags; only IncludeAllFiles affects enumeration.
	Options options.Set
	// Window is the inclusive range of output lines to return.
	Window lrgest.LineWindow
}

// Enumerator produces the raw ranked records for a request.
type Enumerator interface {
	// Enumerate blocks until all records are available and returns them as
	// newline separated text.
	Enumerate(ctx context.Context, req Request) (string, error)
}

// CollaboratorError reports a failed external stage.
type CollaboratorError struct {
	// Stage is the name of the failing program.
	Stage string
	// Stderr is the stage's captured diagnostic output.
	Stderr string
	// Err is the underlying failure.
	Err error
}

func (e *CollaboratorError) Error() string {
	diagnostic := strings.TrimSpace(e.Stderr)
	if diagnostic == "" {
		diagnostic = fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}

	return diagnostic + "\nlrgest encountered an unexpected error. Terminating program."
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
