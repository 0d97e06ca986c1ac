package enumerate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/idelchi/lrgest/internal/logger"
	"github.com/idelchi/lrgest/internal/options"
)

// Exec measures a directory with the `du -b | sort -n | tac | sed -n` pipeline.
// It requires GNU coreutils and sed on PATH.
type Exec struct {
	// Log receives debug output.
	Log logger.Logger
}

// stage is one process of the pipeline.
type stage struct {
	cmd    *exec.Cmd
	stderr bytes.Buffer
}

// Enumerate runs the pipeline and returns sed's output.
// A non-zero exit of any stage is reported as *CollaboratorError.
func (e Exec) Enumerate(ctx context.Context, req Request) (string, error) {
	if req.Window.Empty() {
		return "", nil
	}

	duFlags := "-b"
	if req.Options.Has(options.IncludeAllFiles) {
		duFlags = "-ab"
	}

	script := fmt.Sprintf("%d,%dp", req.Window.First, req.Window.Last)

	stages := []*stage{
		{cmd: exec.CommandContext(ctx, "du", duFlags, "--", req.Dir)},
		{cmd: exec.CommandContext(ctx, "sort", "-n")},
		{cmd: exec.CommandContext(ctx, "tac")},
		{cmd: exec.CommandContext(ctx, "sed", "-n", script)},
	}

	var stdout bytes.Buffer

	for i, s := range stages {
		s.cmd.Stderr = &s.stderr

		if i == len(stages)-1 {
			s.cmd.Stdout = &stdout

			continue
		}

		pipe, err := s.cmd.StdoutPipe()
		if err != nil {
			return "", fmt.Errorf("connecting %s: %w", s.name(), err)
		}

		stages[i+1].cmd.Stdin = pipe
	}

	e.Log.Printf("running: du %s -- %s | sort -n | tac | sed -n %s", duFlags, req.Dir, script)

	for i, s := range stages {
		if err := s.cmd.Start(); err != nil {
			// Reap the stages that did start.
			for _, started := range stages[:i] {
				_ = started.cmd.Process.Kill()
				_ = started.cmd.Wait()
			}

			return "", &CollaboratorError{Stage: s.name(), Err: err}
		}
	}

	var failure error

	for _, s := range stages {
		if err := s.cmd.Wait(); err != nil && failure == nil {
			failure = &CollaboratorError{Stage: s.name(), Stderr: s.stderr.String(), Err: err}
		}
	}

	if failure != nil {
		var exitErr *exec.ExitError
		if errors.As(failure, &exitErr) {
			e.Log.Printf("pipeline stage exited with status %d", exitErr.ExitCode())
		}

		return "", failure
	}

	return stdout.String(), nil
}

func (s *stage) name() string {
	return strings.TrimSuffix(s.cmd.Args[0], ".exe")
}
