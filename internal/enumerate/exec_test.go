package enumerate

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/lrgest/internal/lrgest"
	"github.com/idelchi/lrgest/internal/options"
)

// requirePipeline skips unless the GNU pipeline programs are available.
func requirePipeline(t *testing.T) {
	t.Helper()

	if runtime.GOOS != "linux" {
		t.Skip("du -b requires GNU coreutils")
	}

	for _, name := range []string{"du", "sort", "tac", "sed"} {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not available: %v", name, err)
		}
	}
}

func TestExec_AllFiles(t *testing.T) {
	requirePipeline(t)

	root := tree(t)

	out, err := Exec{}.Enumerate(context.Background(), Request{
		Dir:     root,
		Options: options.IncludeAllFiles,
		Window:  lrgest.LineWindow{First: 2, Last: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, Record(50000, filepath.Join(root, "big"))+"\n", out)
}

func TestExec_Directories(t *testing.T) {
	requirePipeline(t)

	root := tree(t)

	out, err := Exec{}.Enumerate(context.Background(), Request{
		Dir:    root,
		Window: lrgest.LineWindow{First: 2, Last: 11},
	})
	require.NoError(t, err)

	got := entries(t, out)
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(root, "sub"), got[0].Path)
}

func TestExec_MissingDirectory(t *testing.T) {
	requirePipeline(t)

	_, err := Exec{}.Enumerate(context.Background(), Request{
		Dir:    filepath.Join(t.TempDir(), "missing"),
		Window: lrgest.LineWindow{First: 2, Last: 11},
	})
	require.Error(t, err)

	var collaborator *CollaboratorError
	require.True(t, errors.As(err, &collaborator))
	assert.Equal(t, "du", collaborator.Stage)
	assert.Contains(t, err.Error(), "Terminating program.")
}

func TestExec_EmptyWindow(t *testing.T) {
	out, err := Exec{}.Enumerate(context.Background(), Request{
		Dir:    "not-run",
		Window: lrgest.LineWindow{First: 2, Last: 1},
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}
