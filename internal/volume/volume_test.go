package volume

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	dir := t.TempDir()

	status, err := Usage(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, status.Path)
	assert.Positive(t, status.Total)
	assert.LessOrEqual(t, status.Used, status.Total)
}

func TestUsage_Missing(t *testing.T) {
	_, err := Usage(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestStatus_String(t *testing.T) {
	s := Status{Filesystem: "ext4", Total: 4 << 30, Used: 1 << 30, Free: 3 << 30, UsagePercent: 25}

	assert.Equal(t, "ext4: 1.0 GiB of 4.0 GiB used (25.0%), 3.0 GiB free", s.String())
}
