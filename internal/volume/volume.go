// Package volume reports usage of the filesystem holding a directory.
package volume

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/disk"
)

// Status represents usage of a mounted filesystem.
type Status struct {
	// Path is the directory the usage was queried for.
	Path string `json:"path"`
	// Filesystem is the filesystem type, e.g. "ext4".
	Filesystem string `json:"filesystem"`
	// Total is the filesystem capacity in bytes.
	Total uint64 `json:"total"`
	// Used is the number of bytes in use.
	Used uint64 `json:"used"`
	// Free is the number of bytes available.
	Free uint64 `json:"free"`
	// UsagePercent is Used as a percentage of Total.
	UsagePercent float64 `json:"usage_percent"`
}

// Usage returns usage of the filesystem holding path.
func Usage(ctx context.Context, path string) (*Status, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading filesystem usage of %q: %w", path, err)
	}

	return &Status{
		Path:         path,
		Filesystem:   usage.Fstype,
		Total:        usage.Total,
		Used:         usage.Used,
		Free:         usage.Free,
		UsagePercent: usage.UsedPercent,
	}, nil
}

// String summarizes the usage, e.g. "ext4: 12 GiB of 50 GiB used (24.0%), 38 GiB free".
func (s Status) String() string {
	return fmt.Sprintf("%s: %s of %s used (%.1f%%), %s free",
		s.Filesystem, humanize.IBytes(s.Used), humanize.IBytes(s.Total), s.UsagePercent, humanize.IBytes(s.Free))
}
