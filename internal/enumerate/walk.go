package enumerate

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/lrgest/internal/logger"
	"github.com/idelchi/lrgest/internal/options"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Walker measures a directory tree in-process.
//
// Sizes are apparent sizes in bytes, as reported by `du -b`. Entries that
// cannot be read are skipped and counted.
type Walker struct {
	// Log receives debug output.
	Log logger.Logger
	// Progress, if set, is called periodically with the number of entries
	// and bytes measured so far.
	Progress func(entries int64, bytes uint64)
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, uint64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Enumerate walks req.Dir and returns the records inside req.Window.
func (w Walker) Enumerate(ctx context.Context, req Request) (string, error) {
	if req.Window.Empty() {
		return "", nil
	}

	root := filepath.Clean(req.Dir)

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("accessing path %q: %w", root, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("path %q is not a directory", root)
	}

	collector := newCollector(root, nonNegative(info.Size()))

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, w.Progress, w.ProgressInterval)

	start := time.Now()

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.Log.Printf("error accessing path %s: %v", path, err)
			collector.addError()

			return nil // Skip unreadable entries, like du
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == root {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			w.Log.Printf("error reading %s: %v", path, err)
			collector.addError()

			if d.IsDir() {
				collector.addDir(path, 0)
			}

			return nil
		}

		if d.IsDir() {
			collector.addDir(path, nonNegative(fileInfo.Size()))
		} else {
			collector.addFile(path, nonNegative(fileInfo.Size()))
		}

		return nil
	})
	if walkErr != nil {
		return "", fmt.Errorf("walking %q: %w", root, walkErr)
	}

	records := collector.finalize(req.Options.Has(options.IncludeAllFiles))

	w.Log.Printf("measured %s entries, %s in %v (%d errors)",
		humanize.Comma(collector.entryCount), humanize.IBytes(collector.totalBytes),
		time.Since(start), collector.errorCount)

	selected := Window(records, req.Window)
	if len(selected) == 0 {
		return "", nil
	}

	return strings.Join(selected, "\n") + "\n", nil
}

// nonNegative converts a reported size to an unsigned byte count.
func nonNegative(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}
