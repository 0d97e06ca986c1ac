package enumerate

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// entryStat represents a single measured path.
type entryStat struct {
	path string
	size uint64
}

// collector aggregates sizes from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	root       string
	dirs       map[string]uint64 // own size of each directory
	files      []entryStat
	entryCount int64
	totalBytes uint64
	errorCount int64
}

// newCollector creates a collector for the tree under root.
func newCollector(root string, rootSize uint64) *collector {
	return &collector{
		root:       root,
		dirs:       map[string]uint64{root: rootSize},
		totalBytes: rootSize,
		entryCount: 1,
	}
}

// addError increments the error counter. This operation is protected by a mutex
// since fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// addDir records a directory's own size.
func (c *collector) addDir(path string, size uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entryCount++
	c.totalBytes += size
	c.dirs[path] += size
}

// addFile records any non-directory entry.
func (c *collector) addFile(path string, size uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entryCount++
	c.totalBytes += size
	c.files = append(c.files, entryStat{path: path, size: size})
}

// progress returns the running totals.
func (c *collector) progress() (int64, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entryCount, c.totalBytes
}

// finalize produces du-style records: the root total first, then every
// directory (and every file if includeFiles) sorted largest first.
//
// Directory sizes are cumulative: a directory's own size plus everything below it.
func (c *collector) finalize(includeFiles bool) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	totals := make(map[string]uint64, len(c.dirs))
	for path, size := range c.dirs {
		totals[path] = size
	}

	for _, f := range c.files {
		totals[c.parent(f.path)] += f.size
	}

	// Deepest first, so a directory's total is complete before it is added to its parent.
	paths := make([]string, 0, len(totals))
	for path := range totals {
		paths = append(paths, path)
	}

	slices.SortFunc(paths, func(a, b string) int {
		return calculateDepth(b, c.root) - calculateDepth(a, c.root)
	})

	for _, path := range paths {
		if path == c.root {
			continue
		}

		totals[c.parent(path)] += totals[path]
	}

	records := make([]string, 0, len(totals)+len(c.files))

	for _, path := range paths {
		if path != c.root {
			records = append(records, Record(totals[path], path))
		}
	}

	if includeFiles {
		for _, f := range c.files {
			records = append(records, Record(f.size, f.path))
		}
	}

	SortNumeric(records)
	Reverse(records)

	return append([]string{Record(totals[c.root], c.root)}, records...)
}

// parent returns the directory containing path, never above the root.
func (c *collector) parent(path string) string {
	dir := filepath.Dir(path)
	if calculateDepth(dir, c.root) == 0 {
		return c.root
	}

	return dir
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}
