package enumerate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/idelchi/lrgest/internal/lrgest"
)

// Record formats a single `<bytes>\t<path>` line.
func Record(size uint64, path string) string {
	return fmt.Sprintf("%d\t%s", size, path)
}

// SortNumeric sorts records ascending by their leading size field.
// Records of equal size are ordered by the whole line, as `sort -n` does.
// Records without a numeric prefix sort as zero.
func SortNumeric(lines []string) {
	slices.SortStableFunc(lines, func(a, b string) int {
		if c := compareSize(leadingSize(a), leadingSize(b)); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})
}

// Reverse reverses records in place.
func Reverse(lines []string) {
	slices.Reverse(lines)
}

// Window keeps the records whose 1-based line number lies in w.
func Window(lines []string, w lrgest.LineWindow) []string {
	var kept []string

	for i, line := range lines {
		if n := uint64(i) + 1; w.Contains(n) {
			kept = append(kept, line)
		} else if n > w.Last {
			break
		}
	}

	return kept
}

// leadingSize returns the decimal digits at the start of a record, without leading zeros.
func leadingSize(line string) string {
	line = strings.TrimLeft(line, " \t")

	end := strings.IndexFunc(line, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(line)
	}

	return strings.TrimLeft(line[:end], "0")
}

// compareSize compares two digit strings numerically without overflow.
func compareSize(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}

	return strings.Compare(a, b)
}
