package lrgest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedRecord is returned for an enumerator line that is not `<bytes> <path>`.
var ErrMalformedRecord = errors.New("malformed record")

// SizeEntry is one measured filesystem entry.
type SizeEntry struct {
	// Path is the file or directory path as reported by the enumerator.
	Path string
	// Size is the size in bytes.
	Size uint64
}

// Ranked is a SizeEntry with its 1-based rank among all entries, largest first.
type Ranked struct {
	Rank uint64
	SizeEntry
}

// ParseEntry parses a single `<bytes><whitespace><path>` record.
// The path is everything after the first run of whitespace, so it may contain spaces.
func ParseEntry(line string) (SizeEntry, error) {
	line = strings.TrimRight(line, "\r\n")

	sep := strings.IndexFunc(line, unicode.IsSpace)
	if sep <= 0 {
		return SizeEntry{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	size, err := strconv.ParseUint(line[:sep], 10, 64)
	if err != nil {
		return SizeEntry{}, fmt.Errorf("%w: %q: %w", ErrMalformedRecord, line, err)
	}

	path := strings.TrimLeftFunc(line[sep:], unicode.IsSpace)
	if path == "" {
		return SizeEntry{}, fmt.Errorf("%w: %q: missing path", ErrMalformedRecord, line)
	}

	return SizeEntry{Path: path, Size: size}, nil
}

// SplitLines splits enumerator output into records, dropping blank lines.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	out := lines[:0]

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}

	return out
}

// Select ranks the records returned for the policy's window.
//
// lines must be the enumerator output for policy.Window(), largest entry
// first. The result is ordered by descending rank, so the largest entry comes
// last. A window that starts past the available entries yields an empty
// result, and one that ends past them is clamped.
//
// For a CustomRange the last rank is capped at the range's tail; records that
// would rank ahead of the range's head are dropped.
func Select(lines []string, policy Policy) ([]Ranked, error) {
	window := policy.Window()
	count := uint64(len(lines))

	var lastRank, offset uint64

	switch p := policy.(type) {
	case DefaultRange, CustomTail:
		lastRank = count
	case CustomRange:
		lastRank = min(count, p.Tail-headerLines)
		offset = window.First - headerLines - 1
	default:
		panic(fmt.Sprintf("lrgest: unhandled policy %T", policy))
	}

	ranked := make([]Ranked, 0, len(lines))

	for i := uint64(0); i < lastRank; i++ {
		entry, err := ParseEntry(lines[count-1-i])
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, Ranked{Rank: lastRank - i + offset, SizeEntry: entry})
	}

	return ranked, nil
}
