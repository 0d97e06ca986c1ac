package lrgest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned for a range specification that cannot be parsed.
var ErrInvalidRange = errors.New("invalid range specified")

// DefaultCount is the number of entries shown when no range is given.
const DefaultCount = 10

// headerLines is the number of leading enumerator lines that are not entries.
const headerLines = 1

// Policy selects which ranks are displayed.
// It is one of DefaultRange, CustomTail or CustomRange.
type Policy interface {
	// Window returns the 1-based inclusive line range to request from the enumerator.
	Window() LineWindow

	fmt.Stringer

	policy()
}

// DefaultRange shows ranks 1 through DefaultCount.
type DefaultRange struct{}

// CustomTail shows ranks 1 through N.
type CustomTail struct {
	// N is the number of ranks to show.
	N uint64
}

// CustomRange shows ranks Head-1 through Tail-1 inclusive.
//
// Head and Tail are stored in enumerator line numbers: the user's ranks
// plus one for the header line. Head >= 1 and Head <= Tail.
type CustomRange struct {
	// Head is the line number of the first requested rank.
	Head uint64
	// Tail is the line number of the last requested rank.
	Tail uint64
}

func (DefaultRange) policy() {}
func (CustomTail) policy()   {}
func (CustomRange) policy()  {}

// Window returns lines 2 through 11.
func (DefaultRange) Window() LineWindow {
	return LineWindow{First: headerLines + 1, Last: headerLines + DefaultCount}
}

// Window returns lines 2 through N+1.
func (p CustomTail) Window() LineWindow {
	return LineWindow{First: headerLines + 1, Last: addSat(p.N, headerLines)}
}

// Window returns lines Head through Tail, never including the header line.
func (p CustomRange) Window() LineWindow {
	return LineWindow{First: max(p.Head, headerLines+1), Last: p.Tail}
}

func (DefaultRange) String() string {
	return fmt.Sprintf("top %d", DefaultCount)
}

func (p CustomTail) String() string {
	return fmt.Sprintf("top %d", p.N)
}

func (p CustomRange) String() string {
	return fmt.Sprintf("ranks %d-%d", p.Head-headerLines, p.Tail-headerLines)
}

// LineWindow is a 1-based inclusive range of enumerator output lines.
type LineWindow struct {
	// First is the first line to keep.
	First uint64 `json:"first"`
	// Last is the last line to keep.
	Last uint64 `json:"last"`
}

// Empty reports whether the window selects no lines.
func (w LineWindow) Empty() bool {
	return w.Last < w.First
}

// Contains reports whether the 1-based line number n lies inside the window.
func (w LineWindow) Contains(n uint64) bool {
	return n >= w.First && n <= w.Last
}

// ParsePolicy parses an optional range token.
//
// An empty token selects DefaultRange. A non-negative integer n, optionally
// signed with '+', selects CustomTail(n). Anything else must be a `head-tail` range with head <= tail,
// which selects CustomRange(head+1, tail+1).
func ParsePolicy(token string, present bool) (Policy, error) {
	if !present {
		return DefaultRange{}, nil
	}

	count := strings.TrimPrefix(strings.TrimSpace(token), "+")
	if n, err := strconv.ParseUint(count, 10, 64); err == nil {
		return CustomTail{N: n}, nil
	}

	head, tail, err := parseHeadTail(token)
	if err != nil {
		return nil, err
	}

	return CustomRange{Head: addSat(head, headerLines), Tail: addSat(tail, headerLines)}, nil
}

// parseHeadTail splits a `head-tail` token into its two bounds.
func parseHeadTail(token string) (uint64, uint64, error) {
	var head, tail strings.Builder

	dashes := 0

	for _, c := range token {
		switch {
		case c == '-':
			dashes++
			if dashes > 1 {
				return 0, 0, fmt.Errorf("%w %q: more than one '-'", ErrInvalidRange, token)
			}
		case c >= '0' && c <= '9':
			if dashes == 0 {
				head.WriteRune(c)
			} else {
				tail.WriteRune(c)
			}
		default:
			return 0, 0, fmt.Errorf("%w %q: unexpected character %q", ErrInvalidRange, token, c)
		}
	}

	if dashes == 0 || head.Len() == 0 || tail.Len() == 0 {
		return 0, 0, fmt.Errorf("%w %q: expected head-tail", ErrInvalidRange, token)
	}

	h, err := strconv.ParseUint(head.String(), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q: %w", ErrInvalidRange, token, err)
	}

	t, err := strconv.ParseUint(tail.String(), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w %q: %w", ErrInvalidRange, token, err)
	}

	if h > t {
		return 0, 0, fmt.Errorf("%w %q: head is greater than tail", ErrInvalidRange, token)
	}

	return h, t, nil
}

// addSat adds b to a, saturating at the maximum uint64.
func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}
