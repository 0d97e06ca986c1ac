package lrgest

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strconvU(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// descending returns n records sized n..1, largest first.
func descending(n int) []string {
	lines := make([]string, 0, n)
	for i := n; i >= 1; i-- {
		lines = append(lines, strconv.Itoa(i*100)+"\tdir/e"+strconv.Itoa(i))
	}

	return lines
}

func ranks(ranked []Ranked) []uint64 {
	out := make([]uint64, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Rank)
	}

	return out
}

func TestParseEntry(t *testing.T) {
	entry, err := ParseEntry("4096\tsome dir/with spaces\n")
	require.NoError(t, err)
	assert.Equal(t, SizeEntry{Path: "some dir/with spaces", Size: 4096}, entry)

	entry, err = ParseEntry("12   ./a")
	require.NoError(t, err)
	assert.Equal(t, SizeEntry{Path: "./a", Size: 12}, entry)
}

func TestParseEntry_Malformed(t *testing.T) {
	for _, line := range []string{"", "4096", "\tpath", "abc path", "-1 path", "12 \t "} {
		_, err := ParseEntry(line)
		assert.ErrorIs(t, err, ErrMalformedRecord, line)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"1\ta", "2\tb"}, SplitLines("1\ta\n\n2\tb\n"))
	assert.Empty(t, SplitLines(""))
}

func TestSelect_Default(t *testing.T) {
	ranked, err := Select(descending(3), DefaultRange{})
	require.NoError(t, err)

	assert.Equal(t, []uint64{3, 2, 1}, ranks(ranked))
	assert.Equal(t, "dir/e1", ranked[0].Path)
	assert.Equal(t, "dir/e3", ranked[2].Path)
}

func TestSelect_CustomTail(t *testing.T) {
	ranked, err := Select(descending(4), CustomTail{N: 4})
	require.NoError(t, err)

	assert.Equal(t, []uint64{4, 3, 2, 1}, ranks(ranked))
	assert.Equal(t, uint64(400), ranked[3].Size)
}

func TestSelect_CustomRange(t *testing.T) {
	// User range 2-7 over seven returned lines.
	ranked, err := Select(descending(7), CustomRange{Head: 3, Tail: 8})
	require.NoError(t, err)

	assert.Equal(t, []uint64{8, 7, 6, 5, 4, 3, 2}, ranks(ranked))
	assert.Equal(t, "dir/e7", ranked[6].Path)
}

func TestSelect_CustomRangeTailBeyondEntries(t *testing.T) {
	// User range 5-100 when only three lines remain past rank 4.
	ranked, err := Select(descending(3), CustomRange{Head: 6, Tail: 101})
	require.NoError(t, err)

	assert.Equal(t, []uint64{7, 6, 5}, ranks(ranked))
}

func TestSelect_CustomRangeFromZero(t *testing.T) {
	ranked, err := Select(descending(3), CustomRange{Head: 1, Tail: 4})
	require.NoError(t, err)

	assert.Equal(t, []uint64{3, 2, 1}, ranks(ranked))
}

func TestSelect_HeadBeyondEntries(t *testing.T) {
	ranked, err := Select(nil, CustomRange{Head: 21, Tail: 31})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestSelect_CustomTailMoreLinesThanCount(t *testing.T) {
	ranked, err := Select(descending(3), CustomTail{N: 2})
	require.NoError(t, err)

	assert.Equal(t, []uint64{3, 2, 1}, ranks(ranked))
}

func TestSelect_CustomRangeLastRankCappedAtTail(t *testing.T) {
	// User range 1-3 with five returned lines: only three ranks exist in the range.
	ranked, err := Select(descending(5), CustomRange{Head: 2, Tail: 4})
	require.NoError(t, err)

	assert.Equal(t, []uint64{3, 2, 1}, ranks(ranked))
	assert.Equal(t, []string{"dir/e1", "dir/e2", "dir/e3"},
		[]string{ranked[0].Path, ranked[1].Path, ranked[2].Path})
}

func TestSelect_MalformedLine(t *testing.T) {
	_, err := Select([]string{"100\ta", "oops"}, DefaultRange{})
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
