package enumerate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idelchi/lrgest/internal/lrgest"
)

func TestSortNumeric(t *testing.T) {
	lines := []string{
		"100\tb",
		"9\tz",
		"18446744073709551615\thuge",
		"100\ta",
		"0\tempty",
		"007\tpadded",
	}

	SortNumeric(lines)

	assert.Equal(t, []string{
		"0\tempty",
		"007\tpadded",
		"9\tz",
		"100\ta",
		"100\tb",
		"18446744073709551615\thuge",
	}, lines)
}

func TestReverse(t *testing.T) {
	lines := []string{"1", "2", "3"}
	Reverse(lines)
	assert.Equal(t, []string{"3", "2", "1"}, lines)
}

func TestWindow(t *testing.T) {
	lines := []string{"total", "a", "b", "c"}

	tests := []struct {
		name   string
		window lrgest.LineWindow
		want   []string
	}{
		{"skip header", lrgest.LineWindow{First: 2, Last: 11}, []string{"a", "b", "c"}},
		{"exact", lrgest.LineWindow{First: 2, Last: 3}, []string{"a", "b"}},
		{"single", lrgest.LineWindow{First: 4, Last: 4}, []string{"c"}},
		{"past end", lrgest.LineWindow{First: 5, Last: 9}, nil},
		{"empty", lrgest.LineWindow{First: 2, Last: 1}, nil},
		{"header", lrgest.LineWindow{First: 1, Last: 1}, []string{"total"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(lines, tt.window))
		})
	}
}

func TestRecord(t *testing.T) {
	assert.Equal(t, "4096\tdir/sub dir", Record(4096, "dir/sub dir"))
}
