package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, true).Printf("window %d-%d", 2, 11)
	assert.Equal(t, "[debug]: window 2-11\n", buf.String())
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, false)
	log.Printf("ignored")

	assert.False(t, log.Enabled())
	assert.Empty(t, buf.String())

	var zero Logger
	zero.Printf("ignored")
	assert.False(t, zero.Enabled())
}
