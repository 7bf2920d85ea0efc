package hexdump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump_Lines(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte('A' + i)
	}

	options := DefaultOptions()
	options.StartOffset = 0x7f0000001000

	out := Dump(data, options)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "7f0000001000")
	assert.Contains(t, lines[1], "7f0000001010")
	assert.Contains(t, lines[0], "41")
	assert.Contains(t, lines[1], "54")
}

func TestDump_Empty(t *testing.T) {
	assert.Empty(t, Dump(nil, DefaultOptions()))
}

func TestDumpMatch_Highlight(t *testing.T) {
	options := DefaultOptions()
	options.HighlightStart = 2
	options.HighlightLen = 3

	assert.False(t, options.highlighted(1))
	assert.True(t, options.highlighted(2))
	assert.True(t, options.highlighted(4))
	assert.False(t, options.highlighted(5))

	out := DumpMatch([]byte{0x90, 0x48, 0x8B, 0x05}, 0x1000, 0x1001, 2)
	assert.Contains(t, out, "000000001000")
	assert.Contains(t, out, "8b")
}
