package hexdump

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// HexDumpOptions defines options for customizing the hexdump output
type HexDumpOptions struct {
	// BytesPerLine defines the number of bytes to display per line
	BytesPerLine int

	// ShowASCII determines whether to show the ASCII representation
	ShowASCII bool

	// StartOffset is the address of the first byte
	StartOffset uint64

	// OffsetWidth is the width of the offset column in hex digits
	OffsetWidth int

	// HighlightStart and HighlightLen select the bytes to highlight, relative
	// to the start of the data. A signature match is highlighted by position
	// because wildcard bytes have no fixed value.
	HighlightStart int
	HighlightLen   int

	OffsetColor              coloransi.ColorCode
	HexColor                 coloransi.ColorCode
	ASCIIColor               coloransi.ColorCode
	NonPrintableColor        coloransi.ColorCode
	ZeroColor                coloransi.ColorCode
	HighlightColor           coloransi.ColorCode
	HighlightBackgroundColor coloransi.ColorCode
}

// DefaultOptions returns the default hexdump options
func DefaultOptions() HexDumpOptions {
	return HexDumpOptions{
		BytesPerLine:             16,
		ShowASCII:                true,
		OffsetWidth:              12,
		OffsetColor:              coloransi.Cyan,
		HexColor:                 coloransi.White,
		ASCIIColor:               coloransi.Green,
		NonPrintableColor:        coloransi.Red,
		ZeroColor:                coloransi.BrightBlack,
		HighlightColor:           coloransi.Black,
		HighlightBackgroundColor: coloransi.Yellow,
	}
}

// Dump creates a hex dump of the given data with the specified options
func Dump(data []byte, options HexDumpOptions) string {
	var buffer bytes.Buffer
	DumpToWriter(&buffer, data, options)
	return buffer.String()
}

// DumpToWriter writes a hex dump of the given data to the specified writer
func DumpToWriter(writer io.Writer, data []byte, options HexDumpOptions) {
	if options.BytesPerLine <= 0 {
		options.BytesPerLine = 16
	}
	if options.OffsetWidth <= 0 {
		options.OffsetWidth = 8
	}

	for offset := 0; offset < len(data); offset += options.BytesPerLine {
		end := offset + options.BytesPerLine
		if end > len(data) {
			end = len(data)
		}
		formatLine(writer, data[offset:end], offset, options)
	}
}

// DumpMatch dumps data read from base with the match at matchAddr highlighted
func DumpMatch(data []byte, base, matchAddr uint64, matchLen int) string {
	options := DefaultOptions()
	options.StartOffset = base
	if matchAddr >= base {
		options.HighlightStart = int(matchAddr - base)
		options.HighlightLen = matchLen
	}
	return Dump(data, options)
}

func (o HexDumpOptions) highlighted(pos int) bool {
	return o.HighlightLen > 0 && pos >= o.HighlightStart && pos < o.HighlightStart+o.HighlightLen
}

// formatLine formats a single line of the hex dump. lineStart is the
// position of data[0] within the whole dump.
func formatLine(writer io.Writer, data []byte, lineStart int, options HexDumpOptions) {
	offsetStr := fmt.Sprintf("%0"+strconv.Itoa(options.OffsetWidth)+"x", options.StartOffset+uint64(lineStart))
	fmt.Fprint(writer, coloransi.Foreground(options.OffsetColor, offsetStr), "  ")

	hexParts := make([]string, 0, len(data))
	for i, b := range data {
		hexValue := fmt.Sprintf("%02x", b)
		switch {
		case options.highlighted(lineStart + i):
			hexParts = append(hexParts, coloransi.Color(options.HighlightColor, options.HighlightBackgroundColor, hexValue))
		case b == 0:
			hexParts = append(hexParts, coloransi.Foreground(options.ZeroColor, hexValue))
		default:
			hexParts = append(hexParts, coloransi.Foreground(options.HexColor, hexValue))
		}
	}
	fmt.Fprint(writer, strings.Join(hexParts, " "))

	if !options.ShowASCII {
		fmt.Fprintln(writer)
		return
	}

	// Keep the ASCII column aligned on a short last line
	if missing := options.BytesPerLine - len(data); missing > 0 {
		fmt.Fprint(writer, strings.Repeat(" ", missing*3))
	}

	fmt.Fprint(writer, " | ")
	for i, b := range data {
		c := rune(b)
		switch {
		case options.highlighted(lineStart + i):
			ch := "."
			if unicode.IsPrint(c) && c < unicode.MaxASCII {
				ch = string(c)
			}
			fmt.Fprint(writer, coloransi.Color(options.HighlightColor, options.HighlightBackgroundColor, ch))
		case b == 0:
			fmt.Fprint(writer, coloransi.Foreground(options.ZeroColor, "."))
		case !unicode.IsPrint(c) || c >= unicode.MaxASCII:
			fmt.Fprint(writer, coloransi.Foreground(options.NonPrintableColor, "."))
		default:
			fmt.Fprint(writer, coloransi.Foreground(options.ASCIIColor, string(c)))
		}
	}

	fmt.Fprintln(writer)
}
