package format

import (
	"fmt"
	"io"
	"unicode"
)

const hexdumpWidth = 16

// Hexdump writes data as classic hex+ASCII rows: an 8-digit offset, sixteen
// hex bytes, and the printable characters of the row.
func Hexdump(w io.Writer, data []byte, base uint64) {
	for i := 0; i < len(data); i += hexdumpWidth {
		fmt.Fprintf(w, "%08x  ", base+uint64(i))

		end := min(i+hexdumpWidth, len(data))
		for j := i; j < i+hexdumpWidth; j++ {
			if j < end {
				fmt.Fprintf(w, "%02x ", data[j])
			} else {
				fmt.Fprint(w, "   ")
			}
		}

		fmt.Fprint(w, " ")
		for j := i; j < end; j++ {
			c := rune(data[j])
			if c > unicode.MaxASCII || !unicode.IsPrint(c) {
				c = '.'
			}
			fmt.Fprintf(w, "%c", c)
		}
		fmt.Fprintln(w)
	}
}
