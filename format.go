package ledchar

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Hex formats data as comma separated hex literals without zero padding, eg:
//	0x0, 0x4, 0x1f
func Hex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = "0x" + strconv.FormatUint(uint64(b), 16)
	}
	return strings.Join(parts, ", ")
}

// Binary formats b as an 8 digit binary string, most significant bit first.
func Binary(b byte) string {
	return fmt.Sprintf("%08b", b)
}

/*
Format returns the printable form of c, ending in a newline. The last line
is always the hex listing. When binary is true, or c is MSB-first, the hex
line is preceded by one binary line per row:
	11111000
	...
	0xf8, 0xf8, 0xf8, 0xf8, 0xf8, 0xf8, 0xf8, 0xf8
*/
func Format(c Char, binary bool) string {
	var buf bytes.Buffer
	if binary || c.Order == MSBFirst {
		for _, b := range c.Rows {
			buf.WriteString(Binary(b))
			buf.WriteByte('\n')
		}
	}
	buf.WriteString(Hex(c.Rows))
	buf.WriteByte('\n')
	return buf.String()
}
