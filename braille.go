package ledchar

import (
	"io"
)

// Braille is one 2x4 braille cell indexed [x][y]. A 5x8 character needs three
// cells across and two down; the third column only uses x = 0.
type Braille [2][4]int

// Rune returns the unicode symbol for b. Dots 1-6 run down the left then the
// right column, dots 7 and 8 are the bottom row.
func (b Braille) Rune() rune {
	order := [8]int{b[0][0], b[0][1], b[0][2], b[1][0], b[1][1], b[1][2], b[0][3], b[1][3]}
	var v int
	for i, dot := range order {
		v |= dot << uint(i)
	}
	return '\u2800' + rune(v)
}

func (b Braille) String() string {
	return string(b.Rune())
}

// WriteBraille draws bm with one raised dot per lit pixel.
func WriteBraille(w io.Writer, bm Bitmap) error {
	for py := 0; py < Height; py += 4 {
		for px := 0; px < Width; px += 2 {
			var b Braille
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					// The last column only fills the left half of its symbol.
					if px+x >= Width || py+y >= Height {
						continue
					}
					if bm[py+y][px+x] {
						b[x][y] = 1
					}
				}
			}
			if _, err := w.Write([]byte(b.String())); err != nil {
				return err
			}
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
