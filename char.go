// Package ledchar converts 5x8 monochrome images into the byte-per-row bitmaps
// used by character LCDs and small LED matrix displays.
//
// Each of the eight rows becomes one byte. A lit (white) pixel is stored as a 0
// bit and a dark (black) pixel as a 1 bit, which is how most of these displays
// are wired. Two layouts are supported, see BitOrder.
package ledchar

import (
	"image"
	"image/color"
)

// Dimensions of a character cell.
const (
	Width  = 5
	Height = 8
)

// BitOrder selects where the five columns of a row land inside its byte.
type BitOrder int

const (
	// LSBAligned packs column 0 into bit 4 and column 4 into bit 0, leaving
	// bits 5-7 clear. This is the CGRAM layout of HD44780 style displays.
	LSBAligned BitOrder = iota
	// MSBFirst packs column 0 into bit 7 and column 4 into bit 3, leaving
	// bits 0-2 clear.
	MSBFirst
)

func (o BitOrder) String() string {
	if o == MSBFirst {
		return "msb-first"
	}
	return "lsb-aligned"
}

// Mask returns the bits of a row byte that carry pixels.
func (o BitOrder) Mask() byte {
	if o == MSBFirst {
		return 0xf8
	}
	return 0x1f
}

func (o BitOrder) shift(x int) uint {
	if o == MSBFirst {
		return uint(7 - x)
	}
	return uint(Width - 1 - x)
}

// Bitmap holds binarized pixels indexed [y][x]. True is a lit (white) pixel.
type Bitmap [Height][Width]bool

// Char is a packed character: one byte per row, top to bottom.
type Char struct {
	Rows  []byte
	Order BitOrder
}

// Pack turns a bitmap into row bytes using the given bit order. Unused bits
// are always zero. MSB-first characters are padded with zero rows to exactly
// Height bytes.
func Pack(bm Bitmap, order BitOrder) Char {
	rows := make([]byte, 0, Height)
	for y := 0; y < Height; y++ {
		var line byte
		for x := 0; x < Width; x++ {
			// Dark pixels set the bit.
			if !bm[y][x] {
				line |= 1 << order.shift(x)
			}
		}
		rows = append(rows, line)
	}
	if order == MSBFirst {
		rows = pad(rows, Height)
	}
	return Char{Rows: rows, Order: order}
}

func pad(rows []byte, n int) []byte {
	for len(rows) < n {
		rows = append(rows, 0)
	}
	return rows
}

// Bytes returns a copy of the packed rows.
func (c Char) Bytes() []byte {
	b := make([]byte, len(c.Rows))
	copy(b, c.Rows)
	return b
}

// Lit reports whether the pixel at (x, y) is lit. Out of range pixels are dark.
func (c Char) Lit(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height || y >= len(c.Rows) {
		return false
	}
	return c.Rows[y]&(1<<c.Order.shift(x)) == 0
}

// Bitmap unpacks the character.
func (c Char) Bitmap() Bitmap {
	var bm Bitmap
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			bm[y][x] = c.Lit(x, y)
		}
	}
	return bm
}

// Image draws the character as a black and white 5x8 image.
func (c Char) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, Width, Height), monochrome)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c.Lit(x, y) {
				img.SetColorIndex(x, y, white)
			}
		}
	}
	return img
}

// Palette indexes of monochrome.
const (
	black uint8 = 0
	white uint8 = 1
)

var monochrome = color.Palette{color.Black, color.White}
