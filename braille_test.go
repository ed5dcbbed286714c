package ledchar_test

import (
	"bytes"

	. "github.com/kevin-cantwell/ledchar"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Braille", func() {
	It("maps dots to unicode symbols", func() {
		Expect(Braille{}.String()).To(Equal("⠀"))
		Expect(Braille{{1, 1, 1, 1}, {1, 1, 1, 1}}.String()).To(Equal("⣿"))
		Expect(Braille{{1, 0, 0, 0}, {0, 0, 0, 0}}.Rune()).To(Equal('⠁'))
		Expect(Braille{{0, 0, 0, 0}, {0, 0, 0, 1}}.Rune()).To(Equal('⢀'))
	})

	It("draws a lit character as three columns by two lines", func() {
		var bm Bitmap
		for y := range bm {
			for x := range bm[y] {
				bm[y][x] = true
			}
		}
		var buf bytes.Buffer
		Expect(WriteBraille(&buf, bm)).To(BeNil())
		Expect(buf.String()).To(Equal("⣿⣿⡇\n⣿⣿⡇\n"))
	})

	It("leaves dark pixels blank", func() {
		var buf bytes.Buffer
		Expect(WriteBraille(&buf, Pack(Bitmap{}, MSBFirst).Bitmap())).To(BeNil())
		Expect(buf.String()).To(Equal("⠀⠀⠀\n⠀⠀⠀\n"))
	})
})
