package ledchar_test

import (
	"image/color"

	. "github.com/kevin-cantwell/ledchar"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

// bit is the row bit that column x lands in.
func bit(order BitOrder, x int) byte {
	if order == MSBFirst {
		return 0x80 >> uint(x)
	}
	return 0x10 >> uint(x)
}

func repeat(b byte) []byte {
	return []byte{b, b, b, b, b, b, b, b}
}

var _ = Describe("Char", func() {
	table.DescribeTable("packing solid images",
		func(c color.Color, order BitOrder, want []byte) {
			ch, err := NewEncoder(WithBitOrder(order)).Encode(solid(Width, Height, c))
			Expect(err).NotTo(HaveOccurred())
			Expect(ch.Rows).To(Equal(want))
			Expect(ch.Order).To(Equal(order))
		},
		table.Entry("black, lsb aligned", color.Black, LSBAligned, repeat(0x1f)),
		table.Entry("white, lsb aligned", color.White, LSBAligned, repeat(0x00)),
		table.Entry("black, msb first", color.Black, MSBFirst, repeat(0xf8)),
		table.Entry("white, msb first", color.White, MSBFirst, repeat(0x00)),
	)

	for _, order := range []BitOrder{LSBAligned, MSBFirst} {
		order := order

		It("sets exactly one bit per dark pixel ("+order.String()+")", func() {
			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					img := solid(Width, Height, color.White)
					img.Set(x, y, color.Black)
					ch, err := NewEncoder(WithBitOrder(order)).Encode(img)
					Expect(err).NotTo(HaveOccurred())
					for row, b := range ch.Rows {
						if row == y {
							Expect(b).To(Equal(bit(order, x)), "pixel (%d, %d)", x, y)
						} else {
							Expect(b).To(BeZero(), "pixel (%d, %d) row %d", x, y, row)
						}
					}
				}
			}
		})

		It("clears exactly one bit per lit pixel ("+order.String()+")", func() {
			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					img := solid(Width, Height, color.Black)
					img.Set(x, y, color.White)
					ch, err := NewEncoder(WithBitOrder(order)).Encode(img)
					Expect(err).NotTo(HaveOccurred())
					Expect(ch.Rows[y]).To(Equal(order.Mask()&^(bit(order, x))), "pixel (%d, %d)", x, y)
					Expect(ch.Lit(x, y)).To(BeTrue())
				}
			}
		})
	}

	It("never sets unused bits", func() {
		bm := Bitmap{}
		for _, order := range []BitOrder{LSBAligned, MSBFirst} {
			ch := Pack(bm, order)
			Expect(ch.Rows).To(HaveLen(Height))
			for _, b := range ch.Rows {
				Expect(b &^ order.Mask()).To(BeZero())
			}
		}
	})

	It("round trips through its image", func() {
		var bm Bitmap
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				bm[y][x] = (x+y)%3 == 0
			}
		}
		for _, order := range []BitOrder{LSBAligned, MSBFirst} {
			ch := Pack(bm, order)
			Expect(ch.Bitmap()).To(Equal(bm))
			again, err := NewEncoder(WithBitOrder(order)).Encode(ch.Image())
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(ch))
		}
	})

	It("treats out of range pixels as dark", func() {
		ch := Pack(Bitmap{}, LSBAligned)
		Expect(ch.Lit(-1, 0)).To(BeFalse())
		Expect(ch.Lit(Width, 0)).To(BeFalse())
		Expect(ch.Lit(0, Height)).To(BeFalse())
	})

	It("returns a copy from Bytes", func() {
		ch := Pack(Bitmap{}, LSBAligned)
		b := ch.Bytes()
		b[0] = 0
		Expect(ch.Rows[0]).To(Equal(byte(0x1f)))
	})
})
