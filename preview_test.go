package ledchar_test

import (
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/kevin-cantwell/ledchar"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Preview", func() {
	var ch Char

	BeforeEach(func() {
		var bm Bitmap
		bm[0][0] = true
		ch = Pack(bm, LSBAligned)
	})

	It("draws one LED per pixel", func() {
		img := Preview(ch, 10)
		Expect(img.Bounds()).To(Equal(image.Rect(0, 0, Width*10, Height*10)))
		Expect(img.RGBAAt(5, 5)).To(Equal(PreviewLit))
		Expect(img.RGBAAt(15, 5)).To(Equal(PreviewDark))
		Expect(img.RGBAAt(0, 0)).To(Equal(PreviewBackground))
	})

	It("clamps the scale", func() {
		Expect(Preview(ch, 0).Bounds()).To(Equal(image.Rect(0, 0, Width, Height)))
	})

	It("saves a png", func() {
		dir, err := ioutil.TempDir("", "ledchar")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "preview.png")
		Expect(SavePreview(path, ch, 4)).To(BeNil())

		f, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		img, err := png.Decode(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(img.Bounds().Dx()).To(Equal(Width * 4))
		Expect(img.Bounds().Dy()).To(Equal(Height * 4))
	})

	It("reports unwritable paths", func() {
		err := SavePreview(filepath.Join("does", "not", "exist", "p.png"), ch, 4)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("cannot write preview"))
	})
})
