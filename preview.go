package ledchar

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/pkg/errors"
)

// Colors used by Preview.
var (
	PreviewBackground = color.RGBA{0x10, 0x10, 0x10, 0xff}
	PreviewLit        = color.RGBA{0xff, 0x30, 0x20, 0xff}
	PreviewDark       = color.RGBA{0x38, 0x20, 0x20, 0xff}
)

// Preview renders c as it would look on the display: a Width x Height grid of
// round LEDs, scale pixels apart.
func Preview(c Char, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	s := float64(scale)
	img := image.NewRGBA(image.Rect(0, 0, Width*scale, Height*scale))
	gc := draw2dimg.NewGraphicContext(img)

	gc.SetFillColor(PreviewBackground)
	draw2dkit.Rectangle(gc, 0, 0, float64(Width)*s, float64(Height)*s)
	gc.Fill()

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c.Lit(x, y) {
				gc.SetFillColor(PreviewLit)
			} else {
				gc.SetFillColor(PreviewDark)
			}
			draw2dkit.Circle(gc, (float64(x)+0.5)*s, (float64(y)+0.5)*s, s*0.4)
			gc.Fill()
		}
	}
	return img
}

// SavePreview writes Preview(c, scale) to path as a PNG.
func SavePreview(path string, c Char, scale int) error {
	return errors.Wrapf(draw2dimg.SaveToPngFile(path, Preview(c, scale)), "cannot write preview %s", path)
}
