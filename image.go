package ledchar

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Open checks that path is a readable regular file and decodes it, whatever its
// size. Any failure is an *Error of kind KindFileAccess or KindDecode.
func Open(path string) (image.Image, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Path: path, Err: errors.Wrapf(err, "cannot decode %s", path)}
	}
	return img, nil
}

// OpenChar is Open for character cells. The size is read from the header and
// anything other than Width x Height is rejected before the pixels are decoded.
func OpenChar(path string) (image.Image, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Path: path, Err: errors.Wrapf(err, "cannot decode %s", path)}
	}
	if cfg.Width != Width || cfg.Height != Height {
		return nil, &Error{Kind: KindValidation, Path: path, Err: sizeError(cfg.Width, cfg.Height)}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, &Error{Kind: KindFileAccess, Path: path, Err: errors.Wrapf(err, "path %q is not readable", path)}
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Path: path, Err: errors.Wrapf(err, "cannot decode %s", path)}
	}
	return img, nil
}

func openFile(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &Error{Kind: KindFileAccess, Path: path, Err: errors.Errorf("path %q does not exist", path)}
	}
	if err != nil {
		return nil, &Error{Kind: KindFileAccess, Path: path, Err: errors.Wrapf(err, "path %q is not accessible", path)}
	}
	if info.IsDir() {
		return nil, &Error{Kind: KindFileAccess, Path: path, Err: errors.Errorf("path %q is a directory", path)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: KindFileAccess, Path: path, Err: errors.Wrapf(err, "path %q is not readable", path)}
	}
	return f, nil
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Err: errors.Wrap(err, "cannot decode image")}
	}
	return img, nil
}

// CheckSize rejects anything that is not exactly Width x Height. The message
// carries the observed size.
func CheckSize(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return &Error{Kind: KindValidation, Err: sizeError(b.Dx(), b.Dy())}
	}
	return nil
}

func sizeError(w, h int) error {
	return errors.Errorf("unsupported image size (%d, %d)", w, h)
}

// opaque drops alpha and keeps the straight RGB, so a transparent white pixel
// stays white.
func opaque(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}

// Filter is a draw.Drawer that can alter an image via the Filter method before
// it is drawn into the black and white palette.
type Filter interface {
	draw.Drawer
	Filter(image.Image) image.Image
}

// diffuseFilter ignores alpha, reduces to luma, then dithers with Floyd
// Steinberg error diffusion, the usual one bit conversion.
type diffuseFilter struct{}

func (diffuseFilter) Filter(img image.Image) image.Image {
	return imaging.Grayscale(opaque(img))
}

func (diffuseFilter) Draw(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) {
	draw.FloydSteinberg.Draw(dst, r, src, sp)
}

// ThresholdFilter lights a pixel when its luma (0-255) is at least the
// threshold. Alpha is ignored and no dithering is done.
type ThresholdFilter uint8

func (ThresholdFilter) Filter(img image.Image) image.Image {
	return opaque(img)
}

func (t ThresholdFilter) Draw(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
			if color.GrayModel.Convert(c).(color.Gray).Y >= uint8(t) {
				dst.Set(x, y, color.White)
			} else {
				dst.Set(x, y, color.Black)
			}
		}
	}
}

type Option func(enc *Encoder)

// WithBitOrder sets the packing layout. The default is LSBAligned.
func WithBitOrder(o BitOrder) Option {
	return func(enc *Encoder) {
		enc.order = o
	}
}

// WithFilter replaces the default dithering filter. A nil filter is ignored.
func WithFilter(f Filter) Option {
	return func(enc *Encoder) {
		if f != nil {
			enc.f = f
		}
	}
}

type Encoder struct {
	order BitOrder
	f     Filter
}

func NewEncoder(opts ...Option) *Encoder {
	enc := Encoder{
		order: LSBAligned,
		f:     diffuseFilter{},
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode validates, binarizes and packs img.
func (enc *Encoder) Encode(img image.Image) (Char, error) {
	if err := CheckSize(img); err != nil {
		return Char{}, err
	}
	return Pack(enc.binarize(img), enc.order), nil
}

func (enc *Encoder) binarize(img image.Image) Bitmap {
	paletted := enc.redraw(img)
	// Filtering may move the bounds to (0, 0), so read relative to Min.
	origin := paletted.Bounds().Min
	var bm Bitmap
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			bm[y][x] = paletted.ColorIndexAt(origin.X+x, origin.Y+y) == white
		}
	}
	return bm
}

func (enc *Encoder) redraw(img image.Image) *image.Paletted {
	img = enc.f.Filter(img)
	paletted := image.NewPaletted(img.Bounds(), monochrome)
	enc.f.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min)
	return paletted
}

// Encode packs img with the default encoder.
func Encode(img image.Image) (Char, error) {
	return NewEncoder().Encode(img)
}

// Convert opens the image at path and packs it.
func Convert(path string, opts ...Option) (Char, error) {
	img, err := OpenChar(path)
	if err != nil {
		return Char{}, err
	}
	return NewEncoder(opts...).Encode(img)
}
