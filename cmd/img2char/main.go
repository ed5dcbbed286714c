package main

import (
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/ledchar"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "img2char"
	app.Usage = "Convert a 5x8 image to a byte array, compatible with LED displays."
	app.ArgsUsage = "IMAGE"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "YAML `FILE` with defaults for the options below. Options given on the command line win.",
			EnvVar: "IMG2CHAR_CONFIG",
		},
		cli.BoolFlag{
			Name:  "msb-first,m",
			Usage: "Pack column 0 into bit 7 instead of bit 4, and list each row in binary.",
		},
		cli.BoolFlag{
			Name:  "binary,b",
			Usage: "List each row in binary before the hex line.",
		},
		cli.IntFlag{
			Name:  "threshold,t",
			Usage: "`LEVEL` = 0-255 lights pixels whose luma is at least LEVEL. Without it the image is dithered.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image before packing.",
		},
		cli.BoolFlag{
			Name:  "resize,r",
			Usage: "Scale images of any size down to 5x8 instead of rejecting them.",
		},
		cli.StringFlag{
			Name:  "preview,p",
			Usage: "Write a PNG rendering of the character to `FILE`.",
		},
		cli.IntFlag{
			Name:  "preview-scale",
			Usage: "`PIXELS` per LED in the preview.",
			Value: defaultPreviewScale,
		},
		cli.BoolFlag{
			Name:  "show",
			Usage: "Draw the character in braille on stderr.",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log each step on stderr.",
		},
	}
	app.Action = func(c *cli.Context) error {
		out, err := convert(c, stderr)
		if err != nil {
			// Failures are reported on stdout, in the same place as the result.
			fmt.Fprintf(stdout, "error: %v\n", err)
			return nil
		}
		fmt.Fprint(stdout, out)
		return nil
	}
	return app
}

// convert runs the whole pipeline and returns the text to print. Nothing is
// written to stdout until every step has succeeded.
func convert(c *cli.Context, stderr io.Writer) (string, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return "", err
	}
	cfg.merge(c)
	if err := cfg.validate(); err != nil {
		return "", err
	}

	logger := log.New(ioutil.Discard, "img2char: ", 0)
	if cfg.Verbose {
		logger.SetOutput(stderr)
	}

	path := c.Args().First()
	if path == "" {
		return "", errors.New("missing image argument")
	}

	open := ledchar.OpenChar
	if cfg.Resize {
		open = ledchar.Open
	}
	img, err := open(path)
	if err != nil {
		return "", err
	}
	logger.Printf("decoded %s: %dx%d", path, img.Bounds().Dx(), img.Bounds().Dy())

	if cfg.Resize && !fits(img) {
		img = resize.Resize(ledchar.Width, ledchar.Height, img, resize.NearestNeighbor)
		logger.Printf("resized to %dx%d", ledchar.Width, ledchar.Height)
	}
	if err := ledchar.CheckSize(img); err != nil {
		return "", err
	}

	img = preprocessImage(cfg, img)

	opts := []ledchar.Option{ledchar.WithBitOrder(cfg.order())}
	if cfg.Threshold != nil {
		opts = append(opts, ledchar.WithFilter(ledchar.ThresholdFilter(*cfg.Threshold)))
		logger.Printf("threshold %d", *cfg.Threshold)
	}
	ch, err := ledchar.NewEncoder(opts...).Encode(img)
	if err != nil {
		return "", err
	}
	logger.Printf("packed %d rows %s", len(ch.Rows), ch.Order)

	if cfg.Preview != "" {
		if err := ledchar.SavePreview(cfg.Preview, ch, cfg.PreviewScale); err != nil {
			return "", err
		}
		logger.Printf("wrote preview %s", cfg.Preview)
	}
	if cfg.Show {
		if err := ledchar.WriteBraille(stderr, ch.Bitmap()); err != nil {
			return "", err
		}
	}

	return ledchar.Format(ch, cfg.Binary), nil
}

func fits(img image.Image) bool {
	return img.Bounds().Dx() == ledchar.Width && img.Bounds().Dy() == ledchar.Height
}
