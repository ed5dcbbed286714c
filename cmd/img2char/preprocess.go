package main

import (
	"image"

	"github.com/disintegration/imaging"
)

// preprocessImage applies the tonal adjustments in cfg. Neutral values leave
// the image untouched. The size never changes.
func preprocessImage(cfg config, img image.Image) image.Image {
	if cfg.Gamma != 1.0 {
		img = imaging.AdjustGamma(img, cfg.Gamma)
	}
	if cfg.Brightness != 0 {
		img = imaging.AdjustBrightness(img, cfg.Brightness)
	}
	if cfg.Sharpen > 0 {
		img = imaging.Sharpen(img, cfg.Sharpen)
	}
	if cfg.Contrast != 0 {
		img = imaging.AdjustContrast(img, cfg.Contrast)
	}
	if cfg.SigmoidFactor != 0 {
		img = imaging.AdjustSigmoid(img, cfg.SigmoidMidpoint, cfg.SigmoidFactor)
	}
	if cfg.Invert {
		img = imaging.Invert(img)
	}
	return img
}
