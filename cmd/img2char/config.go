package main

import (
	"io/ioutil"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/ledchar"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const defaultPreviewScale = 20

// config holds every option that can come from the YAML file. Eg:
//	msb_first: true
//	threshold: 128
//	preview: glyph.png
type config struct {
	MSBFirst        bool    `yaml:"msb_first"`
	Binary          bool    `yaml:"binary"`
	Threshold       *int    `yaml:"threshold"` // nil dithers
	Gamma           float64 `yaml:"gamma"`
	Brightness      float64 `yaml:"brightness"`
	Contrast        float64 `yaml:"contrast"`
	Sharpen         float64 `yaml:"sharpen"`
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	SigmoidFactor   float64 `yaml:"sigmoid_factor"`
	Invert          bool    `yaml:"invert"`
	Resize          bool    `yaml:"resize"`
	Preview         string  `yaml:"preview"`
	PreviewScale    int     `yaml:"preview_scale"`
	Show            bool    `yaml:"show"`
	Verbose         bool    `yaml:"verbose"`
}

func defaultConfig() config {
	return config{
		Gamma:           1.0,
		SigmoidMidpoint: 0.5,
		PreviewScale:    defaultPreviewScale,
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "cannot read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "cannot parse config %s", path)
	}
	return cfg, nil
}

// merge overrides cfg with every flag given on the command line.
func (cfg *config) merge(c *cli.Context) {
	if c.IsSet("msb-first") {
		cfg.MSBFirst = c.Bool("msb-first")
	}
	if c.IsSet("binary") {
		cfg.Binary = c.Bool("binary")
	}
	if c.IsSet("threshold") {
		t := c.Int("threshold")
		cfg.Threshold = &t
	}
	if c.IsSet("gamma") {
		cfg.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-midpoint") {
		cfg.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
	}
	if c.IsSet("sigmoid-factor") {
		cfg.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	if c.IsSet("invert") {
		cfg.Invert = c.Bool("invert")
	}
	if c.IsSet("resize") {
		cfg.Resize = c.Bool("resize")
	}
	if c.IsSet("preview") {
		cfg.Preview = c.String("preview")
	}
	if c.IsSet("preview-scale") {
		cfg.PreviewScale = c.Int("preview-scale")
	}
	if c.IsSet("show") {
		cfg.Show = c.Bool("show")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
}

func (cfg config) validate() error {
	if cfg.Threshold != nil && (*cfg.Threshold < 0 || *cfg.Threshold > 255) {
		return errors.Errorf("threshold must be between 0 and 255, got %d", *cfg.Threshold)
	}
	if cfg.SigmoidMidpoint < 0 || cfg.SigmoidMidpoint > 1 {
		return errors.Errorf("sigmoid midpoint must be between 0 and 1, got %g", cfg.SigmoidMidpoint)
	}
	if cfg.PreviewScale < 1 {
		return errors.Errorf("preview scale must be positive, got %d", cfg.PreviewScale)
	}
	return nil
}

func (cfg config) order() ledchar.BitOrder {
	if cfg.MSBFirst {
		return ledchar.MSBFirst
	}
	return ledchar.LSBAligned
}
