// Package config - sizes, ratios and colors used to derive the icon set.
package config

import (
	"bytes"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/nvr-ai/iconkit/images"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the icon pipeline.
type Config struct {
	// AppIconSize is the side of the application icon canvas in pixels.
	AppIconSize int `json:"app_icon_size" yaml:"app_icon_size"`
	// AppIconScale is the share of the canvas the logo occupies.
	AppIconScale float64 `json:"app_icon_scale" yaml:"app_icon_scale"`
	// AppIconBgColor is the plate color drawn under the logo.
	AppIconBgColor string `json:"app_icon_bg_color" yaml:"app_icon_bg_color"`
	// AppIconBgInsetRatio is the plate inset relative to the canvas size.
	AppIconBgInsetRatio float64 `json:"app_icon_bg_inset_ratio" yaml:"app_icon_bg_inset_ratio"`
	// AppIconBgRadiusRatio is the corner radius relative to the plate size.
	AppIconBgRadiusRatio float64 `json:"app_icon_bg_radius_ratio" yaml:"app_icon_bg_radius_ratio"`

	// TrayIconSize is the side of both tray icon canvases in pixels.
	TrayIconSize int `json:"tray_icon_size" yaml:"tray_icon_size"`
	// TrayTemplateScale is the content scale of the template (tinted) icon.
	TrayTemplateScale float64 `json:"tray_template_scale" yaml:"tray_template_scale"`
	// TrayGlyphScale is the content scale of the glyph cut out of the colored icon.
	TrayGlyphScale float64 `json:"tray_glyph_scale" yaml:"tray_glyph_scale"`
	// TrayGlyphOffsetX nudges the glyph horizontally for optical centering.
	TrayGlyphOffsetX int `json:"tray_glyph_offset_x" yaml:"tray_glyph_offset_x"`
	// TrayGlyphOffsetY nudges the glyph vertically for optical centering.
	TrayGlyphOffsetY int `json:"tray_glyph_offset_y" yaml:"tray_glyph_offset_y"`
	// TrayBgInset is the circle plate inset in pixels.
	TrayBgInset int `json:"tray_bg_inset" yaml:"tray_bg_inset"`
	// TrayBgColor is the circle plate color.
	TrayBgColor string `json:"tray_bg_color" yaml:"tray_bg_color"`
	// TrayDilateRadius thickens the glyph mask before it is punched out.
	TrayDilateRadius int `json:"tray_dilate_radius" yaml:"tray_dilate_radius"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		AppIconSize:          1024,
		AppIconScale:         0.722,
		AppIconBgColor:       "#FFFFFF",
		AppIconBgInsetRatio:  0.10,
		AppIconBgRadiusRatio: 0.223,

		TrayIconSize:      32,
		TrayTemplateScale: 0.62,
		TrayGlyphScale:    0.52,
		TrayGlyphOffsetX:  1,
		TrayGlyphOffsetY:  0,
		TrayBgInset:       2,
		TrayBgColor:       "#FFFFFF",
		TrayDilateRadius:  1,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value; unknown keys are an error.
//
// Arguments:
//   - path: Path to the YAML configuration file.
//
// Returns:
//   - Config: The merged and validated configuration.
//   - error: Error if the file cannot be read, parsed or validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parse yaml")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot render.
func (c Config) Validate() error {
	if c.AppIconSize <= 0 {
		return errors.Errorf("app_icon_size must be positive, got %d", c.AppIconSize)
	}
	if c.TrayIconSize <= 0 {
		return errors.Errorf("tray_icon_size must be positive, got %d", c.TrayIconSize)
	}

	scales := []struct {
		name  string
		value float64
	}{
		{"app_icon_scale", c.AppIconScale},
		{"tray_template_scale", c.TrayTemplateScale},
		{"tray_glyph_scale", c.TrayGlyphScale},
	}
	for _, s := range scales {
		if !(s.value > 0 && s.value <= 1) {
			return errors.Errorf("%s must be in (0, 1], got %v", s.name, s.value)
		}
	}

	if c.AppIconBgInsetRatio < 0 || c.AppIconBgInsetRatio >= 0.5 {
		return errors.Errorf("app_icon_bg_inset_ratio must be in [0, 0.5), got %v", c.AppIconBgInsetRatio)
	}
	if c.AppIconBgRadiusRatio < 0 {
		return errors.Errorf("app_icon_bg_radius_ratio must not be negative, got %v", c.AppIconBgRadiusRatio)
	}
	if c.TrayBgInset < 0 {
		return errors.Errorf("tray_bg_inset must not be negative, got %d", c.TrayBgInset)
	}
	if c.TrayDilateRadius < 0 {
		return errors.Errorf("tray_dilate_radius must not be negative, got %d", c.TrayDilateRadius)
	}

	if _, err := images.ParseHexColor(c.AppIconBgColor); err != nil {
		return errors.Wrap(err, "app_icon_bg_color")
	}
	if _, err := images.ParseHexColor(c.TrayBgColor); err != nil {
		return errors.Wrap(err, "tray_bg_color")
	}
	return nil
}

// AppIconPlate converts the plate ratios to pixels.
//
// The inset is a share of the canvas; the radius is a share of the plate that
// remains inside the inset. Both are at least one pixel.
//
// Returns:
//   - inset: Distance from each canvas edge to the plate.
//   - radius: Corner radius of the plate.
func (c Config) AppIconPlate() (inset, radius int) {
	inset = max(1, int(math.RoundToEven(float64(c.AppIconSize)*c.AppIconBgInsetRatio)))
	plate := c.AppIconSize - 2*inset
	radius = max(1, int(math.RoundToEven(float64(plate)*c.AppIconBgRadiusRatio)))
	return inset, radius
}

// AppIconBackground returns the parsed app icon plate color.
func (c Config) AppIconBackground() (color.NRGBA, error) {
	return images.ParseHexColor(c.AppIconBgColor)
}

// TrayBackground returns the parsed tray plate color.
func (c Config) TrayBackground() (color.NRGBA, error) {
	return images.ParseHexColor(c.TrayBgColor)
}
