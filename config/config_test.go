package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvr-ai/iconkit/images"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	inset, radius := cfg.AppIconPlate()
	assert.Equal(t, 102, inset)
	assert.Equal(t, 183, radius)

	bg, err := cfg.AppIconBackground()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, bg)

	tray, err := cfg.TrayBackground()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, tray)
}

func TestAppIconPlateMinimumOnePixel(t *testing.T) {
	cfg := Default()
	cfg.AppIconSize = 4
	cfg.AppIconBgInsetRatio = 0.01
	cfg.AppIconBgRadiusRatio = 0.01

	inset, radius := cfg.AppIconPlate()
	assert.Equal(t, 1, inset)
	assert.Equal(t, 1, radius)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
app_icon_size: 512
tray_bg_color: "#336699CC"
tray_glyph_offset_y: -1
`))
	require.NoError(t, err)

	assert.Equal(t, 512, cfg.AppIconSize)
	assert.Equal(t, "#336699CC", cfg.TrayBgColor)
	assert.Equal(t, -1, cfg.TrayGlyphOffsetY)
	assert.Equal(t, Default().AppIconScale, cfg.AppIconScale, "absent keys keep defaults")
	assert.Equal(t, Default().TrayDilateRadius, cfg.TrayDilateRadius, "absent keys keep defaults")
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Unknown key", "tray_size: 32"},
		{"Malformed", "app_icon_size: [1, 2"},
		{"Zero size", "app_icon_size: 0"},
		{"Negative tray size", "tray_icon_size: -32"},
		{"Scale above one", "app_icon_scale: 1.5"},
		{"Zero scale", "tray_glyph_scale: 0"},
		{"Inset swallows plate", "app_icon_bg_inset_ratio: 0.5"},
		{"Negative radius", "app_icon_bg_radius_ratio: -0.1"},
		{"Negative tray inset", "tray_bg_inset: -1"},
		{"Negative dilation", "tray_dilate_radius: -2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := Parse([]byte(`app_icon_bg_color: "#FFF"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, images.ErrInvalidColor))
	assert.Contains(t, err.Error(), "app_icon_bg_color")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tray_icon_size: 44\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 44, cfg.TrayIconSize)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
